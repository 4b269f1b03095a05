// Package ipaddr parses CIDR prefixes and bare addresses into the
// family-tagged form the radix trie keys on. It is the one place in the
// module that parses and canonicalizes address text; the trie and store
// work on the netip.Addr values it returns.
package ipaddr

import (
	"fmt"
	"net/netip"
)

// Family mirrors routetable.Family without importing it, to keep this
// package free of a dependency on the trie package.
type Family uint8

const (
	V4 Family = iota
	V6
)

func (f Family) String() string {
	if f == V6 {
		return "v6"
	}
	return "v4"
}

// Prefix is a parsed, canonicalized CIDR prefix: the network address with
// host bits cleared, plus its length.
type Prefix struct {
	Addr   netip.Addr
	Bits   int
	Family Family
}

// String returns the canonical CIDR text, e.g. "192.168.1.0/24".
func (p Prefix) String() string {
	return netip.PrefixFrom(p.Addr, p.Bits).String()
}

// NetworkAddr returns the query address used for a lookup: the masked
// network address of the prefix.
func (p Prefix) NetworkAddr() netip.Addr {
	return p.Addr
}

// ParsePrefix parses a CIDR string, canonicalizing host bits to zero.
// Accepts a bare address too (treated as a host route, prefix length
// equal to the family width).
func ParsePrefix(s string) (Prefix, error) {
	if pfx, err := netip.ParsePrefix(s); err == nil {
		return fromNetipPrefix(pfx)
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return Prefix{}, fmt.Errorf("%q: %w", s, err)
	}
	return fromNetipPrefix(netip.PrefixFrom(addr, addr.BitLen()))
}

func fromNetipPrefix(pfx netip.Prefix) (Prefix, error) {
	if !pfx.IsValid() {
		return Prefix{}, fmt.Errorf("invalid prefix")
	}
	masked := pfx.Masked()
	fam := V4
	if masked.Addr().Is6() && !masked.Addr().Is4In6() {
		fam = V6
	}
	return Prefix{
		Addr:   masked.Addr(),
		Bits:   masked.Bits(),
		Family: fam,
	}, nil
}

// ParseAddr parses a bare IP address for use as a lookup key.
func ParseAddr(s string) (netip.Addr, Family, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, V4, fmt.Errorf("%q: %w", s, err)
	}
	fam := V4
	if addr.Is6() && !addr.Is4In6() {
		fam = V6
	}
	return addr.Unmap(), fam, nil
}

// Bit returns the bit at position pos (0 = most significant bit) of addr.
// pos must be in [0, addr.BitLen()).
func Bit(addr netip.Addr, pos int) uint8 {
	b := addr.AsSlice()
	byteIdx := pos / 8
	bitIdx := 7 - uint(pos%8)
	return (b[byteIdx] >> bitIdx) & 1
}
