package routetable

// Family identifies an address family. The store keeps one radix tree per
// family; the two trees never share nodes or entries.
type Family uint8

const (
	// V4 is the IPv4 address family, 32-bit keys.
	V4 Family = iota
	// V6 is the IPv6 address family, 128-bit keys.
	V6
)

// MaxPrefixLen returns the widest valid prefix length for the family.
func (f Family) MaxPrefixLen() int {
	if f == V6 {
		return 128
	}
	return 32
}

func (f Family) String() string {
	if f == V6 {
		return "v6"
	}
	return "v4"
}
