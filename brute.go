package routetable

import "net/netip"

// bruteStore is a linear-scan reference implementation used only by tests
// as ground truth to check the radix trie against. Its correctness is easy
// to eyeball; the trie's performance characteristics are not — exactly the
// role the teacher's own brute-force ranger played for cidranger.
type bruteStore struct {
	entries []*RouteEntry
}

func newBruteStore() *bruteStore {
	return &bruteStore{}
}

func (b *bruteStore) insert(entry *RouteEntry) {
	b.entries = append(b.entries, entry)
}

// lookup returns every entry whose prefix contains addr, by brute force
// containment testing against each stored entry's own canonical prefix.
func (b *bruteStore) lookup(addr netip.Addr, fam Family) []*RouteEntry {
	var out []*RouteEntry
	for _, e := range b.entries {
		if e.Family != fam {
			continue
		}
		pfx := netip.MustParsePrefix(e.PrefixStr)
		if pfx.Contains(addr) || pfx.Addr() == addr {
			out = append(out, e)
		}
	}
	return out
}
