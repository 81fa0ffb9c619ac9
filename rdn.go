package dn

/*
rdn.go implements RDN (component C5): an unordered, duplicate-free set of
AVAs sharing one position in a DN, plus the name/escaped/normalized forms
built from it (§4.5).

Grounded on the upstream dirsyn lineage's dn.go RelativeDistinguishedName
(a plain []*AttributeTypeAndValue slice, joined with "+" in String() and
compared position-by-position in hasAllAttributes/hasAllAttributesFold).
That slice-of-pointers shape is kept rather than reaching for
JesseCoretta/go-stackage: nothing in the full retrieval pool ever imports
or calls go-stackage (the upstream lineage lists it only as an indirect,
unused go.mod entry, and references it solely in stale doc comments on
unrelated ACI types), so there is no grounded call surface to build a
real usage on — see DESIGN.md.
*/

// RDN is a duplicate-free, order-preserving collection of AVAs occupying
// one position in a DN's name path.
type RDN struct {
	name  string // exact user-supplied substring for this RDN
	avas  []*AVA // user order, as supplied
	index map[string]int
}

// NewRDN builds an RDN from one or more AVAs, rejecting a duplicate
// (normalized type, normalized value) pair per §3's uniqueness invariant.
func NewRDN(avas ...*AVA) (*RDN, error) {
	if len(avas) == 0 {
		return nil, newError(KindEmptyRdn, -1, "RDN requires at least one AVA")
	}
	r := &RDN{index: make(map[string]int, len(avas))}
	parts := make([]string, 0, len(avas))
	for _, a := range avas {
		key := a.identityKey()
		if _, dup := r.index[key]; dup {
			return nil, newError(KindDuplicateAva, -1, "duplicate attribute "+a.NormalizedType()+" in RDN")
		}
		r.index[key] = len(r.avas)
		r.avas = append(r.avas, a)
		parts = append(parts, a.Name())
	}
	r.name = join(parts, "+")
	return r, nil
}

// Len returns the number of AVAs in the RDN (>1 for a multi-valued RDN).
func (r *RDN) Len() int { return len(r.avas) }

// AVA returns the i'th AVA in user-supplied order.
func (r *RDN) AVA(i int) *AVA { return r.avas[i] }

// AVAs returns the RDN's AVAs in user-supplied order. The returned slice
// is owned by the caller; it does not alias the RDN's internal state.
func (r *RDN) AVAs() []*AVA {
	out := make([]*AVA, len(r.avas))
	copy(out, r.avas)
	return out
}

// Name returns the exact user-supplied substring, AVAs joined by '+' in
// their original order.
func (r *RDN) Name() string { return r.name }

// Escaped renders the RDN with minimal RFC 4514 escaping, AVAs joined by
// '+' and sorted by their escaped "type=value" text, so the parser and
// construction via NewRDN produce the same form.
func (r *RDN) Escaped() string {
	parts := make([]string, len(r.avas))
	for i, a := range r.avas {
		parts[i] = a.Escaped()
	}
	sortCanonical(parts)
	return join(parts, "+")
}

// Normalized renders "type=value" for every AVA, sorted by normalized
// type then normalized value and joined by '+'. Only meaningful once
// every member AVA is schema-bound.
func (r *RDN) Normalized() string {
	sorted := r.sortedAVAs()
	parts := make([]string, len(sorted))
	for i, a := range sorted {
		parts[i] = a.NormalizedName()
	}
	return join(parts, "+")
}

func (r *RDN) sortedAVAs() []*AVA {
	out := r.AVAs()
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Compare(out[j]) > 0; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func sortCanonical(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// HasAttribute reports whether the RDN contains an AVA whose normalized
// type equals lowercased typ. typ is not resolved against a schema, so a
// schema-bound AVA (whose normalized type is its OID) matches only when
// typ is that OID.
func (r *RDN) HasAttribute(typ string) bool {
	t := lc(typ)
	for _, a := range r.avas {
		if a.NormalizedType() == t {
			return true
		}
	}
	return false
}

// Equal implements RDN equality per §4.5: same size, and every AVA in r
// has a matching AVA in other regardless of order (multiset equality),
// using §4.4's AVA equality.
func (r *RDN) Equal(other *RDN) bool {
	if len(r.avas) != len(other.avas) {
		return false
	}
	used := make([]bool, len(other.avas))
	for _, a := range r.avas {
		found := false
		for i, b := range other.avas {
			if used[i] {
				continue
			}
			if a.Equal(b) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Compare implements the RDN total order from §4.6: member AVAs are
// compared pairwise in canonical (sorted) order; a shorter RDN that is a
// prefix of a longer one sorts first.
func (r *RDN) Compare(other *RDN) int {
	a, b := r.sortedAVAs(), other.sortedAVAs()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
