package dn

/*
dn.go implements DN (component C6): an ordered, leaf-first sequence of
RDNs, plus the ancestor/descendant arithmetic and total ordering of §4.6.

Note that portions of this file's escaping and unescaping logic are
derived from the most excellent go-ldap (v3) package, by way of the
upstream dirsyn lineage's dn.go.

From https://github.com/go-ldap/ldap/blob/master/LICENSE:

The MIT License (MIT)

Copyright (c) 2011-2015 Michael Mitton (mmitton@gmail.com)
Portions copyright (c) 2015-2016 go-ldap Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// DN is an immutable, leaf-first ordered sequence of RDNs: RDN(0) is the
// most specific (leaf) component, RDN(Len()-1) the most general (root).
type DN struct {
	name string // exact user-supplied substring, leaf-first
	rdns []*RDN
}

// NewDN builds a DN directly from an ordered, leaf-first list of RDNs,
// without going through the parser.
func NewDN(rdns ...*RDN) *DN {
	parts := make([]string, len(rdns))
	for i, r := range rdns {
		parts[i] = r.Name()
	}
	return &DN{name: join(parts, ","), rdns: rdns}
}

// IsZero reports whether d is the nil or empty (root) DN.
func (d *DN) IsZero() bool { return d == nil || len(d.rdns) == 0 }

// Len returns the number of RDNs in the DN.
func (d *DN) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rdns)
}

// RDN returns the i'th RDN, leaf-first (RDN(0) is the leaf).
func (d *DN) RDN(i int) *RDN { return d.rdns[i] }

// RDNs returns the DN's RDNs, leaf-first. The returned slice does not
// alias the DN's internal state.
func (d *DN) RDNs() []*RDN {
	out := make([]*RDN, len(d.rdns))
	copy(out, d.rdns)
	return out
}

// Name returns the exact user-supplied substring that produced d, or the
// '+'/','-joined reconstruction of its RDN names when d was built via
// NewDN/Add rather than parsed.
func (d *DN) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Escaped renders d with minimal RFC 4514 escaping, leaf-first, joined
// by ','.
func (d *DN) Escaped() string {
	if d.IsZero() {
		return ""
	}
	parts := make([]string, len(d.rdns))
	for i, r := range d.rdns {
		parts[i] = r.Escaped()
	}
	return join(parts, ",")
}

// Normalized renders d in fully schema-normalized form, leaf-first,
// joined by ','. Only meaningful once every member AVA is schema-bound.
func (d *DN) Normalized() string {
	if d.IsZero() {
		return ""
	}
	parts := make([]string, len(d.rdns))
	for i, r := range d.rdns {
		parts[i] = r.Normalized()
	}
	return join(parts, ",")
}

// Parent returns d with its leaf RDN removed, or the zero DN if d has
// zero or one RDN.
func (d *DN) Parent() *DN {
	if d.Len() <= 1 {
		return &DN{}
	}
	return NewDN(d.rdns[1:]...)
}

// Add prepends rdn as the new leaf, returning a new DN; d is unmodified.
func (d *DN) Add(rdn *RDN) *DN {
	next := make([]*RDN, 0, d.Len()+1)
	next = append(next, rdn)
	next = append(next, d.RDNs()...)
	return NewDN(next...)
}

// Equal implements DN equality per §4.6: same number of RDNs, and
// corresponding RDNs (by position, leaf-first) are equal per §4.5.
func (d *DN) Equal(other *DN) bool {
	if d.Len() != other.Len() {
		return false
	}
	for i := 0; i < d.Len(); i++ {
		if !d.rdns[i].Equal(other.rdns[i]) {
			return false
		}
	}
	return true
}

// Compare implements the total DN order from §4.6: root-first
// lexicographic comparison of the RDN sequence, i.e. RDNs are compared
// starting from the most general (root) end.
func (d *DN) Compare(other *DN) int {
	an, bn := d.Len(), other.Len()
	for i := 1; i <= an && i <= bn; i++ {
		a, b := d.rdns[an-i], other.rdns[bn-i]
		if c := a.Compare(b); c != 0 {
			return c
		}
	}
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	}
	return 0
}

// IsDescendantOf reports whether d is a (strict or non-strict) descendant
// of ancestor: ancestor's RDN sequence, root-first, is a suffix of d's.
func (d *DN) IsDescendantOf(ancestor *DN) bool {
	if ancestor.Len() > d.Len() {
		return false
	}
	for i := 1; i <= ancestor.Len(); i++ {
		if !d.rdns[d.Len()-i].Equal(ancestor.rdns[ancestor.Len()-i]) {
			return false
		}
	}
	return true
}

// IsAncestorOf reports whether d is a (strict or non-strict) ancestor of
// descendant.
func (d *DN) IsAncestorOf(descendant *DN) bool {
	return descendant.IsDescendantOf(d)
}

// StripSuffix removes suffix from the root end of d, returning the
// remaining leaf-first RDNs as a new DN. It fails with KindNotASuffix if
// suffix is not actually a suffix of d.
func (d *DN) StripSuffix(suffix *DN) (*DN, error) {
	if !d.IsDescendantOf(suffix) {
		return nil, newError(KindNotASuffix, -1, "given DN is not a suffix of the receiver")
	}
	return NewDN(d.rdns[:d.Len()-suffix.Len()]...), nil
}
