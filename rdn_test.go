package dn

import "testing"

func TestNewRDN_single(t *testing.T) {
	a, _ := NewAVA("cn", TextValue("Jesse"))
	r, err := NewRDN(a)
	if err != nil {
		t.Fatalf("%s: %v", t.Name(), err)
	}
	if r.Len() != 1 {
		t.Errorf("%s failed: want 1 AVA, got %d", t.Name(), r.Len())
	}
	if got, want := r.Escaped(), "cn=Jesse"; got != want {
		t.Errorf("%s failed: want %q, got %q", t.Name(), want, got)
	}
}

func TestNewRDN_multivalued(t *testing.T) {
	a1, _ := NewAVA("cn", TextValue("Jesse"))
	a2, _ := NewAVA("ou", TextValue("People"))
	r, err := NewRDN(a1, a2)
	if err != nil {
		t.Fatalf("%s: %v", t.Name(), err)
	}
	if r.Len() != 2 {
		t.Errorf("%s failed: want 2 AVAs, got %d", t.Name(), r.Len())
	}
}

func TestNewRDN_duplicate(t *testing.T) {
	a1, _ := NewAVA("cn", TextValue("Jesse"))
	a2, _ := NewAVA("CN", TextValue("Jesse"))
	if _, err := NewRDN(a1, a2); err == nil {
		t.Errorf("%s failed: expected duplicate-AVA error", t.Name())
	}
}

func TestNewRDN_empty(t *testing.T) {
	if _, err := NewRDN(); err == nil {
		t.Errorf("%s failed: expected error constructing an empty RDN", t.Name())
	}
}

func TestRDN_Equal(t *testing.T) {
	a1, _ := NewAVA("cn", TextValue("Jesse"))
	a2, _ := NewAVA("ou", TextValue("People"))
	r1, _ := NewRDN(a1, a2)
	r2, _ := NewRDN(a2, a1) // reversed order, still equal as a multiset

	if !r1.Equal(r2) {
		t.Errorf("%s failed: RDN equality should be order-independent", t.Name())
	}
}

func TestRDN_Compare(t *testing.T) {
	ra1, _ := NewAVA("cn", TextValue("a"))
	rb1, _ := NewAVA("cn", TextValue("b"))
	r1, _ := NewRDN(ra1)
	r2, _ := NewRDN(rb1)

	if r1.Compare(r2) >= 0 {
		t.Errorf("%s failed: expected r1 < r2", t.Name())
	}
}

func TestRDN_HasAttribute(t *testing.T) {
	a, _ := NewAVA("cn", TextValue("Jesse"))
	r, _ := NewRDN(a)
	if !r.HasAttribute("CN") {
		t.Errorf("%s failed: expected case-insensitive attribute match", t.Name())
	}
	if r.HasAttribute("sn") {
		t.Errorf("%s failed: unexpected attribute match", t.Name())
	}
}
