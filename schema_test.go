package dn

import "testing"

func TestStaticSchema(t *testing.T) {
	s := NewStaticSchema()
	if err := s.Define("2.5.4.3", true, MatchingRuleCaseIgnore, "cn", "commonName"); err != nil {
		t.Fatalf("%s: Define failed: %v", t.Name(), err)
	}

	for idx, name := range []string{"cn", "CN", "commonName", "2.5.4.3"} {
		info, ok := s.Lookup(name)
		if !ok {
			t.Errorf("%s[%d] failed: lookup of %q missed", t.Name(), idx, name)
			continue
		}
		if info.OID != "2.5.4.3" {
			t.Errorf("%s[%d] failed: want OID 2.5.4.3, got %s", t.Name(), idx, info.OID)
		}
		if info.EqualityMR != MatchingRuleCaseIgnore {
			t.Errorf("%s[%d] failed: want caseIgnoreMatch, got %s", t.Name(), idx, info.EqualityMR)
		}
	}

	if _, ok := s.Lookup("sn"); ok {
		t.Errorf("%s failed: unregistered type unexpectedly resolved", t.Name())
	}
}

func TestStaticSchema_OIDOf(t *testing.T) {
	s := NewStaticSchema()
	_ = s.Define("2.5.4.4", false, MatchingRuleCaseExact, "sn")

	oid, ok := s.OIDOf("sn")
	if !ok || oid != "2.5.4.4" {
		t.Errorf("%s failed: want 2.5.4.4, got %s (ok=%v)", t.Name(), oid, ok)
	}

	oid, ok = s.OIDOf("2.5.4.4")
	if !ok || oid != "2.5.4.4" {
		t.Errorf("%s failed: numeric OID pass-through broken", t.Name())
	}

	if _, ok := s.OIDOf("unknown"); ok {
		t.Errorf("%s failed: unknown name resolved an OID", t.Name())
	}
}

func TestStaticSchema_Define_badOID(t *testing.T) {
	s := NewStaticSchema()
	if err := s.Define("not-an-oid", true, MatchingRuleCaseIgnore, "x"); err == nil {
		t.Errorf("%s failed: expected error for malformed OID", t.Name())
	}
}

func TestNoSchema(t *testing.T) {
	var s NoSchema
	if _, ok := s.Lookup("cn"); ok {
		t.Errorf("%s failed: NoSchema must never resolve a lookup", t.Name())
	}
	if _, ok := s.OIDOf("cn"); ok {
		t.Errorf("%s failed: NoSchema must never resolve an OID", t.Name())
	}
}

func TestValidateNumericOID(t *testing.T) {
	if err := ValidateNumericOID("2.5.4.3"); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	}
	if err := ValidateNumericOID("cn"); err == nil {
		t.Errorf("%s failed: expected error for non-numeric OID", t.Name())
	}
}
