package dn

import "testing"

func TestParseFilter_simple(t *testing.T) {
	tests := []struct {
		raw  string
		kind FilterKind
	}{
		{`(cn=Jesse)`, FilterEquality},
		{`(cn=*)`, FilterPresent},
		{`(cn>=Jesse)`, FilterGreaterOrEqual},
		{`(cn<=Jesse)`, FilterLessOrEqual},
		{`(cn~=Jesse)`, FilterApproxMatch},
		{`(cn=Jes*tta)`, FilterSubstrings},
		{`(cn:caseExactMatch:=Jesse)`, FilterExtensibleMatch},
	}
	for idx, tt := range tests {
		f, err := ParseFilter(tt.raw)
		if err != nil {
			t.Errorf("%s[%d] failed to parse %q: %v", t.Name(), idx, tt.raw, err)
			continue
		}
		if f.Kind() != tt.kind {
			t.Errorf("%s[%d] failed: want kind %s, got %s", t.Name(), idx, tt.kind, f.Kind())
		}
	}
}

func TestParseFilter_andOrNot(t *testing.T) {
	f, err := ParseFilter(`(&(cn=Jesse)(|(sn=Coretta)(!(ou=Contractors))))`)
	if err != nil {
		t.Fatalf("%s: %v", t.Name(), err)
	}
	if f.Kind() != FilterAnd {
		t.Errorf("%s failed: want And, got %s", t.Name(), f.Kind())
	}
	children := f.Children()
	if len(children) != 2 {
		t.Fatalf("%s failed: want 2 conjuncts, got %d", t.Name(), len(children))
	}
	if children[1].Kind() != FilterOr {
		t.Errorf("%s failed: want Or, got %s", t.Name(), children[1].Kind())
	}
	not := children[1].Children()[1]
	if not.Kind() != FilterNot {
		t.Errorf("%s failed: want Not, got %s", t.Name(), not.Kind())
	}
}

func TestParseFilter_substrings(t *testing.T) {
	f, err := ParseFilter(`(cn=Jes*an*tta)`)
	if err != nil {
		t.Fatalf("%s: %v", t.Name(), err)
	}
	sub := f.Substrings()
	if got := sub.Initial.String(); got != "Jes" {
		t.Errorf("%s failed: want initial Jes, got %s", t.Name(), got)
	}
	if got := sub.Final.String(); got != "tta" {
		t.Errorf("%s failed: want final tta, got %s", t.Name(), got)
	}
	if len(sub.Any) != 1 || sub.Any[0].String() != "an" {
		t.Errorf("%s failed: want one any component 'an', got %v", t.Name(), sub.Any)
	}
}

func TestParseFilter_extensibleDN(t *testing.T) {
	f, err := ParseFilter(`(cn:dn:caseExactMatch:=Jesse)`)
	if err != nil {
		t.Fatalf("%s: %v", t.Name(), err)
	}
	if !f.DNAttributes() {
		t.Errorf("%s failed: expected dnAttrs to be set", t.Name())
	}
	if f.MatchingRule() != "caseExactMatch" {
		t.Errorf("%s failed: want caseExactMatch, got %s", t.Name(), f.MatchingRule())
	}
	if f.Attr() != "cn" {
		t.Errorf("%s failed: want attr cn, got %s", t.Name(), f.Attr())
	}
}

func TestParseFilter_nestingTooDeep(t *testing.T) {
	raw := `(cn=Jesse)`
	for i := 0; i < 5; i++ {
		raw = `(&` + raw + `)`
	}
	if _, err := ParseFilterDepth(raw, 3); err == nil {
		t.Errorf("%s failed: expected nesting-depth error", t.Name())
	}
	if _, err := ParseFilterDepth(raw, 10); err != nil {
		t.Errorf("%s failed: unexpected error within depth limit: %v", t.Name(), err)
	}
}

func TestParseFilter_errors(t *testing.T) {
	for idx, raw := range []string{
		``,
		`cn=Jesse`,
		`(cn=Jesse`,
		`(&)`,
		`(cn)`,
		`()`,
	} {
		if _, err := ParseFilter(raw); err == nil {
			t.Errorf("%s[%d] expected error for %q, got none", t.Name(), idx, raw)
		}
	}
}

func TestParseFilter_strictRejectsOperatorWhitespace(t *testing.T) {
	for idx, raw := range []string{
		`(cn =Jesse)`,
		`(cn= Jesse)`,
		`(cn :=Jesse)`,
		`(cn:= Jesse)`,
	} {
		if _, err := ParseFilter(raw); err == nil {
			t.Errorf("%s[%d] expected a strict-mode error for %q, got none", t.Name(), idx, raw)
		}
	}
}

func TestParseFilterRelaxed_toleratesOperatorWhitespace(t *testing.T) {
	for idx, raw := range []struct{ in, attr, val string }{
		{`(cn =Jesse)`, "cn", "Jesse"},
		{`(cn= Jesse)`, "cn", "Jesse"},
		{`(cn = Jesse)`, "cn", "Jesse"},
	} {
		f, err := ParseFilterRelaxed(raw.in)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if f.Attr() != raw.attr || f.Value().String() != raw.val {
			t.Errorf("%s[%d] failed: want attr %q value %q, got attr %q value %q", t.Name(), idx, raw.attr, raw.val, f.Attr(), f.Value().String())
		}
	}
}

func TestFilter_StringRoundTrip(t *testing.T) {
	for idx, raw := range []string{
		`(cn=Jesse)`,
		`(cn=*)`,
		`(&(cn=Jesse)(sn=Coretta))`,
	} {
		f, err := ParseFilter(raw)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if got := f.String(); got != raw {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, raw, got)
		}
	}
}
