package dn

import "testing"

func TestEscapeDNValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`Jesse Coretta`, `Jesse Coretta`},
		{` leading`, `\ leading`},
		{`trailing `, `trailing\ `},
		{`#leading`, `\#leading`},
		{`a,b`, `a\,b`},
		{`a+b`, `a\+b`},
		{"a\x00b", `a\00b`},
	}
	for idx, tt := range tests {
		if got := EscapeDNValue(tt.in); got != tt.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tt.want, got)
		}
	}
}

func TestUnescapeDNValue_roundTrip(t *testing.T) {
	for idx, raw := range []string{
		`Jesse Coretta`,
		` leading`,
		`trailing `,
		`#leading`,
		`a,b`,
		`a+b`,
	} {
		escaped := EscapeDNValue(raw)
		got, err := UnescapeDNValue(escaped, 0)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if string(got) != raw {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, raw, got)
		}
	}
}

func TestUnescapeDNValue_errors(t *testing.T) {
	for idx, raw := range []string{`\`, `\g1`, `\1`} {
		if _, err := UnescapeDNValue(raw, 0); err == nil {
			t.Errorf("%s[%d] expected error for %q, got none", t.Name(), idx, raw)
		}
	}
}

func TestHexString_roundTrip(t *testing.T) {
	b := []byte{0x48, 0x65, 0x6c, 0x6c, 0x6f}
	enc := EncodeHexString(b)
	if enc != "#48656c6c6f" {
		t.Errorf("%s failed: want #48656c6c6f, got %s", t.Name(), enc)
	}
	dec, err := DecodeHexString(enc[1:], 0)
	if err != nil {
		t.Fatalf("%s: %v", t.Name(), err)
	}
	if string(dec) != string(b) {
		t.Errorf("%s failed: round trip mismatch", t.Name())
	}
}

func TestEscapeBinaryValue(t *testing.T) {
	b := []byte{0x00, 0x10, 0xA0, 0xAA, 0xFF}
	if got, want := EscapeBinaryValue(b), `\00\10\A0\AA\FF`; got != want {
		t.Errorf("%s failed: want %q, got %q", t.Name(), want, got)
	}
}

func TestDecodeHexString_errors(t *testing.T) {
	for idx, raw := range []string{`abc`, `zz`} {
		if _, err := DecodeHexString(raw, 0); err == nil {
			t.Errorf("%s[%d] expected error for %q, got none", t.Name(), idx, raw)
		}
	}
}

func TestEscapeFilterValue(t *testing.T) {
	tests := []struct{ in, want string }{
		{`a*b`, `a\2Ab`},
		{`a(b)`, `a\28b\29`},
		{`a\b`, `a\5Cb`},
		{`plain`, `plain`},
	}
	for idx, tt := range tests {
		if got := EscapeFilterValue(tt.in); got != tt.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tt.want, got)
		}
	}
}

func TestUnescapeFilterValue_roundTrip(t *testing.T) {
	for idx, raw := range []string{`a*b`, `a(b)`, `a\b`, `plain`} {
		escaped := EscapeFilterValue(raw)
		got, err := UnescapeFilterValue(escaped, 0)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if string(got) != raw {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, raw, got)
		}
	}
}
