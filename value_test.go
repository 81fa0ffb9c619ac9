package dn

import "testing"

func TestValue_TextAndBinary(t *testing.T) {
	tv := TextValue("hello")
	if tv.IsBinary() {
		t.Errorf("%s failed: TextValue reported as binary", t.Name())
	}
	if tv.String() != "hello" {
		t.Errorf("%s failed: want hello, got %s", t.Name(), tv.String())
	}

	bv := BinaryValue([]byte{0x01, 0x02, 0x03})
	if !bv.IsBinary() {
		t.Errorf("%s failed: BinaryValue not reported as binary", t.Name())
	}
	if len(bv.Bytes()) != 3 {
		t.Errorf("%s failed: want 3 bytes, got %d", t.Name(), len(bv.Bytes()))
	}
}

func TestValue_BinaryValue_defensiveCopy(t *testing.T) {
	src := []byte{1, 2, 3}
	bv := BinaryValue(src)
	src[0] = 0xff
	if bv.Bytes()[0] == 0xff {
		t.Errorf("%s failed: BinaryValue must copy its input", t.Name())
	}
}

func TestValue_Equal(t *testing.T) {
	a := TextValue("abc")
	b := BinaryValue([]byte("abc"))
	if !a.Equal(b) {
		t.Errorf("%s failed: Equal must compare byte-exact regardless of kind", t.Name())
	}
	if a.Equal(TextValue("abd")) {
		t.Errorf("%s failed: unequal values compared equal", t.Name())
	}
}

func TestValue_IsZero(t *testing.T) {
	var v Value
	if !v.IsZero() {
		t.Errorf("%s failed: zero Value should report IsZero", t.Name())
	}
	if TextValue("x").IsZero() {
		t.Errorf("%s failed: non-empty Value reported as zero", t.Name())
	}
}
