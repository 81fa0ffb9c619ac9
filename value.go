package dn

/*
value.go implements Value, the sum type backing every AVA: a value is
either Text (interpreted as UTF-8) or Binary (an opaque octet sequence),
per §3 of the specification this package implements: a value is Text if
and only if its bound attribute's syntax is flagged human-readable; an
unbound value defaults to Text/UTF-8 but remains accessible as raw bytes.
*/

// Value holds an AVA's parsed content as either a UTF-8 string or a raw
// octet sequence, never both.
type Value struct {
	text   string
	bytes  []byte
	binary bool
}

// TextValue constructs a human-readable Value.
func TextValue(s string) Value {
	return Value{text: s}
}

// BinaryValue constructs an opaque octet-sequence Value, as produced by
// the RFC 4514 hex-string form (a leading unescaped '#').
func BinaryValue(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{bytes: cp, binary: true}
}

// IsBinary reports whether the value is carried as raw octets.
func (v Value) IsBinary() bool { return v.binary }

// Bytes returns the value's raw byte representation regardless of kind.
func (v Value) Bytes() []byte {
	if v.binary {
		return v.bytes
	}
	return []byte(v.text)
}

// String returns the value's text representation. For a Binary value
// this is the UTF-8 (possibly lossy) decoding of its bytes.
func (v Value) String() string {
	if v.binary {
		return string(v.bytes)
	}
	return v.text
}

// Equal performs byte-exact comparison of two values irrespective of
// their Text/Binary kind (schema-less AVA equality uses this).
func (v Value) Equal(other Value) bool {
	a, b := v.Bytes(), other.Bytes()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (v Value) IsZero() bool {
	return !v.binary && v.text == "" && v.bytes == nil
}
