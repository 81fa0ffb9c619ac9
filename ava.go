package dn

/*
ava.go implements AVA (component C4): the "type = value" atom, carrying
the three co-maintained textual forms described in §3 and §9 of the
specification ("Multiple co-maintained textual forms replace a source
pattern that computed toString and getNormName on demand with caching").

Grounded on the upstream dirsyn lineage's dn.go AttributeTypeAndValue
(encodeString/decodeString, BER hex-string decoding via go-asn1-ber),
generalized to retain the user-supplied spelling alongside the escaped
and schema-normalized forms.
*/

import (
	"bytes"

	ber "github.com/go-asn1-ber/asn1-ber"
)

// AVA is an immutable attribute-value assertion: a single "type=value"
// binding inside an RDN.
type AVA struct {
	name  string // exact user-supplied "type=value" substring
	typ   string // user-supplied type, trimmed, case preserved
	value Value

	bound    bool
	info     AttributeInfo
	normType string
	normVal  string
}

// NewAVA constructs a schema-less AVA directly from a type and value,
// without going through the parser. typ must be non-empty after
// trimming (§3's invariant); an empty type is a parse error.
func NewAVA(typ string, value Value) (*AVA, error) {
	t := trimS(typ)
	if t == "" {
		return nil, newError(KindInvalidType, -1, "empty attribute type")
	}
	rendered := EscapeDNType(t) + "=" + renderValue(value)
	return &AVA{name: rendered, typ: t, value: value}, nil
}

// NewAVASchemaAware resolves typ against view and validates value against
// the resolved syntax before constructing a schema-bound AVA. An unknown
// type is not an error: the AVA falls back to schema-less semantics with
// type lowercased and the value treated as Text, per §4.1.
func NewAVASchemaAware(view SchemaView, typ string, value Value) (*AVA, error) {
	t := trimS(typ)
	if t == "" {
		return nil, newError(KindInvalidType, -1, "empty attribute type")
	}

	info, ok := view.Lookup(t)
	if !ok {
		a, err := NewAVA(t, value)
		if err != nil {
			return nil, err
		}
		a.normType = lc(t)
		a.normVal = collapseWhitespace(value.String())
		return a, nil
	}

	if info.SyntaxHR && value.IsBinary() {
		return nil, newError(KindInvalidValue, -1, "binary value supplied for human-readable attribute "+t)
	}

	// A binary value whose bytes are themselves a BER TLV (leading
	// universal SEQUENCE tag) is unwrapped before StringPrep, mirroring
	// the upstream lineage's decodeEncodedString path for syntaxes that
	// carry BER-encoded content rather than a literal octet string.
	if !info.SyntaxHR && value.IsBinary() {
		raw := value.Bytes()
		if len(raw) > 1 && raw[0] == 0x30 {
			if unwrapped, berr := decodeBERValue(raw); berr == nil {
				value = BinaryValue(unwrapped)
			}
		}
	}

	normVal, err := StringPrep(info.EqualityMR, value.String())
	if err != nil {
		return nil, err
	}
	if info.EqualityMR == MatchingRuleObjectIdentifier {
		if oid, ok := view.OIDOf(normVal); ok {
			normVal = oid
		}
	}

	a, err := NewAVA(t, value)
	if err != nil {
		return nil, err
	}
	a.bound = true
	a.info = info
	a.normType = info.OID
	a.normVal = normVal
	return a, nil
}

// decodeBERValue unwraps a BER TLV through go-asn1-ber, mirroring the
// upstream lineage's decodeEncodedString, for attribute types whose
// schema-declared syntax is itself BER-encoded (e.g. a binary
// certificate-like syntax) rather than a literal octet string.
func decodeBERValue(raw []byte) ([]byte, error) {
	packet, err := ber.DecodePacketErr(raw)
	if err != nil {
		return nil, newError(KindInvalidValue, -1, "failed to decode BER encoding: "+err.Error())
	}
	var buf bytes.Buffer
	buf.WriteString(packet.Data.String())
	return buf.Bytes(), nil
}

func renderValue(v Value) string {
	if v.IsBinary() {
		return EscapeBinaryValue(v.Bytes())
	}
	return EscapeDNValue(v.String())
}

// Type returns the user-supplied attribute type, case and spacing as given.
func (a *AVA) Type() string { return a.typ }

// Value returns the parsed value (string or bytes).
func (a *AVA) Value() Value { return a.value }

// NormalizedType returns the canonical OID when schema-bound, or the
// lowercased type otherwise.
func (a *AVA) NormalizedType() string {
	if a.normType != "" {
		return a.normType
	}
	return lc(a.typ)
}

// NormalizedValue returns the StringPrep-canonical value. It is only
// meaningful (and only ever populated) once an AVA has been constructed
// in schema-aware mode or via parsing against a SchemaView.
func (a *AVA) NormalizedValue() string { return a.normVal }

// Name returns the exact user-supplied "type=value" substring when the
// AVA came from DnParser, or its minimally escaped rendering when it was
// built programmatically and no original text exists.
func (a *AVA) Name() string { return a.name }

// setVerbatimName overrides the rendered name with the exact substring
// DnParser read from the input, preserving the caller's original
// spacing, case and escaping rather than a re-escaped reconstruction.
func (a *AVA) setVerbatimName(raw string) { a.name = raw }

// Escaped returns the minimal RFC 4514 rendering: escape normalization
// only, case and internal spaces preserved.
func (a *AVA) Escaped() string {
	return EscapeDNType(a.typ) + "=" + renderValue(a.value)
}

// NormalizedName returns "normalizedType=normalizedValue". Defined only
// when the AVA is schema-bound (§3's invariant: "If bound_type? is set,
// normalized is fully defined and equality-stable").
func (a *AVA) NormalizedName() string {
	return a.NormalizedType() + "=" + a.normVal
}

// IsSchemaBound reports whether this AVA was constructed against a
// resolved attribute type.
func (a *AVA) IsSchemaBound() bool { return a.bound }

// Equal implements §4.4's AVA equality: schema-aware equality compares
// normalized type and StringPrep-normalized value; schema-less equality
// compares case-insensitive type and byte-exact value.
func (a *AVA) Equal(other *AVA) bool {
	if a.bound && other.bound {
		return a.normType == other.normType && a.normVal == other.normVal
	}
	return eqf(a.typ, other.typ) && a.value.Equal(other.value)
}

// Compare implements the total AVA order from §4.6: by normalized type,
// then by normalized value.
func (a *AVA) Compare(other *AVA) int {
	at, bt := a.NormalizedType(), other.NormalizedType()
	if at != bt {
		if at < bt {
			return -1
		}
		return 1
	}
	av, bv := a.comparableValue(), other.comparableValue()
	if av == bv {
		return 0
	}
	if av < bv {
		return -1
	}
	return 1
}

func (a *AVA) comparableValue() string {
	if a.bound {
		return a.normVal
	}
	return a.value.String()
}

// identityKey is the uniqueness key RDN construction checks for
// duplicates: normalized type + normalized value under whatever
// semantics (schema-aware or schema-less) currently apply.
func (a *AVA) identityKey() string {
	return a.NormalizedType() + "\x00" + a.comparableValue()
}
