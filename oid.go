package dn

/*
oid.go handles the "oid = descr / numericoid" production shared by
attribute types, matching rule identifiers and extensible-match rule
identifiers (§1.4 of RFC 4512). Numeric OID parsing is sourced from
JesseCoretta/go-objectid, exactly as the upstream dirsyn lineage's oid.go
does.
*/

import "github.com/JesseCoretta/go-objectid"

// NumericOID wraps a validated RFC 4512 "numericoid" value.
type NumericOID struct {
	*objectid.DotNotation
}

// ParseNumericOID validates raw as a numeric OID, with an optional
// leading "OID." / "oid." prefix stripped first (§4.6's type lexical
// rules: "Optional case-insensitive OID. / oid. prefix before a
// numericoid").
func ParseNumericOID(raw string) (NumericOID, error) {
	raw = stripOIDPrefix(raw)
	dn, err := objectid.NewDotNotation(raw)
	if err != nil {
		return NumericOID{}, newError(KindInvalidType, -1, "invalid numeric OID: "+err.Error())
	}
	return NumericOID{dn}, nil
}

func stripOIDPrefix(raw string) string {
	if len(raw) > 4 && eqf(raw[:4], "oid.") {
		return raw[4:]
	}
	return raw
}

// IsDescr reports whether raw is a well-formed RFC 4512 "descr".
func IsDescr(raw string) bool { return isDescr(raw) }

// IsOID reports whether raw is a valid attribute type identifier: either
// a descr or a numeric OID (optionally "OID."-prefixed).
func IsOID(raw string) bool {
	stripped := stripOIDPrefix(raw)
	if isNumericOID(stripped) {
		return true
	}
	return isDescr(raw)
}
