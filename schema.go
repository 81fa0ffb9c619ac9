package dn

/*
schema.go implements SchemaView (component C1): the read-only attribute
resolution surface consumed by AVA/RDN/DN normalization. Per §1, the full
schema registry (LDAPSyntaxes, MatchingRules, AttributeTypes,
ObjectClasses, DITContentRules, NameForms, DITStructureRules — all
present in the upstream dirsyn lineage's schema.go) is treated as an
external collaborator; only the resolution subset below is in scope.

Grounded on the upstream dirsyn lineage's schema.go (AttributeTypeDescription
and its SUP/EQUALITY/SYNTAX handling) and oid.go (numeric-OID parsing via
go-objectid), generalized to the minimal consumer interface §4.1 specifies.
*/

import "github.com/JesseCoretta/go-objectid"

// AttributeInfo is everything the core needs to know about a resolved
// attribute type: its canonical numeric OID, whether its syntax is
// human-readable, and the matching rule governing equality.
type AttributeInfo struct {
	OID         string
	SyntaxHR    bool
	EqualityMR  MatchingRule
}

// SchemaView is the read-only lookup surface an external schema registry
// must satisfy. The core never mutates it and treats it as effectively
// immutable (safe for concurrent readers without synchronization, per §5).
type SchemaView interface {
	// Lookup resolves a descriptor or numeric OID to its AttributeInfo.
	// ok is false when the identifier is unknown to the view.
	Lookup(nameOrOID string) (info AttributeInfo, ok bool)

	// OIDOf passes a numeric OID straight through, or resolves a
	// descriptor to its canonical numeric OID. ok is false when the
	// identifier is unknown.
	OIDOf(nameOrOID string) (oid string, ok bool)
}

// NoSchema is the zero-value SchemaView: every lookup misses, so DN/RDN/AVA
// construction proceeds in schema-less mode (§4.1's "absence of a type
// resolves to unknown").
type NoSchema struct{}

func (NoSchema) Lookup(string) (AttributeInfo, bool) { return AttributeInfo{}, false }
func (NoSchema) OIDOf(string) (string, bool)         { return "", false }

// StaticSchema is a simple in-memory SchemaView keyed by lowercased
// descriptor or numeric OID, suitable for tests and small embedders that
// do not need a live registry.
type StaticSchema struct {
	byName map[string]AttributeInfo
	byOID  map[string]AttributeInfo
}

// NewStaticSchema returns an empty StaticSchema; attribute types are
// registered afterwards with Define.
func NewStaticSchema() *StaticSchema {
	return &StaticSchema{
		byName: make(map[string]AttributeInfo),
		byOID:  make(map[string]AttributeInfo),
	}
}

// Define registers an attribute type under oid and any number of
// descriptive names (e.g. "cn"), validating oid as a numeric OID.
func (s *StaticSchema) Define(oid string, syntaxHR bool, eq MatchingRule, names ...string) error {
	if _, err := objectid.NewDotNotation(oid); err != nil {
		return newError(KindInvalidType, -1, "not a numeric OID: "+oid)
	}
	info := AttributeInfo{OID: oid, SyntaxHR: syntaxHR, EqualityMR: eq}
	s.byOID[oid] = info
	for _, n := range names {
		s.byName[lc(n)] = info
	}
	return nil
}

func (s *StaticSchema) Lookup(nameOrOID string) (AttributeInfo, bool) {
	if isNumericOID(nameOrOID) {
		info, ok := s.byOID[nameOrOID]
		return info, ok
	}
	info, ok := s.byName[lc(nameOrOID)]
	return info, ok
}

func (s *StaticSchema) OIDOf(nameOrOID string) (string, bool) {
	if isNumericOID(nameOrOID) {
		if _, ok := s.byOID[nameOrOID]; ok {
			return nameOrOID, true
		}
		return "", false
	}
	info, ok := s.byName[lc(nameOrOID)]
	if !ok {
		return "", false
	}
	return info.OID, true
}

// ValidateNumericOID reports whether x parses as a well-formed RFC 4512
// numeric OID, delegating to go-objectid for the authoritative grammar.
func ValidateNumericOID(x string) error {
	if _, err := objectid.NewDotNotation(x); err != nil {
		return newError(KindInvalidType, -1, "invalid numeric OID "+x+": "+err.Error())
	}
	return nil
}
