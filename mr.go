package dn

/*
mr.go defines MatchingRule, the closed enum StringPrep dispatches on.
Grounded on the upstream dirsyn lineage's mr.go (which sketches, in
commented-out form, per-matching-rule comparison closures for
octetStringMatch/bitStringMatch/booleanMatch); this package replaces
that sketch with the small, fixed dispatch table §9 of the specification
calls for: "a small closed enum, not dynamic lookup, because the set is
fixed by the LDAP specification."
*/

// MatchingRule identifies the canonicalization/comparison family bound
// to an attribute type, as resolved by a SchemaView.
type MatchingRule uint8

const (
	// MatchingRuleUnknown canonicalizes as trim + internal-whitespace
	// collapse, case preserved (§4.2's policy for unknown HR syntaxes).
	MatchingRuleUnknown MatchingRule = iota
	MatchingRuleCaseIgnore
	MatchingRuleCaseExact
	MatchingRuleNumericString
	MatchingRuleDistinguishedName
	MatchingRuleOctetString
	MatchingRuleObjectIdentifier
)

var matchingRuleOIDs = map[string]MatchingRule{
	"2.5.13.2":  MatchingRuleCaseIgnore,       // caseIgnoreMatch
	"2.5.13.5":  MatchingRuleCaseExact,        // caseExactMatch
	"2.5.13.8":  MatchingRuleNumericString,    // numericStringMatch
	"2.5.13.1":  MatchingRuleDistinguishedName, // distinguishedNameMatch
	"2.5.13.17": MatchingRuleOctetString,      // octetStringMatch
	"2.5.13.0":  MatchingRuleObjectIdentifier, // objectIdentifierMatch
}

var matchingRuleNames = map[string]MatchingRule{
	"caseignorematch":        MatchingRuleCaseIgnore,
	"caseexactmatch":         MatchingRuleCaseExact,
	"numericstringmatch":     MatchingRuleNumericString,
	"distinguishednamematch": MatchingRuleDistinguishedName,
	"octetstringmatch":       MatchingRuleOctetString,
	"objectidentifiermatch":  MatchingRuleObjectIdentifier,
}

// ResolveMatchingRule maps a matching rule's numeric OID or descriptive
// name to its MatchingRule enum member, falling back to
// MatchingRuleCaseIgnore (the default family for most string syntaxes)
// when the identifier is unrecognized, per §4.2.
func ResolveMatchingRule(id string) MatchingRule {
	if mr, ok := matchingRuleOIDs[id]; ok {
		return mr
	}
	if mr, ok := matchingRuleNames[lc(id)]; ok {
		return mr
	}
	return MatchingRuleCaseIgnore
}

func (m MatchingRule) String() string {
	switch m {
	case MatchingRuleCaseIgnore:
		return "caseIgnoreMatch"
	case MatchingRuleCaseExact:
		return "caseExactMatch"
	case MatchingRuleNumericString:
		return "numericStringMatch"
	case MatchingRuleDistinguishedName:
		return "distinguishedNameMatch"
	case MatchingRuleOctetString:
		return "octetStringMatch"
	case MatchingRuleObjectIdentifier:
		return "objectIdentifierMatch"
	default:
		return "unknown"
	}
}
