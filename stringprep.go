package dn

/*
stringprep.go implements StringPrep (component C2): matching-rule-driven
value canonicalization, consumed by the normalizer to produce the
canonical form used for AVA/RDN/DN equality and ordering (§4.2).

The upstream dirsyn lineage's unicode.go wires only unicode.SimpleFold for
casefolding, which is ASCII-biased and does not perform the NFKC-style
compatibility mapping §4.2 calls for. This package instead uses
golang.org/x/text/unicode/norm and golang.org/x/text/cases — present in
the wider retrieval pool's dependency surface and the idiomatic choice
for exactly this job.
*/

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var caseFolder = cases.Fold()

// StringPrep canonicalizes raw per the canonicalization policy bound to
// mr. It never fails on syntactically valid input; a non-UTF-8 raw
// value fails with KindInvalidValue.
func StringPrep(mr MatchingRule, raw string) (string, error) {
	if !utf8OK(raw) {
		return "", newError(KindInvalidValue, -1, "value is not valid UTF-8")
	}

	switch mr {
	case MatchingRuleCaseIgnore:
		return collapseWhitespace(caseFolder.String(norm.NFKC.String(raw))), nil
	case MatchingRuleCaseExact:
		return collapseWhitespace(norm.NFKC.String(raw)), nil
	case MatchingRuleNumericString:
		return removeAllWhitespace(raw), nil
	case MatchingRuleDistinguishedName:
		d, derr := ParseDN(raw)
		if derr != nil {
			return "", newError(KindInvalidValue, -1, "invalid distinguished name value: "+derr.Error())
		}
		return d.Normalized(), nil
	case MatchingRuleOctetString:
		return raw, nil
	case MatchingRuleObjectIdentifier:
		return raw, nil // resolved to a canonical OID by the caller via SchemaView
	default:
		// Unknown human-readable syntax: trim + collapse, case preserved.
		return collapseWhitespace(raw), nil
	}
}

// collapseWhitespace trims leading/trailing whitespace and condenses
// every internal run of whitespace to a single ASCII space.
func collapseWhitespace(s string) string {
	s = trimS(s)
	b := newStrBuilder()
	lastWasSpace := false
	for _, r := range s {
		if isSpace(r) {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		lastWasSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func removeAllWhitespace(s string) string {
	b := newStrBuilder()
	for _, r := range s {
		if !isSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// foldRune returns the canonical representative of r's simple case-fold
// orbit, matching the upstream lineage's foldRune helper; kept as a
// narrow fallback path for byte-oriented type-name folding where pulling
// in the full x/text pipeline (designed for value content) would be
// overkill.
func foldRune(r rune) rune {
	for {
		r2 := unicode.SimpleFold(r)
		if r2 <= r {
			return r
		}
		r = r2
	}
}

// foldType returns a folded attribute-type string such that
// foldType(x) == foldType(y) iff strings.EqualFold(x, y). Schema-less
// AVA type comparison (AVA.Equal) calls strings.EqualFold directly and
// does not use it.
func foldType(s string) string {
	b := newStrBuilder()
	for _, r := range s {
		if r < 0x80 {
			if 'A' <= r && r <= 'Z' {
				r += 'a' - 'A'
			}
			b.WriteRune(r)
			continue
		}
		b.WriteRune(foldRune(r))
	}
	return b.String()
}
