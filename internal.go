package dn

/*
internal.go binds frequently used standard library functions to short
package-level vars, in the manner of the upstream dirsyn lineage this
package descended from (aliasing strings/strconv/unicode primitives
rather than spelling out the package-qualified call at every site).
*/

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	itoa     func(int) string                      = strconv.Itoa
	atoi     func(string) (int, error)              = strconv.Atoi
	puint    func(string, int, int) (uint64, error) = strconv.ParseUint
	trimS    func(string) string                    = strings.TrimSpace
	trimL    func(string, string) string             = strings.TrimLeft
	trimR    func(string, string) string             = strings.TrimRight
	trim     func(string, string) string             = strings.Trim
	trimPfx  func(string, string) string             = strings.TrimPrefix
	trimSfx  func(string, string) string             = strings.TrimSuffix
	hasPfx   func(string, string) bool               = strings.HasPrefix
	hasSfx   func(string, string) bool               = strings.HasSuffix
	cntns    func(string, string) bool               = strings.Contains
	eqf      func(string, string) bool               = strings.EqualFold
	join     func([]string, string) string           = strings.Join
	split    func(string, string) []string           = strings.Split
	splitN   func(string, string, int) []string      = strings.SplitN
	stridx   func(string, string) int                = strings.Index
	lstridx  func(string, string) int                = strings.LastIndex
	repAll   func(string, string, string) string     = strings.ReplaceAll
	lc       func(string) string                     = strings.ToLower
	uc       func(string) string                     = strings.ToUpper
	isSpace  func(rune) bool                         = unicode.IsSpace
	runeLen  func(rune) int                          = utf8.RuneLen
	utf8OK   func(string) bool                       = utf8.ValidString
)

func newStrBuilder() strings.Builder {
	return strings.Builder{}
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isUAlpha(r rune) bool { return 'A' <= r && r <= 'Z' }

func isLAlpha(r rune) bool { return 'a' <= r && r <= 'z' }

func isAlpha(r rune) bool { return isUAlpha(r) || isLAlpha(r) }

func isAlnum(r rune) bool { return isAlpha(r) || isDigit(r) }

func isHex(r rune) bool {
	return isDigit(r) || ('A' <= r && r <= 'F') || ('a' <= r && r <= 'f')
}

// isDescr reports whether x is a valid RFC 4512 "descr": a leading
// alpha followed by any number of alphas, digits or hyphens.
func isDescr(x string) bool {
	if len(x) == 0 || !isAlpha(rune(x[0])) {
		return false
	}
	for i := 1; i < len(x); i++ {
		ch := rune(x[i])
		if !isAlnum(ch) && ch != '-' {
			return false
		}
	}
	return true
}

// isNumericOID reports whether x is a valid RFC 4512 "numericoid":
// dot-separated digit groups, no leading zeroes in multi-digit groups.
func isNumericOID(x string) bool {
	if len(x) == 0 {
		return false
	}
	groups := split(x, ".")
	if len(groups) < 2 {
		return false
	}
	for _, g := range groups {
		if len(g) == 0 {
			return false
		}
		if len(g) > 1 && g[0] == '0' {
			return false
		}
		for _, c := range g {
			if !isDigit(c) {
				return false
			}
		}
	}
	return true
}

// percentDecode decodes percent-encoded octets in s, as used by RFC 4516
// URL components before they are handed to the DN, attribute-list and
// filter parsers.
func percentDecode(s string) (string, error) {
	out := newStrBuilder()
	for i := 0; i < len(s); {
		if s[i] == '%' {
			if i+2 >= len(s) {
				return "", newError(KindInvalidUrl, i, "incomplete percent-encoding sequence")
			}
			n, err := puint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", newError(KindInvalidUrl, i, "invalid percent-encoding: "+s[i+1:i+3])
			}
			out.WriteByte(byte(n))
			i += 3
		} else {
			out.WriteByte(s[i])
			i++
		}
	}
	return out.String(), nil
}

// stripBoundarySpaces trims leading/trailing unescaped spaces from a raw
// DN type/value substring, but restores a trailing space that was
// actually an escaped "\ " (the escape survives the trim; decodeString
// in the upstream lineage applies the same rule).
func stripBoundarySpaces(raw string) string {
	trimmed := trim(raw, " ")
	if len(trimmed) > 0 && trimmed[len(trimmed)-1] == '\\' &&
		len(raw) > 0 && raw[len(raw)-1] == ' ' {
		trimmed += " "
	}
	return trimmed
}

func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range split(s, sep) {
		if t := trimS(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
