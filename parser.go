package dn

/*
parser.go implements DnParser (component C7): turning an RFC 4514 string
into a DN. Two entry points share one token builder, per §9's invariant
that "the fast path and the full path produce byte-identical ASTs for
every input the fast path accepts" — fastScanEligible decides, on a
single pass, whether the input can skip the unescape/hex-decode calls
entirely; every other step (boundary-space trimming, delimiter handling,
RDN assembly) runs through the same buildAVA/buildRDN code regardless of
which path chose to get there.

Grounded on the upstream dirsyn lineage's dn.go parseDN (the
character-at-a-time delimiter scan with an escaping flag and a
startPos/appendAttributesToRDN closure), generalized to RFC 4514's full
grammar: hex-string ('#') values, the OID./oid. type prefix, and
multi-valued RDNs validated for duplicate AVAs as they are built.
*/

// ParseDN parses s as an RFC 4514 distinguished name without schema
// awareness. An empty or all-whitespace s yields the zero (root) DN.
func ParseDN(s string) (*DN, error) {
	return ParseDNSchema(NoSchema{}, s)
}

// ParseDNSchema parses s against view, binding every AVA's type (and,
// where view resolves it, normalizing its value) as it goes.
func ParseDNSchema(view SchemaView, s string) (*DN, error) {
	if trimS(s) == "" {
		return &DN{}, nil
	}

	fast := fastScanEligible(s)

	var (
		rdnAvas     []*AVA
		rdns        []*RDN
		typeBuf     string
		haveType    bool
		startPos    int
		typeStart   int
		escaping    bool
		lastDNDelim byte
	)

	flushValue := func(end int, terminator byte) error {
		rawVal := s[startPos:end]
		verbatim := s[typeStart:end]
		val, err := buildValue(rawVal, startPos, fast)
		if err != nil {
			return err
		}
		ava, err := buildAVA(view, typeBuf, val)
		if err != nil {
			return err
		}
		ava.setVerbatimName(verbatim)
		rdnAvas = append(rdnAvas, ava)
		typeBuf = ""
		haveType = false
		startPos = end + 1
		typeStart = startPos
		if terminator == ',' || terminator == ';' {
			rdn, err := NewRDN(rdnAvas...)
			if err != nil {
				return err
			}
			rdns = append(rdns, rdn)
			rdnAvas = nil
		}
		return nil
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaping:
			escaping = false
		case c == '\\':
			escaping = true
		case c == '=' && !haveType:
			raw := stripBoundarySpaces(s[startPos:i])
			typ, err := unescapeType(raw, startPos, fast)
			if err != nil {
				return nil, err
			}
			if !IsOID(typ) {
				return nil, newError(KindInvalidType, startPos, "invalid attribute type: "+typ)
			}
			typeBuf = typ
			haveType = true
			startPos = i + 1
		case isDNDelim(c):
			if !haveType {
				return nil, newError(KindInvalidType, startPos, "incomplete type/value pair")
			}
			lastDNDelim = c
			if err := flushValue(i, c); err != nil {
				return nil, err
			}
		}
	}

	if !haveType {
		if (lastDNDelim == ',' || lastDNDelim == ';') && trimS(s[typeStart:]) == "" {
			return nil, newError(KindTrailingSeparator, typeStart, "DN ends with a trailing separator")
		}
		return nil, newError(KindIncompleteAva, startPos, "DN ended with incomplete type/value pair")
	}
	if err := flushValue(len(s), ','); err != nil {
		return nil, err
	}

	return &DN{name: s, rdns: rdns}, nil
}

// fastScanEligible reports whether s contains no byte that requires the
// escape/hex decoding machinery: no backslash, no '#', and every byte is
// printable ASCII. When true, buildValue/unescapeType skip straight to
// the trimmed raw substring instead of invoking the unescape routines.
func fastScanEligible(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '#' || c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

func isDNDelim(c byte) bool { return c == ',' || c == '+' || c == ';' }

func unescapeType(raw string, offset int, fast bool) (string, error) {
	if fast {
		return raw, nil
	}
	b, err := UnescapeDNValue(raw, offset)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func buildValue(raw string, offset int, fast bool) (Value, error) {
	trimmed := stripBoundarySpaces(raw)
	if len(trimmed) > 0 && trimmed[0] == '#' {
		lead := len(raw) - len(trimL(raw, " "))
		b, err := DecodeHexString(trimmed[1:], offset+lead+1)
		if err != nil {
			return Value{}, err
		}
		return BinaryValue(b), nil
	}
	if fast {
		return TextValue(trimmed), nil
	}
	b, err := UnescapeDNValue(trimmed, offset)
	if err != nil {
		return Value{}, err
	}
	return TextValue(string(b)), nil
}

func buildAVA(view SchemaView, typ string, val Value) (*AVA, error) {
	return NewAVASchemaAware(view, typ, val)
}
