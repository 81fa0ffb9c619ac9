package dn

/*
serialize.go implements the two portable serialization forms a DN
supports for storage or transport between processes that share this
package (§4.9): a length-prefixed byte layout, and a version-tolerant
object-stream wrapper around it.

This is plain TLV over encoding/binary rather than go-asn1-ber's BER
codec: BER encoding of LDAP protocol messages is explicitly out of scope
(§1's non-goals), and no example repo in the retrieval pool offers a
general-purpose object serialization library to ground on instead, so
the wire format below is hand-rolled length-prefixing in the manner the
upstream dirsyn lineage itself reaches for (see bitstring.go/ostr.go's
own length-prefixed byte handling) rather than BER — see DESIGN.md.
*/

import "encoding/binary"

// objectStreamVersion is the sentinel byte DecodeObjectStream checks
// before trusting the remainder of the payload as this package's binary
// layout; it lets a future incompatible layout change be rejected
// cleanly instead of silently misparsed.
const objectStreamVersion byte = 1

// MarshalBinary renders d as a length-prefixed byte sequence: a uint32
// RDN count, then for each RDN a uint32 AVA count, then for each AVA a
// uint32 type length, the type bytes, a one-byte binary/text flag, a
// uint32 value length and the value bytes. It fails with KindIncompleteAva
// if any AVA carries an empty/absent value (§4.4, §6).
func (d *DN) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 64)
	buf = appendUint32(buf, uint32(d.Len()))
	for _, r := range d.RDNs() {
		buf = appendUint32(buf, uint32(r.Len()))
		for _, a := range r.AVAs() {
			if a.Value().IsZero() {
				return nil, newError(KindIncompleteAva, -1, "cannot serialize an AVA with an empty/absent value")
			}
			buf = appendString(buf, a.Type())
			if a.Value().IsBinary() {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
			buf = appendBytes(buf, a.Value().Bytes())
		}
	}
	return buf, nil
}

// UnmarshalBinaryDN decodes data produced by MarshalBinary into a new
// schema-less DN.
func UnmarshalBinaryDN(data []byte) (*DN, error) {
	return UnmarshalBinaryDNSchema(NoSchema{}, data)
}

// UnmarshalBinaryDNSchema decodes data, resolving every AVA's type
// against view.
func UnmarshalBinaryDNSchema(view SchemaView, data []byte) (*DN, error) {
	r := &byteReader{data: data}

	rdnCount, err := r.uint32()
	if err != nil {
		return nil, err
	}
	rdns := make([]*RDN, 0, rdnCount)
	for i := uint32(0); i < rdnCount; i++ {
		avaCount, err := r.uint32()
		if err != nil {
			return nil, err
		}
		if avaCount == 0 {
			return nil, newError(KindIncompleteAva, r.pos, "serialized RDN has zero AVAs")
		}
		avas := make([]*AVA, 0, avaCount)
		for j := uint32(0); j < avaCount; j++ {
			typ, err := r.string()
			if err != nil {
				return nil, err
			}
			binFlag, err := r.byte()
			if err != nil {
				return nil, err
			}
			raw, err := r.bytes()
			if err != nil {
				return nil, err
			}
			var val Value
			if binFlag == 1 {
				val = BinaryValue(raw)
			} else if binFlag == 0 {
				val = TextValue(string(raw))
			} else {
				return nil, newError(KindCorruptSerialization, r.pos, "invalid value-kind flag")
			}
			ava, err := NewAVASchemaAware(view, typ, val)
			if err != nil {
				return nil, err
			}
			avas = append(avas, ava)
		}
		rdn, err := NewRDN(avas...)
		if err != nil {
			return nil, err
		}
		rdns = append(rdns, rdn)
	}
	if !r.atEnd() {
		return nil, newError(KindCorruptSerialization, r.pos, "trailing bytes after serialized DN")
	}
	return NewDN(rdns...), nil
}

// EncodeObjectStream wraps MarshalBinary's output with the version
// sentinel byte, for callers that persist DNs across process/library
// version boundaries.
func (d *DN) EncodeObjectStream() ([]byte, error) {
	body, err := d.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(body)+1)
	out = append(out, objectStreamVersion)
	out = append(out, body...)
	return out, nil
}

// DecodeObjectStream reverses EncodeObjectStream, rejecting a payload
// whose version byte it does not recognize with KindCorruptSerialization
// rather than attempting to reinterpret it.
func DecodeObjectStream(data []byte) (*DN, error) {
	return DecodeObjectStreamSchema(NoSchema{}, data)
}

// DecodeObjectStreamSchema reverses EncodeObjectStream, resolving every
// AVA's type against view.
func DecodeObjectStreamSchema(view SchemaView, data []byte) (*DN, error) {
	if len(data) == 0 {
		return nil, newError(KindUnexpectedEof, 0, "empty object stream payload")
	}
	if data[0] != objectStreamVersion {
		return nil, newError(KindCorruptSerialization, 0, "unrecognized object stream version")
	}
	return UnmarshalBinaryDNSchema(view, data[1:])
}

func appendUint32(buf []byte, n uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], n)
	return append(buf, tmp[:]...)
}

func appendBytes(buf []byte, b []byte) []byte {
	buf = appendUint32(buf, uint32(len(b)))
	return append(buf, b...)
}

func appendString(buf []byte, s string) []byte {
	return appendBytes(buf, []byte(s))
}

// byteReader is a minimal bounds-checked cursor over a serialized
// payload, producing KindUnexpectedEof on truncation and
// KindCorruptSerialization on an internally inconsistent length prefix.
type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) atEnd() bool { return r.pos >= len(r.data) }

func (r *byteReader) byte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, newError(KindUnexpectedEof, r.pos, "unexpected end of serialized data")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *byteReader) uint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, newError(KindUnexpectedEof, r.pos, "unexpected end of serialized data")
	}
	n := binary.BigEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4
	return n, nil
}

func (r *byteReader) bytes() ([]byte, error) {
	n, err := r.uint32()
	if err != nil {
		return nil, err
	}
	if int(n) < 0 || r.pos+int(n) > len(r.data) {
		return nil, newError(KindCorruptSerialization, r.pos, "length prefix exceeds remaining payload")
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+int(n)])
	r.pos += int(n)
	return out, nil
}

func (r *byteReader) string() (string, error) {
	b, err := r.bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
