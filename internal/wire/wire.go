// Package wire frames the bytes that storage backends persist.
//
// Every stored snapshot is wrapped in a small header naming the namespace it
// belongs to, so foreign or truncated values are rejected before decoding.
// The attribute backend keeps its whole table in a second frame kind.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version      byte = 1
	kindSnapshot byte = 1
	kindAttrs    byte = 2
)

var (
	ErrCorrupt   = errors.New("nscache: corrupt entry")
	ErrNamespace = errors.New("nscache: snapshot belongs to another namespace")
	magic4       = [...]byte{'N', 'S', 'C', 'D'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Snapshot: magic(4) | ver(1) | kind(1=snapshot) | nsLen(u16 be) | ns | plen(u32 be) | payload(plen)
func EncodeSnapshot(ns string, payload []byte) ([]byte, error) {
	if len(ns) > 0xFFFF {
		return nil, errors.New("nscache: namespace too long")
	}
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 1 + 2 + len(ns) + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindSnapshot)

	var u4 [4]byte
	var u2 [2]byte

	binary.BigEndian.PutUint16(u2[:], uint16(len(ns)))
	buf.Write(u2[:])
	buf.WriteString(ns)

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])
	buf.Write(payload)
	return buf.Bytes(), nil
}

// DecodeSnapshot returns the payload of a snapshot frame written for ns.
func DecodeSnapshot(b []byte, ns string) ([]byte, error) {
	const hdr = 4 + 1 + 1 + 2
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindSnapshot {
		return nil, ErrCorrupt
	}
	off := 6

	nlen := int(binary.BigEndian.Uint16(b[off : off+2]))
	off += 2
	if nlen > len(b)-off {
		return nil, ErrCorrupt
	}
	got := b[off : off+nlen]
	off += nlen

	if off+4 > len(b) {
		return nil, ErrCorrupt
	}
	plen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if plen < 0 || plen != len(b)-off { // exact: no trailing bytes
		return nil, ErrCorrupt
	}
	if string(got) != ns {
		return nil, ErrNamespace
	}
	return b[off : off+plen], nil
}

// Attrs:
//
//	magic(4) | ver(1) | kind(2=attrs) | n(u32 be)
//	keyLen(u16 be) | key(keyLen) | vlen(u32 be) | value(vlen) * n
type Attr struct {
	Key   string
	Value []byte
}

func EncodeAttrs(items []Attr) ([]byte, error) {
	total := 4 + 1 + 1 + 4
	for _, it := range items {
		total += 2 + len(it.Key) + 4 + len(it.Value)
	}

	var buf bytes.Buffer
	buf.Grow(total)

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindAttrs)

	var u4 [4]byte
	var u2 [2]byte

	binary.BigEndian.PutUint32(u4[:], uint32(len(items)))
	buf.Write(u4[:])

	for _, it := range items {
		if l := len(it.Key); l == 0 || l > 0xFFFF {
			return nil, errors.New("nscache: invalid attribute key length")
		}
		binary.BigEndian.PutUint16(u2[:], uint16(len(it.Key)))
		buf.Write(u2[:])
		buf.WriteString(it.Key)

		binary.BigEndian.PutUint32(u4[:], uint32(len(it.Value)))
		buf.Write(u4[:])
		buf.Write(it.Value)
	}

	return buf.Bytes(), nil
}

func DecodeAttrs(b []byte) ([]Attr, error) {
	const hdr = 4 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindAttrs {
		return nil, ErrCorrupt
	}

	off := 6

	n := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	// each attr needs at least 2+1+4 bytes
	if n < 0 || n > (len(b)-off)/7 {
		return nil, ErrCorrupt
	}

	items := make([]Attr, 0, n)
	for i := 0; i < n; i++ {
		if off+2 > len(b) {
			return nil, ErrCorrupt
		}
		klen := int(binary.BigEndian.Uint16(b[off : off+2]))
		off += 2
		if klen <= 0 || klen > len(b)-off {
			return nil, ErrCorrupt
		}
		keyBytes := b[off : off+klen]
		off += klen

		if off+4 > len(b) {
			return nil, ErrCorrupt
		}
		vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
		off += 4
		if vlen < 0 || vlen > len(b)-off {
			return nil, ErrCorrupt
		}

		items = append(items, Attr{
			Key:   string(keyBytes),
			Value: b[off : off+vlen],
		})
		off += vlen
	}
	if off != len(b) {
		return nil, ErrCorrupt
	}

	return items, nil
}
