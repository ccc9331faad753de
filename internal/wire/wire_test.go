package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	cases := []struct {
		ns      string
		payload []byte
	}{
		{"CacheProvider", nil},
		{"test", []byte(`{"a":1}`)},
		{"", []byte{0, 1, 2, 3}},
	}
	for _, tc := range cases {
		enc, err := EncodeSnapshot(tc.ns, tc.payload)
		if err != nil {
			t.Fatalf("EncodeSnapshot: %v", err)
		}
		p, err := DecodeSnapshot(enc, tc.ns)
		if err != nil {
			t.Fatalf("DecodeSnapshot(%q): %v", tc.ns, err)
		}
		if !bytes.Equal(p, tc.payload) {
			t.Fatalf("payload mismatch: got %x want %x", p, tc.payload)
		}
	}
}

func TestSnapshotRejectsForeignNamespace(t *testing.T) {
	enc, _ := EncodeSnapshot("a", []byte("x"))
	if _, err := DecodeSnapshot(enc, "b"); !errors.Is(err, ErrNamespace) {
		t.Fatalf("expected ErrNamespace, got %v", err)
	}
}

func TestSnapshotRejectsTrailingBytes(t *testing.T) {
	enc, _ := EncodeSnapshot("ns", []byte("x"))
	enc = append(enc, 0xDE, 0xAD)
	if _, err := DecodeSnapshot(enc, "ns"); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on trailing bytes, got %v", err)
	}
}

func TestSnapshotCorruptHeaders(t *testing.T) {
	enc, _ := EncodeSnapshot("ns", []byte("abc"))

	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	badKind := append([]byte(nil), enc...)
	badKind[5] = kindAttrs
	badNs := append([]byte(nil), enc...)
	binary.BigEndian.PutUint16(badNs[6:8], 0xFFFF)
	trunc := enc[:len(enc)-1]

	for name, b := range map[string][]byte{
		"magic":     badMagic,
		"version":   badVer,
		"kind":      badKind,
		"ns length": badNs,
		"truncated": trunc,
		"raw json":  []byte(`{"a":1}`),
		"empty":     nil,
	} {
		if _, err := DecodeSnapshot(b, "ns"); !errors.Is(err, ErrCorrupt) {
			t.Errorf("%s: expected ErrCorrupt, got %v", name, err)
		}
	}
}

func TestAttrsRoundTrip(t *testing.T) {
	cases := [][]Attr{
		nil,
		{{Key: "a", Value: []byte("x")}},
		{
			{Key: "a", Value: []byte("x")},
			{Key: "b", Value: nil},
			{Key: "c", Value: []byte{9, 8, 7}},
		},
	}
	for _, items := range cases {
		enc, err := EncodeAttrs(items)
		if err != nil {
			t.Fatalf("EncodeAttrs: %v", err)
		}
		got, err := DecodeAttrs(enc)
		if err != nil {
			t.Fatalf("DecodeAttrs: %v", err)
		}
		if len(got) != len(items) {
			t.Fatalf("len mismatch: got %d want %d", len(got), len(items))
		}
		for i := range items {
			if got[i].Key != items[i].Key || !bytes.Equal(got[i].Value, items[i].Value) {
				t.Fatalf("item %d mismatch: got=%+v want=%+v", i, got[i], items[i])
			}
		}
	}
}

func TestAttrsRejectsTrailingAndBogusCount(t *testing.T) {
	enc, _ := EncodeAttrs([]Attr{{Key: "k", Value: []byte("v")}})
	if _, err := DecodeAttrs(append(enc, 0xBE, 0xEF)); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}

	var buf bytes.Buffer
	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindAttrs)
	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], ^uint32(0))
	buf.Write(u4[:])
	if _, err := DecodeAttrs(buf.Bytes()); err == nil {
		t.Fatalf("expected error on bogus n")
	}
}

func TestAttrsKeyLengthValidation(t *testing.T) {
	if _, err := EncodeAttrs([]Attr{{Key: ""}}); err == nil {
		t.Fatalf("expected error on empty key")
	}
	if _, err := EncodeAttrs([]Attr{{Key: strings.Repeat("a", 0x10000)}}); err == nil {
		t.Fatalf("expected error on key length > 0xFFFF")
	}
	if _, err := EncodeAttrs([]Attr{{Key: strings.Repeat("b", 0xFFFF)}}); err != nil {
		t.Fatalf("boundary key length should succeed: %v", err)
	}
}
