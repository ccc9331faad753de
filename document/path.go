package document

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyPath is returned by operations that need a last segment.
	ErrEmptyPath = errors.New("document: empty path")
	// ErrRootNotDocument is returned when replacing the root with a non-document value.
	ErrRootNotDocument = errors.New("document: root value must be a document")
)

// Split breaks a dot-separated path into segments. The empty path yields nil.
func Split(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// Read walks doc along path. It reports false when a segment is absent or a
// segment other than the last does not hold a Document. The empty path
// returns doc itself.
func Read(doc Document, path string) (Value, bool) {
	return readSegments(doc, Split(path))
}

func readSegments(doc Document, segs []string) (Value, bool) {
	var cur Value = doc
	for _, s := range segs {
		node, ok := cur.(Document)
		if !ok || node == nil {
			return nil, false
		}
		next, ok := node[s]
		if !ok {
			return nil, false
		}
		cur = next
	}
	if d, ok := cur.(Document); ok && d == nil {
		return nil, false
	}
	return cur, true
}

// Write stores v at path and returns the resulting document. Intermediate
// segments that do not hold a Document (leaves and arrays included) are
// replaced with empty Documents. doc is modified in place.
//
// With the empty path v replaces the whole document and must itself be a
// Document.
func Write(doc Document, path string, v Value) (Document, error) {
	segs := Split(path)
	if len(segs) == 0 {
		root, ok := v.(Document)
		if !ok {
			return doc, ErrRootNotDocument
		}
		if root == nil {
			root = New()
		}
		return root, nil
	}
	if doc == nil {
		doc = New()
	}
	if v == nil {
		v = Leaf{}
	}
	node := doc
	for _, s := range segs[:len(segs)-1] {
		next, ok := node[s].(Document)
		if !ok || next == nil {
			next = New()
			node[s] = next
		}
		node = next
	}
	node[segs[len(segs)-1]] = v
	return doc, nil
}

// parent resolves the container of the last segment of path.
func parent(doc Document, path string) (Document, string, error) {
	segs := Split(path)
	if len(segs) == 0 {
		return nil, "", ErrEmptyPath
	}
	last := segs[len(segs)-1]
	pv, ok := readSegments(doc, segs[:len(segs)-1])
	if !ok {
		return nil, last, nil
	}
	p, _ := pv.(Document)
	return p, last, nil
}

// Remove deletes the key at path.
//
// A key whose value is falsy (see Truthy) is left in place: removing a key
// holding 0, "", false or null is a no-op. Callers depend on this, so it is
// kept as is.
func Remove(doc Document, path string) error {
	p, last, err := parent(doc, path)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	if v, ok := p[last]; ok && Truthy(v) {
		delete(p, last)
	}
	return nil
}

// Check reports whether path names an existing key. Falsy values count as
// present.
func Check(doc Document, path string) (bool, error) {
	p, last, err := parent(doc, path)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}
	v, ok := p[last]
	return ok && v != nil, nil
}
