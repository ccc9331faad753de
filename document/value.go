// Package document implements the nested, path-addressed structure a cache
// owns in memory.
//
// A Value is either a Leaf (scalar or array) or a Document (a node mapping
// string keys to further values). Paths are dot-separated; the empty path
// addresses the root.
//
// Documents are mutated in place and are not safe for concurrent use.
package document

import (
	"fmt"
	"math"
	"reflect"
)

// Value is a Leaf or a Document.
type Value interface {
	isValue()
}

// Leaf holds a scalar or an array. Arrays are never traversed by paths.
type Leaf struct {
	V any
}

func (Leaf) isValue() {}

// Native returns the leaf's underlying Go value.
func (l Leaf) Native() any { return l.V }

// Document is a node: string keys mapped to values.
type Document map[string]Value

func (Document) isValue() {}

// New returns an empty document.
func New() Document { return make(Document) }

// ValueOf wraps a Go value. Maps with string keys (of any value type) and
// map[any]any produced by some decoders become Documents, Values pass
// through, everything else is a Leaf. Leaf contents are normalized with the
// same rules a codec round trip applies: nested maps become
// map[string]any and slices become []any.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case Document:
		if t == nil {
			return New()
		}
		return t
	case Leaf:
		return ValueOf(t.V)
	case map[string]any:
		return FromNative(t)
	case map[any]any:
		d := make(Document, len(t))
		for k, e := range t {
			d[fmt.Sprint(k)] = ValueOf(e)
		}
		return d
	}
	if m, ok := stringMap(v); ok {
		return FromNative(m)
	}
	return Leaf{V: plain(v)}
}

// FromNative converts a decoded map into a Document.
func FromNative(m map[string]any) Document {
	d := make(Document, len(m))
	for k, e := range m {
		d[k] = ValueOf(e)
	}
	return d
}

// Native converts the document back into plain Go maps for encoding.
func (d Document) Native() map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		out[k] = native(v)
	}
	return out
}

// Clone returns a deep copy of d. Arrays inside leaves are shared.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		if sub, ok := v.(Document); ok {
			out[k] = sub.Clone()
			continue
		}
		out[k] = v
	}
	return out
}

func native(v Value) any {
	switch t := v.(type) {
	case Document:
		return t.Native()
	case Leaf:
		return plain(t.V)
	default:
		return nil
	}
}

// plain strips Documents and Leaves out of v so leaves only ever hold data a
// codec can encode and decode back unchanged.
func plain(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case Document:
		return t.Native()
	case Leaf:
		return plain(t.V)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plain(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = plain(e)
		}
		return out
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plain(e)
		}
		return out
	case []byte:
		return t
	}
	if m, ok := stringMap(v); ok {
		return m
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = plain(rv.Index(i).Interface())
		}
		return out
	}
	return v
}

// stringMap converts typed maps keyed by strings (map[string]int,
// map[Name]string, ...) into map[string]any.
func stringMap(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = plain(iter.Value().Interface())
	}
	return out, true
}

// Truthy reports whether v counts as a present, non-empty value for Remove.
// nil, false, numeric zero, NaN and "" are falsy. Documents and arrays,
// even empty ones, are truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case Document:
		return true
	case Leaf:
		return truthyNative(t.V)
	default:
		return true
	}
}

func truthyNative(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
