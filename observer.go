package nscache

import (
	"reflect"

	"github.com/unkn0wn-root/nscache/document"
)

// Observer is called with the live document after every sync.
// The return value is ignored by the cache.
type Observer func(doc document.Document) any

var (
	documentType = reflect.TypeOf(document.Document(nil))
	nativeType   = reflect.TypeOf(map[string]any(nil))
)

// Bind appends an observer. Observers run in bind order and cannot be
// removed.
//
// fn may be any function taking no arguments or a single argument that a
// document.Document (func(any), func(document.Document), ...) or a plain
// map[string]any (func(map[string]any)) can be passed as. Plain-map
// observers receive a copy of the document. Any other value, including a
// function with an incompatible signature, is wrapped into an observer that
// does nothing but return that value, so a mistaken bind never fails.
func (c *Cache) Bind(fn any) *Cache {
	c.observers = append(c.observers, toObserver(fn))
	return c
}

func toObserver(fn any) Observer {
	switch f := fn.(type) {
	case Observer:
		if f != nil {
			return f
		}
	case func(document.Document) any:
		if f != nil {
			return f
		}
	case func(document.Document):
		if f != nil {
			return func(d document.Document) any { f(d); return nil }
		}
	case func(any):
		if f != nil {
			return func(d document.Document) any { f(d); return nil }
		}
	case func(map[string]any):
		if f != nil {
			return func(d document.Document) any { f(d.Native()); return nil }
		}
	}
	if o := reflectObserver(fn); o != nil {
		return o
	}
	return func(document.Document) any { return fn }
}

// reflectObserver adapts the remaining function shapes. It returns nil when
// fn cannot be called with the document.
func reflectObserver(fn any) Observer {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil
	}
	t := rv.Type()
	if t.IsVariadic() {
		return nil
	}
	var arg func(document.Document) []reflect.Value
	switch {
	case t.NumIn() == 0:
		arg = func(document.Document) []reflect.Value { return nil }
	case t.NumIn() > 1:
		return nil
	case documentType.AssignableTo(t.In(0)):
		arg = func(d document.Document) []reflect.Value { return []reflect.Value{reflect.ValueOf(d)} }
	case nativeType.AssignableTo(t.In(0)):
		arg = func(d document.Document) []reflect.Value { return []reflect.Value{reflect.ValueOf(d.Native())} }
	default:
		return nil
	}
	return func(d document.Document) any {
		out := rv.Call(arg(d))
		if len(out) == 0 {
			return nil
		}
		return out[0].Interface()
	}
}
