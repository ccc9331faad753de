// Package codec turns cache documents into bytes and back.
//
// A cache stores its document as map[string]any, so every codec used by a
// cache must satisfy Codec[map[string]any]. Decoders must return nested maps
// that document.ValueOf understands (map[string]any or map[any]any).
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Doc is the codec shape used by caches.
type Doc = Codec[map[string]any]
