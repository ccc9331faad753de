package backend

import (
	"context"

	"go.uber.org/multierr"

	"github.com/unkn0wn-root/nscache/codec"
	"github.com/unkn0wn-root/nscache/document"
	"github.com/unkn0wn-root/nscache/internal/wire"
)

// Chain tries its backends in order. The zero value behaves like a chain
// holding only Null with the JSON codec.
type Chain struct {
	Backends []Backend
	Codec    codec.Doc
}

// Report describes one Load or Save through the chain.
type Report struct {
	Namespace string
	// Backend is the name of the backend that served the call; "" when
	// every backend failed.
	Backend  string
	Failures []*Error
}

// OK reports whether some backend served the call.
func (r Report) OK() bool { return r.Backend != "" }

// Err combines all recorded failures, nil when there were none.
func (r Report) Err() error {
	var err error
	for _, f := range r.Failures {
		err = multierr.Append(err, f)
	}
	return err
}

func (c *Chain) codec() codec.Doc {
	if c.Codec == nil {
		return codec.JSON[map[string]any]{}
	}
	return c.Codec
}

func (c *Chain) backends() []Backend {
	if len(c.Backends) == 0 {
		return []Backend{Null()}
	}
	return c.Backends
}

// Load restores the snapshot stored for ns from the first backend that holds
// a readable one. Missing, unreadable and undecodable snapshots all fall
// through to the next backend. When no backend can serve the namespace Load
// returns an empty document; it never fails.
func (c *Chain) Load(ctx context.Context, ns string) (document.Document, Report) {
	rep := Report{Namespace: ns}
	for _, b := range c.backends() {
		doc, err := c.loadFrom(ctx, b, ns)
		if err != nil {
			rep.Failures = append(rep.Failures, &Error{Backend: b.Name(), Op: "load", Namespace: ns, Err: err})
			continue
		}
		rep.Backend = b.Name()
		return doc, rep
	}
	return document.New(), rep
}

func (c *Chain) loadFrom(ctx context.Context, b Backend, ns string) (document.Document, error) {
	raw, err := b.Load(ctx, ns)
	if err != nil {
		return nil, err
	}
	payload, err := wire.DecodeSnapshot(raw, ns)
	if err != nil {
		return nil, err
	}
	m, err := c.codec().Decode(payload)
	if err != nil {
		return nil, err
	}
	return document.FromNative(m), nil
}

// Save encodes doc once and offers it to each backend in order, stopping at
// the first one that accepts it. The report is not OK only when every
// backend refused, or when doc could not be encoded at all.
func (c *Chain) Save(ctx context.Context, ns string, doc document.Document) Report {
	rep := Report{Namespace: ns}
	snapshot, err := c.encode(ns, doc)
	if err != nil {
		rep.Failures = append(rep.Failures, &Error{Backend: "codec", Op: "save", Namespace: ns, Err: err})
		return rep
	}
	for _, b := range c.backends() {
		if err := b.Save(ctx, ns, snapshot); err != nil {
			rep.Failures = append(rep.Failures, &Error{Backend: b.Name(), Op: "save", Namespace: ns, Err: err})
			continue
		}
		rep.Backend = b.Name()
		return rep
	}
	return rep
}

func (c *Chain) encode(ns string, doc document.Document) ([]byte, error) {
	if doc == nil {
		doc = document.New()
	}
	payload, err := c.codec().Encode(doc.Native())
	if err != nil {
		return nil, err
	}
	return wire.EncodeSnapshot(ns, payload)
}
