package nscache

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/nscache/backend"
	"github.com/unkn0wn-root/nscache/codec"
)

// DefaultName is the namespace used when Options.Name is empty.
const DefaultName = "CacheProvider"

// Options configure a Cache. All fields are optional.
type Options struct {
	Name     string            // namespace; "" => DefaultName
	Backends []backend.Backend // priority order; empty => backend.Null() only
	Codec    codec.Doc         // nil => codec.JSON
	Logger   Logger            // nil => NopLogger
	Hooks    Hooks             // nil => NopHooks
}

// New builds a Cache and restores its document from the first backend that
// holds a readable snapshot for the namespace. A missing or unreadable
// snapshot yields an empty document; New fails only on invalid options.
func New(ctx context.Context, opts Options) (*Cache, error) {
	for i, b := range opts.Backends {
		if b == nil {
			return nil, fmt.Errorf("nscache: backend %d is nil", i)
		}
	}

	c := &Cache{
		name: coalesce(opts.Name, DefaultName),
		chain: &backend.Chain{
			Backends: append([]backend.Backend(nil), opts.Backends...),
			Codec:    opts.Codec,
		},
		log:   opts.Logger,
		hooks: opts.Hooks,
	}
	if c.log == nil {
		c.log = NopLogger{}
	}
	if c.hooks == nil {
		c.hooks = NopHooks{}
	}
	c.load(ctx)
	return c, nil
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
