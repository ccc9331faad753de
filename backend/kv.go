package backend

import (
	"context"
	"errors"

	pr "github.com/unkn0wn-root/nscache/provider"
)

// KV stores each namespace under one provider key.
type KV struct {
	name   string
	p      pr.Provider
	prefix string
}

var _ Backend = (*KV)(nil)

// Primary stores snapshots under the bare namespace.
func Primary(p pr.Provider) *KV {
	return &KV{name: "primary", p: p}
}

// Legacy stores snapshots under "<domain>:<namespace>", so caches of
// different domains sharing one store never collide.
func Legacy(p pr.Provider, domain string) *KV {
	return &KV{name: "legacy", p: p, prefix: domain + ":"}
}

func (b *KV) Name() string { return b.name }

func (b *KV) key(ns string) string { return b.prefix + ns }

func (b *KV) Load(ctx context.Context, ns string) ([]byte, error) {
	if b.p == nil {
		return nil, ErrUnsupported
	}
	v, ok, err := b.p.Get(ctx, b.key(ns))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (b *KV) Save(ctx context.Context, ns string, snapshot []byte) error {
	if b.p == nil {
		return ErrUnsupported
	}
	if snapshot == nil {
		return errors.New("backend: nil snapshot")
	}
	return b.p.Set(ctx, b.key(ns), snapshot)
}
