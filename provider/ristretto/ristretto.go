package ristretto

import (
	"context"
	"errors"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/unkn0wn-root/nscache/provider"
)

// ErrRejected is returned when ristretto's admission policy drops a write.
var ErrRejected = errors.New("ristretto: write rejected")

type Provider struct {
	c *rc.Cache
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64 // bytes; each entry costs len(value)
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Set waits for the write buffer to drain, then checks the entry is present.
// Writes the admission policy drops after buffering (an entry costing more
// than MaxCost, for example) are reported as ErrRejected. A later write may
// still evict the entry; ristretto is a cache, not a store.
func (p *Provider) Set(_ context.Context, key string, value []byte) error {
	if !p.c.Set(key, value, int64(len(value))) {
		return ErrRejected
	}
	p.c.Wait()
	if _, ok := p.c.Get(key); !ok {
		return ErrRejected
	}
	return nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Helper to expose metrics if desired by the application.
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }
