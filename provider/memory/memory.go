// Package memory is a map-backed Provider for tests and single-process use.
//
// Faults can be switched on to emulate a host where the store exists but
// refuses access, which is how the backend chain's fall-through is exercised.
package memory

import (
	"context"
	"errors"
	"sync"

	pr "github.com/unkn0wn-root/nscache/provider"
)

// ErrUnavailable is returned by Get/Set while the matching fault is set.
var ErrUnavailable = errors.New("memory provider: unavailable")

type Provider struct {
	mu      sync.RWMutex
	m       map[string][]byte
	failGet bool
	failSet bool
}

var _ pr.Provider = (*Provider)(nil)

func New() *Provider { return &Provider{m: make(map[string][]byte)} }

// Fail toggles read and write faults.
func (p *Provider) Fail(get, set bool) {
	p.mu.Lock()
	p.failGet, p.failSet = get, set
	p.mu.Unlock()
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.failGet {
		return nil, false, ErrUnavailable
	}
	v, ok := p.m[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failSet {
		return ErrUnavailable
	}
	p.m[key] = append([]byte(nil), value...)
	return nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.mu.Lock()
	delete(p.m, key)
	p.mu.Unlock()
	return nil
}

// Keys returns the stored keys in no particular order.
func (p *Provider) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.m))
	for k := range p.m {
		out = append(out, k)
	}
	return out
}

func (p *Provider) Close(context.Context) error { return nil }
