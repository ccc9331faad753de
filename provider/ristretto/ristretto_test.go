package ristretto

import (
	"context"
	"errors"
	"testing"

	"github.com/unkn0wn-root/nscache/internal/providertest"
)

func TestProvider(t *testing.T) {
	p, err := New(Config{NumCounters: 1e4, MaxCost: 1 << 20, BufferItems: 64})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	providertest.Run(t, p)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for zero config")
	}
}

func TestSetReportsDroppedWrite(t *testing.T) {
	ctx := context.Background()
	p, err := New(Config{NumCounters: 100, MaxCost: 1 << 10, BufferItems: 64})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(ctx) })

	if err := p.Set(ctx, "big", make([]byte, 4<<10)); !errors.Is(err, ErrRejected) {
		t.Fatalf("Set oversized = %v, want ErrRejected", err)
	}
	if _, ok, _ := p.Get(ctx, "big"); ok {
		t.Fatalf("rejected entry is readable")
	}
	if err := p.Set(ctx, "small", []byte("v")); err != nil {
		t.Fatalf("Set small: %v", err)
	}
}
