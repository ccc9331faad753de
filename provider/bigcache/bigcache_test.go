package bigcache

import (
	"context"
	"testing"

	"github.com/unkn0wn-root/nscache/internal/providertest"
)

func TestProvider(t *testing.T) {
	ctx := context.Background()
	p, err := New(ctx, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(ctx) })
	providertest.Run(t, p)
}
