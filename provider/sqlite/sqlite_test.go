package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/unkn0wn-root/nscache/internal/providertest"
)

func TestStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "cache.sqlite"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	providertest.Run(t, s)
}

func TestEmptyValueIsAHit(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "cache.sqlite"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close(ctx)

	if err := s.Set(ctx, "k", nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || len(v) != 0 {
		t.Fatalf("Get empty: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}
