// Package providertest holds the behavior every provider.Provider must show.
package providertest

import (
	"bytes"
	"context"
	"testing"

	pr "github.com/unkn0wn-root/nscache/provider"
)

// Run exercises p through a miss, a set, an overwrite and a delete.
func Run(t *testing.T, p pr.Provider) {
	t.Helper()
	ctx := context.Background()

	if v, ok, err := p.Get(ctx, "missing"); err != nil || ok || v != nil {
		t.Fatalf("Get miss: v=%q ok=%v err=%v", v, ok, err)
	}

	first := []byte("NSCD\x01\x01snapshot-1")
	if err := p.Set(ctx, "ns", first); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := p.Get(ctx, "ns")
	if err != nil || !ok || !bytes.Equal(got, first) {
		t.Fatalf("Get after Set: v=%q ok=%v err=%v", got, ok, err)
	}

	second := []byte("snapshot-2")
	if err := p.Set(ctx, "ns", second); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if got, ok, _ := p.Get(ctx, "ns"); !ok || !bytes.Equal(got, second) {
		t.Fatalf("Get after overwrite: v=%q ok=%v", got, ok)
	}

	if err := p.Del(ctx, "ns"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, err := p.Get(ctx, "ns"); err != nil || ok {
		t.Fatalf("Get after Del: ok=%v err=%v", ok, err)
	}
	if err := p.Del(ctx, "ns"); err != nil {
		t.Fatalf("Del of missing key: %v", err)
	}
}
