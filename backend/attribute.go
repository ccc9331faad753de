package backend

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/nscache/internal/wire"
	pr "github.com/unkn0wn-root/nscache/provider"
)

// Attribute emulates a store that can only persist one document per domain.
// Every namespace becomes a (key, value) attribute in that document; the
// whole document is rewritten on each save.
type Attribute struct {
	p      pr.Provider
	domain string
}

var _ Backend = (*Attribute)(nil)

func NewAttribute(p pr.Provider, domain string) *Attribute {
	return &Attribute{p: p, domain: domain}
}

func (b *Attribute) Name() string { return "attribute" }

func (b *Attribute) docKey() string { return "attr:" + b.domain }

func (b *Attribute) table(ctx context.Context) ([]wire.Attr, error) {
	raw, ok, err := b.p.Get(ctx, b.docKey())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return wire.DecodeAttrs(raw)
}

func (b *Attribute) Load(ctx context.Context, ns string) ([]byte, error) {
	if b.p == nil {
		return nil, ErrUnsupported
	}
	attrs, err := b.table(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range attrs {
		if a.Key == ns {
			return a.Value, nil
		}
	}
	return nil, ErrNotFound
}

func (b *Attribute) Save(ctx context.Context, ns string, snapshot []byte) error {
	if b.p == nil {
		return ErrUnsupported
	}
	// An unreadable table still holds other namespaces' snapshots; refuse to
	// overwrite it so the chain falls through and reports the failure. Reset
	// discards it explicitly.
	attrs, err := b.table(ctx)
	if err != nil {
		return fmt.Errorf("attribute table %q: %w", b.docKey(), err)
	}
	found := false
	for i := range attrs {
		if attrs[i].Key == ns {
			attrs[i].Value = snapshot
			found = true
			break
		}
	}
	if !found {
		attrs = append(attrs, wire.Attr{Key: ns, Value: snapshot})
	}
	out, err := wire.EncodeAttrs(attrs)
	if err != nil {
		return err
	}
	return b.p.Set(ctx, b.docKey(), out)
}

// Reset deletes the whole attribute table, every namespace included. It is
// the way to recover once the table has become unreadable.
func (b *Attribute) Reset(ctx context.Context) error {
	if b.p == nil {
		return ErrUnsupported
	}
	return b.p.Del(ctx, b.docKey())
}
