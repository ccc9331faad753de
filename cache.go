package nscache

import (
	"context"

	"github.com/unkn0wn-root/nscache/backend"
	"github.com/unkn0wn-root/nscache/document"
)

// Cache is a named document persisted through a backend chain.
type Cache struct {
	name      string
	doc       document.Document
	chain     *backend.Chain
	observers []Observer
	log       Logger
	hooks     Hooks
}

// Name returns the namespace the cache persists under.
func (c *Cache) Name() string { return c.name }

// Document returns the live document. Callers must not keep references to
// sub-documents across mutations.
func (c *Cache) Document() document.Document { return c.doc }

// Get returns the value at key. The empty key returns the whole document.
func (c *Cache) Get(key string) (document.Value, bool) {
	return document.Read(c.doc, key)
}

// Read is an alias for Get.
func (c *Cache) Read(key string) (document.Value, bool) { return c.Get(key) }

// Set stores value at key and syncs. Maps become nested documents; other
// values are stored as leaves. The empty key replaces the whole document and
// then value must be a map or document. The bool reports whether the
// snapshot was persisted.
func (c *Cache) Set(ctx context.Context, key string, value any) (bool, error) {
	doc, err := document.Write(c.doc, key, document.ValueOf(value))
	if err != nil {
		return false, err
	}
	c.doc = doc
	return c.Sync(ctx), nil
}

// Write is an alias for Set.
func (c *Cache) Write(ctx context.Context, key string, value any) (bool, error) {
	return c.Set(ctx, key, value)
}

// Remove deletes key and syncs, even when nothing was removed.
//
// Keys holding a falsy value (0, "", false, null) are not removed; Check
// keeps reporting them as present. Existing callers rely on this.
func (c *Cache) Remove(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	if err := document.Remove(c.doc, key); err != nil {
		return false, err
	}
	return c.Sync(ctx), nil
}

// Del is an alias for Remove.
func (c *Cache) Del(ctx context.Context, key string) (bool, error) { return c.Remove(ctx, key) }

// Clear replaces the document with an empty one and syncs.
func (c *Cache) Clear(ctx context.Context) bool {
	c.doc = document.New()
	return c.Sync(ctx)
}

// Check reports whether key exists. Keys holding falsy values exist.
func (c *Cache) Check(key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	return document.Check(c.doc, key)
}

// Sync persists the document and then calls every observer in bind order.
// Observers run whether or not the save succeeded. It reports whether some
// backend accepted the snapshot.
func (c *Cache) Sync(ctx context.Context) bool {
	rep := c.chain.Save(ctx, c.name, c.doc)
	c.report(rep)
	if rep.OK() {
		c.hooks.Synced(c.name, rep.Backend, len(c.observers))
	} else {
		c.log.Error("snapshot not persisted (all backends failed)", Fields{"ns": c.name, "err": rep.Err()})
		c.hooks.SaveExhausted(c.name, rep.Err())
	}
	for _, o := range c.observers {
		o(c.doc)
	}
	return rep.OK()
}

func (c *Cache) load(ctx context.Context) {
	doc, rep := c.chain.Load(ctx, c.name)
	c.doc = doc
	c.report(rep)
	if !rep.OK() {
		c.log.Warn("no snapshot restored; starting empty", Fields{"ns": c.name})
		c.hooks.LoadExhausted(c.name)
		return
	}
	c.log.Debug("snapshot restored", Fields{"ns": c.name, "backend": rep.Backend})
}

func (c *Cache) report(rep backend.Report) {
	for _, f := range rep.Failures {
		c.log.Debug("backend failed, falling through", failureFields(f))
		c.hooks.BackendFailed(f)
	}
}
