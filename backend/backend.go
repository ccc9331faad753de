// Package backend persists cache snapshots through an ordered list of
// storage mechanisms.
//
// Backends are tried in priority order on every call: whichever mechanism
// works in the current host is found by attempting it. Nothing is cached
// about which backend succeeded last time.
//
//   - Primary: the namespace is the storage key.
//   - Legacy: keys are additionally partitioned by a domain identifier.
//   - Attribute: one hidden table per domain holding (key, value) pairs,
//     scanned linearly on load.
//   - Null: stores nothing; a valid last resort.
package backend

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Load when the backend holds no snapshot for the
// namespace. The chain treats it like any other failure and moves on.
var ErrNotFound = errors.New("backend: snapshot not found")

// ErrUnsupported is returned by the Null backend.
var ErrUnsupported = errors.New("backend: no storage available")

// Backend loads and saves framed snapshots by namespace.
type Backend interface {
	Name() string
	Load(ctx context.Context, namespace string) ([]byte, error)
	Save(ctx context.Context, namespace string, snapshot []byte) error
}

// Error records one backend failing one operation.
type Error struct {
	Backend   string
	Op        string // "load" or "save"
	Namespace string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend %s: %s %q: %v", e.Backend, e.Op, e.Namespace, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type null struct{}

// Null returns a backend that never holds data.
func Null() Backend { return null{} }

func (null) Name() string { return "null" }

func (null) Load(context.Context, string) ([]byte, error) { return nil, ErrUnsupported }

func (null) Save(context.Context, string, []byte) error { return ErrUnsupported }
