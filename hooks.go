package nscache

import "github.com/unkn0wn-root/nscache/backend"

// Hooks lightweight callbacks for high-signal persistence events.
// Implementations MUST be cheap and non-blocking; they run inside Sync.
type Hooks interface {
	// One backend failed and the chain moved on to the next.
	BackendFailed(err *backend.Error)

	// No backend held a readable snapshot; the cache started empty.
	LoadExhausted(namespace string)

	// Every backend refused the snapshot; it lives in memory only.
	SaveExhausted(namespace string, err error)

	// A snapshot was persisted by backendName and observers were notified.
	Synced(namespace, backendName string, observers int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) BackendFailed(*backend.Error) {}
func (NopHooks) LoadExhausted(string)         {}
func (NopHooks) SaveExhausted(string, error)  {}
func (NopHooks) Synced(string, string, int)   {}
