package nscache

import "github.com/unkn0wn-root/nscache/backend"

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger; adapters live under log/.
// The cache logs fall-through at Debug, an empty start at Warn and a
// snapshot no backend accepted at Error.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

func failureFields(e *backend.Error) Fields {
	return Fields{"ns": e.Namespace, "backend": e.Backend, "op": e.Op, "err": e.Err}
}
