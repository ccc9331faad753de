package slog

import (
	"context"
	stdslog "log/slog"
	"sort"

	"github.com/unkn0wn-root/nscache"
)

var _ nscache.Logger = Logger{}

// Logger adapts a *slog.Logger. Ctx, when set, is passed to every record so
// handlers can pick up trace data.
type Logger struct {
	L   *stdslog.Logger
	Ctx context.Context
}

func (s Logger) Debug(msg string, f nscache.Fields) { s.log(stdslog.LevelDebug, msg, f) }
func (s Logger) Info(msg string, f nscache.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s Logger) Warn(msg string, f nscache.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s Logger) Error(msg string, f nscache.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s Logger) log(level stdslog.Level, msg string, f nscache.Fields) {
	ctx := s.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	s.L.LogAttrs(ctx, level, msg, attrs(f)...)
}

// attrs emits fields in key order so output is stable.
func attrs(f nscache.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]stdslog.Attr, 0, len(f))
	for _, k := range keys {
		out = append(out, stdslog.Any(k, f[k]))
	}
	return out
}
