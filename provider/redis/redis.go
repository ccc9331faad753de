package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/unkn0wn-root/nscache/provider"
)

var ErrNilClient = errors.New("redis provider: nil client")

// Redis stores snapshots as plain string values. Keys never expire.
type Redis struct {
	rdb         goredis.UniversalClient
	prefix      string
	closeClient bool
}

var _ pr.Provider = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	Prefix      string // prepended to every key, e.g. "app:prod:"
	CloseClient bool   // set true only if this provider exclusively owns the client
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Redis{rdb: cfg.Client, prefix: cfg.Prefix, closeClient: cfg.CloseClient}, nil
}

func (p *Redis) key(k string) string { return p.prefix + k }

func (p *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, p.key(key)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (p *Redis) Set(ctx context.Context, key string, value []byte) error {
	return p.rdb.Set(ctx, p.key(key), value, 0).Err()
}

func (p *Redis) Del(ctx context.Context, key string) error {
	return p.rdb.Del(ctx, p.key(key)).Err()
}

// Close releases the underlying redis client only when this provider owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Redis) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
