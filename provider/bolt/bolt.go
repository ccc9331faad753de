// Package bolt persists snapshots in a local bbolt file.
package bolt

import (
	"context"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	pr "github.com/unkn0wn-root/nscache/provider"
)

const defaultBucket = "nscache"

// Provider stores every key in a single bucket.
type Provider struct {
	db     *bolt.DB
	bucket []byte
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	Path    string        // required
	Bucket  string        // "" => "nscache"
	Timeout time.Duration // file lock wait; 0 => 1s
}

// Open opens or creates the bolt file and its bucket.
func Open(cfg Config) (*Provider, error) {
	if cfg.Path == "" {
		return nil, errors.New("bolt provider: path is required")
	}
	if cfg.Bucket == "" {
		cfg.Bucket = defaultBucket
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Second
	}

	db, err := bolt.Open(cfg.Path, 0600, &bolt.Options{Timeout: cfg.Timeout})
	if err != nil {
		return nil, fmt.Errorf("bolt provider: open %s: %w", cfg.Path, err)
	}
	bucket := []byte(cfg.Bucket)
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt provider: create bucket: %w", err)
	}
	return &Provider{db: db, bucket: bucket}, nil
}

func (p *Provider) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	var out []byte
	err := p.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(p.bucket).Get([]byte(key))
		if v != nil {
			// bolt memory is only valid inside the tx
			out = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, out != nil, nil
}

func (p *Provider) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(p.bucket).Put([]byte(key), value)
	})
}

func (p *Provider) Del(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(p.bucket).Delete([]byte(key))
	})
}

func (p *Provider) Close(context.Context) error { return p.db.Close() }
