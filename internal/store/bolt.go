package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const boltBucketKV = "kv" // key: collection name -> JSON blob

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates or opens a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database %s: %w", path, err)
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketKV))

		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

// Get returns a copy of the value stored under key, or nil when absent.
func (b *Bolt) Get(key string) ([]byte, error) {
	var out []byte

	err := b.storage.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketKV)).Get([]byte(key))
		if v != nil {
			// bbolt memory is only valid inside the transaction
			out = bytes.Clone(v)
		}

		return nil
	})

	return out, err
}

func (b *Bolt) Set(key string, value []byte) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketKV)).Put([]byte(key), value)
	})
}

// Keys lists every stored key in byte order.
func (b *Bolt) Keys() ([]string, error) {
	var keys []string

	err := b.storage.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketKV)).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))

			return nil
		})
	})

	return keys, err
}
