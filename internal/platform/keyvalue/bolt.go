package keyvalue

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("storefront")

// Bolt is a file-backed Store using a single bbolt bucket.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) a bbolt store at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("can't open bolt file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can't create bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Close closes the underlying bolt file.
func (b *Bolt) Close() error {
	return b.db.Close()
}

// Get returns value stored under key and whether the key exists.
func (b *Bolt) Get(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)

	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if raw != nil {
			value = string(raw)
			ok = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("can't read key: %w", err)
	}

	return value, ok, nil
}

// Set stores value under key.
func (b *Bolt) Set(key, value string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("can't write key: %w", err)
	}

	return nil
}

// Delete removes key.
func (b *Bolt) Delete(key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("can't delete key: %w", err)
	}

	return nil
}

// Clear removes all keys by recreating the bucket.
func (b *Bolt) Clear() error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketName)
		return err
	})
	if err != nil {
		return fmt.Errorf("can't clear store: %w", err)
	}

	return nil
}

// Keys returns all stored keys.
func (b *Bolt) Keys() ([]string, error) {
	var keys []string

	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("can't list keys: %w", err)
	}

	return keys, nil
}
