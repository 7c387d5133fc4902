//go:build !sqlite

package storage

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"github.com/inovacc/jotr/internal/model"
	"github.com/inovacc/jotr/internal/params"
	"go.etcd.io/bbolt"
)

const (
	boltBucketJournal = "journal" // key: "entries" -> Entry array JSON
	boltBucketConfig  = "config"  // key: "config" -> Config JSON
)

type Bolt struct {
	db *bbolt.DB
}

// Open opens the Bolt backend at its default location in the app data
// directory.
func Open() (Backend, error) {
	path := filepath.Join(params.AppdataDir, "jotr.bolt")

	return NewBolt(path)
}

// NewBolt creates a new Bolt backend at the specified path.
// This is primarily exposed for testing purposes.
func NewBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketJournal)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketConfig)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Ping() error {
	return b.db.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) ReadEntries() ([]byte, error) {
	var data []byte

	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketJournal)).Get([]byte("entries"))

		if v == nil {
			return nil
		}

		// Bolt values are only valid inside the transaction
		data = make([]byte, len(v))
		copy(data, v)

		return nil
	})

	return data, err
}

func (b *Bolt) WriteEntries(data []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketJournal)).Put([]byte("entries"), data)
	})
}

func (b *Bolt) GetConfig() (*model.Config, error) {
	var cfg *model.Config

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))
		v := bucket.Get([]byte("config"))

		if v == nil {
			// Return default config if not found
			defaultCfg := model.DefaultConfig()
			cfg = &defaultCfg

			return nil
		}

		var c model.Config
		if err := json.Unmarshal(v, &c); err != nil {
			return err
		}

		cfg = &c

		return nil
	})

	return cfg, err
}

func (b *Bolt) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))

		return bucket.Put([]byte("config"), data)
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
