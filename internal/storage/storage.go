package storage

import "github.com/inovacc/jotr/internal/model"

// Backend defines the storage operations used by the app.
type Backend interface {
	// ReadEntries returns the serialized entry collection, or nil when
	// nothing has been stored yet.
	ReadEntries() ([]byte, error)
	// WriteEntries replaces the stored entry collection.
	WriteEntries(data []byte) error
	GetConfig() (*model.Config, error)
	SaveConfig(cfg *model.Config) error
	Ping() error
	Close() error
}
