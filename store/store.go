// Package store persists named inventory snapshots in a badger database.
// A snapshot is the inventory's YAML document compressed with LZMA.
package store

import (
	"bytes"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/katalvlaran/ocegraph/inventory"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz/lzma"
)

const keyPrefix = "inventory/"

// Sentinel errors for the snapshot store.
var (
	ErrNotFound  = errors.New("store: snapshot not found")
	ErrEmptyName = errors.New("store: snapshot name is empty")
	ErrNoPath    = errors.New("store: path is required unless in-memory")
)

// Config configures Open.
type Config struct {
	Path     string // database directory; ignored when InMemory
	InMemory bool
	Logger   *logrus.Logger
}

// Store is a snapshot store. It is safe for concurrent use.
type Store struct {
	db  *badger.DB
	log *logrus.Logger
}

// Open opens (or creates) the database described by cfg.
func Open(cfg Config) (*Store, error) {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrNoPath
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "store: open badger")
	}
	cfg.Logger.WithFields(logrus.Fields{"path": cfg.Path, "in_memory": cfg.InMemory}).Info("store: opened")

	return &Store{db: db, log: cfg.Logger}, nil
}

// Save writes inv under name, replacing any previous snapshot.
func (s *Store) Save(name string, inv *inventory.Inventory) error {
	if name == "" {
		return ErrEmptyName
	}
	doc, err := inv.EncodeYAML()
	if err != nil {
		return err
	}
	blob, err := compress(doc)
	if err != nil {
		return errors.Wrapf(err, "store: compress %q", name)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+name), blob)
	})
	if err != nil {
		return errors.Wrapf(err, "store: save %q", name)
	}
	s.log.WithFields(logrus.Fields{
		"name":  name,
		"nodes": inv.NodeCount(),
		"links": inv.LinkCount(),
		"bytes": len(blob),
	}).Info("store: snapshot saved")

	return nil
}

// Load reads the snapshot stored under name.
//
// Errors: ErrEmptyName, ErrNotFound.
func (s *Store) Load(name string) (*inventory.Inventory, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	var blob []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + name))
		if err != nil {
			return err
		}
		blob, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "store: load %q", name)
	}

	doc, err := decompress(blob)
	if err != nil {
		return nil, errors.Wrapf(err, "store: decompress %q", name)
	}
	inv, err := inventory.ParseYAML(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "store: decode %q", name)
	}
	s.log.WithField("name", name).Debug("store: snapshot loaded")

	return inv, nil
}

// List returns the snapshot names in key order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}
		return nil
	})
	return names, errors.Wrap(err, "store: list")
}

// Delete removes the snapshot stored under name. Deleting a missing
// snapshot is not an error.
func (s *Store) Delete(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + name))
	})
	return errors.Wrapf(err, "store: delete %q", name)
}

// Close releases the database.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "store: close")
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(data); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err = buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
