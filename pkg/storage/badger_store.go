package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"bip-scraper/pkg/log"
	"bip-scraper/pkg/utils"
)

const (
	urlKeyPrefix = "url:"    // Prefix for URL keys in DB
	seenDBDir    = "seen_db" // Subdirectory name within stateDir for Badger DB files
)

// BadgerStore implements SeenStore using BadgerDB, persisting the set of
// accepted URLs across runs.
type BadgerStore struct {
	db       *badger.DB
	log      *logrus.Entry
	keyCount atomic.Int64 // Cached key count for O(1) SeenCount
}

// NewBadgerStore opens (or creates) the seen-URL database under stateDir.
func NewBadgerStore(stateDir string, logger *logrus.Entry) (*BadgerStore, error) {
	store := &BadgerStore{log: logger}

	dbPath := filepath.Join(stateDir, seenDBDir)
	logger.Infof("Initializing seen URL database at: %s", dbPath)

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, fmt.Errorf("cannot create state directory %s: %w", dbPath, err)
	}

	badgerLogger := log.NewBadgerLogrusAdapter(logger.WithField("component", "badgerdb"))
	opts := badger.DefaultOptions(dbPath).
		WithLogger(badgerLogger).
		WithNumVersionsToKeep(1)

	var err error
	store.db, err = badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open badger database at %s: %w", utils.ErrDatabase, dbPath, err)
	}

	count, err := store.countKeys()
	if err != nil {
		logger.Warnf("Failed to count existing keys: %v", err)
	} else {
		store.keyCount.Store(int64(count))
	}

	logger.Info("Seen URL database initialized successfully.")
	return store, nil
}

// countKeys performs a one-time full key scan during initialization.
func (s *BadgerStore) countKeys() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// MarkSeen records a normalized URL, returning true when it is new.
func (s *BadgerStore) MarkSeen(normalizedURL string) (bool, error) {
	key := []byte(urlKeyPrefix + normalizedURL)
	added := false

	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return nil // already present
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		added = true
		return txn.Set(key, nil)
	})
	if err != nil {
		return false, fmt.Errorf("%w: marking %s: %w", utils.ErrDatabase, normalizedURL, err)
	}
	if added {
		s.keyCount.Add(1)
	}
	return added, nil
}

// WasSeen reports whether a normalized URL was recorded before.
func (s *BadgerStore) WasSeen(normalizedURL string) (bool, error) {
	key := []byte(urlKeyPrefix + normalizedURL)
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			found = true
			return nil
		}
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		return false, fmt.Errorf("%w: checking %s: %w", utils.ErrDatabase, normalizedURL, err)
	}
	return found, nil
}

// SeenCount returns the cached number of recorded URLs.
func (s *BadgerStore) SeenCount() (int, error) {
	return int(s.keyCount.Load()), nil
}

// Close cleanly closes the database.
func (s *BadgerStore) Close() error {
	s.log.Info("Closing seen URL database...")
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: closing database: %w", utils.ErrDatabase, err)
	}
	return nil
}
