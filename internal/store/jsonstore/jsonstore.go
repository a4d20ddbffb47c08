package jsonstore

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
)

// Store maps a list key to a JSON-encoded []model.Item in a key/value backend.
type Store struct {
	kv     store.Storage
	logger *log.Logger
}

// New wraps kv. A nil logger falls back to log.Default().
func New(kv store.Storage, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{kv: kv, logger: logger}
}

// Load returns the items saved under key. Missing, unreadable or malformed
// data yields an empty list; the fault is logged, never returned.
func (s *Store) Load(key string) []model.Item {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.logger.Warn("storage read failed, starting empty", "key", key, "err", err)
		return []model.Item{}
	}
	if !ok || raw == "" {
		return []model.Item{}
	}
	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("malformed list data, starting empty", "key", key, "err", err)
		return []model.Item{}
	}
	if items == nil {
		items = []model.Item{}
	}
	return items
}

// Save replaces the list stored under key.
func (s *Store) Save(key string, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.kv.Set(key, string(b)); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	s.logger.Debug("list saved", "key", key, "items", len(items))
	return nil
}

// Keys lists every stored list key.
func (s *Store) Keys() ([]string, error) {
	return s.kv.Keys()
}
