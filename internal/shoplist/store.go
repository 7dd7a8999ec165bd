// Package shoplist holds the shopping-list state: the current list being
// edited and the history of saved lists. Every mutation updates memory
// first and then rewrites the touched collection in the key-value store.
//
// Persistence errors are returned to the caller but never undo the
// in-memory change, so a failing disk degrades the session to memory-only
// instead of losing edits. Invalid input (blank names, unknown ids, saving
// an empty list) is ignored without an error.
package shoplist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/shoplist/internal/logging"
	"github.com/idilsaglam/shoplist/internal/model"
)

// Storage keys. Each holds the full JSON encoding of its collection.
const (
	KeyCurrentList = "current-list"
	KeyHistory     = "history"
)

// ErrNothingToAdd is returned by DuplicateList when every item of the
// saved list is already on the current list.
var ErrNothingToAdd = errors.New("nothing new to add")

// KV is the subset of store.KV the list state needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type Store struct {
	kv  KV
	log logging.Logger

	newID func() string
	now   func() time.Time

	current []model.Item
	history []model.SavedList
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithIDFunc replaces uuid generation, mostly for deterministic tests.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock replaces time.Now for the date stamped on saved lists.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// Open loads both collections from kv. Absent keys start empty.
func Open(ctx context.Context, kv KV, opts ...Option) (*Store, error) {
	s := &Store{
		kv:      kv,
		log:     logging.NewNop(),
		newID:   func() string { return uuid.NewString() },
		now:     time.Now,
		current: []model.Item{},
		history: []model.SavedList{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx, KeyCurrentList, &s.current); err != nil {
		return nil, err
	}
	if err := s.load(ctx, KeyHistory, &s.history); err != nil {
		return nil, err
	}
	// A stored "null" decodes to nil; keep both encoded as arrays.
	if s.current == nil {
		s.current = []model.Item{}
	}
	if s.history == nil {
		s.history = []model.SavedList{}
	}
	s.log.Debug(ctx, "lists loaded", "items", len(s.current), "saved_lists", len(s.history))
	return s, nil
}

func (s *Store) load(ctx context.Context, key string, dst any) error {
	b, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if b == nil {
		return nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// CurrentList returns a copy of the list being edited, in display order.
func (s *Store) CurrentList() []model.Item {
	return model.CloneItems(s.current)
}

// History returns a copy of the saved lists, newest first.
func (s *Store) History() []model.SavedList {
	out := make([]model.SavedList, len(s.history))
	for i, l := range s.history {
		out[i] = l.Clone()
	}
	return out
}

// ItemAt returns the item at a 1-based position of the current list.
func (s *Store) ItemAt(pos int) (model.Item, bool) {
	if pos < 1 || pos > len(s.current) {
		return model.Item{}, false
	}
	return s.current[pos-1].Clone(), true
}

// ListAt returns the saved list at a 1-based position of the history.
func (s *Store) ListAt(pos int) (model.SavedList, bool) {
	if pos < 1 || pos > len(s.history) {
		return model.SavedList{}, false
	}
	return s.history[pos-1].Clone(), true
}

// FindList looks a saved list up by id.
func (s *Store) FindList(id string) (model.SavedList, bool) {
	if i := s.listIndex(id); i >= 0 {
		return s.history[i].Clone(), true
	}
	return model.SavedList{}, false
}

// Stats counts purchased and pending items on the current list.
func (s *Store) Stats() (purchased, pending int) {
	for _, it := range s.current {
		if it.Purchased {
			purchased++
		} else {
			pending++
		}
	}
	return
}

func (s *Store) persistCurrent(ctx context.Context) error {
	if err := s.persist(ctx, KeyCurrentList, s.current); err != nil {
		return fmt.Errorf("persist current list: %w", err)
	}
	return nil
}

func (s *Store) persistHistory(ctx context.Context) error {
	if err := s.persist(ctx, KeyHistory, s.history); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

func (s *Store) persist(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.kv.Set(ctx, key, b); err != nil {
		s.log.Error(ctx, "write failed, keeping in-memory state", "key", key, "error", err)
		return err
	}
	return nil
}

func (s *Store) itemIndex(id string) int {
	for i, it := range s.current {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) listIndex(id string) int {
	for i, l := range s.history {
		if l.ID == id {
			return i
		}
	}
	return -1
}
