package shoplist

import (
	"context"
	"slices"
	"strings"

	"github.com/idilsaglam/shoplist/internal/model"
)

// AddItem appends a new unpurchased item to the end of the current list.
// A name that is blank after trimming is ignored and the zero Item is
// returned.
func (s *Store) AddItem(ctx context.Context, name string) (model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Item{}, nil
	}
	it := model.Item{ID: s.newID(), Name: name}
	s.current = append(s.current, it)
	s.log.Debug(ctx, "item added", "id", it.ID)
	return it.Clone(), s.persistCurrent(ctx)
}

// ToggleItem flips the purchased flag of id and then moves every
// unpurchased item ahead of every purchased one. The partition is stable:
// within each group items keep the order they had before the toggle.
func (s *Store) ToggleItem(ctx context.Context, id string) error {
	i := s.itemIndex(id)
	if i < 0 {
		return nil
	}
	s.current[i].Purchased = !s.current[i].Purchased
	slices.SortStableFunc(s.current, func(a, b model.Item) int {
		return purchasedRank(a) - purchasedRank(b)
	})
	return s.persistCurrent(ctx)
}

func purchasedRank(it model.Item) int {
	if it.Purchased {
		return 1
	}
	return 0
}

// EditItem renames id. Unknown ids and blank names are ignored.
func (s *Store) EditItem(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	i := s.itemIndex(id)
	if i < 0 || name == "" {
		return nil
	}
	if s.current[i].Name == name {
		return nil
	}
	s.current[i].Name = name
	return s.persistCurrent(ctx)
}

// SetPrice records (or with nil clears) the price of id. Negative prices
// are ignored.
func (s *Store) SetPrice(ctx context.Context, id string, price *float64) error {
	i := s.itemIndex(id)
	if i < 0 || (price != nil && *price < 0) {
		return nil
	}
	if price != nil {
		p := *price
		price = &p
	}
	s.current[i].Price = price
	return s.persistCurrent(ctx)
}

// RemoveItem drops id from the current list.
func (s *Store) RemoveItem(ctx context.Context, id string) error {
	i := s.itemIndex(id)
	if i < 0 {
		return nil
	}
	s.current = slices.Delete(s.current, i, i+1)
	return s.persistCurrent(ctx)
}

// ReorderItems moves activeID to the slot overID occupies. The active item
// is taken out first and then inserted at overID's original index, so
// moving the first of [X Y Z] onto Z yields [Y Z X]. Both ids must exist.
func (s *Store) ReorderItems(ctx context.Context, activeID, overID string) error {
	from, to := s.itemIndex(activeID), s.itemIndex(overID)
	if from < 0 || to < 0 || from == to {
		return nil
	}
	moved := s.current[from]
	s.current = slices.Delete(s.current, from, from+1)
	s.current = slices.Insert(s.current, to, moved)
	return s.persistCurrent(ctx)
}

// StartNewList discards the current list, saved or not. Asking the user
// first is up to the caller.
func (s *Store) StartNewList(ctx context.Context) error {
	s.current = []model.Item{}
	s.log.Info(ctx, "current list cleared")
	return s.persistCurrent(ctx)
}

// normalizeName is the key used to detect the same product under a
// different spelling of case or surrounding spaces.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
