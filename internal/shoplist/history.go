package shoplist

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/idilsaglam/shoplist/internal/model"
)

// SaveList moves the current list into history under title and the
// user-entered total, then empties the current list. The new entry goes
// first (history is newest-first). Saving an empty list does nothing and
// returns a nil list.
func (s *Store) SaveList(ctx context.Context, title string, total float64) (*model.SavedList, error) {
	if len(s.current) == 0 {
		return nil, nil
	}
	saved := model.SavedList{
		ID:    s.newID(),
		Title: title,
		Date:  s.now().UTC().Truncate(time.Millisecond),
		Total: total,
		Items: model.CloneItems(s.current),
	}
	s.history = slices.Insert(s.history, 0, saved)
	s.current = []model.Item{}
	s.log.Info(ctx, "list saved", "id", saved.ID, "items", len(saved.Items), "total", total)

	err := errors.Join(s.persistHistory(ctx), s.persistCurrent(ctx))
	out := saved.Clone()
	return &out, err
}

// DeleteList removes a saved list from history.
func (s *Store) DeleteList(ctx context.Context, id string) error {
	i := s.listIndex(id)
	if i < 0 {
		return nil
	}
	s.history = slices.Delete(s.history, i, i+1)
	s.log.Info(ctx, "saved list deleted", "id", id)
	return s.persistHistory(ctx)
}

// DuplicateList appends the items of saved to the current list as fresh,
// unpurchased copies with new ids, in their saved order. Items whose name
// (ignoring case and surrounding spaces) is already on the current list are
// skipped. When that leaves nothing to add, ErrNothingToAdd is returned
// and the list is untouched.
func (s *Store) DuplicateList(ctx context.Context, saved model.SavedList) ([]model.Item, error) {
	present := make(map[string]struct{}, len(s.current))
	for _, it := range s.current {
		present[normalizeName(it.Name)] = struct{}{}
	}

	var added []model.Item
	for _, it := range saved.Items {
		if _, ok := present[normalizeName(it.Name)]; ok {
			continue
		}
		cp := it.Clone()
		cp.ID = s.newID()
		cp.Purchased = false
		added = append(added, cp)
	}
	if len(added) == 0 {
		return nil, ErrNothingToAdd
	}

	s.current = append(s.current, added...)
	s.log.Info(ctx, "saved list duplicated", "source", saved.ID, "added", len(added),
		"skipped", len(saved.Items)-len(added))
	return model.CloneItems(added), s.persistCurrent(ctx)
}

// DefaultTitle is the title offered when saving on the given day.
func DefaultTitle(now time.Time) string {
	return "Purchase " + now.Format("02/01")
}
