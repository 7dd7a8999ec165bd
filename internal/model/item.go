package model

import "time"

// Item is a single entry on a shopping list.
// Price is optional; nil means "not entered".
type Item struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Purchased bool     `json:"purchased"`
	Price     *float64 `json:"price,omitempty"`
}

// SavedList is a snapshot of a finished shopping trip. Total is what the
// user typed in, not a sum of item prices.
type SavedList struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
	Items []Item    `json:"items"`
}

// Clone returns a copy that shares no memory with it.
func (it Item) Clone() Item {
	if it.Price != nil {
		p := *it.Price
		it.Price = &p
	}
	return it
}

// Clone returns a deep copy of the list, items included.
func (l SavedList) Clone() SavedList {
	l.Items = CloneItems(l.Items)
	return l
}

// CloneItems copies a slice of items. A nil slice comes back empty, so
// callers can always marshal the result as a JSON array.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
