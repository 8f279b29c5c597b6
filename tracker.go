package privates

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/etnz/privates/date"
	"github.com/etnz/privates/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Storage keys. Versioned by suffix so the schema can evolve without a
// migration: a new shape reads from a new key and falls back to defaults.
const (
	keyItems   = "privates.items.v1"
	keyTotal   = "privates.earnings.total.v1"
	keyHistory = "privates.earnings.history.v1"
	keyTheme   = "privates.theme.v1"
	keyFilter  = "privates.filter"
)

// Tracker owns the whole application state: the item collection (newest
// first) and the earnings ledger. Every mutation persists through the store
// before returning; the store is a mirror, the Tracker is the source of truth
// for the session.
type Tracker struct {
	items   []Item
	total   Amount
	history []LedgerEntry

	store *store.Store
	now   func() time.Time
}

// Open loads tracker state from s. Absent or corrupt records fall back to
// empty defaults, the tracker is always usable.
func Open(s *store.Store) *Tracker {
	return &Tracker{
		items:   store.LoadJSON(s, keyItems, []Item{}),
		total:   Amount{value: store.LoadNumber(s, keyTotal, decimal.Zero)},
		history: store.LoadJSON(s, keyHistory, []LedgerEntry{}),
		store:   s,
		now:     time.Now,
	}
}

// Items returns the item collection, newest first.
func (t *Tracker) Items() []Item { return slices.Clone(t.items) }

// EarningsTotal returns the running earnings total.
func (t *Tracker) EarningsTotal() Amount { return t.total }

// History returns the earnings ledger in chronological order.
func (t *Tracker) History() []LedgerEntry { return slices.Clone(t.history) }

// Find returns the item with the given id.
func (t *Tracker) Find(id string) (Item, bool) {
	for _, it := range t.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Resolve returns the item whose id matches idOrPrefix, either exactly or as
// a unique prefix. Ambiguous prefixes resolve to nothing.
func (t *Tracker) Resolve(idOrPrefix string) (Item, bool) {
	if it, ok := t.Find(idOrPrefix); ok {
		return it, true
	}
	var found Item
	var n int
	for _, it := range t.items {
		if strings.HasPrefix(it.ID, idOrPrefix) {
			found = it
			n++
		}
	}
	if n != 1 {
		return Item{}, false
	}
	return found, true
}

// AddItem constructs a new item with a fresh id and the current timestamp,
// prepends it to the collection and persists. The name must not be empty; a
// negative price is coerced to zero.
func (t *Tracker) AddItem(name string, category Category, price Amount, due date.Date, note string, rented bool) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, errors.New("item name must not be empty")
	}
	if price.IsNegative() {
		price = Amount{}
	}
	it := Item{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		Price:     price,
		DueDate:   due,
		Note:      note,
		Rented:    rented,
		CreatedAt: t.now(),
	}
	t.items = append([]Item{it}, t.items...)
	t.saveItems()
	return it, nil
}

// ItemUpdate lists the mutable fields of an item. Nil fields keep their
// current value. ID and CreatedAt cannot be updated.
type ItemUpdate struct {
	Name     *string
	Category *Category
	Price    *Amount
	DueDate  *date.Date
	Note     *string
	Rented   *bool
}

// UpdateItem overwrites the mutable fields of the item with the given id and
// persists. It reports false, without mutation, when the id is unknown.
func (t *Tracker) UpdateItem(id string, u ItemUpdate) bool {
	for idx := range t.items {
		it := &t.items[idx]
		if it.ID != id {
			continue
		}
		if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
			it.Name = strings.TrimSpace(*u.Name)
		}
		if u.Category != nil {
			it.Category = *u.Category
		}
		if u.Price != nil {
			it.Price = *u.Price
			if it.Price.IsNegative() {
				it.Price = Amount{}
			}
		}
		if u.DueDate != nil {
			it.DueDate = *u.DueDate
		}
		if u.Note != nil {
			it.Note = *u.Note
		}
		if u.Rented != nil {
			it.Rented = *u.Rented
		}
		t.saveItems()
		return true
	}
	return false
}

// ToggleRented flips the rented flag of the item with the given id. It
// reports false, without mutation, when the id is unknown.
func (t *Tracker) ToggleRented(id string) bool {
	for idx := range t.items {
		if t.items[idx].ID == id {
			t.items[idx].Rented = !t.items[idx].Rented
			t.saveItems()
			return true
		}
	}
	return false
}

// RemoveItem permanently deletes the item with the given id. Confirmation is
// the caller's responsibility; there is no soft delete. It reports false when
// the id is unknown.
func (t *Tracker) RemoveItem(id string) bool {
	kept := make([]Item, 0, len(t.items))
	for _, it := range t.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(t.items) {
		return false
	}
	t.items = kept
	t.saveItems()
	return true
}

// ApplyDelta parses a signed earnings adjustment from raw input, adds it to
// the running total (rounded to 2 decimals) and appends a ledger entry with
// the current timestamp. Malformed input is rejected silently: the second
// return value is false and nothing changes.
func (t *Tracker) ApplyDelta(raw, reason string) (LedgerEntry, bool) {
	delta, ok := ParseDelta(raw)
	if !ok {
		return LedgerEntry{}, false
	}
	t.total = t.total.Add(delta).Round2()
	e := LedgerEntry{TS: t.now(), Delta: delta, Reason: reason}
	t.history = append(t.history, e)
	t.saveEarnings()
	return e, true
}

// ResetEarnings zeroes the earnings total and clears the ledger history.
// Interactive confirmation happens before this call.
func (t *Tracker) ResetEarnings() {
	t.total = Amount{}
	t.history = []LedgerEntry{}
	t.saveEarnings()
}

// ResetAll clears the item collection and the earnings ledger. Interactive
// confirmation happens before this call.
func (t *Tracker) ResetAll() {
	t.items = []Item{}
	t.saveItems()
	t.ResetEarnings()
}

// StatusFilter returns the persisted status filter, defaulting to FilterAll.
func (t *Tracker) StatusFilter() StatusFilter {
	f, err := ParseStatusFilter(store.LoadString(t.store, keyFilter, string(FilterAll)))
	if err != nil {
		return FilterAll
	}
	return f
}

// SetStatusFilter persists the last selected status filter.
func (t *Tracker) SetStatusFilter(f StatusFilter) {
	t.store.Put(keyFilter, string(f))
}

// Theme returns the persisted UI theme, defaulting to "dark".
func (t *Tracker) Theme() string {
	theme := store.LoadString(t.store, keyTheme, "dark")
	if theme != "dark" && theme != "light" {
		return "dark"
	}
	return theme
}

// SetTheme persists the UI theme preference.
func (t *Tracker) SetTheme(theme string) error {
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("unknown theme %q, want dark or light", theme)
	}
	t.store.Put(keyTheme, theme)
	return nil
}

func (t *Tracker) saveItems() {
	store.SaveJSON(t.store, keyItems, t.items)
}

func (t *Tracker) saveEarnings() {
	t.store.Put(keyTotal, t.total.Plain())
	store.SaveJSON(t.store, keyHistory, t.history)
}
