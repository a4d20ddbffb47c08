// Package todolist owns the in-memory item list of one widget instance and
// keeps its persisted copy in step. Add, Toggle and Remove are the only ways
// to change the list; each one saves the full list before returning.
//
// A List is not safe for concurrent use. The UI drives it from a single
// event loop.
package todolist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/todolist/internal/model"
)

var (
	ErrEmptyName   = errors.New("todolist: empty name")
	ErrDuplicateID = errors.New("todolist: duplicate id")
	ErrNotFound    = errors.New("todolist: item not found")
)

// Persister is the storage side of a List.
type Persister interface {
	Load(key string) []model.Item
	Save(key string, items []model.Item) error
}

// List is the ordered item sequence stored under one key.
type List struct {
	key   string
	store Persister
	items []model.Item
}

// Open loads the list stored under key. Loaded data that breaks the
// unique-id or non-empty-name rules is repaired: offending entries are
// dropped and the result is reported through dropped.
func Open(store Persister, key string) (l *List, dropped int) {
	l = &List{key: key, store: store}
	seen := make(map[int]bool)
	for _, it := range store.Load(key) {
		if strings.TrimSpace(it.Name) == "" || seen[it.ID] {
			dropped++
			continue
		}
		seen[it.ID] = true
		l.items = append(l.items, it)
	}
	return l, dropped
}

// Key is the storage key of the list.
func (l *List) Key() string { return l.key }

// Len reports the number of items.
func (l *List) Len() int { return len(l.items) }

// Items returns a copy of the items in insertion order.
func (l *List) Items() []model.Item {
	out := make([]model.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Get returns the item with id.
func (l *List) Get(id int) (model.Item, bool) {
	if i := l.index(id); i >= 0 {
		return l.items[i], true
	}
	return model.Item{}, false
}

// NextID is max(id)+1 over the current items, or 1 for an empty list.
// Stored ids are taken as they are, so [{id:-5}] yields -4.
// Deleting the item holding the max id frees that id for the next Add.
func (l *List) NextID() int {
	if len(l.items) == 0 {
		return 1
	}
	top := l.items[0].ID
	for _, it := range l.items[1:] {
		if it.ID > top {
			top = it.ID
		}
	}
	return top + 1
}

// Add appends a new pending item named name (trimmed) and persists.
// If only the save fails, the item stays in the list and is returned
// together with the error.
func (l *List) Add(name string) (model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Item{}, ErrEmptyName
	}
	it := model.Item{ID: l.NextID(), Name: name}
	if l.index(it.ID) >= 0 {
		return model.Item{}, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
	}
	l.items = append(l.items, it)
	return it, l.flush()
}

// Toggle flips the done flag of item id and persists. It returns the
// updated item; found is false (and nothing is written) when id is absent.
func (l *List) Toggle(id int) (it model.Item, found bool, err error) {
	i := l.index(id)
	if i < 0 {
		return model.Item{}, false, nil
	}
	l.items[i].Done = !l.items[i].Done
	return l.items[i], true, l.flush()
}

// Remove deletes item id and persists. found is false when id is absent.
func (l *List) Remove(id int) (found bool, err error) {
	i := l.index(id)
	if i < 0 {
		return false, nil
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true, l.flush()
}

// Stats counts done and pending items.
func (l *List) Stats() (done, pending int) {
	for _, it := range l.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func (l *List) index(id int) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) flush() error {
	if err := l.store.Save(l.key, l.Items()); err != nil {
		return fmt.Errorf("persist %q: %w", l.key, err)
	}
	return nil
}
