package signature

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicateName is matched by every *DuplicateNameError.
	ErrDuplicateName = errors.New("duplicate signature name")
	ErrEmptyName     = errors.New("signature name is empty")
)

// DuplicateNameError reports two items sharing a name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate signature name %q", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// Set is an immutable snapshot of signature items sorted by name.
// A nil *Set behaves as an empty set.
type Set struct {
	items []Item
}

// NewSet copies items into a sorted snapshot. Names must be non-empty and
// unique; the first violation is returned.
func NewSet(items ...Item) (*Set, error) {
	sorted := make([]Item, len(items))
	for i, it := range items {
		if it.Name == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrEmptyName)
		}
		sorted[i] = it.withDefaults()
	}
	slices.SortStableFunc(sorted, func(a, b Item) int { return cmp.Compare(a.Name, b.Name) })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Name == sorted[i-1].Name {
			return nil, &DuplicateNameError{Name: sorted[i].Name}
		}
	}
	return &Set{items: sorted}, nil
}

// FromMap builds a Set from items keyed by name. An item with an empty Name
// takes its key; an item whose Name disagrees with its key is rejected.
func FromMap(m map[string]Item) (*Set, error) {
	items := make([]Item, 0, len(m))
	for key, raw := range m {
		it, err := keyedItem(key, raw)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return NewSet(items...)
}

func keyedItem(key string, it Item) (Item, error) {
	switch it.Name {
	case "":
		it.Name = key
	case key:
	default:
		return Item{}, fmt.Errorf("signature %q stored under key %q", it.Name, key)
	}
	return it, nil
}

// Items returns a copy of the items in ascending name order.
func (s *Set) Items() []Item {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// Len returns the number of items.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Lookup finds an item by exact name.
func (s *Set) Lookup(name string) (Item, bool) {
	if s == nil {
		return Item{}, false
	}
	i, ok := slices.BinarySearchFunc(s.items, name, func(it Item, n string) int { return cmp.Compare(it.Name, n) })
	if !ok {
		return Item{}, false
	}
	return s.items[i], true
}
