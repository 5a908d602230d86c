package client

import (
	"sort"

	"restaurant-menu-api/models"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "All"

// SortOrder is the client-side price ordering applied after fetch.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAsc
	SortDesc
)

func (s SortOrder) String() string {
	switch s {
	case SortAsc:
		return "price low-high"
	case SortDesc:
		return "price high-low"
	default:
		return "unsorted"
	}
}

// ViewState holds the derived view filters. It is a value type; every
// transition returns a new state, so view code can compare before/after.
type ViewState struct {
	Search   string
	Category string
	Sort     SortOrder
}

// NewViewState returns the initial state: no search, all categories,
// unsorted.
func NewViewState() ViewState {
	return ViewState{Category: CategoryAll, Sort: SortNone}
}

func (s ViewState) WithSearch(q string) ViewState {
	s.Search = q
	return s
}

func (s ViewState) WithCategory(c string) ViewState {
	if c == "" {
		c = CategoryAll
	}
	s.Category = c
	return s
}

// CycleSort advances unsorted → ascending → descending → unsorted.
func (s ViewState) CycleSort() ViewState {
	switch s.Sort {
	case SortNone:
		s.Sort = SortAsc
	case SortAsc:
		s.Sort = SortDesc
	default:
		s.Sort = SortNone
	}
	return s
}

// Cleared resets search, category and sort in one step. Favorites are not
// part of ViewState and are unaffected.
func (s ViewState) Cleared() ViewState {
	return NewViewState()
}

// SortByPrice returns a sorted copy of items; the input slice is left
// untouched. SortNone preserves the fetched order.
func SortByPrice(items []models.MenuItem, order SortOrder) []models.MenuItem {
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	switch order {
	case SortAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// FavoriteSet is the set of item IDs the user has marked. Members are never
// validated against the live catalog, so they may reference deleted items.
type FavoriteSet map[string]bool

func NewFavoriteSet(ids []string) FavoriteSet {
	s := FavoriteSet{}
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// Toggle adds the ID if absent and removes it if present. Toggling twice
// restores the prior state.
func (s FavoriteSet) Toggle(id string) {
	if s[id] {
		delete(s, id)
	} else {
		s[id] = true
	}
}

func (s FavoriteSet) Has(id string) bool { return s[id] }

// IDs returns the members in a deterministic order for persistence.
func (s FavoriteSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
