package client

import (
	"reflect"
	"testing"

	"restaurant-menu-api/models"
)

func TestCycleSort(t *testing.T) {
	s := NewViewState()
	if s.Sort != SortNone {
		t.Fatalf("initial sort = %v, want SortNone", s.Sort)
	}

	s = s.CycleSort()
	if s.Sort != SortAsc {
		t.Errorf("after 1 toggle = %v, want SortAsc", s.Sort)
	}
	s = s.CycleSort()
	if s.Sort != SortDesc {
		t.Errorf("after 2 toggles = %v, want SortDesc", s.Sort)
	}
	// Three toggles return to the original unsorted order.
	s = s.CycleSort()
	if s.Sort != SortNone {
		t.Errorf("after 3 toggles = %v, want SortNone", s.Sort)
	}
}

func TestViewStateCleared(t *testing.T) {
	s := NewViewState().WithSearch("naan").WithCategory("Breads").CycleSort()
	s = s.Cleared()
	if s.Search != "" || s.Category != CategoryAll || s.Sort != SortNone {
		t.Errorf("Cleared() = %+v, want empty search, All, unsorted", s)
	}
}

func TestWithCategoryEmptyFallsBackToAll(t *testing.T) {
	s := NewViewState().WithCategory("")
	if s.Category != CategoryAll {
		t.Errorf("category = %q, want %q", s.Category, CategoryAll)
	}
}

func TestSortByPrice(t *testing.T) {
	items := []models.MenuItem{
		{ID: "a", Name: "Paneer Tikka", Price: 8.00},
		{ID: "b", Name: "Naan", Price: 2.50},
		{ID: "c", Name: "Lassi", Price: 3.75},
	}
	original := make([]models.MenuItem, len(items))
	copy(original, items)

	tests := []struct {
		name  string
		order SortOrder
		want  []string
	}{
		{"unsorted keeps fetch order", SortNone, []string{"a", "b", "c"}},
		{"ascending", SortAsc, []string{"b", "c", "a"}},
		{"descending", SortDesc, []string{"a", "c", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortByPrice(items, tt.order)
			ids := make([]string, len(got))
			for i, item := range got {
				ids[i] = item.ID
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("order = %v, want %v", ids, tt.want)
			}
		})
	}

	if !reflect.DeepEqual(items, original) {
		t.Error("SortByPrice mutated its input")
	}
}

func TestSortByPriceStable(t *testing.T) {
	items := []models.MenuItem{
		{ID: "a", Price: 5.00},
		{ID: "b", Price: 5.00},
		{ID: "c", Price: 1.00},
	}
	got := SortByPrice(items, SortAsc)
	if got[1].ID != "a" || got[2].ID != "b" {
		t.Errorf("equal-price items reordered: %v, %v", got[1].ID, got[2].ID)
	}
}

func TestFavoriteSetToggleInvolutive(t *testing.T) {
	s := NewFavoriteSet([]string{"x"})

	s.Toggle("y")
	if !s.Has("y") {
		t.Fatal("toggle did not add")
	}
	s.Toggle("y")
	if s.Has("y") {
		t.Fatal("second toggle did not remove")
	}
	if !s.Has("x") || len(s) != 1 {
		t.Errorf("set = %v, want only x", s.IDs())
	}
}

func TestFavoriteSetIDsDeterministic(t *testing.T) {
	s := NewFavoriteSet([]string{"c", "a", "b"})
	want := []string{"a", "b", "c"}
	for i := 0; i < 5; i++ {
		if got := s.IDs(); !reflect.DeepEqual(got, want) {
			t.Fatalf("IDs() = %v, want %v", got, want)
		}
	}
}
