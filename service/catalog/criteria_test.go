package catalog

import (
	"testing"
)

func TestStore_FilterChangesResetPage(t *testing.T) {
	s := NewStore()
	s.SetPage(4)
	if s.Get().Page != 4 {
		t.Fatalf("Page = %d, want 4", s.Get().Page)
	}

	s.SetSearch("lamp")
	if s.Get().Page != 1 {
		t.Errorf("SetSearch kept page %d", s.Get().Page)
	}

	s.SetPage(3)
	s.SetCategory("home")
	if s.Get().Page != 1 {
		t.Errorf("SetCategory kept page %d", s.Get().Page)
	}

	s.SetPage(3)
	s.SetSort(SortRating)
	if s.Get().Page != 1 {
		t.Errorf("SetSort kept page %d", s.Get().Page)
	}

	s.SetPage(3)
	s.SetPriceBounds(10, 100)
	if s.Get().Page != 1 {
		t.Errorf("SetPriceBounds kept page %d", s.Get().Page)
	}
}

func TestStore_SetPageKeepsFilters(t *testing.T) {
	s := NewStore()
	s.SetSearch("lamp")
	s.SetPage(2)
	c := s.Get()
	if c.Search != "lamp" || c.Page != 2 {
		t.Errorf("got %+v", c)
	}
}

func TestStore_NormalizesOnEveryChange(t *testing.T) {
	s := NewStore()
	s.SetPriceBounds(300, 50)
	c := s.Get()
	if c.MinPrice != 50 || c.MaxPrice != 300 {
		t.Errorf("bounds not swapped: %+v", c)
	}

	s.SetSort("not-a-sort")
	if s.Get().Sort != SortName {
		t.Errorf("Sort = %q", s.Get().Sort)
	}

	s.SetPage(-2)
	if s.Get().Page != 1 {
		t.Errorf("Page = %d", s.Get().Page)
	}

	s.SetSearch("  padded  ")
	if s.Get().Search != "padded" {
		t.Errorf("Search = %q", s.Get().Search)
	}
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	s := NewStore()
	var seen []Criteria
	unsub := s.Subscribe(func(c Criteria) { seen = append(seen, c) })

	s.SetSearch("a")
	s.SetPage(2)
	if len(seen) != 2 {
		t.Fatalf("notifications = %d, want 2", len(seen))
	}
	if seen[0].Search != "a" || seen[1].Page != 2 {
		t.Errorf("payloads: %+v", seen)
	}

	unsub()
	s.SetSearch("b")
	if len(seen) != 2 {
		t.Errorf("still notified after unsubscribe: %d", len(seen))
	}
}

func TestStore_ResetAndRestore(t *testing.T) {
	s := NewStore()
	s.SetSearch("x")
	s.SetPage(5)
	s.Reset()
	if s.Get() != DefaultCriteria() {
		t.Errorf("Reset: got %+v", s.Get())
	}

	c := DefaultCriteria()
	c.Brand = "Acme"
	c.Page = 7
	s.Restore(c)
	got := s.Get()
	if got.Brand != "Acme" || got.Page != 7 {
		t.Errorf("Restore: got %+v", got)
	}
}
