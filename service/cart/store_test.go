package cart

import (
	"testing"

	cartEntity "storefront.GO/model/entity/cart"
)

func TestStore_InsertionOrderPreserved(t *testing.T) {
	s := NewStore()
	s.set(3, 10, 1)
	s.set(1, 20, 2)
	s.set(2, 30, 1)

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("len = %d", len(items))
	}
	if items[0].ProductID != 3 || items[1].ProductID != 1 || items[2].ProductID != 2 {
		t.Errorf("order: %v", items)
	}

	// Quantity update keeps position.
	s.set(3, 10, 5)
	items = s.Items()
	if items[0].ProductID != 3 || items[0].Quantity != 5 {
		t.Errorf("update moved item: %v", items)
	}
}

func TestStore_ExistingItemKeepsCapturedPrice(t *testing.T) {
	s := NewStore()
	s.set(1, 19.99, 1)
	s.set(1, 24.99, 2) // later price must not overwrite
	it, ok := s.Get(1)
	if !ok || it.UnitPrice != 19.99 || it.Quantity != 2 {
		t.Errorf("got %+v", it)
	}
}

func TestStore_RemoveAndClear(t *testing.T) {
	s := NewStore()
	s.set(1, 10, 1)
	s.set(2, 20, 1)
	s.remove(1)
	if _, ok := s.Get(1); ok {
		t.Error("item 1 still present")
	}
	if len(s.Items()) != 1 {
		t.Errorf("len = %d", len(s.Items()))
	}

	// Removing a missing item is a no-op.
	s.remove(99)

	s.clear()
	if len(s.Items()) != 0 {
		t.Errorf("clear left %d items", len(s.Items()))
	}
}

func TestStore_SubscribersNotifiedPerMutation(t *testing.T) {
	s := NewStore()
	n := 0
	unsub := s.Subscribe(func() { n++ })

	s.set(1, 10, 1)
	s.set(1, 10, 2)
	s.remove(1)
	s.clear()
	if n != 4 {
		t.Errorf("notifications = %d, want 4", n)
	}

	unsub()
	s.set(2, 10, 1)
	if n != 4 {
		t.Errorf("notified after unsubscribe: %d", n)
	}
}

func TestStore_Summary(t *testing.T) {
	s := NewStore()
	s.set(1, 20, 3)
	sum := s.Summary(testRules())
	if sum.Subtotal != 60 || sum.TotalQuantity != 3 {
		t.Errorf("summary: %+v", sum)
	}
}

func TestStore_Replace(t *testing.T) {
	s := NewStore()
	s.set(1, 10, 1)
	s.replace([]cartEntity.LineItem{
		{ProductID: 5, UnitPrice: 2, Quantity: 4},
		{ProductID: 6, UnitPrice: 3, Quantity: 1},
	})
	items := s.Items()
	if len(items) != 2 || items[0].ProductID != 5 || items[1].ProductID != 6 {
		t.Errorf("replace: %v", items)
	}
}
