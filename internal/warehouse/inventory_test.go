package warehouse

import (
	"errors"
	"sync"
	"testing"
)

func newTestInventory(t *testing.T) *Inventory {
	t.Helper()

	inv, err := NewInventory(Layout{Locations: []LayoutLocation{
		{Name: LoadingBayName, Capacity: 10, Items: []string{"Lamp", "Desk"}},
		{Name: "shelf:1", Capacity: 2},
	}})
	if err != nil {
		t.Fatalf("new inventory: %v", err)
	}
	return inv
}

func TestInventoryLookupByNameAndID(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t)

	byName, err := inv.Lookup("shelf:1")
	if err != nil {
		t.Fatalf("Lookup by name: %v", err)
	}
	if byName.ID == "" {
		t.Fatal("expected a generated location id")
	}

	byID, err := inv.Lookup(byName.ID)
	if err != nil {
		t.Fatalf("Lookup by id: %v", err)
	}
	if byID.Name != "shelf:1" {
		t.Fatalf("expected shelf:1, got %q", byID.Name)
	}

	if _, err := inv.Lookup("shelf:9"); !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestInventoryCapacityEnforced(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t)

	if err := inv.AddItem("shelf:1", "Lamp"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := inv.AddItem("shelf:1", "Desk"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := inv.AddItem("shelf:1", "Chair"); !errors.Is(err, ErrLocationFull) {
		t.Fatalf("expected ErrLocationFull, got %v", err)
	}

	// The rejected insert must not have grown the shelf.
	items, err := inv.Items("shelf:1")
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestInventoryRemoveLenient(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t)

	if err := inv.RemoveItem(LoadingBayName, "no-such-item"); err != nil {
		t.Fatalf("expected lenient remove to succeed, got %v", err)
	}
	if err := inv.RemoveItem("shelf:9", "Lamp"); !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestInventoryTakeStrict(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t)

	if err := inv.TakeItem(LoadingBayName, "Lamp"); err != nil {
		t.Fatalf("TakeItem: %v", err)
	}
	if err := inv.TakeItem(LoadingBayName, "Lamp"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInventoryRemovesSingleOccurrence(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t)

	if err := inv.AddItem(LoadingBayName, "Lamp"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := inv.TakeItem(LoadingBayName, "Lamp"); err != nil {
		t.Fatalf("TakeItem: %v", err)
	}

	has, err := inv.HasItem(LoadingBayName, "Lamp")
	if err != nil {
		t.Fatalf("HasItem: %v", err)
	}
	if !has {
		t.Fatal("expected one Lamp to remain")
	}
}

func TestInventorySummariesLayoutOrder(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t)

	summaries := inv.Summaries()
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Name != LoadingBayName || summaries[1].Name != "shelf:1" {
		t.Fatalf("unexpected order: %q, %q", summaries[0].Name, summaries[1].Name)
	}
	if summaries[0].ItemCount != 2 || summaries[0].Capacity != 10 {
		t.Fatalf("loading bay summary mismatch: %#v", summaries[0])
	}
}

func TestInventoryConcurrentAddsRespectCapacity(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = inv.AddItem("shelf:1", "Widget")
		}()
	}
	wg.Wait()

	items, err := inv.Items("shelf:1")
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("capacity invariant broken: %d items on a 2-slot shelf", len(items))
	}
}

func TestNewInventoryValidatesLayout(t *testing.T) {
	t.Parallel()

	if _, err := NewInventory(Layout{}); !errors.Is(err, ErrLayoutEmpty) {
		t.Fatalf("expected ErrLayoutEmpty, got %v", err)
	}
}
