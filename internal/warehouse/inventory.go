package warehouse

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// location is the inventory's owned representation of one slot. All
// access goes through Inventory methods under its mutex.
type location struct {
	id       string
	name     string
	capacity int
	items    []string
}

// LocationSummary is the read-only view streamed to clients.
type LocationSummary struct {
	ID        string
	Name      string
	ItemCount int
	Capacity  int
}

// Inventory owns the location table. One mutex guards the whole table
// so the capacity invariant (len(items) <= capacity) is atomic with
// respect to concurrent writers. Enumerations snapshot under the lock
// and release it before the caller streams.
type Inventory struct {
	mu     sync.Mutex
	byID   map[string]*location
	byName map[string]*location
	order  []*location
}

// NewInventory builds the location table from a layout.
func NewInventory(layout Layout) (*Inventory, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	inv := &Inventory{
		byID:   make(map[string]*location),
		byName: make(map[string]*location),
	}
	for _, entry := range layout.Locations {
		loc := &location{
			id:       uuid.NewString(),
			name:     entry.Name,
			capacity: entry.Capacity,
			items:    append([]string(nil), entry.Items...),
		}
		inv.byID[loc.id] = loc
		inv.byName[loc.name] = loc
		inv.order = append(inv.order, loc)
	}
	return inv, nil
}

// resolve returns the location for a name or id. Callers hold mu.
func (inv *Inventory) resolve(key string) (*location, error) {
	if loc, ok := inv.byName[key]; ok {
		return loc, nil
	}
	if loc, ok := inv.byID[key]; ok {
		return loc, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, key)
}

// Lookup resolves a location key to its summary view.
func (inv *Inventory) Lookup(key string) (LocationSummary, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	loc, err := inv.resolve(key)
	if err != nil {
		return LocationSummary{}, err
	}
	return loc.summary(), nil
}

// AddItem appends an item to a location. A location at capacity
// rejects the insertion and is left unchanged.
func (inv *Inventory) AddItem(key, item string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	loc, err := inv.resolve(key)
	if err != nil {
		return err
	}
	if len(loc.items) >= loc.capacity {
		return fmt.Errorf("%w: %s (%d/%d)", ErrLocationFull, loc.name, len(loc.items), loc.capacity)
	}
	loc.items = append(loc.items, item)
	return nil
}

// RemoveItem removes one occurrence of item from a location. A missing
// item is a silent no-op; this is the lenient cleanup path used by the
// interactive surface.
func (inv *Inventory) RemoveItem(key, item string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	loc, err := inv.resolve(key)
	if err != nil {
		return err
	}
	loc.remove(item)
	return nil
}

// TakeItem removes one occurrence of item and fails with
// ErrItemNotFound when it is absent. The index is found immediately
// before removal, under the same lock hold.
func (inv *Inventory) TakeItem(key, item string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	loc, err := inv.resolve(key)
	if err != nil {
		return err
	}
	if !loc.remove(item) {
		return fmt.Errorf("%w: %q at %s", ErrItemNotFound, item, loc.name)
	}
	return nil
}

// HasItem reports whether a location currently holds item.
func (inv *Inventory) HasItem(key, item string) (bool, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	loc, err := inv.resolve(key)
	if err != nil {
		return false, err
	}
	for _, have := range loc.items {
		if have == item {
			return true, nil
		}
	}
	return false, nil
}

// SpareCapacity returns how many more items a location can take.
func (inv *Inventory) SpareCapacity(key string) (int, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	loc, err := inv.resolve(key)
	if err != nil {
		return 0, err
	}
	return loc.capacity - len(loc.items), nil
}

// Items returns a point-in-time copy of a location's contents.
func (inv *Inventory) Items(key string) ([]string, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	loc, err := inv.resolve(key)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), loc.items...), nil
}

// Summaries returns a point-in-time view of every location in layout order.
func (inv *Inventory) Summaries() []LocationSummary {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	out := make([]LocationSummary, 0, len(inv.order))
	for _, loc := range inv.order {
		out = append(out, loc.summary())
	}
	return out
}

func (l *location) summary() LocationSummary {
	return LocationSummary{
		ID:        l.id,
		Name:      l.name,
		ItemCount: len(l.items),
		Capacity:  l.capacity,
	}
}

// remove deletes the first occurrence of item, reporting whether one
// was present. Callers hold mu.
func (l *location) remove(item string) bool {
	for i, have := range l.items {
		if have == item {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}
