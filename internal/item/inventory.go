package item

import (
	"sort"

	"creature-arena/internal/apperr"
)

var ErrNotCarried = apperr.Invalid("item is not in the inventory")

type stack struct {
	item  Item
	count int
}

// Inventory holds items keyed by name, with a count per name.
type Inventory struct {
	stacks map[string]*stack
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{stacks: make(map[string]*stack)}
}

// Add stores n copies of it.
func (inv *Inventory) Add(it Item, n int) {
	if n <= 0 {
		return
	}
	s, ok := inv.stacks[it.Name()]
	if !ok {
		s = &stack{item: it}
		inv.stacks[it.Name()] = s
	}
	s.count += n
}

// Get returns the item stored under name without removing it.
func (inv *Inventory) Get(name string) (Item, bool) {
	s, ok := inv.stacks[name]
	if !ok {
		return nil, false
	}
	return s.item, true
}

// Count returns how many copies of name are carried.
func (inv *Inventory) Count(name string) int {
	if s, ok := inv.stacks[name]; ok {
		return s.count
	}
	return 0
}

// Take removes one copy of name and returns it.
func (inv *Inventory) Take(name string) (Item, error) {
	s, ok := inv.stacks[name]
	if !ok {
		return nil, ErrNotCarried
	}
	s.count--
	if s.count == 0 {
		delete(inv.stacks, name)
	}
	return s.item, nil
}

// Names returns the carried item names in sorted order.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.stacks))
	for n := range inv.stacks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of distinct items carried.
func (inv *Inventory) Size() int { return len(inv.stacks) }
