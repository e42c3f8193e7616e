package gridmenu

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/fault"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
)

// registry stores items densely: the item with id n lives at index n-1.
// Items are never removed.
type registry struct {
	counter atomic.Int32

	mu    sync.RWMutex
	items []Registered
}

func (r *registry) add(it Registered, base *itemBase) {
	base.id = ItemID(r.counter.Inc())
	if base.name == "" {
		base.name = fmt.Sprintf("item-%d", base.id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	index := int(base.id) - 1
	if index >= len(r.items) {
		grown := make([]Registered, index+1, max(index+1, 2*len(r.items)))
		copy(grown, r.items)
		r.items = grown
	}
	r.items[index] = it
}

func (r *registry) get(id ItemID) (Registered, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index := int(id) - 1
	if index < 0 || index >= len(r.items) || r.items[index] == nil {
		return nil, false
	}
	return r.items[index], true
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// ParseItem recovers the registered item a stack was built from. Stacks
// built elsewhere, or carrying an unknown id, report false.
func (m *Manager) ParseItem(stack *item.Stack) (Registered, bool) {
	if stack.IsEmpty() {
		return nil, false
	}
	id, ok := stack.GetInt(constants.ItemTagKey)
	if !ok {
		return nil, false
	}
	return m.registry.get(ItemID(id))
}

// LookupItem returns the item with the given id.
func (m *Manager) LookupItem(id ItemID) (Registered, error) {
	it, ok := m.registry.get(id)
	if !ok {
		return nil, fault.New("lookup_item", fault.ErrNotFound, "no item with id %d", id)
	}
	return it, nil
}

// ItemCount returns the number of registered items.
func (m *Manager) ItemCount() int {
	return m.registry.len()
}
