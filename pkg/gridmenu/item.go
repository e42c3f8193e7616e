package gridmenu

import (
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform"
)

// ItemID identifies a registered item for the life of the process.
type ItemID int32

// Click describes a click on an item.
type Click struct {
	Manager *Manager
	User    platform.User
	Slot    int  // Slot in the menu, or -1 outside of a menu
	Shift   bool // Shift was held
	InMenu  bool // The click happened inside a gridmenu view
}

// Drop describes an item being dropped by a user.
type Drop struct {
	Manager *Manager
	User    platform.User
	Stack   *item.Stack
}

// Registered is an item known to the manager's registry. It is implemented
// by *Item[T] and *StaticItem.
type Registered interface {
	ID() ItemID
	Name() string
	Droppable() bool

	build(u platform.User, value any) *item.Builder
	click(c Click, value any) (handled bool, err error)
	drop(d Drop) (handled bool, err error)
}

type itemBase struct {
	id        ItemID
	name      string
	droppable bool
	onDrop    func(d Drop) error
}

func (b *itemBase) ID() ItemID {
	return b.id
}

// Name is the label used in logs.
func (b *itemBase) Name() string {
	return b.name
}

// Droppable reports whether users may drop the item. Items are not droppable
// unless their spec says so.
func (b *itemBase) Droppable() bool {
	return b.droppable
}

func (b *itemBase) drop(d Drop) (bool, error) {
	if b.onDrop == nil {
		return false, nil
	}
	return true, b.onDrop(d)
}

// ItemSpec defines an item whose appearance and behaviour depend on a value
// of type T: the menu's context, or a value attached to the slot.
type ItemSpec[T any] struct {
	Name      string
	Build     func(u platform.User, value T) *item.Builder
	OnClick   func(c Click, value T) error
	OnDrop    func(d Drop) error
	Droppable bool
}

// Item is a registered item with a typed context.
type Item[T any] struct {
	itemBase
	spec ItemSpec[T]
}

// CreateItem registers an item and assigns it the next id.
func CreateItem[T any](m *Manager, spec ItemSpec[T]) *Item[T] {
	it := &Item[T]{
		itemBase: itemBase{name: spec.Name, droppable: spec.Droppable, onDrop: spec.OnDrop},
		spec:     spec,
	}
	m.registry.add(it, &it.itemBase)
	return it
}

func (it *Item[T]) build(u platform.User, value any) *item.Builder {
	if it.spec.Build == nil {
		return nil
	}
	v, _ := valueAs[T](value)
	return it.spec.Build(u, v)
}

func (it *Item[T]) click(c Click, value any) (bool, error) {
	if it.spec.OnClick == nil {
		return false, nil
	}
	v, ok := valueAs[T](value)
	if !ok {
		return false, nil
	}
	return true, it.spec.OnClick(c, v)
}

// StaticItemSpec defines an item that looks the same in every context.
type StaticItemSpec struct {
	Name      string
	Build     func() *item.Builder
	OnClick   func(c Click) error
	OnDrop    func(d Drop) error
	Droppable bool
}

// StaticItem is a registered item without context.
type StaticItem struct {
	itemBase
	spec StaticItemSpec
}

// CreateStaticItem registers a context free item and assigns it the next id.
func (m *Manager) CreateStaticItem(spec StaticItemSpec) *StaticItem {
	it := &StaticItem{
		itemBase: itemBase{name: spec.Name, droppable: spec.Droppable, onDrop: spec.OnDrop},
		spec:     spec,
	}
	m.registry.add(it, &it.itemBase)
	return it
}

func (it *StaticItem) build(platform.User, any) *item.Builder {
	if it.spec.Build == nil {
		return nil
	}
	return it.spec.Build()
}

func (it *StaticItem) click(c Click, _ any) (bool, error) {
	if it.spec.OnClick == nil {
		return false, nil
	}
	return true, it.spec.OnClick(c)
}

// valueAs converts a context value. A nil value converts to the zero T.
func valueAs[T any](value any) (T, bool) {
	if value == nil {
		var zero T
		return zero, true
	}
	v, ok := value.(T)
	return v, ok
}
