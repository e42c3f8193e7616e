package gridmenu

import (
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform"
)

// ClickEvent is a click reported by the host.
type ClickEvent struct {
	User platform.User
	// Slot is the clicked slot of the open view, or -1 for clicks outside a
	// menu such as using a hotbar item.
	Slot int
	// Stack is the clicked stack. When nil and InMenu is set, the stack is
	// read from the open view.
	Stack  *item.Stack
	Shift  bool
	InMenu bool
}

// DropEvent is an item drop reported by the host.
type DropEvent struct {
	User  platform.User
	Stack *item.Stack
}

// CloseEvent reports that a user's view was closed, whatever the reason.
type CloseEvent struct {
	User      platform.User
	Container platform.Container
}

// HandleClick dispatches a click to the clicked item. It returns whether the
// host should cancel the click, which is always the case inside a gridmenu
// view and for any registered item elsewhere.
func (m *Manager) HandleClick(ev ClickEvent) bool {
	v, inView := m.opened(ev.User)
	inMenu := ev.InMenu && inView

	stack := ev.Stack
	if stack == nil && inMenu {
		stack = v.Get(ev.Slot)
	}

	it, ok := m.ParseItem(stack)
	if !ok {
		return inMenu
	}

	var value any
	if inMenu {
		value = v.valueAt(ev.Slot, it)
	}

	click := Click{
		Manager: m,
		User:    ev.User,
		Slot:    ev.Slot,
		Shift:   ev.Shift,
		InMenu:  inMenu,
	}
	if !inMenu {
		click.Slot = -1
	}

	m.guard("click", it, ev.User, func() error {
		handled, err := it.click(click, value)
		if !handled {
			m.logger.Debug("Click not handled", "item", it.Name(), "item_id", int32(it.ID()))
		}
		return err
	})
	return true
}

// HandleDrop runs the drop handler of a dropped item. It returns whether the
// host should cancel the drop: registered items stay in the user's hands
// unless they are droppable.
func (m *Manager) HandleDrop(ev DropEvent) bool {
	it, ok := m.ParseItem(ev.Stack)
	if !ok {
		return false
	}

	m.guard("drop", it, ev.User, func() error {
		_, err := it.drop(Drop{Manager: m, User: ev.User, Stack: ev.Stack})
		return err
	})
	return !it.Droppable()
}

// HandleClose runs the close hook of a closed view, unless it was soft
// closed.
func (m *Manager) HandleClose(ev CloseEvent) {
	v, ok := ev.Container.(*view)
	if !ok || v.manager != m {
		return
	}
	if v.softClosed {
		m.logger.Debug("Closed menu softly", "menu", v.menu.name, "user", ev.User.ID())
		return
	}

	m.logger.Debug("Closed menu", "menu", v.menu.name, "user", ev.User.ID())
	if v.menu.onClose == nil {
		return
	}
	m.guard("close", nil, ev.User, func() error {
		v.menu.onClose(v)
		return nil
	})
}
