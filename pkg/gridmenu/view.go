package gridmenu

import (
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform"
)

// view is one opening of a menu for one user. It is the container handed to
// the host.
type view struct {
	manager *Manager
	menu    *menuCore
	user    platform.User

	input   any // Value passed to OpenMenu, replayed by OpenPrevious
	context any // Value items are built with

	content *Content
	stacks  []*item.Stack

	rendered   bool
	softClosed bool
}

func newView(m *Manager, menu *menuCore, u platform.User, input any) *view {
	v := &view{
		manager: m,
		menu:    menu,
		user:    u,
		input:   input,
		stacks:  make([]*item.Stack, constants.SlotCount(menu.rows)),
	}
	v.context = menu.attach(v)
	return v
}

func (v *view) Size() int {
	return len(v.stacks)
}

func (v *view) Get(slot int) *item.Stack {
	if slot < 0 || slot >= len(v.stacks) {
		return nil
	}
	return v.stacks[slot]
}

func (v *view) Set(slot int, stack *item.Stack) {
	if slot < 0 || slot >= len(v.stacks) {
		return
	}
	v.stacks[slot] = stack
}

// ensureBuilt runs the build function unless this view already has content.
func (v *view) ensureBuilt() {
	if v.content != nil {
		return
	}
	v.content = newContent(v.menu.rows)
	v.menu.build(v)
}

// update runs the menu's update function, then renders every slot the first
// time and only dynamic slots after that.
func (v *view) update() {
	v.ensureBuilt()

	if v.menu.update != nil {
		v.menu.update(v)
	}
	v.render(!v.rendered)
	v.rendered = true
}

func (v *view) render(all bool) {
	for slot := range v.stacks {
		if !all && v.menu.typeOf(slot) != SlotDynamic {
			continue
		}
		v.stacks[slot] = v.renderSlot(slot)
	}
}

func (v *view) renderSlot(slot int) *item.Stack {
	p, ok := v.content.Resolve(slot)
	if !ok {
		return nil
	}
	value := v.context
	if p.HasValue {
		value = p.Value
	}
	return v.manager.BuildStack(p.Item, v.user, value)
}

// valueAt returns the value an item in slot is built with.
func (v *view) valueAt(slot int, it Registered) any {
	if v.content == nil {
		return v.context
	}
	if p, ok := v.content.Explicit(slot); ok && p.HasValue && p.Item.ID() == it.ID() {
		return p.Value
	}
	return v.context
}
