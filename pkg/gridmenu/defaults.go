package gridmenu

import (
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/lang"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform"
)

func (m *Manager) createDefaultItems() {
	m.back = CreateItem(m, ItemSpec[any]{
		Name: "back",
		Build: func(platform.User, any) *item.Builder {
			return item.Of(item.Arrow).Name(lang.Key(constants.KeyBackName))
		},
		OnClick: func(c Click, _ any) error {
			return c.Manager.OpenPrevious(c.User, 0)
		},
	})

	m.previous = CreateItem(m, ItemSpec[*PaginationContext]{
		Name: "previous_page",
		Build: func(u platform.User, p *PaginationContext) *item.Builder {
			return m.navigationItem(u, p, false)
		},
		OnClick: func(c Click, p *PaginationContext) error {
			if p != nil && p.Previous() {
				c.Manager.UpdateInventory(c.User)
			}
			return nil
		},
	})
	m.next = CreateItem(m, ItemSpec[*PaginationContext]{
		Name: "next_page",
		Build: func(u platform.User, p *PaginationContext) *item.Builder {
			return m.navigationItem(u, p, true)
		},
		OnClick: func(c Click, p *PaginationContext) error {
			if p != nil && p.Next() {
				c.Manager.UpdateInventory(c.User)
			}
			return nil
		},
	})

	m.confirm = CreateItem(m, ItemSpec[*ConfirmationContext]{
		Name: "confirm",
		Build: func(platform.User, *ConfirmationContext) *item.Builder {
			return item.Of(item.SlimeBall).Name(lang.Key(constants.KeyConfirmName))
		},
		OnClick: func(c Click, ctx *ConfirmationContext) error {
			if ctx == nil || ctx.Answered() {
				return nil
			}
			return ctx.Confirm(c.User)
		},
	})
	m.cancel = CreateItem(m, ItemSpec[*ConfirmationContext]{
		Name: "cancel",
		Build: func(platform.User, *ConfirmationContext) *item.Builder {
			return item.Of(item.RedstoneBlock).Name(lang.Key(constants.KeyCancelName))
		},
		OnClick: func(c Click, ctx *ConfirmationContext) error {
			if ctx == nil || ctx.Answered() {
				return nil
			}
			handled, err := ctx.Cancel(c.User)
			if handled {
				return err
			}
			return c.Manager.OpenPrevious(c.User, 0)
		},
	})
	m.preview = CreateItem(m, ItemSpec[*ConfirmationContext]{
		Name: "preview",
		Build: func(u platform.User, ctx *ConfirmationContext) *item.Builder {
			if ctx == nil || ctx.preview == nil {
				return nil
			}
			return ctx.preview(u)
		},
	})
}

// Separator returns the decorative item of material with a blank name. One
// item is registered per material.
func (m *Manager) Separator(material item.Material) *StaticItem {
	m.separatorsMu.Lock()
	defer m.separatorsMu.Unlock()

	if s, ok := m.separators[material]; ok {
		return s
	}
	s := m.CreateStaticItem(StaticItemSpec{
		Name: "separator:" + string(material),
		Build: func() *item.Builder {
			return item.Of(material).Name(lang.Literal(" "))
		},
	})
	m.separators[material] = s
	return s
}

// Back returns the item that opens the previous menu when clicked.
func (m *Manager) Back() *Item[any] {
	return m.back
}
