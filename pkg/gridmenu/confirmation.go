package gridmenu

import (
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/fault"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/lang"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/layout"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform"
)

// ConfirmationContext is the context of a confirmation view: the payload
// being confirmed and what to do with the answer. A context answers once.
type ConfirmationContext struct {
	Payload any

	preview   func(u platform.User) *item.Builder
	onConfirm func(u platform.User) error
	onCancel  func(u platform.User) error
	answered  bool
}

// Answered reports whether Confirm or Cancel already ran.
func (c *ConfirmationContext) Answered() bool {
	return c.answered
}

// Confirm runs the confirm callback.
func (c *ConfirmationContext) Confirm(u platform.User) error {
	if c.answered {
		return fault.New("confirm", fault.ErrIllegalState, "confirmation already answered")
	}
	c.answered = true
	if c.onConfirm == nil {
		return nil
	}
	return c.onConfirm(u)
}

// Cancel runs the cancel callback. It reports false when there is none, in
// which case the caller decides where the user goes.
func (c *ConfirmationContext) Cancel(u platform.User) (bool, error) {
	if c.answered {
		return true, fault.New("cancel", fault.ErrIllegalState, "confirmation already answered")
	}
	c.answered = true
	if c.onCancel == nil {
		return false, nil
	}
	return true, c.onCancel(u)
}

// ConfirmationSpec defines a yes/no menu about a payload of type T.
type ConfirmationSpec[T any] struct {
	Name  string
	Title func(u platform.User, payload T) lang.Translation // Defaults to the built-in title
	// Preview draws the payload in the middle of the top half.
	Preview func(u platform.User, payload T) *item.Builder
	// Layout and LayoutMaterial decorate the menu. They default to the
	// configured confirmation layout and separator.
	Layout         layout.Layout
	LayoutMaterial item.Material
	OnClose        func(u platform.User, payload T)
}

// ConfirmationMenu is a fixed five row menu with Confirm, Cancel and a
// preview of the payload.
type ConfirmationMenu[T any] struct {
	core *menuCore
	spec ConfirmationSpec[T]
}

type confirmationMenu struct {
	layout   layout.Layout
	material item.Material
}

func NewConfirmationMenu[T any](spec ConfirmationSpec[T]) *ConfirmationMenu[T] {
	ext := &confirmationMenu{layout: spec.Layout, material: spec.LayoutMaterial}
	core := &menuCore{
		kind:         KindConfirmation,
		name:         spec.Name,
		rows:         constants.ConfirmationRows,
		confirmation: ext,
	}

	payloadOf := func(v *view) T {
		ctx, _ := v.context.(*ConfirmationContext)
		if ctx == nil {
			var zero T
			return zero
		}
		t, _ := valueAs[T](ctx.Payload)
		return t
	}

	core.accepts = func(value any) bool {
		ctx, ok := value.(*ConfirmationContext)
		return ok && ctx != nil
	}
	core.attach = func(v *view) any {
		return v.input
	}
	core.title = func(v *view) lang.Translation {
		if spec.Title == nil {
			return lang.Key(constants.KeyConfirmationTitle)
		}
		return spec.Title(v.user, payloadOf(v))
	}
	core.slotType = func(int) SlotType {
		return SlotDynamic
	}
	core.build = func(v *view) {
		m, c := v.manager, v.content
		c.Set(constants.ConfirmSlot, m.confirm)
		c.Set(constants.CancelSlot, m.cancel)
		c.Set(constants.PreviewSlot, m.preview)

		l := ext.layout
		if l.IsZero() {
			l = m.config.layoutNamed(m.config.Menus.ConfirmationLayout)
		}
		material := ext.material
		if material.IsAir() {
			material = m.config.separatorMaterial()
		}
		c.Layout(l, m.Separator(material))
	}
	if spec.OnClose != nil {
		core.onClose = func(v *view) {
			spec.OnClose(v.user, payloadOf(v))
		}
	}

	return &ConfirmationMenu[T]{core: core, spec: spec}
}

func (menu *ConfirmationMenu[T]) menu() *menuCore {
	return menu.core
}

func (menu *ConfirmationMenu[T]) Name() string {
	return menu.core.name
}

// Ask opens the menu for u about payload. onConfirm runs when u confirms and
// is responsible for any further navigation. onCancel runs when u cancels;
// when it is nil the user is sent back to the previous menu.
func (menu *ConfirmationMenu[T]) Ask(m *Manager, u platform.User, payload T, onConfirm, onCancel func(u platform.User, payload T) error) error {
	ctx := &ConfirmationContext{Payload: payload}
	if menu.spec.Preview != nil {
		ctx.preview = func(u platform.User) *item.Builder {
			return menu.spec.Preview(u, payload)
		}
	}
	if onConfirm != nil {
		ctx.onConfirm = func(u platform.User) error {
			return onConfirm(u, payload)
		}
	}
	if onCancel != nil {
		ctx.onCancel = func(u platform.User) error {
			return onCancel(u, payload)
		}
	}
	return m.OpenMenu(menu, u, ctx)
}

// Viewers lists the users currently looking at this menu.
func (menu *ConfirmationMenu[T]) Viewers(m *Manager) []platform.User {
	return m.Viewers(menu)
}
