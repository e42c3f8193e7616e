package gridmenu

import (
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/lang"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform"
)

// Kind is the variant of a menu.
type Kind int

const (
	KindClassic Kind = iota
	KindPageable
	KindConfirmation
)

func (k Kind) String() string {
	switch k {
	case KindClassic:
		return "classic"
	case KindPageable:
		return "pageable"
	case KindConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// SlotType decides whether a slot is re-rendered on updates.
type SlotType int

const (
	SlotStatic  SlotType = iota // Rendered once when the view opens
	SlotDynamic                 // Rendered again on every update
)

// Handle is implemented by every menu type and accepted by the Manager.
type Handle interface {
	menu() *menuCore
}

// menuCore is the part shared by every menu variant. Variant specific data
// lives in the pageable and confirmation fields.
type menuCore struct {
	kind Kind
	name string
	rows int

	// accepts checks a value passed to OpenMenu.
	accepts func(value any) bool
	// attach turns the opened value into the context items see.
	attach   func(v *view) any
	title    func(v *view) lang.Translation
	build    func(v *view)
	update   func(v *view)
	slotType func(slot int) SlotType
	onClose  func(v *view)

	pageable     *pageableMenu
	confirmation *confirmationMenu
}

func (c *menuCore) menu() *menuCore {
	return c
}

func (c *menuCore) typeOf(slot int) SlotType {
	if c.slotType == nil {
		return SlotStatic
	}
	return c.slotType(slot)
}

// MenuSpec defines a classic menu opened with a context value of type T.
type MenuSpec[T any] struct {
	Name  string // Used in logs
	Rows  int    // 1 to 6
	Title func(u platform.User, value T) lang.Translation

	// Build fills the content once per opening.
	Build func(u platform.User, value T, c *Content)
	// Update runs when the menu is opened and on every UpdateInventory,
	// before slots are rendered.
	Update func(u platform.User, value T, c *Content)
	// SlotType classifies slots; nil makes every slot static.
	SlotType func(slot int) SlotType
	// OnClose runs when the view closes, unless it was soft closed.
	OnClose func(u platform.User, value T)
}

// Menu is an immutable menu template. Create it once and open it as often as
// needed; every opening gets its own Content.
type Menu[T any] struct {
	core *menuCore
}

// NewMenu creates a classic menu. The row count is checked when the menu is
// opened.
func NewMenu[T any](spec MenuSpec[T]) *Menu[T] {
	core := &menuCore{
		kind:     KindClassic,
		name:     spec.Name,
		rows:     spec.Rows,
		slotType: spec.SlotType,
	}
	core.accepts = func(value any) bool {
		_, ok := valueAs[T](value)
		return ok
	}
	core.attach = func(v *view) any {
		return v.input
	}
	core.title = func(v *view) lang.Translation {
		if spec.Title == nil {
			return lang.Translation{}
		}
		return spec.Title(v.user, inputOf[T](v))
	}
	core.build = func(v *view) {
		if spec.Build != nil {
			spec.Build(v.user, inputOf[T](v), v.content)
		}
	}
	if spec.Update != nil {
		core.update = func(v *view) {
			spec.Update(v.user, inputOf[T](v), v.content)
		}
	}
	if spec.OnClose != nil {
		core.onClose = func(v *view) {
			spec.OnClose(v.user, inputOf[T](v))
		}
	}
	return &Menu[T]{core: core}
}

func (menu *Menu[T]) menu() *menuCore {
	return menu.core
}

func (menu *Menu[T]) Kind() Kind {
	return menu.core.kind
}

func (menu *Menu[T]) Name() string {
	return menu.core.name
}

func (menu *Menu[T]) Rows() int {
	return menu.core.rows
}

// Open is a typed shortcut for Manager.OpenMenu.
func (menu *Menu[T]) Open(m *Manager, u platform.User, value T) error {
	return m.OpenMenu(menu, u, value)
}

// Viewers lists the users currently looking at this menu.
func (menu *Menu[T]) Viewers(m *Manager) []platform.User {
	return m.Viewers(menu)
}

func inputOf[T any](v *view) T {
	t, _ := valueAs[T](v.input)
	return t
}
