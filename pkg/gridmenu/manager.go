package gridmenu

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/fault"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/history"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/lang"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/text"
)

// entry is one step of a user's navigation history.
type entry struct {
	menu  *menuCore
	input any
}

// answered reports whether e is a confirmation that was already answered.
func (e entry) answered() bool {
	ctx, ok := e.input.(*ConfirmationContext)
	return ok && e.menu.kind == KindConfirmation && ctx.Answered()
}

// Manager opens menus, keeps each user's navigation history and dispatches
// host events to items.
//
// Apart from item registration, a Manager must only be used from the host's
// simulation thread.
type Manager struct {
	config         Config
	logger         *slog.Logger
	localizer      lang.Localizer
	onHandlerError func(*HandlerError)

	registered atomic.Bool
	platform   platform.Platform

	registry  registry
	histories map[uuid.UUID]*history.Stack[entry]

	separatorsMu sync.Mutex
	separators   map[item.Material]*StaticItem

	back     *Item[any]
	previous *Item[*PaginationContext]
	next     *Item[*PaginationContext]
	confirm  *Item[*ConfirmationContext]
	cancel   *Item[*ConfirmationContext]
	preview  *Item[*ConfirmationContext]
}

func newManager(cfg Config, logger *slog.Logger, localizer lang.Localizer, onHandlerError func(*HandlerError)) *Manager {
	return &Manager{
		config:         cfg,
		logger:         logger,
		localizer:      localizer,
		onHandlerError: onHandlerError,
		histories:      make(map[uuid.UUID]*history.Stack[entry]),
		separators:     make(map[item.Material]*StaticItem),
	}
}

// Register attaches the host platform. It can only be called once.
func (m *Manager) Register(p platform.Platform) error {
	if p == nil {
		return fault.New("register", fault.ErrIllegalArgument, "platform is nil")
	}
	if m.registered.Swap(true) {
		return fault.New("register", fault.ErrIllegalState, "manager already registered")
	}
	m.platform = p
	m.logger.Debug("Registered platform", "platform", fmt.Sprintf("%T", p))
	return nil
}

// Config returns the configuration the manager was created with.
func (m *Manager) Config() Config {
	return m.config
}

// Localizer returns the localizer used for titles, names and lore.
func (m *Manager) Localizer() lang.Localizer {
	return m.localizer
}

func (m *Manager) checkRegistered(op string) error {
	if !m.registered.Load() {
		return fault.New(op, fault.ErrIllegalState, "manager has no platform, call Register first")
	}
	return nil
}

// OpenMenu opens menu for u with value as its context and records it in u's
// history.
func (m *Manager) OpenMenu(menu Handle, u platform.User, value any) error {
	if err := m.checkRegistered("open_menu"); err != nil {
		return err
	}
	return m.open(menu.menu(), u, value)
}

func (m *Manager) open(menu *menuCore, u platform.User, value any) error {
	if menu.rows < constants.MinRows || menu.rows > constants.MaxRows {
		m.logger.Warn("Rejected menu row count", "menu", menu.name, "rows", menu.rows)
		return fault.New("open_menu", fault.ErrIllegalArgument, "cannot open a menu of %d rows", menu.rows)
	}
	if !menu.accepts(value) {
		return fault.New("open_menu", fault.ErrIllegalArgument, "menu %s does not accept a %T", menu.name, value)
	}

	v := newView(m, menu, u, value)
	v.ensureBuilt()
	if err := v.content.Err(); err != nil {
		return err
	}
	v.update()

	h := m.historyOf(u)
	h.Push(entry{menu: menu, input: value})

	title := m.localizer.Translate(u.Locale(), menu.title(v))
	if !m.platform.Open(u, menu.rows, title, v) {
		h.Pop()
		m.logger.Debug("Platform refused to open menu", "menu", menu.name, "user", u.ID())
		return fault.New("open_menu", fault.ErrIllegalState, "platform refused to open menu %s", menu.name)
	}

	m.logger.Debug("Opened menu", "menu", menu.name, "kind", menu.kind.String(), "user", u.ID(), "depth", h.Len())
	return nil
}

func (m *Manager) historyOf(u platform.User) *history.Stack[entry] {
	h, ok := m.histories[u.ID()]
	if !ok {
		h = history.NewStack[entry]()
		m.histories[u.ID()] = h
	}
	return h
}

// opened returns the gridmenu view u is looking at, if any.
func (m *Manager) opened(u platform.User) (*view, bool) {
	if m.platform == nil {
		return nil, false
	}
	v, ok := m.platform.Opened(u).(*view)
	if !ok || v.manager != m {
		return nil, false
	}
	return v, true
}

// OpenPrevious goes back in u's history. The entry on top is dropped first
// if its menu is what u is looking at, then skip more entries. With nothing
// left the view is closed, otherwise the new top entry is opened again from
// scratch. Confirmations that were already answered are passed over.
func (m *Manager) OpenPrevious(u platform.User, skip int) error {
	if err := m.checkRegistered("open_previous"); err != nil {
		return err
	}

	h, ok := m.histories[u.ID()]
	if !ok {
		return nil
	}

	if top, ok := h.Peek(); ok {
		if v, isView := m.opened(u); isView && v.menu == top.menu {
			h.Pop()
		}
	}
	h.Drop(skip)

	for {
		last, ok := h.Pop()
		if !ok {
			m.platform.Close(u)
			return nil
		}
		if last.answered() {
			m.logger.Debug("Skipped answered confirmation", "menu", last.menu.name, "user", u.ID())
			continue
		}
		return m.open(last.menu, u, last.input)
	}
}

// HasPrevious reports whether OpenPrevious would open another menu rather
// than close the view.
func (m *Manager) HasPrevious(u platform.User) bool {
	h, ok := m.histories[u.ID()]
	return ok && h.Len() > 1
}

// HistoryDepth returns the number of entries in u's history.
func (m *Manager) HistoryDepth(u platform.User) int {
	if h, ok := m.histories[u.ID()]; ok {
		return h.Len()
	}
	return 0
}

// ForgetUser drops u's history, typically when u disconnects.
func (m *Manager) ForgetUser(u platform.User) {
	delete(m.histories, u.ID())
}

// UpdateInventory refreshes the dynamic slots of the menu u is looking at.
// It does nothing if u is not looking at a gridmenu view.
func (m *Manager) UpdateInventory(u platform.User) {
	v, ok := m.opened(u)
	if !ok {
		return
	}
	v.update()
}

// SoftClose closes u's view without running its close hook.
func (m *Manager) SoftClose(u platform.User) {
	v, ok := m.opened(u)
	if !ok {
		return
	}
	v.softClosed = true
	m.logger.Debug("Soft closing menu", "menu", v.menu.name, "user", u.ID())
	m.platform.Close(u)
}

// Viewers lists the online users currently looking at menu.
func (m *Manager) Viewers(menu Handle) []platform.User {
	if m.platform == nil {
		return nil
	}
	core := menu.menu()
	var viewers []platform.User
	for _, u := range m.platform.Online() {
		if v, ok := m.opened(u); ok && v.menu == core {
			viewers = append(viewers, u)
		}
	}
	return viewers
}

// BuildStack renders it for u: the builder from its build function, tagged
// with the item id, with name and lore translated for u's locale. It returns
// nil for items that build nothing or air.
func (m *Manager) BuildStack(it Registered, u platform.User, value any) *item.Stack {
	if it == nil {
		return nil
	}

	var b *item.Builder
	m.guard("build", it, u, func() error {
		b = it.build(u, value)
		return nil
	})
	if b == nil {
		return nil
	}
	if err := b.Err(); err != nil {
		m.report(&HandlerError{Op: "build", Err: err}, it, u)
	}

	stack := b.Stack()
	if stack == nil {
		return nil
	}
	stack.SetInt(constants.ItemTagKey, int32(it.ID()))

	tag := u.Locale()
	if name := b.GetName(); !name.IsZero() {
		stack.Name = text.Serialize(text.NonItalic(m.localizer.Translate(tag, name)))
	}
	for _, t := range b.GetDescription() {
		for _, line := range text.SplitLines(m.localizer.Translate(tag, t)) {
			stack.Lore = append(stack.Lore, text.Serialize(text.NonItalic(line)))
		}
	}
	return stack
}

// guard runs application code, turning errors and panics into logged
// HandlerErrors. it is nil for menu hooks.
func (m *Manager) guard(op string, it Registered, u platform.User, fn func() error) {
	var herr *HandlerError

	func() {
		defer func() {
			if r := recover(); r != nil {
				herr = &HandlerError{Op: op, Panic: true, Err: fmt.Errorf("panic: %v", r)}
			}
		}()
		if err := fn(); err != nil {
			herr = &HandlerError{Op: op, Err: err}
		}
	}()

	if herr != nil {
		m.report(herr, it, u)
	}
}

// report logs a handler failure and hands it to Options.OnHandlerError.
func (m *Manager) report(herr *HandlerError, it Registered, u platform.User) {
	attrs := []any{"op", herr.Op, "panic", herr.Panic, "error", herr.Err}
	if it != nil {
		herr.Item, herr.ItemID = it.Name(), it.ID()
		attrs = append(attrs, "item", herr.Item, "item_id", int32(herr.ItemID))
	}
	if u != nil {
		attrs = append(attrs, "user", u.ID())
	}
	m.logger.Error("Handler failed", attrs...)

	if m.onHandlerError != nil {
		m.onHandlerError(herr)
	}
}
