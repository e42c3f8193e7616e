package gridmenu

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/lang"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform/platformtest"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/text"
)

type harness struct {
	m      *Manager
	host   *platformtest.Host
	user   *platformtest.User
	logs   *bytes.Buffer
	errors []*HandlerError
}

func newHarness(t *testing.T, configure ...func(*Config)) *harness {
	t.Helper()

	cfg := DefaultConfig()
	for _, fn := range configure {
		fn(&cfg)
	}

	h := &harness{logs: &bytes.Buffer{}, user: platformtest.NewUser()}
	m, err := New(Options{
		Config:    &cfg,
		Logger:    slog.New(slog.NewTextHandler(h.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Localizer: lang.Identity,
		OnHandlerError: func(err *HandlerError) {
			h.errors = append(h.errors, err)
		},
	})
	require.NoError(t, err)

	h.m = m
	h.host = platformtest.NewHost(h.user)
	h.host.OnClose = func(u platform.User, c platform.Container) {
		m.HandleClose(CloseEvent{User: u, Container: c})
	}
	require.NoError(t, m.Register(h.host))
	return h
}

// click clicks slot of the open view.
func (h *harness) click(slot int) bool {
	return h.m.HandleClick(ClickEvent{User: h.user, Slot: slot, InMenu: true})
}

// slot returns the stack shown in slot of the open view.
func (h *harness) slot(slot int) *item.Stack {
	c := h.host.Opened(h.user)
	if c == nil {
		return nil
	}
	return c.Get(slot)
}

func (h *harness) openedMenu() *menuCore {
	v, ok := h.m.opened(h.user)
	if !ok {
		return nil
	}
	return v.menu
}

func plainName(t *testing.T, s *item.Stack) string {
	t.Helper()
	require.NotNil(t, s)
	var c text.Component
	require.NoError(t, json.Unmarshal([]byte(s.Name), &c))
	return c.Plain()
}

func literalItem(m *Manager, name string, material item.Material) *StaticItem {
	return m.CreateStaticItem(StaticItemSpec{
		Name: name,
		Build: func() *item.Builder {
			return item.Of(material).Name(lang.Literal(name))
		},
	})
}

func simpleMenu(name string, rows int, build func(c *Content)) *Menu[any] {
	return NewMenu(MenuSpec[any]{
		Name: name,
		Rows: rows,
		Title: func(platform.User, any) lang.Translation {
			return lang.Literal(name)
		},
		Build: func(_ platform.User, _ any, c *Content) {
			if build != nil {
				build(c)
			}
		},
	})
}
