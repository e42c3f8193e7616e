// Package platformtest provides an in-memory host for testing menus.
package platformtest

import (
	"slices"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/text"
)

// User is a fake player.
type User struct {
	UUID    uuid.UUID
	Tag     language.Tag
	Skin    item.Profile
	HasSkin bool
}

// NewUser creates a user with a random id and an English locale.
func NewUser() *User {
	return &User{UUID: uuid.New(), Tag: language.English}
}

func (u *User) ID() uuid.UUID {
	return u.UUID
}

func (u *User) Locale() language.Tag {
	return u.Tag
}

func (u *User) Profile() (item.Profile, bool) {
	return u.Skin, u.HasSkin
}

// OpenRecord is one call to Open.
type OpenRecord struct {
	User      platform.User
	Rows      int
	Title     text.Component
	Container platform.Container
}

// Host is a fake Platform. It tracks what each user has open and records
// every open and close.
type Host struct {
	users  []platform.User
	opened map[uuid.UUID]platform.Container

	Opens  []OpenRecord
	Closes []platform.User

	// Refuse makes Open fail.
	Refuse bool
	// OnClose runs after a close, standing in for the host's close event.
	OnClose func(u platform.User, c platform.Container)
}

func NewHost(users ...platform.User) *Host {
	return &Host{
		users:  slices.Clone(users),
		opened: make(map[uuid.UUID]platform.Container),
	}
}

// Join adds a user to the online list.
func (h *Host) Join(u platform.User) {
	h.users = append(h.users, u)
}

func (h *Host) Open(u platform.User, rows int, title text.Component, c platform.Container) bool {
	if h.Refuse {
		return false
	}
	h.Opens = append(h.Opens, OpenRecord{User: u, Rows: rows, Title: title, Container: c})
	h.opened[u.ID()] = c
	return true
}

func (h *Host) Close(u platform.User) {
	c, ok := h.opened[u.ID()]
	if !ok {
		return
	}
	delete(h.opened, u.ID())
	h.Closes = append(h.Closes, u)
	if h.OnClose != nil {
		h.OnClose(u, c)
	}
}

// Dismiss simulates the player closing the view without telling the
// manager.
func (h *Host) Dismiss(u platform.User) {
	delete(h.opened, u.ID())
}

func (h *Host) Opened(u platform.User) platform.Container {
	return h.opened[u.ID()]
}

func (h *Host) Online() []platform.User {
	return slices.Clone(h.users)
}

// LastOpen returns the most recent open, or the zero record.
func (h *Host) LastOpen() OpenRecord {
	if len(h.Opens) == 0 {
		return OpenRecord{}
	}
	return h.Opens[len(h.Opens)-1]
}

// Stacks returns a copy of every slot of the container u has open.
func (h *Host) Stacks(u platform.User) []*item.Stack {
	c := h.Opened(u)
	if c == nil {
		return nil
	}
	stacks := make([]*item.Stack, c.Size())
	for slot := range stacks {
		stacks[slot] = c.Get(slot).Clone()
	}
	return stacks
}
