// Package platform defines what gridmenu needs from the host game server.
//
// The host owns players, their open containers and the wire format. It
// implements Platform and forwards click, drop and close events to the
// gridmenu Manager.
package platform

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/text"
)

// User is a connected player.
type User interface {
	ID() uuid.UUID
	Locale() language.Tag
	// Profile returns the player's skin profile, if the host knows it.
	Profile() (item.Profile, bool)
}

// Container is a grid of slots. Menus implement it so the host can read the
// rendered items.
type Container interface {
	Size() int
	Get(slot int) *item.Stack
	Set(slot int, stack *item.Stack)
}

// Platform is the host side of the menu framework.
type Platform interface {
	// Open presents c to u as a chest-like view of rows rows. It returns false
	// if the host refused to open it.
	Open(u User, rows int, title text.Component, c Container) bool

	// Close closes whatever view u has open. Hosts report the close back
	// through the manager's close handler.
	Close(u User)

	// Opened returns the container u is currently looking at, or nil.
	Opened(u User) Container

	// Online lists the connected users.
	Online() []User
}
