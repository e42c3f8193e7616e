// Package constants defines shared constants, types, and configuration values
// used throughout the gridmenu framework.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Environment variables read on top of the TOML configuration.
const (
	ConfigPathEnvVar = "GRIDMENU_CONFIG"
	LogLevelEnvVar   = "GRIDMENU_LOG_LEVEL"
	LogPathEnvVar    = "GRIDMENU_LOG_PATH"
	LocaleEnvVar     = "GRIDMENU_LOCALE"
	MessagesEnvVar   = "GRIDMENU_MESSAGES"
)

// Grid geometry. Every container is RowWidth slots wide.
const (
	RowWidth = 9
	MinRows  = 1
	MaxRows  = 6

	DefaultMaxStackSize = 64
)

// ItemTagKey is the extra data field holding the registry id of a built item.
const ItemTagKey = "gridmenu:item"

// Confirmation menu geometry.
const (
	ConfirmationRows = 5
	ConfirmSlot      = 3*RowWidth + 3
	CancelSlot       = 3*RowWidth + 5
	PreviewSlot      = 1*RowWidth + 4
)

// Default pageable navigation slots, relative to the last row.
const (
	DefaultPreviousColumn = 0
	DefaultNextColumn     = RowWidth - 1
)

// Translation keys of the built-in items and menus.
const (
	KeyConfirmationTitle = "gridmenu.confirmation.title"
	KeyConfirmName       = "gridmenu.item.confirm.name"
	KeyCancelName        = "gridmenu.item.cancel.name"
	KeyBackName          = "gridmenu.item.back.name"
	KeyPreviousName      = "gridmenu.item.previous.name"
	KeyNextName          = "gridmenu.item.next.name"
	KeyPageDescription   = "gridmenu.item.page.description"
)

// Layout names understood by the layout package.
const (
	LayoutOutline   = "outline"
	LayoutFull      = "full"
	LayoutTopRow    = "top_row"
	LayoutBottomRow = "bottom_row"
	LayoutSides     = "sides"
	LayoutCorners   = "corners"
)

// SlotCount returns the number of slots in a container with the given rows.
func SlotCount(rows int) int {
	return rows * RowWidth
}
