// Package layout provides named geometric slot patterns used to decorate
// menus, such as a border around the edge of the grid.
package layout

import (
	"sort"
	"sync"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/fault"
)

// Layout decides which slots of a grid belong to a pattern.
type Layout struct {
	name     string
	contains func(row, column, rows int) bool
}

// New creates a layout from a cell predicate. rows is the height of the grid
// being filled; row and column are zero based.
func New(name string, contains func(row, column, rows int) bool) Layout {
	return Layout{name: name, contains: contains}
}

func (l Layout) Name() string {
	return l.name
}

// IsZero reports whether l is the empty layout.
func (l Layout) IsZero() bool {
	return l.contains == nil
}

// Contains reports whether slot is part of the pattern in a grid of rows.
func (l Layout) Contains(slot, rows int) bool {
	if l.contains == nil || slot < 0 || slot >= constants.SlotCount(rows) {
		return false
	}
	return l.contains(slot/constants.RowWidth, slot%constants.RowWidth, rows)
}

// Slots lists the slots of the pattern in ascending order.
func (l Layout) Slots(rows int) []int {
	var slots []int
	for slot := range constants.SlotCount(rows) {
		if l.Contains(slot, rows) {
			slots = append(slots, slot)
		}
	}
	return slots
}

var (
	Outline = New(constants.LayoutOutline, func(row, column, rows int) bool {
		return row == 0 || row == rows-1 || column == 0 || column == constants.RowWidth-1
	})
	Full = New(constants.LayoutFull, func(int, int, int) bool {
		return true
	})
	TopRow = New(constants.LayoutTopRow, func(row, _, _ int) bool {
		return row == 0
	})
	BottomRow = New(constants.LayoutBottomRow, func(row, _, rows int) bool {
		return row == rows-1
	})
	Sides = New(constants.LayoutSides, func(_, column, _ int) bool {
		return column == 0 || column == constants.RowWidth-1
	})
	Corners = New(constants.LayoutCorners, func(row, column, rows int) bool {
		return (row == 0 || row == rows-1) && (column == 0 || column == constants.RowWidth-1)
	})
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Layout{
		Outline.name:   Outline,
		Full.name:      Full,
		TopRow.name:    TopRow,
		BottomRow.name: BottomRow,
		Sides.name:     Sides,
		Corners.name:   Corners,
	}
)

// Register makes a custom layout available to Lookup. Names must be unique.
func Register(l Layout) error {
	if l.name == "" || l.contains == nil {
		return fault.New("register_layout", fault.ErrIllegalArgument, "layout needs a name and a predicate")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[l.name]; exists {
		return fault.New("register_layout", fault.ErrIllegalState, "layout %q already registered", l.name)
	}
	registry[l.name] = l
	return nil
}

// Lookup finds a layout by name.
func Lookup(name string) (Layout, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	l, ok := registry[name]
	if !ok {
		return Layout{}, fault.New("lookup_layout", fault.ErrIllegalArgument, "unknown layout %q", name)
	}
	return l, nil
}

// Names lists the registered layout names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
