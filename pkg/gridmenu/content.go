package gridmenu

import (
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/fault"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/layout"
)

// Placement is what a slot shows: an item and, optionally, the value it is
// built with instead of the menu's context.
type Placement struct {
	Item     Registered
	Value    any
	HasValue bool
}

// Content maps the slots of one open view to items. A fresh Content is
// created every time a menu is opened.
//
// Setters never fail outright; the first misuse is kept and reported by
// Err, which makes the opening of the menu fail.
type Content struct {
	rows       int
	placements []*Placement
	layout     layout.Layout
	fill       Registered
	err        error
}

func newContent(rows int) *Content {
	return &Content{
		rows:       rows,
		placements: make([]*Placement, constants.SlotCount(rows)),
	}
}

func (c *Content) Rows() int {
	return c.rows
}

func (c *Content) Size() int {
	return len(c.placements)
}

// Set places it in slot, built with the view's context.
func (c *Content) Set(slot int, it Registered) *Content {
	return c.place(slot, Placement{Item: it})
}

// SetAt places it at a column and row, both zero based.
func (c *Content) SetAt(column, row int, it Registered) *Content {
	if column < 0 || column >= constants.RowWidth {
		c.fail(fault.New("set_item", fault.ErrIllegalArgument, "column %d outside 0..%d", column, constants.RowWidth-1))
		return c
	}
	return c.Set(row*constants.RowWidth+column, it)
}

// SetValue places it in slot, built with value instead of the view's context.
func (c *Content) SetValue(slot int, it Registered, value any) *Content {
	return c.place(slot, Placement{Item: it, Value: value, HasValue: true})
}

// Clear empties slot. A layout fill shows through again.
func (c *Content) Clear(slot int) *Content {
	if slot >= 0 && slot < len(c.placements) {
		c.placements[slot] = nil
	}
	return c
}

// Layout fills the slots of l with fill wherever nothing was placed
// explicitly. Explicit placements always win, whenever they are made.
func (c *Content) Layout(l layout.Layout, fill Registered) *Content {
	c.layout = l
	c.fill = fill
	return c
}

// LayoutNamed is Layout with a registered layout name.
func (c *Content) LayoutNamed(name string, fill Registered) *Content {
	l, err := layout.Lookup(name)
	if err != nil {
		c.fail(err)
		return c
	}
	return c.Layout(l, fill)
}

// GetLayout returns the layout and its fill item.
func (c *Content) GetLayout() (layout.Layout, Registered) {
	return c.layout, c.fill
}

// InLayout reports whether slot is covered by the layout.
func (c *Content) InLayout(slot int) bool {
	return c.fill != nil && c.layout.Contains(slot, c.rows)
}

// Explicit returns the placement set directly on slot, ignoring the layout.
func (c *Content) Explicit(slot int) (Placement, bool) {
	if slot < 0 || slot >= len(c.placements) || c.placements[slot] == nil {
		return Placement{}, false
	}
	return *c.placements[slot], true
}

// Resolve returns what slot shows: its explicit placement, else the layout
// fill, else nothing.
func (c *Content) Resolve(slot int) (Placement, bool) {
	if p, ok := c.Explicit(slot); ok {
		return p, true
	}
	if c.InLayout(slot) {
		return Placement{Item: c.fill}, true
	}
	return Placement{}, false
}

// Err returns the first misuse of the content.
func (c *Content) Err() error {
	return c.err
}

func (c *Content) place(slot int, p Placement) *Content {
	if slot < 0 || slot >= len(c.placements) {
		c.fail(fault.New("set_item", fault.ErrIllegalArgument, "slot %d outside 0..%d", slot, len(c.placements)-1))
		return c
	}
	if p.Item == nil {
		c.placements[slot] = nil
		return c
	}
	c.placements[slot] = &p
	return c
}

func (c *Content) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}
