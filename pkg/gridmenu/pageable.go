package gridmenu

import (
	"slices"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/lang"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/layout"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/platform"
)

// PaginationContext is the context of a pageable view. Items in a pageable
// menu are built with it unless their slot carries its own value.
type PaginationContext struct {
	menu    *menuCore
	content *Content
	page    int
	pages   int
	slots   []int

	// Value is the value the menu was opened with.
	Value any
}

// Page returns the zero based current page.
func (p *PaginationContext) Page() int {
	return p.page
}

// Pages returns the number of pages, at least one.
func (p *PaginationContext) Pages() int {
	return max(p.pages, 1)
}

// SetPages changes the page count, moving the current page back into range.
func (p *PaginationContext) SetPages(n int) {
	p.pages = max(n, 1)
	p.page = min(p.page, p.pages-1)
}

func (p *PaginationContext) HasNext() bool {
	return p.page < p.Pages()-1
}

func (p *PaginationContext) HasPrevious() bool {
	return p.page > 0
}

// Next moves to the next page. It reports false and stays put on the last
// page.
func (p *PaginationContext) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.page++
	return true
}

// Previous moves to the previous page. It reports false and stays put on the
// first page.
func (p *PaginationContext) Previous() bool {
	if !p.HasPrevious() {
		return false
	}
	p.page--
	return true
}

// Content returns the content of the view being paged.
func (p *PaginationContext) Content() *Content {
	return p.content
}

// Slots returns the slots receiving the elements of a page.
func (p *PaginationContext) Slots() []int {
	return slices.Clone(p.slots)
}

// Rows returns the height of the pageable menu.
func (p *PaginationContext) Rows() int {
	return p.menu.rows
}

// PageableSpec defines a menu opened with a value of type T that lists
// elements of type E, a page at a time.
type PageableSpec[T, E any] struct {
	Name  string
	Rows  int
	Title func(u platform.User, p *PaginationContext, value T) lang.Translation

	// Elements lists everything to page through. It runs on every update.
	// When nil, Build is expected to call SetPages and fill the page itself.
	Elements func(u platform.User, value T) []E
	// Element renders one element; it is built with the element as value.
	Element *Item[E]
	// Slots receive the elements of the current page, in order. Defaults to
	// every slot that is not a navigation slot or part of the layout.
	Slots []int

	// PreviousSlot and NextSlot hold the navigation items. Zero selects the
	// first and last slot of the bottom row.
	PreviousSlot int
	NextSlot     int
	// PreviousButton and NextButton draw the navigation items. They get the
	// human page number the button leads to and the page count.
	PreviousButton func(page, pages int) *item.Builder
	NextButton     func(page, pages int) *item.Builder

	// Layout decorates the menu with separators. Defaults to the configured
	// pageable layout.
	Layout layout.Layout

	Build    func(u platform.User, p *PaginationContext, value T, c *Content)
	Update   func(u platform.User, p *PaginationContext, value T, c *Content)
	// SlotType classifies slots; nil makes every slot dynamic. Navigation
	// slots are always dynamic.
	SlotType func(slot int) SlotType
	OnClose  func(u platform.User, p *PaginationContext, value T)
}

type pageableMenu struct {
	previousSlot   int
	nextSlot       int
	previousButton func(page, pages int) *item.Builder
	nextButton     func(page, pages int) *item.Builder
}

// NewPageableMenu creates a pageable menu. Turning pages updates the open
// view in place and never adds to the navigation history.
func NewPageableMenu[T, E any](spec PageableSpec[T, E]) *Menu[T] {
	ext := &pageableMenu{
		previousSlot:   spec.PreviousSlot,
		nextSlot:       spec.NextSlot,
		previousButton: spec.PreviousButton,
		nextButton:     spec.NextButton,
	}
	if ext.previousSlot == 0 && ext.nextSlot == 0 {
		lastRow := (max(spec.Rows, 1) - 1) * constants.RowWidth
		ext.previousSlot = lastRow + constants.DefaultPreviousColumn
		ext.nextSlot = lastRow + constants.DefaultNextColumn
	}

	core := &menuCore{
		kind:     KindPageable,
		name:     spec.Name,
		rows:     spec.Rows,
		pageable: ext,
	}

	core.accepts = func(value any) bool {
		_, ok := valueAs[T](value)
		return ok
	}
	core.attach = func(v *view) any {
		return &PaginationContext{menu: v.menu, Value: v.input}
	}
	core.title = func(v *view) lang.Translation {
		if spec.Title == nil {
			return lang.Translation{}
		}
		return spec.Title(v.user, v.context.(*PaginationContext), inputOf[T](v))
	}
	core.slotType = func(slot int) SlotType {
		if slot == ext.previousSlot || slot == ext.nextSlot || spec.SlotType == nil {
			return SlotDynamic
		}
		return spec.SlotType(slot)
	}

	fillPage := func(v *view) {
		p := v.context.(*PaginationContext)
		c := v.content

		if spec.Elements != nil && spec.Element != nil && len(p.slots) > 0 {
			elements := spec.Elements(v.user, inputOf[T](v))
			perPage := len(p.slots)
			p.SetPages((len(elements) + perPage - 1) / perPage)

			for _, slot := range p.slots {
				c.Clear(slot)
			}
			start := min(p.page*perPage, len(elements))
			end := min(start+perPage, len(elements))
			for i, e := range elements[start:end] {
				c.SetValue(p.slots[i], spec.Element, e)
			}
		}

		c.Set(ext.previousSlot, v.manager.previous)
		c.Set(ext.nextSlot, v.manager.next)
	}

	core.build = func(v *view) {
		p := v.context.(*PaginationContext)
		c := v.content
		p.content = c

		l := spec.Layout
		if l.IsZero() {
			l = v.manager.config.layoutNamed(v.manager.config.Menus.PageableLayout)
		}
		if !l.IsZero() {
			c.Layout(l, v.manager.Separator(v.manager.config.separatorMaterial()))
		}

		if spec.Build != nil {
			spec.Build(v.user, p, inputOf[T](v), c)
		}

		p.slots = slices.Clone(spec.Slots)
		if len(p.slots) == 0 {
			p.slots = defaultPageSlots(c, ext)
		}
		fillPage(v)
	}
	core.update = func(v *view) {
		if spec.Update != nil {
			spec.Update(v.user, v.context.(*PaginationContext), inputOf[T](v), v.content)
		}
		fillPage(v)
	}
	if spec.OnClose != nil {
		core.onClose = func(v *view) {
			spec.OnClose(v.user, v.context.(*PaginationContext), inputOf[T](v))
		}
	}

	return &Menu[T]{core: core}
}

// defaultPageSlots returns every slot free of navigation items, layout fill
// and explicit placements made by the build function.
func defaultPageSlots(c *Content, ext *pageableMenu) []int {
	var slots []int
	for slot := range c.Size() {
		if slot == ext.previousSlot || slot == ext.nextSlot || c.InLayout(slot) {
			continue
		}
		if _, placed := c.Explicit(slot); placed {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// navigationItem builds the previous or next button. Without a page in that
// direction it blends into the layout when its slot is part of it, and is
// absent otherwise.
func (m *Manager) navigationItem(u platform.User, p *PaginationContext, next bool) *item.Builder {
	if p == nil || p.menu == nil || p.menu.pageable == nil {
		return nil
	}
	ext := p.menu.pageable

	slot, available := ext.previousSlot, p.HasPrevious()
	if next {
		slot, available = ext.nextSlot, p.HasNext()
	}

	if !available {
		if p.content == nil || !p.content.InLayout(slot) {
			return nil
		}
		_, fill := p.content.GetLayout()
		return fill.build(u, nil)
	}

	if next {
		if ext.nextButton != nil {
			return ext.nextButton(p.page+2, p.Pages())
		}
		return pageButton(constants.KeyNextName, p.page+2, p.Pages())
	}
	if ext.previousButton != nil {
		return ext.previousButton(p.page, p.Pages())
	}
	return pageButton(constants.KeyPreviousName, p.page, p.Pages())
}

func pageButton(key string, page, pages int) *item.Builder {
	return item.Of(item.Arrow).
		Name(lang.Key(key)).
		Description(lang.Key(constants.KeyPageDescription).With("Page", page).With("Pages", pages))
}
