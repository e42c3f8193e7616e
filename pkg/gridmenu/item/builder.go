// Package item describes menu item appearance independently of any host.
//
// A Builder is a mutable description: material, amount, enchantments, display
// flags and a translatable name and description. It is turned into a native
// Stack by the menu framework once the viewer's locale is known.
package item

import (
	"maps"
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/fault"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/lang"
)

// Builder describes an item. The zero value is not usable, use Of.
type Builder struct {
	material Material
	amount   int
	damage   int

	enchantments map[Enchantment]int
	stored       map[Enchantment]int
	attributes   []AttributeModifier
	unbreakable  bool
	canBreak     []string
	canPlaceOn   []string
	dye          *int
	trim         *Trim

	// Each component's own tooltip visibility, indexed by the flag hiding it.
	hidden [flagCount]bool
	// Explicit flag overrides; absent means the computed default applies.
	flags map[Flag]bool

	hideTooltip bool
	glint       *bool
	profile     *Profile

	name        lang.Translation
	description []lang.Translation

	data map[string][]byte
	err  error
}

// flagDefaults computes the value a flag has when it was never set
// explicitly: the part must be present and its own visibility toggle off.
var flagDefaults = [flagCount]func(b *Builder) bool{
	HideEnchants: func(b *Builder) bool {
		return len(b.enchantments) > 0 && b.hidden[HideEnchants]
	},
	HideAttributes: func(b *Builder) bool {
		return len(b.attributes) > 0 && b.hidden[HideAttributes]
	},
	HideUnbreakable: func(b *Builder) bool {
		return b.unbreakable && b.hidden[HideUnbreakable]
	},
	HideDestroys: func(b *Builder) bool {
		return len(b.canBreak) > 0 && b.hidden[HideDestroys]
	},
	HidePlacedOn: func(b *Builder) bool {
		return len(b.canPlaceOn) > 0 && b.hidden[HidePlacedOn]
	},
	HideAdditionalTooltip: func(b *Builder) bool {
		return b.hidden[HideAdditionalTooltip]
	},
	HideDye: func(b *Builder) bool {
		return b.dye != nil && b.hidden[HideDye]
	},
	HideArmorTrim: func(b *Builder) bool {
		return b.trim != nil && b.hidden[HideArmorTrim]
	},
	HideStoredEnchants: func(b *Builder) bool {
		return len(b.stored) > 0 && b.hidden[HideStoredEnchants]
	},
}

// Of starts a builder for material with an amount of one.
func Of(material Material) *Builder {
	return &Builder{
		material: material,
		amount:   1,
	}
}

// OfAmount starts a builder for n items of material.
func OfAmount(material Material, n int) *Builder {
	return Of(material).Amount(n)
}

// Material replaces the item type.
func (b *Builder) Material(m Material) *Builder {
	b.material = m
	return b
}

func (b *Builder) GetMaterial() Material {
	return b.material
}

// Amount sets the stack size. Values below one are clamped to one.
func (b *Builder) Amount(n int) *Builder {
	b.amount = max(n, 1)
	return b
}

func (b *Builder) GetAmount() int {
	return b.amount
}

func (b *Builder) Damage(d int) *Builder {
	b.damage = max(d, 0)
	return b
}

func (b *Builder) GetDamage() int {
	return b.damage
}

// Enchant sets an enchantment level. A level of zero or less removes it.
func (b *Builder) Enchant(e Enchantment, level int) *Builder {
	b.enchantments = setLevel(b.enchantments, e, level)
	return b
}

func (b *Builder) RemoveEnchant(e Enchantment) *Builder {
	delete(b.enchantments, e)
	return b
}

// EnchantLevel returns the level of e, or zero when absent.
func (b *Builder) EnchantLevel(e Enchantment) int {
	return b.enchantments[e]
}

// StoreEnchant sets a stored enchantment, as carried by enchanted books.
func (b *Builder) StoreEnchant(e Enchantment, level int) *Builder {
	b.stored = setLevel(b.stored, e, level)
	return b
}

func (b *Builder) StoredEnchantLevel(e Enchantment) int {
	return b.stored[e]
}

func setLevel(levels map[Enchantment]int, e Enchantment, level int) map[Enchantment]int {
	if level <= 0 {
		delete(levels, e)
		return levels
	}
	if levels == nil {
		levels = make(map[Enchantment]int)
	}
	levels[e] = level
	return levels
}

// Attribute adds an attribute modifier.
func (b *Builder) Attribute(mod AttributeModifier) *Builder {
	b.attributes = append(b.attributes, mod)
	return b
}

func (b *Builder) Unbreakable(unbreakable bool) *Builder {
	b.unbreakable = unbreakable
	return b
}

func (b *Builder) IsUnbreakable() bool {
	return b.unbreakable
}

// CanBreak sets the blocks this item may destroy in adventure mode.
func (b *Builder) CanBreak(blocks ...string) *Builder {
	b.canBreak = slices.Clone(blocks)
	return b
}

// CanPlaceOn sets the blocks this item may be placed on in adventure mode.
func (b *Builder) CanPlaceOn(blocks ...string) *Builder {
	b.canPlaceOn = slices.Clone(blocks)
	return b
}

// Dye sets an RGB leather colour.
func (b *Builder) Dye(rgb int) *Builder {
	b.dye = &rgb
	return b
}

func (b *Builder) Trim(t Trim) *Builder {
	b.trim = &t
	return b
}

// Tooltip sets whether the part hidden by f shows itself in the tooltip.
// This is the part's own toggle; an explicit flag set through Flags wins.
func (b *Builder) Tooltip(f Flag, shown bool) *Builder {
	if f.valid() {
		b.hidden[f] = !shown
	}
	return b
}

// ShowEnchants is Tooltip(HideEnchants, shown).
func (b *Builder) ShowEnchants(shown bool) *Builder {
	return b.Tooltip(HideEnchants, shown)
}

// Flags sets each flag explicitly to true. Setting a flag twice is the same
// as setting it once.
func (b *Builder) Flags(flags ...Flag) *Builder {
	return b.SetFlags(true, flags...)
}

// SetFlags sets each flag explicitly to value.
func (b *Builder) SetFlags(value bool, flags ...Flag) *Builder {
	for _, f := range flags {
		if !f.valid() {
			continue
		}
		if b.flags == nil {
			b.flags = make(map[Flag]bool)
		}
		b.flags[f] = value
	}
	return b
}

// RemoveFlags sets each flag explicitly to false.
func (b *Builder) RemoveFlags(flags ...Flag) *Builder {
	return b.SetFlags(false, flags...)
}

// ResetFlags drops explicit overrides so the computed defaults apply again.
func (b *Builder) ResetFlags(flags ...Flag) *Builder {
	for _, f := range flags {
		delete(b.flags, f)
	}
	return b
}

// HasFlag returns the explicit value of f if one was set, otherwise its
// computed default.
func (b *Builder) HasFlag(f Flag) bool {
	if !f.valid() {
		return false
	}
	if v, ok := b.flags[f]; ok {
		return v
	}
	return flagDefaults[f](b)
}

// HideTooltip hides the whole tooltip.
func (b *Builder) HideTooltip(hide bool) *Builder {
	b.hideTooltip = hide
	return b
}

// HideAdditionalTooltip hides the item type's extra tooltip lines.
func (b *Builder) HideAdditionalTooltip(hide bool) *Builder {
	return b.Tooltip(HideAdditionalTooltip, !hide)
}

// Glowing forces the enchantment glint on or off.
func (b *Builder) Glowing(glow bool) *Builder {
	b.glint = &glow
	return b
}

// IsGlowing reports the glint override, defaulting to whether the item is
// enchanted.
func (b *Builder) IsGlowing() bool {
	if b.glint != nil {
		return *b.glint
	}
	return len(b.enchantments) > 0
}

// Skull applies a skin texture. The material must be a head, otherwise the
// builder records an illegal state error available from Err.
func (b *Builder) Skull(texture, signature string) *Builder {
	if !b.material.IsHead() {
		b.fail(fault.New("skull", fault.ErrIllegalState, "material %s is not a head", b.material))
		return b
	}
	b.profile = &Profile{ID: uuid.New(), Texture: texture, Signature: signature}
	return b
}

// SkullOf copies the skin of src. src must expose a textured profile.
func (b *Builder) SkullOf(src ProfileSource) *Builder {
	if !b.material.IsHead() {
		b.fail(fault.New("skull", fault.ErrIllegalState, "material %s is not a head", b.material))
		return b
	}
	p, ok := src.Profile()
	if !ok || p.Texture == "" {
		b.fail(fault.New("skull", fault.ErrIllegalState, "source has no textured profile"))
		return b
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	b.profile = &p
	return b
}

// GetProfile returns the skin profile, if any.
func (b *Builder) GetProfile() (Profile, bool) {
	if b.profile == nil {
		return Profile{}, false
	}
	return *b.profile, true
}

// Name sets the display name.
func (b *Builder) Name(t lang.Translation) *Builder {
	b.name = t
	return b
}

func (b *Builder) GetName() lang.Translation {
	return b.name
}

// Description sets the lore, one translation per entry. Each rendered entry
// may span several lines.
func (b *Builder) Description(lines ...lang.Translation) *Builder {
	b.description = slices.Clone(lines)
	return b
}

// AddDescription appends lore entries.
func (b *Builder) AddDescription(lines ...lang.Translation) *Builder {
	b.description = append(b.description, lines...)
	return b
}

func (b *Builder) GetDescription() []lang.Translation {
	return slices.Clone(b.description)
}

// Data attaches an opaque value persisted on the stack under key. A nil
// value removes it.
func (b *Builder) Data(key string, value []byte) *Builder {
	if value == nil {
		delete(b.data, key)
		return b
	}
	if b.data == nil {
		b.data = make(map[string][]byte)
	}
	b.data[key] = slices.Clone(value)
	return b
}

func (b *Builder) GetData(key string) ([]byte, bool) {
	v, ok := b.data[key]
	return slices.Clone(v), ok
}

// Err returns the first misuse recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Clone returns a deep copy. Mutating either builder afterwards leaves the
// other unchanged.
func (b *Builder) Clone() *Builder {
	c := *b
	c.enchantments = maps.Clone(b.enchantments)
	c.stored = maps.Clone(b.stored)
	c.attributes = slices.Clone(b.attributes)
	c.canBreak = slices.Clone(b.canBreak)
	c.canPlaceOn = slices.Clone(b.canPlaceOn)
	c.flags = maps.Clone(b.flags)
	c.description = slices.Clone(b.description)
	if b.dye != nil {
		d := *b.dye
		c.dye = &d
	}
	if b.trim != nil {
		t := *b.trim
		c.trim = &t
	}
	if b.glint != nil {
		g := *b.glint
		c.glint = &g
	}
	if b.profile != nil {
		p := *b.profile
		c.profile = &p
	}
	if b.data != nil {
		c.data = make(map[string][]byte, len(b.data))
		for k, v := range b.data {
			c.data[k] = slices.Clone(v)
		}
	}
	return &c
}

// Stack renders everything except the display name and lore, which need a
// locale. It returns nil for air.
func (b *Builder) Stack() *Stack {
	if b.material.IsAir() {
		return nil
	}

	s := &Stack{
		Material:           b.material,
		Count:              b.amount,
		Damage:             b.damage,
		Enchantments:       sortedLevels(b.enchantments),
		StoredEnchantments: sortedLevels(b.stored),
		Attributes:         slices.Clone(b.attributes),
		Unbreakable:        b.unbreakable,
		CanBreak:           slices.Clone(b.canBreak),
		CanPlaceOn:         slices.Clone(b.canPlaceOn),
		HideTooltip:        b.hideTooltip,
	}
	for _, f := range AllFlags() {
		if b.HasFlag(f) {
			if s.Flags == nil {
				s.Flags = make(map[Flag]bool)
			}
			s.Flags[f] = true
		}
	}
	if b.dye != nil {
		d := *b.dye
		s.Dye = &d
	}
	if b.trim != nil {
		t := *b.trim
		s.Trim = &t
	}
	if b.glint != nil {
		g := *b.glint
		s.Glint = &g
	}
	if b.profile != nil {
		p := *b.profile
		s.Profile = &p
	}
	for k, v := range b.data {
		s.SetData(k, v)
	}
	return s
}

// FromStack reads a builder back from a native stack. Name and lore are
// already rendered text and are not recovered.
func FromStack(s *Stack) *Builder {
	if s == nil {
		return Of(Air)
	}
	b := Of(s.Material).Amount(s.Count).Damage(s.Damage)
	for _, e := range s.Enchantments {
		b.Enchant(e.Enchantment, e.Level)
	}
	for _, e := range s.StoredEnchantments {
		b.StoreEnchant(e.Enchantment, e.Level)
	}
	b.attributes = slices.Clone(s.Attributes)
	b.unbreakable = s.Unbreakable
	b.canBreak = slices.Clone(s.CanBreak)
	b.canPlaceOn = slices.Clone(s.CanPlaceOn)
	b.hideTooltip = s.HideTooltip
	for f, v := range s.Flags {
		if v {
			b.Flags(f)
		}
	}
	if s.Dye != nil {
		b.Dye(*s.Dye)
	}
	if s.Trim != nil {
		b.Trim(*s.Trim)
	}
	if s.Glint != nil {
		b.Glowing(*s.Glint)
	}
	if s.Profile != nil {
		p := *s.Profile
		b.profile = &p
	}
	for k, v := range s.Data {
		b.Data(k, v)
	}
	return b
}

func sortedLevels(levels map[Enchantment]int) []EnchantmentLevel {
	if len(levels) == 0 {
		return nil
	}
	out := make([]EnchantmentLevel, 0, len(levels))
	for e, l := range levels {
		out = append(out, EnchantmentLevel{Enchantment: e, Level: l})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Enchantment < out[j].Enchantment })
	return out
}
