package item

import (
	"encoding/binary"
	"maps"
	"slices"
)

// Stack is the native item representation handed to a host. Name and Lore
// hold chat JSON, one document per lore line.
type Stack struct {
	Material           Material
	Count              int
	Damage             int
	Enchantments       []EnchantmentLevel
	StoredEnchantments []EnchantmentLevel
	Attributes         []AttributeModifier
	Flags              map[Flag]bool
	Unbreakable        bool
	CanBreak           []string
	CanPlaceOn         []string
	Dye                *int
	Trim               *Trim
	Glint              *bool
	HideTooltip        bool
	Profile            *Profile

	Name string
	Lore []string

	Data map[string][]byte
}

// IsEmpty reports whether s represents an empty slot.
func (s *Stack) IsEmpty() bool {
	return s == nil || s.Material.IsAir() || s.Count <= 0
}

// Mask packs the set flags into a bitmask, bit i for flag i.
func (s *Stack) Mask() uint32 {
	if s == nil {
		return 0
	}
	var mask uint32
	for f, v := range s.Flags {
		if v && f.valid() {
			mask |= 1 << uint(f)
		}
	}
	return mask
}

// HasFlag reports whether f is set on the stack.
func (s *Stack) HasFlag(f Flag) bool {
	return s != nil && s.Flags[f]
}

// SetData stores a copy of value under key.
func (s *Stack) SetData(key string, value []byte) {
	if s.Data == nil {
		s.Data = make(map[string][]byte)
	}
	s.Data[key] = slices.Clone(value)
}

// GetData returns the value stored under key.
func (s *Stack) GetData(key string) ([]byte, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.Data[key]
	return v, ok
}

// SetInt stores a 32-bit integer tag under key.
func (s *Stack) SetInt(key string, v int32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	s.SetData(key, buf[:])
}

// GetInt reads a 32-bit integer tag. Values of any other width are ignored.
func (s *Stack) GetInt(key string) (int32, bool) {
	raw, ok := s.GetData(key)
	if !ok || len(raw) != 4 {
		return 0, false
	}
	return int32(binary.BigEndian.Uint32(raw)), true
}

// Clone returns a deep copy of s.
func (s *Stack) Clone() *Stack {
	if s == nil {
		return nil
	}
	c := *s
	c.Enchantments = slices.Clone(s.Enchantments)
	c.StoredEnchantments = slices.Clone(s.StoredEnchantments)
	c.Attributes = slices.Clone(s.Attributes)
	c.Flags = maps.Clone(s.Flags)
	c.CanBreak = slices.Clone(s.CanBreak)
	c.CanPlaceOn = slices.Clone(s.CanPlaceOn)
	c.Lore = slices.Clone(s.Lore)
	if s.Dye != nil {
		d := *s.Dye
		c.Dye = &d
	}
	if s.Trim != nil {
		t := *s.Trim
		c.Trim = &t
	}
	if s.Glint != nil {
		g := *s.Glint
		c.Glint = &g
	}
	if s.Profile != nil {
		p := *s.Profile
		c.Profile = &p
	}
	if s.Data != nil {
		c.Data = make(map[string][]byte, len(s.Data))
		for k, v := range s.Data {
			c.Data[k] = slices.Clone(v)
		}
	}
	return &c
}
