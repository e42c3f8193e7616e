package item

import (
	"strings"

	"github.com/google/uuid"
)

// Material identifies an item type by its namespaced key.
type Material string

const (
	Air                   Material = "minecraft:air"
	Stone                 Material = "minecraft:stone"
	Arrow                 Material = "minecraft:arrow"
	Barrier               Material = "minecraft:barrier"
	Book                  Material = "minecraft:book"
	EnchantedBook         Material = "minecraft:enchanted_book"
	Paper                 Material = "minecraft:paper"
	SlimeBall             Material = "minecraft:slime_ball"
	RedstoneBlock         Material = "minecraft:redstone_block"
	Diamond               Material = "minecraft:diamond"
	DiamondSword          Material = "minecraft:diamond_sword"
	LeatherChestplate     Material = "minecraft:leather_chestplate"
	PlayerHead            Material = "minecraft:player_head"
	PlayerWallHead        Material = "minecraft:player_wall_head"
	GrayStainedGlassPane  Material = "minecraft:gray_stained_glass_pane"
	BlackStainedGlassPane Material = "minecraft:black_stained_glass_pane"
)

// ParseMaterial normalises a material key, adding the default namespace.
func ParseMaterial(s string) Material {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Air
	}
	if !strings.Contains(s, ":") {
		s = "minecraft:" + s
	}
	return Material(s)
}

// IsAir reports whether the material renders as an empty slot.
func (m Material) IsAir() bool {
	return m == "" || m == Air
}

// IsHead reports whether the material can carry a skin profile.
func (m Material) IsHead() bool {
	return m == PlayerHead || m == PlayerWallHead
}

// Enchantment identifies an enchantment by its namespaced key.
type Enchantment string

const (
	Sharpness  Enchantment = "minecraft:sharpness"
	Protection Enchantment = "minecraft:protection"
	Efficiency Enchantment = "minecraft:efficiency"
	Unbreaking Enchantment = "minecraft:unbreaking"
	Fortune    Enchantment = "minecraft:fortune"
	Mending    Enchantment = "minecraft:mending"
	Luck       Enchantment = "minecraft:luck_of_the_sea"
)

// EnchantmentLevel is one persisted (enchantment, level) pair.
type EnchantmentLevel struct {
	Enchantment Enchantment
	Level       int
}

// Flag is a display hint hiding part of an item's tooltip.
type Flag int

const (
	HideEnchants Flag = iota
	HideAttributes
	HideUnbreakable
	HideDestroys
	HidePlacedOn
	HideAdditionalTooltip
	HideDye
	HideArmorTrim
	HideStoredEnchants

	flagCount
)

// AllFlags lists every flag in bit order.
func AllFlags() []Flag {
	flags := make([]Flag, 0, flagCount)
	for f := Flag(0); f < flagCount; f++ {
		flags = append(flags, f)
	}
	return flags
}

func (f Flag) String() string {
	switch f {
	case HideEnchants:
		return "HideEnchants"
	case HideAttributes:
		return "HideAttributes"
	case HideUnbreakable:
		return "HideUnbreakable"
	case HideDestroys:
		return "HideDestroys"
	case HidePlacedOn:
		return "HidePlacedOn"
	case HideAdditionalTooltip:
		return "HideAdditionalTooltip"
	case HideDye:
		return "HideDye"
	case HideArmorTrim:
		return "HideArmorTrim"
	case HideStoredEnchants:
		return "HideStoredEnchants"
	default:
		return "Unknown"
	}
}

func (f Flag) valid() bool {
	return f >= 0 && f < flagCount
}

// Profile is a skin profile for head items.
type Profile struct {
	ID        uuid.UUID
	Texture   string
	Signature string
}

// ProfileSource is anything carrying a skin profile, typically a player.
type ProfileSource interface {
	Profile() (Profile, bool)
}

// AttributeModifier changes an attribute while the item is held or worn.
type AttributeModifier struct {
	Attribute string
	Amount    float64
	Operation string
	Slot      string
}

// Trim is an armour trim.
type Trim struct {
	Material string
	Pattern  string
}
