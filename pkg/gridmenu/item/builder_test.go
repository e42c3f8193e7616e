package item

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/fault"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/lang"
)

type profileFunc func() (Profile, bool)

func (f profileFunc) Profile() (Profile, bool) { return f() }

func TestEnchantAndFlags(t *testing.T) {
	b := Of(Stone).Enchant(Sharpness, 3).Flags(HideEnchants).Flags(HideEnchants)

	assert.Equal(t, 3, b.EnchantLevel(Sharpness))
	assert.True(t, b.HasFlag(HideEnchants))
	assert.True(t, b.IsGlowing())

	s := b.Stack()
	require.NotNil(t, s)
	assert.Equal(t, []EnchantmentLevel{{Sharpness, 3}}, s.Enchantments)
	assert.Equal(t, uint32(1)<<uint(HideEnchants), s.Mask())
}

func TestEnchantZeroRemoves(t *testing.T) {
	b := Of(Stone).Enchant(Sharpness, 3).Enchant(Sharpness, 0)

	assert.Equal(t, 0, b.EnchantLevel(Sharpness))
	assert.False(t, b.IsGlowing())
	assert.Empty(t, b.Stack().Enchantments)
}

func TestFlagDefaults(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
		flag  Flag
		want  bool
	}{
		{"no enchantments", func() *Builder { return Of(Stone).ShowEnchants(false) }, HideEnchants, false},
		{"hidden enchantments", func() *Builder { return Of(Stone).Enchant(Sharpness, 1).ShowEnchants(false) }, HideEnchants, true},
		{"shown enchantments", func() *Builder { return Of(Stone).Enchant(Sharpness, 1) }, HideEnchants, false},
		{"hidden unbreakable", func() *Builder { return Of(Stone).Unbreakable(true).Tooltip(HideUnbreakable, false) }, HideUnbreakable, true},
		{"unbreakable absent", func() *Builder { return Of(Stone).Tooltip(HideUnbreakable, false) }, HideUnbreakable, false},
		{"hidden dye", func() *Builder { return Of(LeatherChestplate).Dye(0xff0000).Tooltip(HideDye, false) }, HideDye, true},
		{"hidden stored", func() *Builder { return Of(EnchantedBook).StoreEnchant(Mending, 1).Tooltip(HideStoredEnchants, false) }, HideStoredEnchants, true},
		{"additional tooltip", func() *Builder { return Of(Stone).Tooltip(HideAdditionalTooltip, false) }, HideAdditionalTooltip, true},
		{"explicit override wins", func() *Builder {
			return Of(Stone).Enchant(Sharpness, 1).ShowEnchants(false).SetFlags(false, HideEnchants)
		}, HideEnchants, false},
		{"reset restores default", func() *Builder {
			return Of(Stone).Flags(HideDye).ResetFlags(HideDye)
		}, HideDye, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.build().HasFlag(tt.flag))
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := Of(Stone).
		Name(lang.Key("shop.item")).
		Description(lang.Literal("one")).
		Enchant(Sharpness, 1).
		Data("k", []byte{1})

	clone := original.Clone()
	clone.Amount(5).Enchant(Sharpness, 4).Enchant(Unbreaking, 2).Flags(HideEnchants).
		AddDescription(lang.Literal("two")).Data("k", []byte{2})

	assert.Equal(t, 1, original.GetAmount())
	assert.Equal(t, 1, original.EnchantLevel(Sharpness))
	assert.Equal(t, 0, original.EnchantLevel(Unbreaking))
	assert.False(t, original.HasFlag(HideEnchants))
	assert.Len(t, original.GetDescription(), 1)
	data, _ := original.GetData("k")
	assert.Equal(t, []byte{1}, data)

	assert.Equal(t, 5, clone.GetAmount())
	assert.Equal(t, "shop.item", clone.GetName().ID())
}

func TestAmountClamped(t *testing.T) {
	assert.Equal(t, 1, Of(Stone).Amount(0).GetAmount())
	assert.Equal(t, 1, Of(Stone).Amount(-3).GetAmount())
}

func TestAirHasNoStack(t *testing.T) {
	assert.Nil(t, Of(Air).Stack())
	assert.Nil(t, Of("").Stack())
}

func TestSkullRequiresHead(t *testing.T) {
	b := Of(Stone).Skull("texture", "sig")
	require.Error(t, b.Err())
	assert.True(t, fault.IsIllegalState(b.Err()))
	_, ok := b.GetProfile()
	assert.False(t, ok)

	head := Of(PlayerHead).Skull("texture", "sig")
	require.NoError(t, head.Err())
	p, ok := head.GetProfile()
	require.True(t, ok)
	assert.Equal(t, "texture", p.Texture)
	assert.NotEqual(t, uuid.Nil, p.ID)
}

func TestSkullOf(t *testing.T) {
	id := uuid.New()
	textured := profileFunc(func() (Profile, bool) {
		return Profile{ID: id, Texture: "abc"}, true
	})
	bare := profileFunc(func() (Profile, bool) { return Profile{}, false })

	b := Of(PlayerHead).SkullOf(textured)
	require.NoError(t, b.Err())
	p, _ := b.GetProfile()
	assert.Equal(t, id, p.ID)

	assert.True(t, fault.IsIllegalState(Of(PlayerHead).SkullOf(bare).Err()))
	assert.True(t, fault.IsIllegalState(Of(Stone).SkullOf(textured).Err()))
}

func TestFromStackRoundTrip(t *testing.T) {
	original := Of(DiamondSword).Amount(2).Damage(10).
		Enchant(Sharpness, 5).Unbreakable(true).Flags(HideUnbreakable).
		Glowing(false).Data("shop:price", []byte("42"))

	back := FromStack(original.Stack())

	assert.Equal(t, DiamondSword, back.GetMaterial())
	assert.Equal(t, 2, back.GetAmount())
	assert.Equal(t, 10, back.GetDamage())
	assert.Equal(t, 5, back.EnchantLevel(Sharpness))
	assert.True(t, back.IsUnbreakable())
	assert.True(t, back.HasFlag(HideUnbreakable))
	assert.False(t, back.IsGlowing())
	price, ok := back.GetData("shop:price")
	require.True(t, ok)
	assert.Equal(t, []byte("42"), price)
}

func TestParseMaterial(t *testing.T) {
	assert.Equal(t, Stone, ParseMaterial("STONE"))
	assert.Equal(t, Material("mod:widget"), ParseMaterial("mod:widget"))
	assert.Equal(t, Air, ParseMaterial(" "))
}

func TestRemoveHelpers(t *testing.T) {
	b := OfAmount(Stone, 4).Enchant(Sharpness, 2).RemoveEnchant(Sharpness).
		Tooltip(HideAdditionalTooltip, false).RemoveFlags(HideAdditionalTooltip)

	assert.Equal(t, 4, b.GetAmount())
	assert.Equal(t, 0, b.EnchantLevel(Sharpness))
	assert.False(t, b.HasFlag(HideAdditionalTooltip))

	b.ResetFlags(HideAdditionalTooltip)
	assert.True(t, b.HasFlag(HideAdditionalTooltip))

	assert.False(t, Of(Stone).HideAdditionalTooltip(true).HideAdditionalTooltip(false).HasFlag(HideAdditionalTooltip))
}
