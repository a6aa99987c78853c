package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configuredLine(base, materialMod, colorMod, sizeMod string, qty int) *CartLine {
	return &CartLine{
		ItemID:           "p1-m1-c1-s1-1700000000000",
		Product:          Product{ID: "p1", BasePrice: decimal.RequireFromString(base)},
		Quantity:         qty,
		SelectedMaterial: MaterialOption{ID: "m1", PriceModifier: decimal.RequireFromString(materialMod)},
		SelectedColor:    ColorOption{ID: "c1", PriceModifier: decimal.RequireFromString(colorMod)},
		SelectedSize:     SizeOption{ID: "s1", PriceModifier: decimal.RequireFromString(sizeMod)},
	}
}

func TestCartLine_UnitPrice_SumsAllModifiers(t *testing.T) {
	line := configuredLine("20", "2", "0", "3", 2)

	assert.True(t, line.UnitPrice().Equal(decimal.RequireFromString("25")))
	assert.True(t, line.Total().Equal(decimal.RequireFromString("50")))
}

func TestCartLine_NegativeModifierLowersPrice(t *testing.T) {
	line := configuredLine("20", "-2.50", "0", "0", 1)

	assert.True(t, line.UnitPrice().Equal(decimal.RequireFromString("17.5")))
}

func TestCart_Subtotal_ExactDecimalAccumulation(t *testing.T) {
	cart := &Cart{}
	for i := 0; i < 1000; i++ {
		cart.Lines = append(cart.Lines, configuredLine("0.10", "0", "0", "0", 1))
	}

	// Binary floats would drift here; decimals must not.
	assert.True(t, cart.Subtotal().Equal(decimal.RequireFromString("100.00")))
}

func TestCart_ItemCountAndBadge(t *testing.T) {
	tests := []struct {
		name       string
		quantities []int
		wantCount  int
		wantBadge  string
	}{
		{"empty", nil, 0, "0"},
		{"single line", []int{3}, 3, "3"},
		{"at saturation boundary", []int{4, 5}, 9, "9"},
		{"past saturation", []int{6, 5}, 11, "9+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{}
			for _, q := range tt.quantities {
				cart.Lines = append(cart.Lines, configuredLine("1", "0", "0", "0", q))
			}

			assert.Equal(t, tt.wantCount, cart.ItemCount())
			assert.Equal(t, tt.wantBadge, cart.BadgeCount())
		})
	}
}

func TestNewLineID_EncodesSelectionAndInstant(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	id := NewLineID("lamp-01", "pla", "white", "medium", at)
	assert.Equal(t, "lamp-01-pla-white-medium-1700000000000", id)

	// A later instant yields a different id for the same configuration.
	other := NewLineID("lamp-01", "pla", "white", "medium", at.Add(time.Millisecond))
	assert.NotEqual(t, id, other)
}

func TestCart_LineByID(t *testing.T) {
	line := configuredLine("5", "0", "0", "0", 1)
	cart := &Cart{Lines: []*CartLine{line}}

	require.NotNil(t, cart.LineByID(line.ItemID))
	assert.Nil(t, cart.LineByID("absent"))
}

func TestCart_IsEmpty(t *testing.T) {
	assert.True(t, (&Cart{}).IsEmpty())
	assert.False(t, (&Cart{Lines: []*CartLine{configuredLine("1", "0", "0", "0", 1)}}).IsEmpty())
}
