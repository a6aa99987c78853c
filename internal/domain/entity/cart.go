package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one entry in the cart: a product configured with one specific
// variant combination and a quantity. The product is embedded as a snapshot
// so a cart survives catalog reloads intact.
type CartLine struct {
	ItemID            string         `json:"item_id"`
	Product           Product        `json:"product"`
	Quantity          int            `json:"quantity"`
	SelectedMaterial  MaterialOption `json:"selected_material"`
	SelectedColor     ColorOption    `json:"selected_color"`
	SelectedSize      SizeOption     `json:"selected_size"`
	CustomizationNote string         `json:"customization_note"`
}

// Cart is the ordered list of lines a visitor intends to buy.
// Insertion order is display order.
type Cart struct {
	Lines []*CartLine `json:"lines"`
}

// NewLineID derives a fresh cart line id from the product, the three variant
// selections and the creation instant. Ids are unique per add within one
// session; they are never reused even for identical configurations.
func NewLineID(productID, materialID, colorID, sizeID string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s-%s-%d", productID, materialID, colorID, sizeID, at.UnixMilli())
}

// UnitPrice is the configured price of a single unit:
// base price plus the three selected variant modifiers.
func (l *CartLine) UnitPrice() decimal.Decimal {
	return l.Product.BasePrice.
		Add(l.SelectedMaterial.PriceModifier).
		Add(l.SelectedColor.PriceModifier).
		Add(l.SelectedSize.PriceModifier)
}

// Total is the unit price multiplied by the quantity.
func (l *CartLine) Total() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Subtotal recomputes the sum of all line totals. Nothing is cached;
// the value is always derivable from the current lines.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range c.Lines {
		subtotal = subtotal.Add(line.Total())
	}

	return subtotal
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}

// BadgeCount renders the item count for the cart badge, saturating at "9+".
func (c *Cart) BadgeCount() string {
	count := c.ItemCount()
	if count > 9 {
		return "9+"
	}

	return fmt.Sprintf("%d", count)
}

// LineByID returns the line with the given item id, or nil if absent.
func (c *Cart) LineByID(itemID string) *CartLine {
	for _, line := range c.Lines {
		if line.ItemID == itemID {
			return line
		}
	}

	return nil
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
