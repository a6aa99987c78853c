package usecase

import (
	"context"

	"light3d/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// AddLineInput represents the input for adding a configured product to a cart
type AddLineInput struct {
	ProductID         string `json:"product_id" validate:"required"`
	MaterialID        string `json:"material_id" validate:"required"`
	ColorID           string `json:"color_id" validate:"required"`
	SizeID            string `json:"size_id" validate:"required"`
	Quantity          int    `json:"quantity"`
	CustomizationNote string `json:"customization_note,omitempty"`
}

// VariantUpdateInput represents a partial variant change on an existing line.
// Nil fields keep the current selection.
type VariantUpdateInput struct {
	MaterialID *string `json:"material_id,omitempty"`
	ColorID    *string `json:"color_id,omitempty"`
	SizeID     *string `json:"size_id,omitempty"`
}

// CartLineView is a cart line enriched with its computed prices.
type CartLineView struct {
	*entity.CartLine
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartOutput is the full cart state returned after every read or mutation.
type CartOutput struct {
	Lines      []*CartLineView `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	ItemCount  int             `json:"item_count"`
	BadgeCount string          `json:"badge_count"`
}

// CartUsecase defines the interface for cart management use cases.
// Every mutation persists the full cart before returning.
type CartUsecase interface {
	// GetCart returns the session's cart. A missing or unreadable stored
	// cart yields an empty one.
	GetCart(ctx context.Context, sessionID string) (*CartOutput, error)

	// AddLine appends a new line with a fresh item id. Identical
	// configurations are never merged. The selected variant ids must
	// belong to the product's own option lists.
	AddLine(ctx context.Context, sessionID string, input *AddLineInput) (*CartOutput, error)

	// RemoveLine deletes the line with the given item id; removing an
	// absent line is a no-op.
	RemoveLine(ctx context.Context, sessionID, itemID string) (*CartOutput, error)

	// SetQuantity updates a line's quantity. A quantity of zero or less
	// removes the line.
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*CartOutput, error)

	// SetCustomizationNote replaces a line's customization note.
	SetCustomizationNote(ctx context.Context, sessionID, itemID, note string) (*CartOutput, error)

	// SetVariant applies a partial variant change to a line. The new ids
	// must belong to the line's product.
	SetVariant(ctx context.Context, sessionID, itemID string, input *VariantUpdateInput) (*CartOutput, error)

	// ClearCart removes every line.
	ClearCart(ctx context.Context, sessionID string) (*CartOutput, error)
}
