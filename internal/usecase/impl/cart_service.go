package impl

import (
	"context"
	"log/slog"
	"time"

	"light3d/config"
	deliverycontext "light3d/internal/delivery/context"
	"light3d/internal/domain/constants"
	"light3d/internal/domain/entity"
	domainerrors "light3d/internal/domain/errors"
	"light3d/internal/domain/repository"
	"light3d/internal/domain/service"
	"light3d/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo       repository.CartRepository
	catalogRepo    repository.CatalogRepository
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo       repository.CartRepository
	CatalogRepo    repository.CatalogRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:       params.CartRepo,
		catalogRepo:    params.CatalogRepo,
		eventPublisher: params.EventPublisher,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// GetCart returns the session's cart
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*usecase.CartOutput, error) {
	cart := s.loadCart(ctx, sessionID)

	return cartOutput(cart), nil
}

// AddLine appends a newly configured line to the cart
func (s *cartService) AddLine(ctx context.Context, sessionID string, input *usecase.AddLineInput) (*usecase.CartOutput, error) {
	product, err := s.catalogRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	material, ok := product.MaterialByID(input.MaterialID)
	if !ok {
		return nil, domainerrors.ErrVariantNotOnProduct.WithDetails("unknown material: " + input.MaterialID)
	}
	color, ok := product.ColorByID(input.ColorID)
	if !ok {
		return nil, domainerrors.ErrVariantNotOnProduct.WithDetails("unknown color: " + input.ColorID)
	}
	size, ok := product.SizeByID(input.SizeID)
	if !ok {
		return nil, domainerrors.ErrVariantNotOnProduct.WithDetails("unknown size: " + input.SizeID)
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	cart := s.loadCart(ctx, sessionID)

	// Every add creates a fresh line; identical configurations are never
	// merged.
	line := &entity.CartLine{
		ItemID:            entity.NewLineID(product.ID, material.ID, color.ID, size.ID, time.Now()),
		Product:           *product,
		Quantity:          quantity,
		SelectedMaterial:  material,
		SelectedColor:     color,
		SelectedSize:      size,
		CustomizationNote: input.CustomizationNote,
	}
	cart.Lines = append(cart.Lines, line)

	if err := s.saveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, constants.EventAddToCart, map[string]any{
		"product_id": product.ID,
		"quantity":   quantity,
		"unit_price": line.UnitPrice().String(),
	})

	return cartOutput(cart), nil
}

// RemoveLine deletes a line; removing an absent line is a no-op
func (s *cartService) RemoveLine(ctx context.Context, sessionID, itemID string) (*usecase.CartOutput, error) {
	cart := s.loadCart(ctx, sessionID)

	kept := cart.Lines[:0]
	for _, line := range cart.Lines {
		if line.ItemID != itemID {
			kept = append(kept, line)
		}
	}
	cart.Lines = kept

	if err := s.saveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	return cartOutput(cart), nil
}

// SetQuantity updates a line's quantity; zero or less removes the line
func (s *cartService) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*usecase.CartOutput, error) {
	if quantity <= 0 {
		return s.RemoveLine(ctx, sessionID, itemID)
	}

	cart := s.loadCart(ctx, sessionID)
	if line := cart.LineByID(itemID); line != nil {
		line.Quantity = quantity
	}

	if err := s.saveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	return cartOutput(cart), nil
}

// SetCustomizationNote replaces a line's customization note
func (s *cartService) SetCustomizationNote(ctx context.Context, sessionID, itemID, note string) (*usecase.CartOutput, error) {
	cart := s.loadCart(ctx, sessionID)
	if line := cart.LineByID(itemID); line != nil {
		line.CustomizationNote = note
	}

	if err := s.saveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	return cartOutput(cart), nil
}

// SetVariant applies a partial variant change to a line
func (s *cartService) SetVariant(ctx context.Context, sessionID, itemID string, input *usecase.VariantUpdateInput) (*usecase.CartOutput, error) {
	cart := s.loadCart(ctx, sessionID)

	line := cart.LineByID(itemID)
	if line != nil {
		if input.MaterialID != nil {
			material, ok := line.Product.MaterialByID(*input.MaterialID)
			if !ok {
				return nil, domainerrors.ErrVariantNotOnProduct.WithDetails("unknown material: " + *input.MaterialID)
			}
			line.SelectedMaterial = material
		}
		if input.ColorID != nil {
			color, ok := line.Product.ColorByID(*input.ColorID)
			if !ok {
				return nil, domainerrors.ErrVariantNotOnProduct.WithDetails("unknown color: " + *input.ColorID)
			}
			line.SelectedColor = color
		}
		if input.SizeID != nil {
			size, ok := line.Product.SizeByID(*input.SizeID)
			if !ok {
				return nil, domainerrors.ErrVariantNotOnProduct.WithDetails("unknown size: " + *input.SizeID)
			}
			line.SelectedSize = size
		}
	}

	if err := s.saveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	return cartOutput(cart), nil
}

// ClearCart removes every line
func (s *cartService) ClearCart(ctx context.Context, sessionID string) (*usecase.CartOutput, error) {
	cart := &entity.Cart{}

	if err := s.saveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	return cartOutput(cart), nil
}

// storageKey namespaces the per-session cart key.
func (s *cartService) storageKey(sessionID string) string {
	return s.config.Cart.KeyPrefix + ":" + sessionID
}

// loadCart reads the session's cart. A missing or unreadable stored cart
// yields an empty one; the visitor starts over rather than seeing an error.
func (s *cartService) loadCart(ctx context.Context, sessionID string) *entity.Cart {
	cart, err := s.cartRepo.Load(ctx, s.storageKey(sessionID))
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			s.logger.Warn("Stored cart unreadable, starting empty",
				slog.String("session_id", sessionID),
				slog.Any("error", err),
			)
		}

		return &entity.Cart{}
	}

	return cart
}

func (s *cartService) saveCart(ctx context.Context, sessionID string, cart *entity.Cart) error {
	if err := s.cartRepo.Save(ctx, s.storageKey(sessionID), cart); err != nil {
		s.logger.Error("Failed to save cart",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)

		return domainerrors.ErrCartSaveFailed.WithDetails(err.Error())
	}

	return nil
}

// publishEvent emits an analytics event. Publishing is fire-and-forget; a
// failed publish is logged and never fails the cart operation.
func (s *cartService) publishEvent(ctx context.Context, name string, params map[string]any) {
	event := &service.AnalyticsEvent{
		EventID:    uuid.New().String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       name,
		Params:     params,
		OccurredAt: time.Now(),
	}

	if err := s.eventPublisher.PublishAnalyticsEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish analytics event",
			slog.String("event_name", name),
			slog.Any("error", err),
		)
	}
}

func cartOutput(cart *entity.Cart) *usecase.CartOutput {
	lines := make([]*usecase.CartLineView, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, &usecase.CartLineView{
			CartLine:  line,
			UnitPrice: line.UnitPrice(),
			LineTotal: line.Total(),
		})
	}

	return &usecase.CartOutput{
		Lines:      lines,
		Subtotal:   cart.Subtotal(),
		ItemCount:  cart.ItemCount(),
		BadgeCount: cart.BadgeCount(),
	}
}
