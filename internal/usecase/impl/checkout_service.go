package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
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

// referenceCharset is the alphabet of the random part of order references.
const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// referenceLength is the length of the random part of order references.
const referenceLength = 6

type checkoutService struct {
	cartRepo       repository.CartRepository
	mailComposer   service.MailComposer
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger

	mu     sync.Mutex
	drafts map[string]*entity.CheckoutDraft
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartRepo       repository.CartRepository
	MailComposer   service.MailComposer
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCheckoutService creates a new checkout service instance. Wizard drafts
// live in memory only and are lost on restart; the cart itself is durable.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:       params.CartRepo,
		mailComposer:   params.MailComposer,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		config:         params.Config,
		logger:         params.Logger,
		drafts:         make(map[string]*entity.CheckoutDraft),
	}
}

// GetState returns the session's current wizard state
func (s *checkoutService) GetState(ctx context.Context, sessionID string) (*usecase.CheckoutState, error) {
	if err := s.guardCartNotEmpty(ctx, sessionID); err != nil {
		return nil, err
	}

	draft := s.draftFor(sessionID)

	return s.state(draft), nil
}

// SubmitCustomerInfo validates step 1 and advances on success
func (s *checkoutService) SubmitCustomerInfo(ctx context.Context, sessionID string, info *entity.CustomerInfo) (*usecase.CheckoutState, error) {
	if err := s.guardCartNotEmpty(ctx, sessionID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.draftForLocked(sessionID)
	if draft.Step != entity.StepCustomerInfo {
		return nil, domainerrors.ErrCheckoutWrongStep
	}

	draft.CustomerInfo = *info
	draft.FieldErrors = info.Validate()
	if len(draft.FieldErrors) == 0 {
		draft.Step = entity.StepShippingAddress
	}

	return s.state(draft), nil
}

// SubmitShippingAddress validates step 2 and advances on success
func (s *checkoutService) SubmitShippingAddress(ctx context.Context, sessionID string, addr *entity.ShippingAddress) (*usecase.CheckoutState, error) {
	if err := s.guardCartNotEmpty(ctx, sessionID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.draftForLocked(sessionID)
	if draft.Step != entity.StepShippingAddress {
		return nil, domainerrors.ErrCheckoutWrongStep
	}

	draft.ShippingAddress = *addr
	// The destination country is fixed; whatever the client sent is
	// overwritten.
	draft.ShippingAddress.Country = s.config.Checkout.Country
	draft.FieldErrors = draft.ShippingAddress.Validate()
	if len(draft.FieldErrors) == 0 {
		draft.Step = entity.StepReview
	}

	return s.state(draft), nil
}

// GoBack steps the wizard backward without re-validating
func (s *checkoutService) GoBack(ctx context.Context, sessionID string) (*usecase.CheckoutState, error) {
	if err := s.guardCartNotEmpty(ctx, sessionID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.draftForLocked(sessionID)
	if draft.Step > entity.StepCustomerInfo {
		draft.Step--
	}
	draft.FieldErrors = nil

	return s.state(draft), nil
}

// Submit finalizes the order from the review step
func (s *checkoutService) Submit(ctx context.Context, sessionID string) (*usecase.OrderConfirmation, error) {
	s.mu.Lock()
	draft := s.draftForLocked(sessionID)
	if draft.Step != entity.StepReview {
		s.mu.Unlock()

		return nil, domainerrors.ErrCheckoutWrongStep
	}
	draftCopy := *draft
	s.mu.Unlock()

	cart, err := s.cartRepo.Load(ctx, s.storageKey(sessionID))
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartEmpty
		}

		return nil, domainerrors.NewStorageError(err, "Cart could not be loaded")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	reference, err := s.newReference()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order reference")
	}

	subtotal := cart.Subtotal()
	order := &entity.Order{
		Reference:       reference,
		CustomerInfo:    draftCopy.CustomerInfo,
		ShippingAddress: draftCopy.ShippingAddress,
		DeliveryMethod:  s.config.Checkout.DeliveryMethod,
		Lines:           cart.Lines,
		Subtotal:        subtotal,
		DeliveryCharge:  s.config.Checkout.DeliveryCharge,
		Total:           subtotal.Add(s.config.Checkout.DeliveryCharge),
		CreatedAt:       time.Now(),
	}

	mailDraft := s.mailComposer.ComposeOrderRequest(order)

	// The QR code is a convenience; a failed render never fails the order.
	qrPNG, err := s.qrcodeService.GenerateMailtoQR(mailDraft.MailtoURI)
	if err != nil {
		s.logger.Warn("Failed to render mailto QR code",
			slog.String("reference", reference),
			slog.Any("error", err),
		)
		qrPNG = nil
	}

	s.publishEvent(ctx, constants.EventSubmitOrderRequest, map[string]any{
		"reference":  reference,
		"item_count": cart.ItemCount(),
		"total":      order.Total.String(),
	})

	if err := s.cartRepo.Delete(ctx, s.storageKey(sessionID)); err != nil {
		s.logger.Warn("Failed to clear cart after submit",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
	}

	s.mu.Lock()
	delete(s.drafts, sessionID)
	s.mu.Unlock()

	lines := make([]*usecase.CartLineView, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, &usecase.CartLineView{
			CartLine:  line,
			UnitPrice: line.UnitPrice(),
			LineTotal: line.Total(),
		})
	}

	return &usecase.OrderConfirmation{
		Reference:       order.Reference,
		CustomerInfo:    order.CustomerInfo,
		ShippingAddress: order.ShippingAddress,
		DeliveryMethod:  order.DeliveryMethod,
		Lines:           lines,
		Subtotal:        order.Subtotal,
		DeliveryCharge:  order.DeliveryCharge,
		Total:           order.Total,
		Mail:            mailDraft,
		MailtoQRPNG:     qrPNG,
	}, nil
}

// guardCartNotEmpty keeps sessions with nothing to check out away from the
// wizard. The error carries the /cart redirect hint and no order reference
// is ever minted for an empty cart.
func (s *checkoutService) guardCartNotEmpty(ctx context.Context, sessionID string) error {
	cart, err := s.cartRepo.Load(ctx, s.storageKey(sessionID))
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartEmpty
		}

		return domainerrors.NewStorageError(err, "Cart could not be loaded")
	}
	if cart.IsEmpty() {
		return domainerrors.ErrCartEmpty
	}

	return nil
}

func (s *checkoutService) draftFor(sessionID string) *entity.CheckoutDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draftForLocked(sessionID)
}

// draftForLocked returns the session's draft, creating a fresh one at the
// first step when none exists. Caller holds s.mu.
func (s *checkoutService) draftForLocked(sessionID string) *entity.CheckoutDraft {
	if draft, ok := s.drafts[sessionID]; ok {
		return draft
	}

	draft := &entity.CheckoutDraft{
		Step:      entity.StepCustomerInfo,
		CreatedAt: time.Now(),
	}
	draft.ShippingAddress.Country = s.config.Checkout.Country
	s.drafts[sessionID] = draft

	return draft
}

func (s *checkoutService) state(draft *entity.CheckoutDraft) *usecase.CheckoutState {
	return &usecase.CheckoutState{
		Step:            draft.Step,
		CustomerInfo:    draft.CustomerInfo,
		ShippingAddress: draft.ShippingAddress,
		FieldErrors:     draft.FieldErrors,
		Country:         s.config.Checkout.Country,
		DeliveryMethod:  s.config.Checkout.DeliveryMethod,
		DeliveryCharge:  s.config.Checkout.DeliveryCharge,
	}
}

func (s *checkoutService) storageKey(sessionID string) string {
	return s.config.Cart.KeyPrefix + ":" + sessionID
}

// newReference builds an order reference like GD-2026-K3M9X2: configured
// prefix, current year, six random upper alphanumerics. Uniqueness is
// best-effort; references label email requests, they are not database keys.
func (s *checkoutService) newReference() (string, error) {
	random := make([]byte, referenceLength)
	charsetLen := big.NewInt(int64(len(referenceCharset)))
	for i := range random {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", errors.WithStack(err)
		}
		random[i] = referenceCharset[n.Int64()]
	}

	return fmt.Sprintf("%s-%d-%s", s.config.Checkout.ReferencePrefix, time.Now().Year(), random), nil
}

func (s *checkoutService) publishEvent(ctx context.Context, name string, params map[string]any) {
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
