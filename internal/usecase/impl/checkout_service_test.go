package impl

import (
	"context"
	"regexp"
	"testing"

	"light3d/internal/domain/entity"
	domainerrors "light3d/internal/domain/errors"
	"light3d/internal/domain/repository"
	domainservice "light3d/internal/domain/service"
	mockRepo "light3d/internal/mocks/repository"
	mockSvc "light3d/internal/mocks/service"
	"light3d/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCustomerInfo() *entity.CustomerInfo {
	return &entity.CustomerInfo{
		FirstName: "Maria",
		LastName:  "Georgiou",
		Email:     "maria@example.com",
		Phone:     "+357 99 123456",
	}
}

func validShippingAddress() *entity.ShippingAddress {
	return &entity.ShippingAddress{
		Street:  "12 Ledra Street",
		City:    "Nicosia",
		ZipCode: "1011",
	}
}

type checkoutMocks struct {
	cartRepo  *mockRepo.MockCartRepository
	composer  *mockSvc.MockMailComposer
	qrcode    *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func newTestCheckoutService(t *testing.T) (usecase.CheckoutUsecase, *checkoutMocks) {
	t.Helper()

	m := &checkoutMocks{
		cartRepo:  mockRepo.NewMockCartRepository(t),
		composer:  mockSvc.NewMockMailComposer(t),
		qrcode:    mockSvc.NewMockQRCodeService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	svc := NewCheckoutService(CheckoutServiceParams{
		CartRepo:       m.cartRepo,
		MailComposer:   m.composer,
		QRCodeService:  m.qrcode,
		EventPublisher: m.publisher,
		Config:         cartConfig(),
		Logger:         discardLogger(),
	})

	return svc, m
}

// stockCart stores a one-line cart for the session so the wizard admits it.
func stockCart(m *checkoutMocks) {
	m.cartRepo.EXPECT().
		Load(mock.Anything, "light3d-cart:s1").
		Return(&entity.Cart{Lines: []*entity.CartLine{storedLine()}}, nil)
}

// advanceToReview walks a session through both form steps.
func advanceToReview(t *testing.T, svc usecase.CheckoutUsecase, sessionID string) {
	t.Helper()
	ctx := context.Background()

	state, err := svc.SubmitCustomerInfo(ctx, sessionID, validCustomerInfo())
	require.NoError(t, err)
	require.Equal(t, entity.StepShippingAddress, state.Step)

	state, err = svc.SubmitShippingAddress(ctx, sessionID, validShippingAddress())
	require.NoError(t, err)
	require.Equal(t, entity.StepReview, state.Step)
}

func TestCheckoutService_GetState_StartsAtCustomerInfo(t *testing.T) {
	svc, m := newTestCheckoutService(t)
	stockCart(m)

	state, err := svc.GetState(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.StepCustomerInfo, state.Step)
	assert.Equal(t, "Cyprus", state.Country)
	assert.Equal(t, "ACS Cash on Delivery", state.DeliveryMethod)
	assert.True(t, state.DeliveryCharge.Equal(decimal.RequireFromString("3")))
}

func TestCheckoutService_SubmitCustomerInfo_FieldErrorsBlockAdvance(t *testing.T) {
	svc, m := newTestCheckoutService(t)
	stockCart(m)
	ctx := context.Background()

	state, err := svc.SubmitCustomerInfo(ctx, "s1", &entity.CustomerInfo{
		FirstName: "Maria",
		Email:     "not-an-email",
		Phone:     "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StepCustomerInfo, state.Step)
	assert.Equal(t, "Last name is required", state.FieldErrors["last_name"])
	assert.Equal(t, "Invalid email address", state.FieldErrors["email"])
	assert.Equal(t, "Phone number is required", state.FieldErrors["phone"])
	assert.NotContains(t, state.FieldErrors, "first_name")
}

func TestCheckoutService_SubmitShippingAddress_CountryIsFixed(t *testing.T) {
	svc, m := newTestCheckoutService(t)
	stockCart(m)
	ctx := context.Background()

	_, err := svc.SubmitCustomerInfo(ctx, "s1", validCustomerInfo())
	require.NoError(t, err)

	addr := validShippingAddress()
	addr.Country = "Atlantis"
	state, err := svc.SubmitShippingAddress(ctx, "s1", addr)
	require.NoError(t, err)
	assert.Equal(t, entity.StepReview, state.Step)
	assert.Equal(t, "Cyprus", state.ShippingAddress.Country)
}

func TestCheckoutService_SubmitShippingAddress_WrongStep(t *testing.T) {
	svc, m := newTestCheckoutService(t)
	stockCart(m)

	_, err := svc.SubmitShippingAddress(context.Background(), "s1", validShippingAddress())
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutWrongStep)
}

func TestCheckoutService_GoBack_AlwaysPermitted(t *testing.T) {
	svc, m := newTestCheckoutService(t)
	stockCart(m)
	ctx := context.Background()

	advanceToReview(t, svc, "s1")

	state, err := svc.GoBack(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.StepShippingAddress, state.Step)
	// Previously entered values survive the backward transition.
	assert.Equal(t, "Maria", state.CustomerInfo.FirstName)

	state, err = svc.GoBack(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.StepCustomerInfo, state.Step)

	// At the first step, back is a no-op rather than an error.
	state, err = svc.GoBack(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.StepCustomerInfo, state.Step)
}

func TestCheckoutService_Submit(t *testing.T) {
	svc, m := newTestCheckoutService(t)
	ctx := context.Background()

	line := storedLine()
	line.Quantity = 2
	// Both wizard steps check the cart, submit loads it once more.
	m.cartRepo.EXPECT().Load(ctx, "light3d-cart:s1").Return(&entity.Cart{Lines: []*entity.CartLine{line}}, nil).Times(3)

	advanceToReview(t, svc, "s1")

	var composed *entity.Order
	m.composer.EXPECT().
		ComposeOrderRequest(mock.AnythingOfType("*entity.Order")).
		Run(func(order *entity.Order) { composed = order }).
		Return(&domainservice.MailDraft{
			To:        "gelo.designs3d@gmail.com",
			Subject:   "Order Request",
			Body:      "body",
			MailtoURI: "mailto:gelo.designs3d@gmail.com?subject=Order%20Request",
		})
	m.qrcode.EXPECT().
		GenerateMailtoQR("mailto:gelo.designs3d@gmail.com?subject=Order%20Request").
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)
	m.publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEvent")).
		Return(nil)
	m.cartRepo.EXPECT().Delete(ctx, "light3d-cart:s1").Return(nil)

	confirmation, err := svc.Submit(ctx, "s1")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^GD-\d{4}-[A-Z0-9]{6}$`), confirmation.Reference)
	// 25 per unit x2 = 50 subtotal, +3 delivery = 53 total.
	assert.True(t, confirmation.Subtotal.Equal(decimal.RequireFromString("50")))
	assert.True(t, confirmation.DeliveryCharge.Equal(decimal.RequireFromString("3")))
	assert.True(t, confirmation.Total.Equal(decimal.RequireFromString("53")))
	assert.Equal(t, "ACS Cash on Delivery", confirmation.DeliveryMethod)
	assert.NotEmpty(t, confirmation.MailtoQRPNG)

	require.NotNil(t, composed)
	assert.Equal(t, confirmation.Reference, composed.Reference)
	assert.Equal(t, "Maria", composed.CustomerInfo.FirstName)

	// The cart is gone after submit, so re-entering checkout redirects
	// back to the cart view.
	m.cartRepo.EXPECT().Load(ctx, "light3d-cart:s1").Return(nil, repository.ErrCartNotFound).Once()
	_, err = svc.GetState(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Submit_CartClearedBeforeSubmit(t *testing.T) {
	svc, m := newTestCheckoutService(t)
	ctx := context.Background()

	// The cart empties between review and submit, e.g. cleared from
	// another tab; last write wins on the storage key.
	m.cartRepo.EXPECT().
		Load(ctx, "light3d-cart:s1").
		Return(&entity.Cart{Lines: []*entity.CartLine{storedLine()}}, nil).
		Twice()
	m.cartRepo.EXPECT().Load(ctx, "light3d-cart:s1").Return(nil, repository.ErrCartNotFound).Once()

	advanceToReview(t, svc, "s1")

	_, err := svc.Submit(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_EmptyCartRedirectsBeforeWizard(t *testing.T) {
	svc, m := newTestCheckoutService(t)
	ctx := context.Background()

	m.cartRepo.EXPECT().Load(ctx, "light3d-cart:s1").Return(nil, repository.ErrCartNotFound)

	// Entering checkout with nothing in the cart never hands out a wizard
	// state; the error carries the /cart redirect and no reference is minted.
	_, err := svc.GetState(ctx, "s1")
	require.ErrorIs(t, err, domainerrors.ErrCartEmpty)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CART_EMPTY", appErr.ErrorCode())

	_, err = svc.SubmitCustomerInfo(ctx, "s1", validCustomerInfo())
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)

	_, err = svc.SubmitShippingAddress(ctx, "s1", validShippingAddress())
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)

	_, err = svc.GoBack(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_EmptyCartRedirectsBeforeWizard_StoredEmpty(t *testing.T) {
	svc, m := newTestCheckoutService(t)
	ctx := context.Background()

	// A stored but empty line list is treated the same as a missing cart.
	m.cartRepo.EXPECT().Load(ctx, "light3d-cart:s1").Return(&entity.Cart{}, nil)

	_, err := svc.GetState(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Submit_WrongStep(t *testing.T) {
	svc, _ := newTestCheckoutService(t)

	_, err := svc.Submit(context.Background(), "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutWrongStep)
}

func TestCheckoutService_Submit_QRFailureDoesNotFailOrder(t *testing.T) {
	svc, m := newTestCheckoutService(t)
	ctx := context.Background()

	m.cartRepo.EXPECT().Load(ctx, "light3d-cart:s1").Return(&entity.Cart{Lines: []*entity.CartLine{storedLine()}}, nil)

	advanceToReview(t, svc, "s1")

	m.composer.EXPECT().
		ComposeOrderRequest(mock.AnythingOfType("*entity.Order")).
		Return(&domainservice.MailDraft{MailtoURI: "mailto:x@example.com"})
	m.qrcode.EXPECT().GenerateMailtoQR("mailto:x@example.com").Return(nil, assert.AnError)
	m.publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEvent")).
		Return(nil)
	m.cartRepo.EXPECT().Delete(ctx, "light3d-cart:s1").Return(nil)

	confirmation, err := svc.Submit(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, confirmation.MailtoQRPNG)
}
