package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "light3d/internal/delivery/context"
	"light3d/internal/delivery/http/response"
	"light3d/internal/domain/entity"
	"light3d/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for the checkout wizard handlers
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// GetState handles retrieving the session's checkout wizard state
func (h *CheckoutHandler) GetState(c echo.Context) error {
	state, err := h.checkoutUC.GetState(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Checkout state retrieved successfully")
}

// SubmitCustomerInfo handles the first wizard step. Validation failures are
// returned as field errors on the state, not as an error response.
func (h *CheckoutHandler) SubmitCustomerInfo(c echo.Context) error {
	var input entity.CustomerInfo
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	state, err := h.checkoutUC.SubmitCustomerInfo(c.Request().Context(), deliverycontext.GetSessionID(c), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Customer information submitted")
}

// SubmitShippingAddress handles the second wizard step
func (h *CheckoutHandler) SubmitShippingAddress(c echo.Context) error {
	var input entity.ShippingAddress
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	state, err := h.checkoutUC.SubmitShippingAddress(c.Request().Context(), deliverycontext.GetSessionID(c), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Shipping address submitted")
}

// GoBack handles stepping back in the wizard without losing entered values
func (h *CheckoutHandler) GoBack(c echo.Context) error {
	state, err := h.checkoutUC.GoBack(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Returned to previous step")
}

// Submit handles the final review step and produces the order confirmation
// with the prepared email draft and its QR code.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	confirmation, err := h.checkoutUC.Submit(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, confirmation, "Order request prepared")
}
