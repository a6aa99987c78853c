package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "light3d/internal/delivery/context"
	"light3d/internal/delivery/http/response"
	"light3d/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// GetCart handles retrieving the session's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartUC.GetCart(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// AddLine handles adding a configured product to the cart
func (h *CartHandler) AddLine(c echo.Context) error {
	var input usecase.AddLineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.AddLine(c.Request().Context(), deliverycontext.GetSessionID(c), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, cart, "Item added to cart")
}

// RemoveLine handles removing a cart line
func (h *CartHandler) RemoveLine(c echo.Context) error {
	cart, err := h.cartUC.RemoveLine(c.Request().Context(), deliverycontext.GetSessionID(c), c.Param("itemId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity handles changing a cart line's quantity. A quantity of zero
// or less removes the line.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	cart, err := h.cartUC.SetQuantity(c.Request().Context(), deliverycontext.GetSessionID(c), c.Param("itemId"), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Quantity updated")
}

type setNoteRequest struct {
	Note string `json:"note"`
}

// SetCustomizationNote handles editing a cart line's customization note
func (h *CartHandler) SetCustomizationNote(c echo.Context) error {
	var req setNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	cart, err := h.cartUC.SetCustomizationNote(c.Request().Context(), deliverycontext.GetSessionID(c), c.Param("itemId"), req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Note updated")
}

// SetVariant handles switching a cart line's variant selection in place
func (h *CartHandler) SetVariant(c echo.Context) error {
	var input usecase.VariantUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	cart, err := h.cartUC.SetVariant(c.Request().Context(), deliverycontext.GetSessionID(c), c.Param("itemId"), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Variant updated")
}

// ClearCart handles emptying the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	cart, err := h.cartUC.ClearCart(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart cleared")
}
