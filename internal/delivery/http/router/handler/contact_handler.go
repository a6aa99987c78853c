package handler

import (
	"log/slog"
	"net/http"

	"light3d/internal/delivery/http/response"
	"light3d/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler holds dependencies for the contact form handler
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// SubmitContactForm handles the contact form and returns the prepared
// mailto draft for the visitor's mail client.
func (h *ContactHandler) SubmitContactForm(c echo.Context) error {
	var input usecase.ContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	draft, err := h.contactUC.SubmitContactForm(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft, "Contact message prepared")
}

// HealthCheck handles the liveness probe
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "Service is healthy")
}
