package handler

import (
	"log/slog"
	"net/http"

	"belleza/internal/delivery/http/middleware"
	"belleza/internal/delivery/http/response"
	"belleza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

type createIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /create-payment-intent, the authorize phase.
// Nothing is persisted here; failures from the processor surface as 500s
// and are not retried.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment intent input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.CreateIntent(c.Request().Context(), &usecase.CreateIntentInput{Price: req.Price})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, createIntentResponse{ClientSecret: output.ClientSecret}, "Payment intent created")
}

type recordPaymentRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"gte=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	CartIDs       []string `json:"cartIds" validate:"dive,uuid"`
}

// RecordPayment handles POST /payments, the settle phase: one payment
// record goes in with status pending, then the referenced cart entries
// come out, atomically.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cartIDs := make([]uuid.UUID, 0, len(req.CartIDs))
	for _, raw := range req.CartIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid cart entry id")
		}
		cartIDs = append(cartIDs, id)
	}

	output, err := h.uc.RecordPayment(c.Request().Context(), &usecase.RecordPaymentInput{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		CartIDs:       cartIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"payResult":    output.Payment,
		"deleteResult": map[string]int64{"deletedCount": output.RemovedCartCount},
	}, "Payment recorded")
}

// ListPayments handles GET /payments/:email. The path email must match the
// verified token email; payment history is never exposed across identities.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	email := c.Param("email")
	if !middleware.IsSelf(c, email) {
		return middleware.ForbiddenResponse(c)
	}

	payments, err := h.uc.ListPayments(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}

// ConfirmPayment handles PATCH /update-status/:id. Admin-gated at the
// route; an unknown id is a 404.
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment id")
	}

	if err := h.uc.ConfirmPayment(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Payment status updated to confirmed"}, "Payment confirmed")
}
