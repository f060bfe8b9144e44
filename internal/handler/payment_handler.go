package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/middleware"
	"github.com/sharearahammed/mega-earning-server/internal/service"
)

// PaymentHandler handles coin purchase endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentIntentRequest asks for a client secret for a dollar amount.
type PaymentIntentRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// PaymentIntentResponse carries the processor's client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// RecordPaymentRequest records a confirmed coin purchase.
type RecordPaymentRequest struct {
	Coins         string `json:"coins" validate:"required"`
	AmountPaid    string `json:"amount_paid" validate:"required"`
	TransactionID string `json:"transaction_id" validate:"required"`
}

// CreateIntent godoc
// @Summary Open a payment intent for a coin bundle
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentIntentRequest true "Dollar amount"
// @Success 200 {object} PaymentIntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	secret, err := h.paymentService.CreateIntent(c.Request().Context(), amount)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}

// Record godoc
// @Summary Record a confirmed payment, crediting the caller's coins
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordPaymentRequest true "Confirmed payment"
// @Success 201 {object} model.Payment
// @Failure 400 {object} errors.ErrorResponse
// @Router /paymentdata [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	buyer, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHENTICATED",
		})
	}

	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	coins, err := decimal.NewFromString(req.Coins)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid coins",
			Code:  "INVALID_AMOUNT",
		})
	}
	amountPaid, err := decimal.NewFromString(req.AmountPaid)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount_paid",
			Code:  "INVALID_AMOUNT",
		})
	}

	payment, err := h.paymentService.Record(c.Request().Context(), buyer.Email, coins, amountPaid, req.TransactionID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, payment)
}

// ListMine godoc
// @Summary List the caller's payment history
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Payment
// @Router /payments [get]
func (h *PaymentHandler) ListMine(c echo.Context) error {
	buyer, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHENTICATED",
		})
	}

	payments, err := h.paymentService.ListByBuyer(c.Request().Context(), buyer.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, payments)
}
