package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/middleware"
	"github.com/sharearahammed/mega-earning-server/internal/service"
)

// WithdrawalHandler handles withdrawal endpoints.
type WithdrawalHandler struct {
	withdrawalService service.WithdrawalService
}

// NewWithdrawalHandler creates a new withdrawal handler.
func NewWithdrawalHandler(withdrawalService service.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalService: withdrawalService}
}

// WithdrawalRequest represents a cash-out request.
type WithdrawalRequest struct {
	Coins         string `json:"coins" validate:"required"`
	PaymentSystem string `json:"payment_system" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
}

// Request godoc
// @Summary Request a withdrawal, debiting the caller's coins
// @Tags withdrawals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body WithdrawalRequest true "Withdrawal data"
// @Success 201 {object} model.Withdrawal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /withdrawals [post]
func (h *WithdrawalHandler) Request(c echo.Context) error {
	worker, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHENTICATED",
		})
	}

	var req WithdrawalRequest
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

	withdrawal, err := h.withdrawalService.Request(c.Request().Context(), worker, coins, req.PaymentSystem, req.AccountNumber)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, withdrawal)
}

// ListMine godoc
// @Summary List the caller's withdrawal requests
// @Tags withdrawals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Withdrawal
// @Router /withdrawals [get]
func (h *WithdrawalHandler) ListMine(c echo.Context) error {
	worker, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHENTICATED",
		})
	}

	withdrawals, err := h.withdrawalService.ListByWorker(c.Request().Context(), worker.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, withdrawals)
}

// ListAll godoc
// @Summary List all withdrawal requests for processing
// @Tags withdrawals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Withdrawal
// @Failure 403 {object} errors.ErrorResponse
// @Router /withdrawals/all [get]
func (h *WithdrawalHandler) ListAll(c echo.Context) error {
	withdrawals, err := h.withdrawalService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, withdrawals)
}

// Delete godoc
// @Summary Remove a processed withdrawal request
// @Tags withdrawals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Withdrawal ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /withdrawals/{id} [delete]
func (h *WithdrawalHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid withdrawal ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.withdrawalService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
