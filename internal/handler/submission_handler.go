package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/middleware"
	"github.com/sharearahammed/mega-earning-server/internal/model"
	"github.com/sharearahammed/mega-earning-server/internal/service"
)

const defaultSubmissionPageSize = 10

// SubmissionHandler handles submission endpoints.
type SubmissionHandler struct {
	submissionService service.SubmissionService
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(submissionService service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// CreateSubmissionRequest represents a worker's completion claim.
type CreateSubmissionRequest struct {
	TaskID string `json:"task_id" validate:"required,uuid"`
	Detail string `json:"detail" validate:"required"`
}

// SubmissionPage is a paginated slice of a worker's submissions.
type SubmissionPage struct {
	Submissions []model.Submission `json:"submissions"`
	Total       int64              `json:"total"`
	Page        int                `json:"page"`
	PageSize    int                `json:"page_size"`
}

// Create godoc
// @Summary Submit proof of task completion
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSubmissionRequest true "Submission data"
// @Success 201 {object} model.Submission
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /submissions [post]
func (h *SubmissionHandler) Create(c echo.Context) error {
	worker, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHENTICATED",
		})
	}

	var req CreateSubmissionRequest
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

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid task_id",
			Code:  "INVALID_UUID",
		})
	}

	submission, err := h.submissionService.Create(c.Request().Context(), taskID, worker, req.Detail)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, submission)
}

// ListMine godoc
// @Summary List the caller's submissions, paginated
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, 1-based"
// @Param size query int false "Page size"
// @Success 200 {object} SubmissionPage
// @Router /mySubmissions [get]
func (h *SubmissionHandler) ListMine(c echo.Context) error {
	worker, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHENTICATED",
		})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if size < 1 {
		size = defaultSubmissionPageSize
	}

	submissions, total, err := h.submissionService.ListByWorker(c.Request().Context(), worker.Email, (page-1)*size, size)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, SubmissionPage{
		Submissions: submissions,
		Total:       total,
		Page:        page,
		PageSize:    size,
	})
}

// ListForReview godoc
// @Summary List pending submissions against the caller's tasks
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Submission
// @Router /submissions/review [get]
func (h *SubmissionHandler) ListForReview(c echo.Context) error {
	creator, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHENTICATED",
		})
	}

	submissions, err := h.submissionService.ListPendingByCreator(c.Request().Context(), creator.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, submissions)
}

// Approve godoc
// @Summary Approve a submission, crediting the worker
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} model.Submission
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /submissions/{id}/approve [put]
func (h *SubmissionHandler) Approve(c echo.Context) error {
	return h.review(c, h.submissionService.Approve)
}

// review parses the path ID, resolves the acting creator, and applies one of
// the two terminal transitions.
func (h *SubmissionHandler) review(c echo.Context, transition func(ctx context.Context, id uuid.UUID, actorEmail string) (*model.Submission, error)) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHENTICATED",
		})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid submission ID",
			Code:  "INVALID_UUID",
		})
	}

	submission, err := transition(c.Request().Context(), id, actor.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, submission)
}

// Reject godoc
// @Summary Reject a submission; no coin movement
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} model.Submission
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /submissions/{id}/reject [put]
func (h *SubmissionHandler) Reject(c echo.Context) error {
	return h.review(c, h.submissionService.Reject)
}
