package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/service"
)

// ReportHandler handles public reporting endpoints.
type ReportHandler struct {
	reportService   service.ReportService
	feedbackService service.FeedbackService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService, feedbackService service.FeedbackService) *ReportHandler {
	return &ReportHandler{
		reportService:   reportService,
		feedbackService: feedbackService,
	}
}

// TopEarners godoc
// @Summary List the top workers by coin balance with approved counts
// @Tags reports
// @Produce json
// @Success 200 {array} service.TopEarner
// @Router /topEarners [get]
func (h *ReportHandler) TopEarners(c echo.Context) error {
	earners, err := h.reportService.TopEarners(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, earners)
}

// Feedbacks godoc
// @Summary List testimonials
// @Tags reports
// @Produce json
// @Success 200 {array} model.Feedback
// @Router /feedbacks [get]
func (h *ReportHandler) Feedbacks(c echo.Context) error {
	feedbacks, err := h.feedbackService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, feedbacks)
}
