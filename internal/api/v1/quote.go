package v1

import (
	"net/http"
	"time"

	"github.com/flexprice/vanrental/internal/api/dto"
	"github.com/flexprice/vanrental/internal/config"
	ierr "github.com/flexprice/vanrental/internal/errors"
	"github.com/flexprice/vanrental/internal/logger"
	"github.com/flexprice/vanrental/internal/report"
	"github.com/flexprice/vanrental/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	formatCSV  = "csv"
	formatText = "text"
)

type QuoteHandler struct {
	service service.RentalService
	report  config.ReportConfig
	now     func() time.Time
	log     *logger.Logger
}

func NewQuoteHandler(service service.RentalService, cfg *config.Configuration, log *logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		report:  cfg.Report,
		now:     time.Now,
		log:     log,
	}
}

// @Summary Quote a single rental
// @Description Price one rental without storing it
// @Tags Quotes
// @Accept json
// @Produce json
// @Param rental body dto.CreateRentalRequest true "Rental usage"
// @Success 200 {object} dto.CostBreakdownResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req dto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithContext(c.Request.Context()).Debugw("failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Quote a whole day
// @Description Price a list of rentals in order and total them. Pass format=csv for a CSV export or format=text for the compact plain-text summary.
// @Tags Quotes
// @Accept json
// @Produce json
// @Produce text/csv
// @Produce text/plain
// @Param rentals body dto.DailySummaryRequest true "Rentals of the day"
// @Param format query string false "Response format" Enums(json, csv, text)
// @Success 200 {object} dto.DailySummaryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/daily [post]
func (h *QuoteHandler) QuoteDay(c *gin.Context) {
	var req dto.DailySummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithContext(c.Request.Context()).Debugw("failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	summary, err := h.service.QuoteDay(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	switch c.Query("format") {
	case formatCSV:
		data, err := report.SummaryCSV(summary)
		if err != nil {
			c.Error(err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="daily_summary.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	case formatText:
		text := report.NewRenderer(h.report, h.now()).CompactSummary(summary)
		c.String(http.StatusOK, text+"\n")
	default:
		c.JSON(http.StatusOK, dto.NewDailySummaryResponse(summary))
	}
}
