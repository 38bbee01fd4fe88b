package stats

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beheryahmed1991/subscription-tracker/internal/billing"
	"github.com/beheryahmed1991/subscription-tracker/internal/currency"
	"github.com/beheryahmed1991/subscription-tracker/internal/middleware"
	"github.com/beheryahmed1991/subscription-tracker/internal/subscription"
	"github.com/beheryahmed1991/subscription-tracker/internal/user"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Reporter produces the reports served by Handler.
type Reporter interface {
	Summary(ctx context.Context, owner user.User, q Query) (billing.Summary, error)
	ByCategory(ctx context.Context, owner user.User, q Query) (billing.CategorySummary, error)
}

// Handler exposes the spending reports over HTTP.
type Handler struct {
	reports Reporter
	log     *slog.Logger
	now     func() time.Time
}

func NewHandler(reports Reporter, log *slog.Logger) *Handler {
	return &Handler{reports: reports, log: log, now: time.Now}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/stats")
	group.GET("/summary", h.summary)
	group.GET("/by-category", h.byCategory)
	group.GET("/export", h.export)
}

// @Summary Total spend for a period
// @Tags stats
// @Produce json
// @Param period query string false "day, week, month, quarter or year" default(month)
// @Param category_id query string false "category id or \"all\""
// @Param currency query string false "reporting currency, defaults to the user's"
// @Param today query string false "reference date YYYY-MM-DD"
// @Success 200 {object} billing.Summary
// @Router /api/stats/summary [get]
func (h *Handler) summary(c *gin.Context) {
	owner, ok := middleware.MustUser(c)
	if !ok {
		return
	}
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	categoryID, err := subscription.ParseCategoryFilter(c.Query("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q.CategoryID = categoryID

	summary, err := h.reports.Summary(c.Request.Context(), owner, q)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Spend per category for a period
// @Tags stats
// @Produce json
// @Param period query string false "day, week, month, quarter or year" default(month)
// @Param currency query string false "reporting currency, defaults to the user's"
// @Param today query string false "reference date YYYY-MM-DD"
// @Success 200 {object} billing.CategorySummary
// @Router /api/stats/by-category [get]
func (h *Handler) byCategory(c *gin.Context) {
	owner, ok := middleware.MustUser(c)
	if !ok {
		return
	}
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	summary, err := h.reports.ByCategory(c.Request.Context(), owner, q)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Download both reports as a spreadsheet
// @Tags stats
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param period query string false "day, week, month, quarter or year" default(month)
// @Param currency query string false "reporting currency, defaults to the user's"
// @Param today query string false "reference date YYYY-MM-DD"
// @Success 200 {file} file
// @Router /api/stats/export [get]
func (h *Handler) export(c *gin.Context) {
	owner, ok := middleware.MustUser(c)
	if !ok {
		return
	}
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	summary, err := h.reports.Summary(ctx, owner, q)
	if err != nil {
		h.internalError(c, err)
		return
	}
	byCategory, err := h.reports.ByCategory(ctx, owner, q)
	if err != nil {
		h.internalError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, summary, byCategory); err != nil {
		h.internalError(c, err)
		return
	}

	filename := fmt.Sprintf("subscriptions-%s-%s.xlsx", summary.Period, q.Today.Format(time.DateOnly))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// parseQuery reads the parameters shared by every report. Unknown periods
// fall back to a month.
func (h *Handler) parseQuery(c *gin.Context) (Query, bool) {
	q := Query{
		Period: billing.ParsePeriod(c.Query("period")),
		Today:  h.now(),
	}

	if raw := c.Query("currency"); raw != "" {
		if !currency.Valid(raw) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid currency"})
			return Query{}, false
		}
		q.Currency = currency.Normalize(raw)
	}

	if raw := c.Query("today"); raw != "" {
		today, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid today, expected YYYY-MM-DD"})
			return Query{}, false
		}
		q.Today = today
	}
	return q, true
}

func (h *Handler) internalError(c *gin.Context, err error) {
	h.log.Error("stats request failed", "error", err, "request_id", middleware.RequestIDFrom(c))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
