package exchange

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beheryahmed1991/subscription-tracker/internal/currency"
	"github.com/beheryahmed1991/subscription-tracker/internal/middleware"
)

// Handler exposes HTTP handlers for exchange rates.
type Handler struct {
	store Store
	log   *slog.Logger
}

func NewHandler(store Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/exchange", h.list)
	router.POST("/exchange", h.upsert)
}

type upsertRequest struct {
	Base   string   `json:"base" binding:"omitempty,currency"`
	Target string   `json:"target" binding:"omitempty,currency"`
	Rate   *float64 `json:"rate" binding:"omitempty,gt=0"`
}

// @Summary List exchange rates
// @Tags exchange
// @Produce json
// @Success 200 {array} Rate
// @Router /api/exchange [get]
func (h *Handler) list(c *gin.Context) {
	owner, ok := middleware.MustUser(c)
	if !ok {
		return
	}

	rates, err := h.store.List(c.Request.Context(), owner.ID)
	if err != nil {
		h.log.Error("list exchange rates", "error", err, "request_id", middleware.RequestIDFrom(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, rates)
}

// @Summary Create or replace an exchange rate
// @Tags exchange
// @Accept json
// @Produce json
// @Param body body upsertRequest true "rate; base and target default to the user's currency"
// @Success 200 {object} map[string]string
// @Router /api/exchange [post]
func (h *Handler) upsert(c *gin.Context) {
	owner, ok := middleware.MustUser(c)
	if !ok {
		return
	}

	var req upsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	base := currency.Normalize(req.Base)
	if base == "" {
		base = owner.DefaultCurrency
	}
	target := currency.Normalize(req.Target)
	if target == "" {
		target = owner.DefaultCurrency
	}
	rate := 1.0
	if req.Rate != nil {
		rate = *req.Rate
	}

	if _, err := h.store.Upsert(c.Request.Context(), owner.ID, base, target, rate); err != nil {
		h.log.Error("upsert exchange rate", "error", err, "request_id", middleware.RequestIDFrom(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
