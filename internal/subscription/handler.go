package subscription

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beheryahmed1991/subscription-tracker/internal/middleware"
)

// Handler exposes HTTP handlers for subscription resources.
type Handler struct {
	svc Service
	log *slog.Logger
	now func() time.Time
}

func NewHandler(svc Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log, now: time.Now}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/subscriptions")
	group.POST("", h.create)
	group.GET("", h.list)
	group.GET("/:id", h.getByID)
	group.PUT("/:id", h.replace)
	group.PATCH("/:id", h.patch)
	group.DELETE("/:id", h.delete)
}

// @Summary List subscriptions
// @Tags subscriptions
// @Produce json
// @Param category_id query string false "category id or \"all\""
// @Success 200 {array} View
// @Router /api/subscriptions [get]
func (h *Handler) list(c *gin.Context) {
	owner, ok := middleware.MustUser(c)
	if !ok {
		return
	}

	categoryID, err := ParseCategoryFilter(c.Query("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subs, err := h.svc.List(c.Request.Context(), owner, categoryID)
	if err != nil {
		h.internalError(c, err)
		return
	}

	today := h.now()
	views := make([]View, 0, len(subs))
	for _, sub := range subs {
		views = append(views, NewView(sub, false, today))
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param body body Input true "subscription"
// @Success 201 {object} View
// @Router /api/subscriptions [post]
func (h *Handler) create(c *gin.Context) {
	owner, ok := middleware.MustUser(c)
	if !ok {
		return
	}

	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.svc.Create(c.Request.Context(), owner, in)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewView(sub, true, h.now()))
}

// @Summary Get a subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "subscription id"
// @Success 200 {object} View
// @Failure 404 {object} map[string]string
// @Router /api/subscriptions/{id} [get]
func (h *Handler) getByID(c *gin.Context) {
	owner, ok := middleware.MustUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	sub, err := h.svc.GetByID(c.Request.Context(), owner, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewView(sub, true, h.now()))
}

// @Summary Replace a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "subscription id"
// @Param body body Input true "subscription"
// @Success 200 {object} View
// @Router /api/subscriptions/{id} [put]
func (h *Handler) replace(c *gin.Context) {
	h.update(c, false)
}

// @Summary Update some fields of a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "subscription id"
// @Param body body Input true "fields to change"
// @Success 200 {object} View
// @Router /api/subscriptions/{id} [patch]
func (h *Handler) patch(c *gin.Context) {
	h.update(c, true)
}

func (h *Handler) update(c *gin.Context, partial bool) {
	owner, ok := middleware.MustUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		sub Subscription
		err error
	)
	if partial {
		sub, err = h.svc.Patch(c.Request.Context(), owner, id, in)
	} else {
		sub, err = h.svc.Replace(c.Request.Context(), owner, id, in)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewView(sub, true, h.now()))
}

// @Summary Delete a subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "subscription id"
// @Success 200 {object} map[string]string
// @Router /api/subscriptions/{id} [delete]
func (h *Handler) delete(c *gin.Context) {
	owner, ok := middleware.MustUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), owner, id); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, sql.ErrNoRows):
		c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
	default:
		h.internalError(c, err)
	}
}

func (h *Handler) internalError(c *gin.Context, err error) {
	h.log.Error("subscription request failed", "error", err, "request_id", middleware.RequestIDFrom(c))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.UUID{}, false
	}
	return id, true
}

// ParseCategoryFilter turns a category_id query value into a filter. Empty
// and "all" mean no filter.
func ParseCategoryFilter(value string) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return nil, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, errors.New("invalid category_id")
	}
	return &id, nil
}
