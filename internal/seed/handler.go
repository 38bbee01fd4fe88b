package seed

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beheryahmed1991/subscription-tracker/internal/middleware"
)

type Handler struct {
	seeder *Seeder
	log    *slog.Logger
}

func NewHandler(seeder *Seeder, log *slog.Logger) *Handler {
	return &Handler{seeder: seeder, log: log}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.POST("/seed", h.seed)
	router.GET("/seed", h.seed)
}

// @Summary Install starter categories and subscriptions
// @Description Does nothing and reports skipped when the user already has categories.
// @Tags seed
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/seed [post]
func (h *Handler) seed(c *gin.Context) {
	owner, ok := middleware.MustUser(c)
	if !ok {
		return
	}

	seeded, err := h.seeder.Seed(c.Request.Context(), owner)
	if err != nil {
		h.log.Error("seed defaults", "error", err, "request_id", middleware.RequestIDFrom(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !seeded {
		c.JSON(http.StatusOK, gin.H{"status": "skipped"})
		return
	}
	h.log.Info("seeded defaults", "user", owner.Username)
	c.JSON(http.StatusOK, gin.H{"status": "seeded"})
}
