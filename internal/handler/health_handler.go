package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/colegio-nocedal/panol-api/pkg/response"
)

// HealthHandler reports API and database liveness.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = "down"
			response.JSON(c, http.StatusServiceUnavailable, status, nil)
			return
		}
		status["database"] = "up"
	}

	response.JSON(c, http.StatusOK, status, nil)
}
