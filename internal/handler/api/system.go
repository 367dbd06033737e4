package api

import (
	"net/http"
	"os"
	"time"

	"voucher-hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

type SystemHandler struct {
	refresher usecase.Refresher
}

func NewSystemHandler(refresher usecase.Refresher) *SystemHandler {
	return &SystemHandler{refresher: refresher}
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	host, _ := os.Hostname()
	c.JSON(http.StatusOK, gin.H{
		"status": "UP",
		"host":   host,
		"uptime": time.Since(startedAt).Round(time.Second).String(),
	})
}

// @Summary Refresh cache
// @Description Force a full resync of vouchers and guests from the controller
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 202 {object} map[string]string
// @Router /api/cache/refresh [post]
func (h *SystemHandler) RefreshCache(c *gin.Context) {
	h.refresher.Refresh(c.Request.Context())
	c.JSON(http.StatusAccepted, gin.H{"status": "refreshed"})
}
