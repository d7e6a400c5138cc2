package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type CacheReporter interface {
	CacheStatus() map[string]bool
}

type CacheClearer interface {
	ClearCache()
}

type SystemHandler struct {
	status   CacheReporter
	clearers []CacheClearer
	now      func() time.Time
}

func NewSystemHandler(status CacheReporter, clearers ...CacheClearer) *SystemHandler {
	return &SystemHandler{status: status, clearers: clearers, now: time.Now}
}

func (h *SystemHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Cache:     h.status.CacheStatus(),
	})
}

func (h *SystemHandler) ClearCache(c *gin.Context) {
	for _, cl := range h.clearers {
		cl.ClearCache()
	}
	slog.Info("cache cleared")

	c.JSON(http.StatusOK, MessageResponse{Message: "Cache cleared successfully"})
}
