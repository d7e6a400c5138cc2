package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"footyproxy/internal/model"

	"github.com/gin-gonic/gin"
)

type FootballStore interface {
	Standings(ctx context.Context) (json.RawMessage, error)
	LastStandings(ctx context.Context) (json.RawMessage, error)
	Matches(ctx context.Context) (json.RawMessage, error)
	LastMatches(ctx context.Context) (json.RawMessage, error)
	Scorers(ctx context.Context) (json.RawMessage, error)
	Teams(ctx context.Context) (json.RawMessage, error)
	Competition(ctx context.Context) (json.RawMessage, error)
	HeadToHead(ctx context.Context, matchID int64, limit int) (*model.HeadToHead, []json.RawMessage, error)
}

type FootballHandler struct {
	repository FootballStore
}

func NewFootballHandler(repository FootballStore) *FootballHandler {
	return &FootballHandler{repository: repository}
}

// upstreamContext detaches upstream calls from the client connection: once
// issued, a fetch runs to completion and may still fill the cache.
func upstreamContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func (h *FootballHandler) passthrough(c *gin.Context, resource string, fetch func(context.Context) (json.RawMessage, error)) {
	body, err := fetch(upstreamContext(c))
	if err != nil {
		slog.Error("error fetching from football-data", "resource", resource, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to fetch " + resource,
			Details: err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *FootballHandler) GetStandings(c *gin.Context) {
	h.passthrough(c, "standings", h.repository.Standings)
}

func (h *FootballHandler) GetLastStandings(c *gin.Context) {
	h.passthrough(c, "last season standings", h.repository.LastStandings)
}

func (h *FootballHandler) GetMatches(c *gin.Context) {
	h.passthrough(c, "matches", h.repository.Matches)
}

func (h *FootballHandler) GetLastMatches(c *gin.Context) {
	h.passthrough(c, "last season matches", h.repository.LastMatches)
}

func (h *FootballHandler) GetScorers(c *gin.Context) {
	h.passthrough(c, "scorers", h.repository.Scorers)
}

func (h *FootballHandler) GetTeams(c *gin.Context) {
	h.passthrough(c, "teams", h.repository.Teams)
}

func (h *FootballHandler) GetCompetition(c *gin.Context) {
	h.passthrough(c, "competition", h.repository.Competition)
}

func (h *FootballHandler) GetHeadToHead(c *gin.Context) {
	id := strings.TrimSpace(c.Param("matchId"))
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Match ID is required"})
		return
	}

	matchID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || matchID <= 0 {
		slog.Warn("invalid match id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid match id"})
		return
	}

	limit := getQueryLimit(c)

	stats, matches, err := h.repository.HeadToHead(upstreamContext(c), matchID, limit)
	if err != nil {
		slog.Error("error fetching head to head", "match_id", matchID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to fetch head to head data",
			Details: err.Error(),
		})
		return
	}

	if stats == nil {
		c.JSON(http.StatusOK, HeadToHeadResponse{
			Success: true,
			Message: "No previous meetings found between these teams",
		})
		return
	}

	c.JSON(http.StatusOK, HeadToHeadResponse{
		Success:    true,
		Stats:      stats,
		AllMatches: matches,
	})
}
