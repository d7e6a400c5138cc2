package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"footyproxy/internal/model"

	"github.com/gin-gonic/gin"
)

type ArticleFinder interface {
	FindMatchArticles(ctx context.Context, home, away string, kind model.ArticleKind) model.SearchResult
	FindTeamArticles(ctx context.Context, team string) model.SearchResult
}

type ArticleHandler struct {
	repository ArticleFinder
}

func NewArticleHandler(repository ArticleFinder) *ArticleHandler {
	return &ArticleHandler{repository: repository}
}

func (h *ArticleHandler) GetMatchArticles(c *gin.Context) {
	home := strings.TrimSpace(c.Query("homeTeam"))
	away := strings.TrimSpace(c.Query("awayTeam"))
	if home == "" || away == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "homeTeam and awayTeam are required"})
		return
	}

	kind, ok := model.ParseArticleKind(c.Query("type"))
	if !ok {
		slog.Warn("invalid article type", "type", c.Query("type"))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "type must be preview or report"})
		return
	}

	res := h.repository.FindMatchArticles(upstreamContext(c), home, away, kind)

	c.JSON(http.StatusOK, MatchArticlesResponse{
		Success:        true,
		Articles:       res.Articles,
		Total:          res.Total,
		SearchStrategy: res.Strategy,
	})
}

func (h *ArticleHandler) GetTeamArticles(c *gin.Context) {
	team := strings.TrimSpace(c.Query("team"))
	if team == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "team is required"})
		return
	}

	res := h.repository.FindTeamArticles(upstreamContext(c), team)

	c.JSON(http.StatusOK, TeamArticlesResponse{
		Success:  true,
		Articles: res.Articles,
		Total:    res.Total,
	})
}
