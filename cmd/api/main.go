package main

import (
	"log"
	"log/slog"
	"os"

	"footyproxy/internal/cache"
	"footyproxy/internal/config"
	"footyproxy/internal/handler"
	"footyproxy/internal/repository"
	"footyproxy/pkg/football"
	"footyproxy/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	footballClient := football.NewClient(cfg.FootballAPIKey, cfg.FootballBaseURL)
	footballRepo := repository.NewFootballRepository(footballClient, repository.NewFootballCache(cache.Options{}))
	footballHandler := handler.NewFootballHandler(footballRepo)

	guardianClient := news.NewGuardianClient(cfg.GuardianAPIKey, cfg.GuardianBaseURL)
	articleRepo := repository.NewArticleRepository(guardianClient, repository.NewSearchCache(cache.Options{}))
	articleHandler := handler.NewArticleHandler(articleRepo)

	systemHandler := handler.NewSystemHandler(footballRepo, footballRepo, articleRepo)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	slog.Info("AllowOrigins URL:", "urls", cfg.AllowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", handler.RequestIDHeader},
	}))

	handler.Register(r, footballHandler, articleHandler, systemHandler)

	slog.Info("starting server", "addr", cfg.Addr(), "news_search_enabled", guardianClient.Enabled())

	err := r.Run(cfg.Addr())
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
