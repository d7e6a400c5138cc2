package repository

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"footyproxy/internal/cache"
	"footyproxy/internal/model"
	"footyproxy/internal/teams"
	"footyproxy/pkg/news"
)

const (
	SearchTTL      = 30 * time.Minute
	searchPageSize = 5
	orderNewest    = "newest"
)

var kindTags = map[model.ArticleKind]string{
	model.KindPreview: "tone/minutebyminute|tone/matchpreviews",
	model.KindReport:  "tone/matchreports",
}

type ArticleRepository struct {
	client news.NewsClient
	cache  *cache.Cache[*news.SearchResponse]
}

func NewArticleRepository(client news.NewsClient, c *cache.Cache[*news.SearchResponse]) *ArticleRepository {
	return &ArticleRepository{client: client, cache: c}
}

// NewSearchCache builds the cache for article searches. It has no named keys;
// every query becomes a dynamic entry living SearchTTL.
func NewSearchCache(opts cache.Options) *cache.Cache[*news.SearchResponse] {
	opts.DefaultTTL = SearchTTL
	return cache.New[*news.SearchResponse](nil, opts)
}

func searchKey(query string, opts news.Options) string {
	return query + "|" + opts.Values().Encode()
}

// search goes through the search cache. Nil answers are not cached, so a
// degraded provider is retried on the next request.
func (r *ArticleRepository) search(ctx context.Context, query string, opts news.Options) *news.SearchResponse {
	key := searchKey(query, opts)
	if res, ok := r.cache.Get(key); ok {
		return res
	}

	res := r.client.Search(ctx, query, opts)
	if res == nil {
		return nil
	}
	r.cache.Set(key, res)
	return res
}

type strategy struct {
	name  model.Strategy
	query string
}

func phrase(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, "") + `"`
}

func exactQuery(home, away string) string {
	return phrase(home) + " AND " + phrase(away)
}

// matchStrategies lists the queries to try, most precise first.
func matchStrategies(home, away string) []strategy {
	homeVariants := teams.VariantsFor(home)
	awayVariants := teams.VariantsFor(away)
	homeFull, awayFull := homeVariants[0], awayVariants[0]

	strategies := []strategy{
		{name: model.StrategyExact, query: exactQuery(home, away)},
	}

	if homeFull != home || awayFull != away {
		strategies = append(strategies, strategy{
			name:  model.StrategyFullNames,
			query: exactQuery(homeFull, awayFull),
		})
	}

	strategies = append(strategies, strategy{
		name:  model.StrategyUnquoted,
		query: homeFull + " AND " + awayFull,
	})

	longest := max(len(homeVariants), len(awayVariants))
	for i := 1; i < longest; i++ {
		h, a := homeFull, awayFull
		if i < len(homeVariants) {
			h = homeVariants[i]
		}
		if i < len(awayVariants) {
			a = awayVariants[i]
		}
		strategies = append(strategies, strategy{
			name:  model.StrategyVariation(i),
			query: exactQuery(h, a),
		})
	}

	return strategies
}

// FindMatchArticles tries each strategy in order and stops at the first one
// with results. It never fails; no results at all yields strategy "none".
func (r *ArticleRepository) FindMatchArticles(ctx context.Context, home, away string, kind model.ArticleKind) model.SearchResult {
	if !r.client.Enabled() {
		return model.EmptySearchResult()
	}

	opts := news.Options{
		Tag:      kindTags[kind],
		OrderBy:  orderNewest,
		PageSize: searchPageSize,
	}

	for _, s := range matchStrategies(home, away) {
		res := r.search(ctx, s.query, opts)
		if res == nil || len(res.Results) == 0 {
			slog.Debug("article strategy found nothing", "strategy", s.name, "query", s.query)
			continue
		}

		slog.Info("article strategy matched", "strategy", s.name, "home", home, "away", away, "total", res.Total)
		return model.SearchResult{
			Articles: res.Results,
			Total:    res.Total,
			Strategy: s.name,
		}
	}

	return model.EmptySearchResult()
}

// FindTeamArticles searches the exact team name only.
func (r *ArticleRepository) FindTeamArticles(ctx context.Context, team string) model.SearchResult {
	if !r.client.Enabled() {
		return model.EmptySearchResult()
	}

	res := r.search(ctx, phrase(team), news.Options{
		OrderBy:  orderNewest,
		PageSize: searchPageSize,
	})
	if res == nil || len(res.Results) == 0 {
		return model.EmptySearchResult()
	}

	return model.SearchResult{
		Articles: res.Results,
		Total:    res.Total,
		Strategy: model.StrategyExact,
	}
}

func (r *ArticleRepository) ClearCache() {
	r.cache.ClearAll()
}
