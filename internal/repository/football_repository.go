package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"footyproxy/internal/cache"
	"footyproxy/pkg/football"
)

const (
	KeyStandings     = "standings"
	KeyStandingsLast = "standingsLast"
	KeyMatches       = "matches"
	KeyMatchesLast   = "matchesLast"
	KeyScorers       = "scorers"
	KeyTeams         = "teams"
	KeyCompetition   = "competition"
)

// FootballTTLs lists the named football-data resources and how long each may
// be served from memory.
var FootballTTLs = map[string]time.Duration{
	KeyStandings:     5 * time.Minute,
	KeyMatches:       2 * time.Minute,
	KeyScorers:       30 * time.Minute,
	KeyTeams:         24 * time.Hour,
	KeyCompetition:   24 * time.Hour,
	KeyStandingsLast: 24 * time.Hour,
	KeyMatchesLast:   24 * time.Hour,
}

// Fetcher is the upstream match-data provider.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (json.RawMessage, error)
}

type FootballRepository struct {
	client Fetcher
	cache  *cache.Cache[json.RawMessage]
	now    func() time.Time
}

func NewFootballRepository(client Fetcher, c *cache.Cache[json.RawMessage]) *FootballRepository {
	return &FootballRepository{client: client, cache: c, now: time.Now}
}

// NewFootballCache builds the cache the repository expects, with every named
// resource registered.
func NewFootballCache(opts cache.Options) *cache.Cache[json.RawMessage] {
	return cache.New[json.RawMessage](FootballTTLs, opts)
}

// resolve serves key from the cache or fetches path and stores it. A failed
// fetch leaves the cache as it was.
func (r *FootballRepository) resolve(ctx context.Context, key, path string) (json.RawMessage, error) {
	if v, ok := r.cache.Get(key); ok {
		slog.Debug("cache hit", "key", key)
		return v, nil
	}

	slog.Info("cache miss, fetching from football-data", "key", key, "path", path)
	body, err := r.client.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, body)
	return body, nil
}

func (r *FootballRepository) Standings(ctx context.Context) (json.RawMessage, error) {
	return r.resolve(ctx, KeyStandings, football.StandingsPath(0))
}

func (r *FootballRepository) LastStandings(ctx context.Context) (json.RawMessage, error) {
	return r.resolve(ctx, KeyStandingsLast, football.StandingsPath(LastSeasonYear(r.now())))
}

func (r *FootballRepository) Matches(ctx context.Context) (json.RawMessage, error) {
	return r.resolve(ctx, KeyMatches, football.MatchesPath(0))
}

func (r *FootballRepository) LastMatches(ctx context.Context) (json.RawMessage, error) {
	return r.resolve(ctx, KeyMatchesLast, football.MatchesPath(LastSeasonYear(r.now())))
}

func (r *FootballRepository) Scorers(ctx context.Context) (json.RawMessage, error) {
	return r.resolve(ctx, KeyScorers, football.ScorersPath())
}

func (r *FootballRepository) Teams(ctx context.Context) (json.RawMessage, error) {
	return r.resolve(ctx, KeyTeams, football.TeamsPath())
}

func (r *FootballRepository) Competition(ctx context.Context) (json.RawMessage, error) {
	return r.resolve(ctx, KeyCompetition, football.CompetitionPath())
}

func (r *FootballRepository) CacheStatus() map[string]bool {
	return r.cache.Snapshot()
}

func (r *FootballRepository) ClearCache() {
	r.cache.ClearAll()
}

// LastSeasonYear returns the starting year of the most recently completed
// August to May season. From August onwards that is last calendar year.
func LastSeasonYear(now time.Time) int {
	if now.Month() >= time.August {
		return now.Year() - 1
	}
	return now.Year() - 2
}

func headToHeadKey(matchID int64, limit int) string {
	return fmt.Sprintf("head2head:%d:%d", matchID, limit)
}
