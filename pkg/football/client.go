package football

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.football-data.org/v4"
	Competition    = "PL"
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiKey == "" {
		slog.Warn("FOOTBALL_DATA_API_KEY is not set, football-data requests will be rejected upstream")
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Name() string {
	return "football-data"
}

// Fetch GETs path and returns the JSON body untouched.
func (c *Client) Fetch(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}

	if c.apiKey == "" {
		slog.Warn("calling football-data without an API key", "path", path)
	} else {
		req.Header.Set("X-Auth-Token", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, &AuthOrRateLimitError{Path: path}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{Path: path}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &UpstreamError{Path: path, StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Path: path, Err: fmt.Errorf("read body: %w", err)}
	}

	if !json.Valid(body) {
		return nil, &UpstreamError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Err:        errors.New("response is not valid JSON"),
		}
	}

	return json.RawMessage(body), nil
}

func StandingsPath(season int) string {
	if season > 0 {
		return fmt.Sprintf("/competitions/%s/standings?season=%d", Competition, season)
	}
	return fmt.Sprintf("/competitions/%s/standings", Competition)
}

func MatchesPath(season int) string {
	if season > 0 {
		return fmt.Sprintf("/competitions/%s/matches?season=%d", Competition, season)
	}
	return fmt.Sprintf("/competitions/%s/matches", Competition)
}

func ScorersPath() string {
	return fmt.Sprintf("/competitions/%s/scorers", Competition)
}

func TeamsPath() string {
	return fmt.Sprintf("/competitions/%s/teams", Competition)
}

func CompetitionPath() string {
	return fmt.Sprintf("/competitions/%s", Competition)
}

func HeadToHeadPath(matchID int64, limit int) string {
	return fmt.Sprintf("/matches/%d/head2head?limit=%d", matchID, limit)
}
