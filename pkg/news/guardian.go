package news

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultGuardianBaseURL = "https://content.guardianapis.com"
	defaultSection         = "football"
	showFields             = "headline,byline,trailText,body,thumbnail"
)

type GuardianClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGuardianClient(apiKey, baseURL string) *GuardianClient {
	if baseURL == "" {
		baseURL = DefaultGuardianBaseURL
	}
	if apiKey == "" {
		slog.Warn("GUARDIAN_API_KEY is not set, article search is disabled")
	}
	return &GuardianClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GuardianClient) Name() string {
	return "Guardian"
}

func (c *GuardianClient) Enabled() bool {
	return c.apiKey != ""
}

// Search runs a content search. Every failure is logged and reported as nil.
func (c *GuardianClient) Search(ctx context.Context, query string, opts Options) *SearchResponse {
	if !c.Enabled() {
		return nil
	}

	if opts.Section == "" {
		opts.Section = defaultSection
	}
	params := opts.Values()
	params.Set("q", query)
	params.Set("show-fields", showFields)
	params.Set("api-key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		slog.Error("guardian request build failed", "query", query, "error", err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("guardian search failed", "query", query, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("guardian search returned non-success status", "query", query, "status", resp.StatusCode)
		return nil
	}

	var raw guardianEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		slog.Error("guardian decode failed", "query", query, "error", err)
		return nil
	}

	if raw.Response.Results == nil {
		raw.Response.Results = []json.RawMessage{}
	}
	return &raw.Response
}

type guardianEnvelope struct {
	Response SearchResponse `json:"response"`
}
