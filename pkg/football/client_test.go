package football

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("test-token", srv.URL)
	client.httpClient = srv.Client()
	return client
}

func TestFetch_ReturnsBodyVerbatim(t *testing.T) {
	var gotToken, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Auth-Token")
		gotPath = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"standings":[{"type":"TOTAL"}]}`))
	})

	body, err := client.Fetch(context.Background(), StandingsPath(0))

	assert.Equal(t, nil, err)
	assert.Equal(t, `{"standings":[{"type":"TOTAL"}]}`, string(body))
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "/competitions/PL/standings", gotPath)
}

func TestFetch_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{
			name:   "403 is auth or rate limit",
			status: http.StatusForbidden,
			check: func(t *testing.T, err error) {
				var target *AuthOrRateLimitError
				assert.Equal(t, true, errors.As(err, &target))
			},
		},
		{
			name:   "429 is rate limit",
			status: http.StatusTooManyRequests,
			check: func(t *testing.T, err error) {
				var target *RateLimitError
				assert.Equal(t, true, errors.As(err, &target))
			},
		},
		{
			name:   "other status is upstream error",
			status: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				var target *UpstreamError
				assert.Equal(t, true, errors.As(err, &target))
				assert.Equal(t, http.StatusBadGateway, target.StatusCode)
				assert.Equal(t, "Bad Gateway", target.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			body, err := client.Fetch(context.Background(), ScorersPath())

			assert.Equal(t, 0, len(body))
			assert.NotEqual(t, nil, err)
			tt.check(t, err)
		})
	}
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient("test-token", url)
	_, err := client.Fetch(context.Background(), TeamsPath())

	var target *TransportError
	assert.Equal(t, true, errors.As(err, &target))
}

func TestFetch_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	})

	_, err := client.Fetch(context.Background(), CompetitionPath())

	var target *UpstreamError
	assert.Equal(t, true, errors.As(err, &target))
	assert.Equal(t, http.StatusOK, target.StatusCode)
}

func TestFetch_MissingKeyStillCallsUpstream(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "", r.Header.Get("X-Auth-Token"))
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient("", srv.URL)
	_, err := client.Fetch(context.Background(), TeamsPath())

	assert.Equal(t, 1, calls)
	var target *AuthOrRateLimitError
	assert.Equal(t, true, errors.As(err, &target))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/competitions/PL/standings?season=2024", StandingsPath(2024))
	assert.Equal(t, "/competitions/PL/matches", MatchesPath(0))
	assert.Equal(t, "/competitions/PL/matches?season=2023", MatchesPath(2023))
	assert.Equal(t, "/competitions/PL", CompetitionPath())
	assert.Equal(t, "/matches/327117/head2head?limit=10", HeadToHeadPath(327117, 10))
}
