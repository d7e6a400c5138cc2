package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"footyproxy/internal/model"

	"github.com/go-playground/assert/v2"
)

type fakeArticleFinder struct {
	result   model.SearchResult
	gotHome  string
	gotAway  string
	gotKind  model.ArticleKind
	gotTeam  string
	searched bool
}

func (f *fakeArticleFinder) FindMatchArticles(ctx context.Context, home, away string, kind model.ArticleKind) model.SearchResult {
	f.searched = true
	f.gotHome, f.gotAway, f.gotKind = home, away, kind
	return f.result
}

func (f *fakeArticleFinder) FindTeamArticles(ctx context.Context, team string) model.SearchResult {
	f.searched = true
	f.gotTeam = team
	return f.result
}

func TestGetMatchArticles(t *testing.T) {
	finder := &fakeArticleFinder{result: model.SearchResult{
		Articles: []json.RawMessage{json.RawMessage(`{"id":"a"}`)},
		Total:    12,
		Strategy: model.StrategyFullNames,
	}}
	r := newTestRouter(&fakeFootballStore{}, finder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/guardian/match?homeTeam=Man+City&awayTeam=Spurs&type=report", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Man City", finder.gotHome)
	assert.Equal(t, "Spurs", finder.gotAway)
	assert.Equal(t, model.KindReport, finder.gotKind)

	var res MatchArticlesResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, 12, res.Total)
	assert.Equal(t, 1, len(res.Articles))
	assert.Equal(t, model.StrategyFullNames, res.SearchStrategy)
}

func TestGetMatchArticles_DefaultsToPreview(t *testing.T) {
	finder := &fakeArticleFinder{result: model.EmptySearchResult()}
	r := newTestRouter(&fakeFootballStore{}, finder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/guardian/match?homeTeam=Arsenal&awayTeam=Chelsea", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.KindPreview, finder.gotKind)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "none", res["searchStrategy"])
	assert.Equal(t, []interface{}{}, res["articles"])
}

func TestGetMatchArticles_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "missing home team", url: "/api/guardian/match?awayTeam=Chelsea"},
		{name: "missing away team", url: "/api/guardian/match?homeTeam=Arsenal"},
		{name: "blank team", url: "/api/guardian/match?homeTeam=+&awayTeam=Chelsea"},
		{name: "unknown type", url: "/api/guardian/match?homeTeam=Arsenal&awayTeam=Chelsea&type=gossip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := &fakeArticleFinder{}
			r := newTestRouter(&fakeFootballStore{}, finder)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", tt.url, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, finder.searched)
		})
	}
}

func TestGetTeamArticles(t *testing.T) {
	finder := &fakeArticleFinder{result: model.SearchResult{
		Articles: []json.RawMessage{json.RawMessage(`{"id":"a"}`), json.RawMessage(`{"id":"b"}`)},
		Total:    2,
		Strategy: model.StrategyExact,
	}}
	r := newTestRouter(&fakeFootballStore{}, finder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/guardian/team?team=Arsenal", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Arsenal", finder.gotTeam)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res["success"])
	assert.Equal(t, float64(2), res["total"])
	_, hasStrategy := res["searchStrategy"]
	assert.Equal(t, false, hasStrategy)
}

func TestGetTeamArticles_MissingTeam(t *testing.T) {
	finder := &fakeArticleFinder{}
	r := newTestRouter(&fakeFootballStore{}, finder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/guardian/team", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, finder.searched)
}
