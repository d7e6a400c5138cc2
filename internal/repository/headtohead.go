package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"footyproxy/internal/model"
	"footyproxy/pkg/football"
)

const (
	DefaultHeadToHeadLimit = 10
	recentMeetings         = 5
)

type h2hPayload struct {
	Aggregates *h2hAggregates    `json:"aggregates"`
	Matches    []json.RawMessage `json:"matches"`
}

type h2hAggregates struct {
	NumberOfMatches int     `json:"numberOfMatches"`
	Draws           *int    `json:"draws"`
	HomeTeam        h2hSide `json:"homeTeam"`
	AwayTeam        h2hSide `json:"awayTeam"`
}

type h2hSide struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Wins  int    `json:"wins"`
	Draws int    `json:"draws"`
}

type h2hMatch struct {
	UTCDate  time.Time `json:"utcDate"`
	HomeTeam h2hTeam   `json:"homeTeam"`
	AwayTeam h2hTeam   `json:"awayTeam"`
	Score    struct {
		Winner   string `json:"winner"`
		FullTime struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"fullTime"`
	} `json:"score"`
}

type h2hTeam struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

func (t h2hTeam) display() string {
	if t.ShortName != "" {
		return t.ShortName
	}
	return t.Name
}

// HeadToHead returns the derived record for the fixture matchID together with
// every previous meeting as sent by football-data. Stats are nil when the
// sides have never met.
func (r *FootballRepository) HeadToHead(ctx context.Context, matchID int64, limit int) (*model.HeadToHead, []json.RawMessage, error) {
	if limit <= 0 {
		limit = DefaultHeadToHeadLimit
	}

	body, err := r.resolve(ctx, headToHeadKey(matchID, limit), football.HeadToHeadPath(matchID, limit))
	if err != nil {
		return nil, nil, err
	}

	var payload h2hPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, fmt.Errorf("head2head decode: %w", err)
	}

	matches := payload.Matches
	if matches == nil {
		matches = []json.RawMessage{}
	}

	stats, err := deriveHeadToHead(payload.Aggregates, matches)
	if err != nil {
		return nil, nil, err
	}
	return stats, matches, nil
}

func deriveHeadToHead(agg *h2hAggregates, matches []json.RawMessage) (*model.HeadToHead, error) {
	if agg == nil || agg.NumberOfMatches == 0 {
		return nil, nil
	}

	draws := agg.HomeTeam.Draws
	if agg.Draws != nil {
		draws = *agg.Draws
	}

	stats := &model.HeadToHead{
		TotalMatches: agg.NumberOfMatches,
		HomeTeam: model.TeamRecord{
			ID:     agg.HomeTeam.ID,
			Name:   agg.HomeTeam.Name,
			Wins:   agg.HomeTeam.Wins,
			Draws:  draws,
			Losses: agg.AwayTeam.Wins,
		},
		AwayTeam: model.TeamRecord{
			ID:     agg.AwayTeam.ID,
			Name:   agg.AwayTeam.Name,
			Wins:   agg.AwayTeam.Wins,
			Draws:  draws,
			Losses: agg.HomeTeam.Wins,
		},
	}

	recent, err := recentMeetingsFrom(matches)
	if err != nil {
		return nil, err
	}
	stats.RecentMatches = recent
	return stats, nil
}

func recentMeetingsFrom(raw []json.RawMessage) ([]model.Meeting, error) {
	parsed := make([]h2hMatch, 0, len(raw))
	for _, m := range raw {
		var match h2hMatch
		if err := json.Unmarshal(m, &match); err != nil {
			return nil, fmt.Errorf("head2head match decode: %w", err)
		}
		parsed = append(parsed, match)
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].UTCDate.After(parsed[j].UTCDate)
	})

	if len(parsed) > recentMeetings {
		parsed = parsed[:recentMeetings]
	}

	meetings := make([]model.Meeting, 0, len(parsed))
	for _, m := range parsed {
		meetings = append(meetings, model.Meeting{
			Date:      m.UTCDate,
			HomeTeam:  m.HomeTeam.display(),
			AwayTeam:  m.AwayTeam.display(),
			HomeScore: m.Score.FullTime.Home,
			AwayScore: m.Score.FullTime.Away,
			Winner:    m.Score.Winner,
		})
	}
	return meetings, nil
}
