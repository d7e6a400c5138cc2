package model

import "time"

type TeamRecord struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Draws  int    `json:"draws"`
	Losses int    `json:"losses"`
}

type Meeting struct {
	Date      time.Time `json:"date"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	HomeScore *int      `json:"homeScore"`
	AwayScore *int      `json:"awayScore"`
	Winner    string    `json:"winner"`
}

// HeadToHead summarises previous meetings from the point of view of the
// fixture's home and away sides.
type HeadToHead struct {
	TotalMatches  int        `json:"totalMatches"`
	HomeTeam      TeamRecord `json:"homeTeam"`
	AwayTeam      TeamRecord `json:"awayTeam"`
	RecentMatches []Meeting  `json:"recentMatches"`
}
