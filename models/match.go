package models

import "time"

type Match struct {
	ID            int       `json:"id"`
	DateTime      time.Time `json:"date_time"`
	HomeTeamID    int       `json:"home_team_id"`
	AwayTeamID    int       `json:"away_team_id"`
	LeagueID      int       `json:"league_id"`
	HomeTeamScore int       `json:"home_team_score"`
	AwayTeamScore int       `json:"away_team_score"`

	// Resolved relations for read responses, left nil on write paths.
	HomeTeam *Team   `json:"home_team,omitempty"`
	AwayTeam *Team   `json:"away_team,omitempty"`
	League   *League `json:"league,omitempty"`
}
