package models

// Statistic types are free text ("goal", "assist", "yellow card", ...).
// Only the two the leaderboards aggregate get named constants.
const (
	StatisticTypeGoal   = "goal"
	StatisticTypeAssist = "assist"
)

// MatchStatistic is a single recorded stat entry. Several rows may exist
// for the same (match, player, statistic_type) — entries are additive, so
// corrections and incremental updates append rather than overwrite.
type MatchStatistic struct {
	ID            int    `json:"id"`
	MatchID       int    `json:"match_id"`
	PlayerID      int    `json:"player_id"`
	StatisticType string `json:"statistic_type"`
	Value         int    `json:"value"`
}

// PlayerTotal is one leaderboard row: a player's summed value for a
// single statistic type.
type PlayerTotal struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	Value      int    `json:"value"`
}

type TeamStats struct {
	Goals   []PlayerTotal `json:"goals"`
	Assists []PlayerTotal `json:"assists"`
}
