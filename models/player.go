package models

type Player struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	TeamID   int     `json:"team_id"`
	Position *string `json:"position,omitempty"`
	Number   *int    `json:"number,omitempty"`

	Team *Team `json:"team,omitempty"`
}
