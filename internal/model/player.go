package model

import "strings"

// Position is a player's field position
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionAttacker   Position = "ATT"
)

// Player age bounds enforced at creation and update
const (
	MinPlayerAge = 16
	MaxPlayerAge = 45
)

// ParsePosition validates a position string (case-insensitive) against the
// fixed set of positions
func ParsePosition(s string) (Position, error) {
	switch Position(strings.ToUpper(s)) {
	case PositionGoalkeeper:
		return PositionGoalkeeper, nil
	case PositionDefender:
		return PositionDefender, nil
	case PositionMidfielder:
		return PositionMidfielder, nil
	case PositionAttacker:
		return PositionAttacker, nil
	}
	return "", ErrInvalidPosition
}

// Player is a footballer registered in the league.
//
// A nil ClubID means the player is a free agent.
type Player struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Value         int64    `json:"value"`
	Position      Position `json:"position"`
	Age           int      `json:"age"`
	ClubID        *int     `json:"club_id"`
	TransferCount int      `json:"transfer_count"`
}

// RecordID implements storage.Record
func (p Player) RecordID() int {
	return p.ID
}

// IsFreeAgent reports whether the player has no club
func (p Player) IsFreeAgent() bool {
	return p.ClubID == nil
}
