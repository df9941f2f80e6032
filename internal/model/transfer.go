package model

import "time"

// Transfer is an append-only ledger entry recording a player's move between
// clubs. Records are never mutated or deleted once written.
//
// A nil FromClubID means the player was signed as a free agent, in which case
// no club was credited the fee.
type Transfer struct {
	ID         int       `json:"id"`
	PlayerID   int       `json:"player_id"`
	FromClubID *int      `json:"from_club_id"`
	ToClubID   int       `json:"to_club_id"`
	Fee        int64     `json:"fee"`
	Timestamp  time.Time `json:"timestamp"`
}

// RecordID implements storage.Record
func (t Transfer) RecordID() int {
	return t.ID
}
