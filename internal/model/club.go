package model

// Club is a football club competing in the league.
//
// A club's roster is derived from the players whose ClubID references it;
// it is never stored on the club itself.
type Club struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Budget int64  `json:"budget"`
}

// RecordID implements storage.Record
func (c Club) RecordID() int {
	return c.ID
}
