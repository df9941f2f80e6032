package model

import (
	"strings"
	"time"
)

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusFinished  MatchStatus = "finished"
	StatusCancelled MatchStatus = "cancelled"
)

// ParseMatchStatus validates a status string (case-insensitive) against the
// closed status set. Unknown values are rejected at the boundary rather than
// stored.
func ParseMatchStatus(s string) (MatchStatus, error) {
	switch MatchStatus(strings.ToLower(s)) {
	case StatusScheduled:
		return StatusScheduled, nil
	case StatusLive:
		return StatusLive, nil
	case StatusFinished:
		return StatusFinished, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", ErrInvalidStatus
}

// IsTerminal reports whether no further transition is defined out of the
// status
func (s MatchStatus) IsTerminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

// Match is a fixture between two distinct clubs.
//
// Notified is reserved for a pre-match broadcast and is not written by the
// reminder scheduler.
type Match struct {
	ID            int         `json:"id"`
	Club1ID       int         `json:"club1_id"`
	Club2ID       int         `json:"club2_id"`
	ScheduledTime time.Time   `json:"scheduled_time"`
	Status        MatchStatus `json:"status"`
	ReminderSent  bool        `json:"reminder_sent"`
	Notified      bool        `json:"notified"`
}

// RecordID implements storage.Record
func (m Match) RecordID() int {
	return m.ID
}

// ReminderTime returns the instant the pre-match reminder is due, lead before
// kickoff
func (m Match) ReminderTime(lead time.Duration) time.Time {
	return m.ScheduledTime.Add(-lead)
}
