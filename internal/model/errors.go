package model

import "errors"

// Common errors used across the application
var (
	// Club errors
	ErrClubNotFound      = errors.New("club not found")
	ErrDuplicateClubName = errors.New("a club with that name already exists")
	ErrNegativeBudget    = errors.New("budget must not be negative")

	// Player errors
	ErrPlayerNotFound      = errors.New("player not found")
	ErrDuplicatePlayerName = errors.New("a player with that name already exists")
	ErrInvalidPosition     = errors.New("invalid player position")
	ErrAgeOutOfRange       = errors.New("player age out of range")
	ErrNegativeValue       = errors.New("player value must not be negative")
	ErrAlreadyFreeAgent    = errors.New("player is already a free agent")

	// Transfer errors
	ErrNegativeFee        = errors.New("transfer fee must not be negative")
	ErrInsufficientBudget = errors.New("destination club cannot afford the transfer fee")

	// Match errors
	ErrMatchNotFound    = errors.New("match not found")
	ErrSelfMatch        = errors.New("a club cannot play itself")
	ErrPastSchedule     = errors.New("match must be scheduled in the future")
	ErrInvalidStatus    = errors.New("invalid match status")
	ErrAlreadyCancelled = errors.New("match is already cancelled")
	ErrTerminalStatus   = errors.New("match status can no longer change")
)
