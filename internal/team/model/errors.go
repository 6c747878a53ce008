package model

import "errors"

var (
	// ErrTeamNotFound indicates the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTeamExists indicates a team with the given name already exists.
	ErrTeamExists = errors.New("team already exists")
	// ErrUnknownField indicates a filter field outside the allow-list.
	ErrUnknownField = errors.New("unknown filter field")
	// ErrInvalidTeam indicates a missing team name.
	ErrInvalidTeam = errors.New("team name is required")
)
