package model

import "errors"

var (
	// ErrMemberNotFound indicates the requested member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrMemberExists indicates a member with the given email already exists.
	ErrMemberExists = errors.New("member already exists")
	// ErrUnknownField indicates a filter field outside the allow-list.
	ErrUnknownField = errors.New("unknown filter field")
	// ErrInvalidFilter indicates a filter value that cannot be interpreted.
	ErrInvalidFilter = errors.New("invalid filter value")
	// ErrInvalidMember indicates missing required member fields.
	ErrInvalidMember = errors.New("first name, last name and email are required")
)
