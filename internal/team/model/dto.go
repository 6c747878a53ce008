package model

import "encoding/xml"

// Ref is the {id, uri} projection used in list responses.
type Ref struct {
	ID  int64  `json:"id" xml:"id" yaml:"id"`
	URI string `json:"uri" xml:"uri" yaml:"uri"`
}

// MemberRef points at a member belonging to the team.
type MemberRef struct {
	ID  int64  `json:"id" xml:"id" yaml:"id"`
	URI string `json:"uri" xml:"uri" yaml:"uri"`
}

// TeamResponse is the full team representation, augmented with the team's
// members.
type TeamResponse struct {
	XMLName     xml.Name    `json:"-" xml:"team" yaml:"-"`
	ID          int64       `json:"id" xml:"id" yaml:"id"`
	Name        string      `json:"name" xml:"name" yaml:"name"`
	Description string      `json:"description,omitempty" xml:"description,omitempty" yaml:"description,omitempty"`
	Notes       string      `json:"notes,omitempty" xml:"notes,omitempty" yaml:"notes,omitempty"`
	Members     []MemberRef `json:"members" xml:"members>member" yaml:"members"`
}

// CreateTeamRequest is the body of POST /api/teams.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
}

// UpdateTeamRequest is the body of PATCH /api/teams/:id.
type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
}
