package model

import (
	"encoding/xml"

	"github.com/clubhq/membership/pkg/boolcast"
)

// Ref is the {id, uri} projection used in list responses and related
// collections.
type Ref struct {
	ID  int64  `json:"id" xml:"id" yaml:"id"`
	URI string `json:"uri" xml:"uri" yaml:"uri"`
}

// TeamRef points at a team the member belongs to.
type TeamRef struct {
	ID  int64  `json:"id" xml:"id" yaml:"id"`
	URI string `json:"uri" xml:"uri" yaml:"uri"`
}

// MemberResponse is the full member representation, augmented with the
// member's team memberships.
type MemberResponse struct {
	XMLName    xml.Name  `json:"-" xml:"member" yaml:"-"`
	ID         int64     `json:"id" xml:"id" yaml:"id"`
	FirstName  string    `json:"first_name" xml:"first_name" yaml:"first_name"`
	LastName   string    `json:"last_name" xml:"last_name" yaml:"last_name"`
	Email      string    `json:"email" xml:"email" yaml:"email"`
	Phone      string    `json:"phone,omitempty" xml:"phone,omitempty" yaml:"phone,omitempty"`
	Active     bool      `json:"active" xml:"active" yaml:"active"`
	Newsletter bool      `json:"newsletter" xml:"newsletter" yaml:"newsletter"`
	Volunteer  bool      `json:"volunteer" xml:"volunteer" yaml:"volunteer"`
	Teams      []TeamRef `json:"teams" xml:"teams>team" yaml:"teams"`
}

// CreateMemberRequest is the body of POST /api/members. Boolean flags accept
// native booleans and "true"/"false" strings.
type CreateMemberRequest struct {
	FirstName  string        `json:"first_name"`
	LastName   string        `json:"last_name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	Active     boolcast.Flag `json:"active"`
	Newsletter boolcast.Flag `json:"newsletter"`
	Volunteer  boolcast.Flag `json:"volunteer"`
}

// UpdateMemberRequest is the body of PATCH /api/members/:id. Absent fields
// are left unchanged.
type UpdateMemberRequest struct {
	FirstName  *string       `json:"first_name"`
	LastName   *string       `json:"last_name"`
	Email      *string       `json:"email"`
	Phone      *string       `json:"phone"`
	Active     boolcast.Flag `json:"active"`
	Newsletter boolcast.Flag `json:"newsletter"`
	Volunteer  boolcast.Flag `json:"volunteer"`
}
