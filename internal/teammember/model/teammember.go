// Package model provides domain models and DTOs for the team-member module.
package model

import (
	"encoding/xml"
	"errors"
	"time"
)

// TeamMember represents the membership join row. Its identity is the
// (member_id, team_id) pair; there is no surrogate id.
type TeamMember struct {
	MemberID  int64     `gorm:"primaryKey;column:member_id" json:"member_id"`
	TeamID    int64     `gorm:"primaryKey;column:team_id" json:"team_id"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}

// FilterFields is the allow-list of filterable fields.
var FilterFields = map[string]string{
	"member_id": "member_id",
	"team_id":   "team_id",
}

var (
	// ErrMembershipNotFound indicates the (member, team) pair does not exist.
	ErrMembershipNotFound = errors.New("team membership not found")
	// ErrMembershipExists indicates the pair is already present.
	ErrMembershipExists = errors.New("team membership already exists")
	// ErrUnknownField indicates a filter field outside the allow-list.
	ErrUnknownField = errors.New("unknown filter field")
	// ErrInvalidMembership indicates a missing or unknown member/team id.
	ErrInvalidMembership = errors.New("member_id and team_id must reference existing rows")
)

// Ref is the list projection of a membership: the pair plus its uri.
type Ref struct {
	MemberID int64  `json:"member_id" xml:"member_id" yaml:"member_id"`
	TeamID   int64  `json:"team_id" xml:"team_id" yaml:"team_id"`
	URI      string `json:"uri" xml:"uri" yaml:"uri"`
}

// MembershipResponse is the full membership representation.
type MembershipResponse struct {
	XMLName   xml.Name `json:"-" xml:"team_member" yaml:"-"`
	MemberID  int64    `json:"member_id" xml:"member_id" yaml:"member_id"`
	TeamID    int64    `json:"team_id" xml:"team_id" yaml:"team_id"`
	MemberURI string   `json:"member_uri" xml:"member_uri" yaml:"member_uri"`
	TeamURI   string   `json:"team_uri" xml:"team_uri" yaml:"team_uri"`
}

// CreateMembershipRequest is the body of POST /api/team-members.
type CreateMembershipRequest struct {
	MemberID int64 `json:"member_id"`
	TeamID   int64 `json:"team_id"`
}
