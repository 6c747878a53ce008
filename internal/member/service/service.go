// Package service provides the business logic layer for the member module.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	memberModel "github.com/clubhq/membership/internal/member/model"
	"github.com/clubhq/membership/internal/member/repository"
)

// Base paths used when building resource URIs.
const (
	MemberURIPrefix = "/api/members"
	TeamURIPrefix   = "/api/teams"
)

// Service defines member business logic operations.
type Service interface {
	// Get returns a member with its team memberships.
	Get(ctx context.Context, id int64) (*memberModel.MemberResponse, error)

	// List returns {id, uri} projections of members matching the filters.
	List(ctx context.Context, filters map[string]string) ([]memberModel.Ref, error)

	// Create inserts a new member.
	Create(ctx context.Context, req *memberModel.CreateMemberRequest) (*memberModel.MemberResponse, error)

	// Update applies a partial update and returns the updated member.
	Update(ctx context.Context, id int64, req *memberModel.UpdateMemberRequest) (*memberModel.MemberResponse, error)

	// Delete removes a member and returns its prior representation.
	Delete(ctx context.Context, id int64) (*memberModel.MemberResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new member service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Get(ctx context.Context, id int64) (*memberModel.MemberResponse, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, member)
}

func (s *service) List(ctx context.Context, filters map[string]string) ([]memberModel.Ref, error) {
	members, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	refs := make([]memberModel.Ref, 0, len(members))
	for _, m := range members {
		refs = append(refs, memberModel.Ref{
			ID:  m.ID,
			URI: fmt.Sprintf("%s/%d", MemberURIPrefix, m.ID),
		})
	}
	return refs, nil
}

func (s *service) Create(ctx context.Context, req *memberModel.CreateMemberRequest) (*memberModel.MemberResponse, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	email := strings.TrimSpace(req.Email)
	if firstName == "" || lastName == "" || email == "" {
		return nil, memberModel.ErrInvalidMember
	}

	member := &memberModel.Member{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      strings.TrimSpace(req.Phone),
		Active:     req.Active.Or(true),
		Newsletter: req.Newsletter.Or(false),
		Volunteer:  req.Volunteer.Or(false),
	}

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, created)
}

func (s *service) Update(ctx context.Context, id int64, req *memberModel.UpdateMemberRequest) (*memberModel.MemberResponse, error) {
	updates := map[string]interface{}{}

	setString := func(column string, value *string) {
		if value == nil {
			return
		}
		// Empty after trimming means "clear the field".
		updates[column] = strings.TrimSpace(*value)
	}
	setString("first_name", req.FirstName)
	setString("last_name", req.LastName)
	setString("email", req.Email)
	setString("phone", req.Phone)

	if req.Active.Valid {
		updates["active"] = req.Active.Value
	}
	if req.Newsletter.Valid {
		updates["newsletter"] = req.Newsletter.Value
	}
	if req.Volunteer.Valid {
		updates["volunteer"] = req.Volunteer.Value
	}

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, updated)
}

func (s *service) Delete(ctx context.Context, id int64) (*memberModel.MemberResponse, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	// The memberships are gone with the row; report the representation as
	// it stood, without a related collection lookup.
	resp := newResponse(deleted)
	return resp, nil
}

func (s *service) toResponse(ctx context.Context, member *memberModel.Member) (*memberModel.MemberResponse, error) {
	resp := newResponse(member)

	teamIDs, err := s.repo.TeamIDs(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	for _, teamID := range teamIDs {
		resp.Teams = append(resp.Teams, memberModel.TeamRef{
			ID:  teamID,
			URI: fmt.Sprintf("%s/%d", TeamURIPrefix, teamID),
		})
	}
	return resp, nil
}

func newResponse(member *memberModel.Member) *memberModel.MemberResponse {
	return &memberModel.MemberResponse{
		ID:         member.ID,
		FirstName:  member.FirstName,
		LastName:   member.LastName,
		Email:      member.Email,
		Phone:      member.Phone,
		Active:     member.Active,
		Newsletter: member.Newsletter,
		Volunteer:  member.Volunteer,
		Teams:      []memberModel.TeamRef{},
	}
}
