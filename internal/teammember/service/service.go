// Package service provides the business logic layer for the team-member module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	tmModel "github.com/clubhq/membership/internal/teammember/model"
	"github.com/clubhq/membership/internal/teammember/repository"
)

// Base paths used when building resource URIs.
const (
	MembershipURIPrefix = "/api/team-members"
	MemberURIPrefix     = "/api/members"
	TeamURIPrefix       = "/api/teams"
)

// Service defines membership business logic operations.
type Service interface {
	// Get returns the membership for a (member, team) pair.
	Get(ctx context.Context, memberID, teamID int64) (*tmModel.MembershipResponse, error)

	// List returns pair projections of memberships matching the filters.
	List(ctx context.Context, filters map[string]string) ([]tmModel.Ref, error)

	// Create adds a member to a team.
	Create(ctx context.Context, req *tmModel.CreateMembershipRequest) (*tmModel.MembershipResponse, error)

	// Delete removes a member from a team and returns the prior
	// representation.
	Delete(ctx context.Context, memberID, teamID int64) (*tmModel.MembershipResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new membership service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Get(ctx context.Context, memberID, teamID int64) (*tmModel.MembershipResponse, error) {
	membership, err := s.repo.Get(ctx, memberID, teamID)
	if err != nil {
		return nil, err
	}
	return newResponse(membership), nil
}

func (s *service) List(ctx context.Context, filters map[string]string) ([]tmModel.Ref, error) {
	memberships, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	refs := make([]tmModel.Ref, 0, len(memberships))
	for _, m := range memberships {
		refs = append(refs, tmModel.Ref{
			MemberID: m.MemberID,
			TeamID:   m.TeamID,
			URI:      fmt.Sprintf("%s/%d/%d", MembershipURIPrefix, m.MemberID, m.TeamID),
		})
	}
	return refs, nil
}

func (s *service) Create(ctx context.Context, req *tmModel.CreateMembershipRequest) (*tmModel.MembershipResponse, error) {
	if req.MemberID <= 0 || req.TeamID <= 0 {
		return nil, tmModel.ErrInvalidMembership
	}

	created, err := s.repo.Create(ctx, &tmModel.TeamMember{
		MemberID: req.MemberID,
		TeamID:   req.TeamID,
	})
	if err != nil {
		return nil, err
	}
	return newResponse(created), nil
}

func (s *service) Delete(ctx context.Context, memberID, teamID int64) (*tmModel.MembershipResponse, error) {
	deleted, err := s.repo.Delete(ctx, memberID, teamID)
	if err != nil {
		return nil, err
	}
	return newResponse(deleted), nil
}

func newResponse(membership *tmModel.TeamMember) *tmModel.MembershipResponse {
	return &tmModel.MembershipResponse{
		MemberID:  membership.MemberID,
		TeamID:    membership.TeamID,
		MemberURI: fmt.Sprintf("%s/%d", MemberURIPrefix, membership.MemberID),
		TeamURI:   fmt.Sprintf("%s/%d", TeamURIPrefix, membership.TeamID),
	}
}
