// Package service provides the business logic layer for the team module.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	teamModel "github.com/clubhq/membership/internal/team/model"
	"github.com/clubhq/membership/internal/team/repository"
)

// Base paths used when building resource URIs.
const (
	TeamURIPrefix   = "/api/teams"
	MemberURIPrefix = "/api/members"
)

// Service defines team business logic operations.
type Service interface {
	Get(ctx context.Context, id int64) (*teamModel.TeamResponse, error)
	List(ctx context.Context, filters map[string]string) ([]teamModel.Ref, error)
	Create(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)
	Update(ctx context.Context, id int64, req *teamModel.UpdateTeamRequest) (*teamModel.TeamResponse, error)
	Delete(ctx context.Context, id int64) (*teamModel.TeamResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Get(ctx context.Context, id int64) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, team)
}

func (s *service) List(ctx context.Context, filters map[string]string) ([]teamModel.Ref, error) {
	teams, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	refs := make([]teamModel.Ref, 0, len(teams))
	for _, t := range teams {
		refs = append(refs, teamModel.Ref{
			ID:  t.ID,
			URI: fmt.Sprintf("%s/%d", TeamURIPrefix, t.ID),
		})
	}
	return refs, nil
}

func (s *service) Create(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, teamModel.ErrInvalidTeam
	}

	created, err := s.repo.Create(ctx, &teamModel.Team{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Notes:       strings.TrimSpace(req.Notes),
	})
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, created)
}

func (s *service) Update(ctx context.Context, id int64, req *teamModel.UpdateTeamRequest) (*teamModel.TeamResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, teamModel.ErrInvalidTeam
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Notes != nil {
		updates["notes"] = strings.TrimSpace(*req.Notes)
	}

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, updated)
}

func (s *service) Delete(ctx context.Context, id int64) (*teamModel.TeamResponse, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return newResponse(deleted), nil
}

func (s *service) toResponse(ctx context.Context, team *teamModel.Team) (*teamModel.TeamResponse, error) {
	resp := newResponse(team)

	memberIDs, err := s.repo.MemberIDs(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	for _, memberID := range memberIDs {
		resp.Members = append(resp.Members, teamModel.MemberRef{
			ID:  memberID,
			URI: fmt.Sprintf("%s/%d", MemberURIPrefix, memberID),
		})
	}
	return resp, nil
}

func newResponse(team *teamModel.Team) *teamModel.TeamResponse {
	return &teamModel.TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		Notes:       team.Notes,
		Members:     []teamModel.MemberRef{},
	}
}
