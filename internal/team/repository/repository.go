// Package repository provides the data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	teamModel "github.com/clubhq/membership/internal/team/model"
)

// Repository defines team data access operations.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*teamModel.Team, error)
	List(ctx context.Context, filters map[string]string) ([]teamModel.Team, error)
	Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*teamModel.Team, error)
	Delete(ctx context.Context, id int64) (*teamModel.Team, error)

	// MemberIDs returns ids of members belonging to the team.
	MemberIDs(ctx context.Context, teamID int64) ([]int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *repository) List(ctx context.Context, filters map[string]string) ([]teamModel.Team, error) {
	query := r.db.WithContext(ctx).Model(&teamModel.Team{})

	for field, value := range filters {
		column, ok := teamModel.FilterFields[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", teamModel.ErrUnknownField, field)
		}
		query = query.Where(column+" = ?", value)
	}

	var teams []teamModel.Team
	if err := query.Order("name ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *repository) Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error) {
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if isDuplicateError(err) {
			return nil, teamModel.ErrTeamExists
		}
		return nil, err
	}
	return team, nil
}

func (r *repository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*teamModel.Team, error) {
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&teamModel.Team{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			if isDuplicateError(result.Error) {
				return nil, teamModel.ErrTeamExists
			}
			return nil, result.Error
		}
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) (*teamModel.Team, error) {
	var deleted *teamModel.Team
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team teamModel.Team
		if err := tx.First(&team, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return teamModel.ErrTeamNotFound
			}
			return err
		}

		if err := tx.Exec("DELETE FROM team_members WHERE team_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&teamModel.Team{}, id).Error; err != nil {
			return err
		}

		deleted = &team
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *repository) MemberIDs(ctx context.Context, teamID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Table("team_members").
		Where("team_id = ?", teamID).
		Order("member_id ASC").
		Pluck("member_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
