// Package repository provides the data access layer for team memberships.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	tmModel "github.com/clubhq/membership/internal/teammember/model"
)

// Repository defines membership data access operations on the composite
// (member_id, team_id) key.
type Repository interface {
	Get(ctx context.Context, memberID, teamID int64) (*tmModel.TeamMember, error)
	List(ctx context.Context, filters map[string]string) ([]tmModel.TeamMember, error)
	Create(ctx context.Context, membership *tmModel.TeamMember) (*tmModel.TeamMember, error)
	Delete(ctx context.Context, memberID, teamID int64) (*tmModel.TeamMember, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new membership repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context, memberID, teamID int64) (*tmModel.TeamMember, error) {
	var membership tmModel.TeamMember
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND team_id = ?", memberID, teamID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tmModel.ErrMembershipNotFound
		}
		return nil, err
	}
	return &membership, nil
}

func (r *repository) List(ctx context.Context, filters map[string]string) ([]tmModel.TeamMember, error) {
	query := r.db.WithContext(ctx).Model(&tmModel.TeamMember{})

	for field, value := range filters {
		column, ok := tmModel.FilterFields[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", tmModel.ErrUnknownField, field)
		}
		query = query.Where(column+" = ?", value)
	}

	var memberships []tmModel.TeamMember
	if err := query.Order("team_id ASC, member_id ASC").Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *repository) Create(ctx context.Context, membership *tmModel.TeamMember) (*tmModel.TeamMember, error) {
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		switch {
		case isDuplicateError(err):
			return nil, tmModel.ErrMembershipExists
		case isForeignKeyError(err):
			return nil, tmModel.ErrInvalidMembership
		default:
			return nil, err
		}
	}
	return membership, nil
}

func (r *repository) Delete(ctx context.Context, memberID, teamID int64) (*tmModel.TeamMember, error) {
	membership, err := r.Get(ctx, memberID, teamID)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Where("member_id = ? AND team_id = ?", memberID, teamID).
		Delete(&tmModel.TeamMember{}).Error
	if err != nil {
		return nil, err
	}
	return membership, nil
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

func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "foreign key") || strings.Contains(msg, "FOREIGN KEY")
}
