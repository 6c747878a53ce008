// Package repository provides the data access layer for the member module.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	memberModel "github.com/clubhq/membership/internal/member/model"
	"github.com/clubhq/membership/pkg/boolcast"
)

// Repository defines member data access operations. Absence is reported
// through ErrMemberNotFound, never through a nil-and-nil return.
type Repository interface {
	// GetByID returns a member by id.
	GetByID(ctx context.Context, id int64) (*memberModel.Member, error)

	// List returns members matching the given field=value filters, ordered
	// by last then first name. Filter keys outside the allow-list yield
	// ErrUnknownField before any SQL is built.
	List(ctx context.Context, filters map[string]string) ([]memberModel.Member, error)

	// Create inserts a member and returns it with the assigned id.
	Create(ctx context.Context, member *memberModel.Member) (*memberModel.Member, error)

	// Update applies the given column changes and returns the updated row.
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*memberModel.Member, error)

	// Delete removes a member and returns its prior representation.
	Delete(ctx context.Context, id int64) (*memberModel.Member, error)

	// TeamIDs returns ids of teams the member belongs to.
	TeamIDs(ctx context.Context, memberID int64) ([]int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new member repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*memberModel.Member, error) {
	var member memberModel.Member
	err := r.db.WithContext(ctx).First(&member, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, memberModel.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *repository) List(ctx context.Context, filters map[string]string) ([]memberModel.Member, error) {
	query := r.db.WithContext(ctx).Model(&memberModel.Member{})

	for field, value := range filters {
		column, ok := memberModel.FilterFields[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", memberModel.ErrUnknownField, field)
		}

		if memberModel.BoolFields[field] {
			b, ok := boolcast.ParseBool(value)
			if !ok {
				return nil, fmt.Errorf("%w: %s=%s", memberModel.ErrInvalidFilter, field, value)
			}
			query = query.Where(column+" = ?", b)
			continue
		}
		query = query.Where(column+" = ?", value)
	}

	var members []memberModel.Member
	if err := query.Order("last_name ASC, first_name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) Create(ctx context.Context, member *memberModel.Member) (*memberModel.Member, error) {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if isDuplicateError(err) {
			return nil, memberModel.ErrMemberExists
		}
		return nil, err
	}
	return member, nil
}

func (r *repository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*memberModel.Member, error) {
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&memberModel.Member{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			if isDuplicateError(result.Error) {
				return nil, memberModel.ErrMemberExists
			}
			return nil, result.Error
		}
	}

	// Re-fetch after the update; a missing row here covers ids that never
	// existed.
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) (*memberModel.Member, error) {
	var deleted *memberModel.Member
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member memberModel.Member
		if err := tx.First(&member, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return memberModel.ErrMemberNotFound
			}
			return err
		}

		// Memberships go first to satisfy the foreign keys.
		if err := tx.Exec("DELETE FROM team_members WHERE member_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&memberModel.Member{}, id).Error; err != nil {
			return err
		}

		deleted = &member
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *repository) TeamIDs(ctx context.Context, memberID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Table("team_members").
		Where("member_id = ?", memberID).
		Order("team_id ASC").
		Pluck("team_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// isDuplicateError checks for a unique constraint violation.
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
