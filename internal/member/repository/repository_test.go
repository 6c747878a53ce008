package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	memberModel "github.com/clubhq/membership/internal/member/model"
)

type testMember struct {
	ID         int64     `gorm:"primaryKey;column:id;autoIncrement"`
	FirstName  string    `gorm:"column:first_name;not null"`
	LastName   string    `gorm:"column:last_name;not null"`
	Email      string    `gorm:"column:email;not null;uniqueIndex"`
	Phone      string    `gorm:"column:phone"`
	Active     bool      `gorm:"column:active;not null;default:true"`
	Newsletter bool      `gorm:"column:newsletter;not null;default:false"`
	Volunteer  bool      `gorm:"column:volunteer;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (testMember) TableName() string { return "members" }

type testTeamMember struct {
	MemberID int64 `gorm:"primaryKey;column:member_id"`
	TeamID   int64 `gorm:"primaryKey;column:team_id"`
}

func (testTeamMember) TableName() string { return "team_members" }

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&testMember{}, &testTeamMember{})
	require.NoError(t, err)

	return db
}

func seedMember(t *testing.T, db *gorm.DB, first, last, email string, active bool) int64 {
	t.Helper()
	m := testMember{FirstName: first, LastName: last, Email: email, Active: active}
	require.NoError(t, db.Create(&m).Error)
	return m.ID
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		id := seedMember(t, db, "Alice", "Adams", "alice@example.com", true)

		member, err := repo.GetByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "Alice", member.FirstName)
		assert.Equal(t, "alice@example.com", member.Email)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		member, err := repo.GetByID(ctx, 999)

		assert.Nil(t, member)
		assert.ErrorIs(t, err, memberModel.ErrMemberNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered by name", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedMember(t, db, "Zoe", "Young", "zoe@example.com", true)
		seedMember(t, db, "Alice", "Adams", "alice@example.com", true)

		members, err := repo.List(ctx, nil)

		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "Adams", members[0].LastName)
		assert.Equal(t, "Young", members[1].LastName)
	})

	t.Run("string filter", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedMember(t, db, "Alice", "Adams", "alice@example.com", true)
		seedMember(t, db, "Bob", "Brown", "bob@example.com", true)

		members, err := repo.List(ctx, map[string]string{"last_name": "Brown"})

		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "Bob", members[0].FirstName)
	})

	t.Run("boolean filter accepts string form", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedMember(t, db, "Alice", "Adams", "alice@example.com", true)
		seedMember(t, db, "Bob", "Brown", "bob@example.com", false)

		members, err := repo.List(ctx, map[string]string{"active": "TRUE"})

		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "Alice", members[0].FirstName)
	})

	t.Run("unknown filter field rejected before SQL", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedMember(t, db, "Alice", "Adams", "alice@example.com", true)

		members, err := repo.List(ctx, map[string]string{"password": "x"})

		assert.Nil(t, members)
		assert.ErrorIs(t, err, memberModel.ErrUnknownField)
	})

	t.Run("invalid boolean filter value", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		_, err := repo.List(ctx, map[string]string{"active": "maybe"})

		assert.ErrorIs(t, err, memberModel.ErrInvalidFilter)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		members, err := repo.List(ctx, map[string]string{"email": "nobody@example.com"})

		require.NoError(t, err)
		assert.Empty(t, members)
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		created, err := repo.Create(ctx, &memberModel.Member{
			FirstName: "Alice", LastName: "Adams", Email: "alice@example.com", Active: true,
		})

		require.NoError(t, err)
		assert.Positive(t, created.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedMember(t, db, "Alice", "Adams", "alice@example.com", true)

		_, err := repo.Create(ctx, &memberModel.Member{
			FirstName: "Other", LastName: "Alice", Email: "alice@example.com",
		})

		assert.ErrorIs(t, err, memberModel.ErrMemberExists)
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		id := seedMember(t, db, "Alice", "Adams", "alice@example.com", true)

		updated, err := repo.Update(ctx, id, map[string]interface{}{
			"phone":  "555-0101",
			"active": false,
		})

		require.NoError(t, err)
		assert.Equal(t, "555-0101", updated.Phone)
		assert.False(t, updated.Active)
		assert.Equal(t, "Alice", updated.FirstName)
	})

	t.Run("nonexistent id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		updated, err := repo.Update(ctx, 999, map[string]interface{}{"phone": "555"})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, memberModel.ErrMemberNotFound)
	})

	t.Run("empty update re-fetches", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		id := seedMember(t, db, "Alice", "Adams", "alice@example.com", true)

		updated, err := repo.Update(ctx, id, map[string]interface{}{})

		require.NoError(t, err)
		assert.Equal(t, "Alice", updated.FirstName)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns prior representation and removes memberships", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		id := seedMember(t, db, "Alice", "Adams", "alice@example.com", true)
		require.NoError(t, db.Create(&testTeamMember{MemberID: id, TeamID: 1}).Error)

		deleted, err := repo.Delete(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", deleted.Email)

		_, err = repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, memberModel.ErrMemberNotFound)

		var count int64
		db.Table("team_members").Where("member_id = ?", id).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("nonexistent id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		deleted, err := repo.Delete(ctx, 999)

		assert.Nil(t, deleted)
		assert.ErrorIs(t, err, memberModel.ErrMemberNotFound)
	})
}

func TestRepository_TeamIDs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)
	id := seedMember(t, db, "Alice", "Adams", "alice@example.com", true)
	require.NoError(t, db.Create(&testTeamMember{MemberID: id, TeamID: 3}).Error)
	require.NoError(t, db.Create(&testTeamMember{MemberID: id, TeamID: 1}).Error)

	ids, err := repo.TeamIDs(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)
}
