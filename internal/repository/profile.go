package repository

import (
	"context"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	Upsert(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, id string, changes map[string]any) error
}

type profileRepository struct{}

func NewProfileRepository() *profileRepository {
	return &profileRepository{}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	var result entity.Profile
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// Upsert creates the profile row on first sign-in and refreshes the name
// and email on subsequent ones. The role is never overwritten here.
func (r *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email"}),
	}).Create(profile).Error
}

func (r *profileRepository) Update(ctx context.Context, id string, changes map[string]any) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Profile{}).
		Where("id=?", id).
		Updates(changes)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
