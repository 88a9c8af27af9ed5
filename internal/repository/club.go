package repository

import (
	"context"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ClubRepository interface {
	GetList(ctx context.Context) ([]entity.Club, error)
	GetByID(ctx context.Context, id string) (*entity.Club, error)
	GetJoinedList(ctx context.Context, userID string) ([]entity.Club, error)
	GetFollowedList(ctx context.Context, userID string) ([]entity.Club, error)
	Create(ctx context.Context, club *entity.Club) error
	Update(ctx context.Context, id string, changes map[string]any) error
	Delete(ctx context.Context, id string) error
}

type clubRepository struct{}

func NewClubRepository() *clubRepository {
	return &clubRepository{}
}

func (r *clubRepository) GetList(ctx context.Context) ([]entity.Club, error) {
	var result []entity.Club
	err := xcontext.DB(ctx).Order("name ASC").Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *clubRepository) GetByID(ctx context.Context, id string) (*entity.Club, error) {
	var result entity.Club
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *clubRepository) GetJoinedList(ctx context.Context, userID string) ([]entity.Club, error) {
	var result []entity.Club
	err := xcontext.DB(ctx).Model(&entity.Club{}).
		Joins("join club_members on club_members.club_id=clubs.id").
		Where("club_members.user_id=?", userID).
		Order("clubs.name ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *clubRepository) GetFollowedList(ctx context.Context, userID string) ([]entity.Club, error) {
	var result []entity.Club
	err := xcontext.DB(ctx).Model(&entity.Club{}).
		Joins("join club_followers on club_followers.club_id=clubs.id").
		Where("club_followers.user_id=?", userID).
		Order("clubs.name ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *clubRepository) Create(ctx context.Context, club *entity.Club) error {
	return xcontext.DB(ctx).Create(club).Error
}

func (r *clubRepository) Update(ctx context.Context, id string, changes map[string]any) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Club{}).
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

func (r *clubRepository) Delete(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Club{}, "id=?", id).Error
}
