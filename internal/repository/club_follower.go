package repository

import (
	"context"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/pkg/xcontext"
)

type ClubFollowerRepository interface {
	Get(ctx context.Context, clubID, userID string) (*entity.ClubFollower, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.ClubFollower, error)
	Create(ctx context.Context, follower *entity.ClubFollower) error
	Delete(ctx context.Context, clubID, userID string) error
}

type clubFollowerRepository struct{}

func NewClubFollowerRepository() *clubFollowerRepository {
	return &clubFollowerRepository{}
}

func (r *clubFollowerRepository) Get(ctx context.Context, clubID, userID string) (*entity.ClubFollower, error) {
	var result entity.ClubFollower
	err := xcontext.DB(ctx).Where("club_id=? AND user_id=?", clubID, userID).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *clubFollowerRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.ClubFollower, error) {
	var result []entity.ClubFollower
	err := xcontext.DB(ctx).Where("user_id=?", userID).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *clubFollowerRepository) Create(ctx context.Context, follower *entity.ClubFollower) error {
	return xcontext.DB(ctx).Create(follower).Error
}

func (r *clubFollowerRepository) Delete(ctx context.Context, clubID, userID string) error {
	return xcontext.DB(ctx).
		Where("club_id=? AND user_id=?", clubID, userID).
		Delete(&entity.ClubFollower{}).Error
}
