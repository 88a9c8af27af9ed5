package repository

import (
	"context"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/pkg/xcontext"
)

type AnnouncementRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Announcement, error)
	GetListByClubID(ctx context.Context, clubID string) ([]entity.Announcement, error)
	Create(ctx context.Context, announcement *entity.Announcement) error
	Delete(ctx context.Context, id string) error
}

type announcementRepository struct{}

func NewAnnouncementRepository() *announcementRepository {
	return &announcementRepository{}
}

func (r *announcementRepository) GetByID(ctx context.Context, id string) (*entity.Announcement, error) {
	var result entity.Announcement
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *announcementRepository) GetListByClubID(ctx context.Context, clubID string) ([]entity.Announcement, error) {
	var result []entity.Announcement
	err := xcontext.DB(ctx).
		Where("club_id=?", clubID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	return xcontext.DB(ctx).Create(announcement).Error
}

func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Announcement{}, "id=?", id).Error
}
