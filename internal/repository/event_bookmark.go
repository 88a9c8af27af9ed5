package repository

import (
	"context"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/pkg/xcontext"
)

type EventBookmarkRepository interface {
	Get(ctx context.Context, eventID, userID string) (*entity.EventBookmark, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.EventBookmark, error)
	Create(ctx context.Context, bookmark *entity.EventBookmark) error
	Delete(ctx context.Context, eventID, userID string) error
}

type eventBookmarkRepository struct{}

func NewEventBookmarkRepository() *eventBookmarkRepository {
	return &eventBookmarkRepository{}
}

func (r *eventBookmarkRepository) Get(ctx context.Context, eventID, userID string) (*entity.EventBookmark, error) {
	var result entity.EventBookmark
	err := xcontext.DB(ctx).Where("event_id=? AND user_id=?", eventID, userID).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *eventBookmarkRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.EventBookmark, error) {
	var result []entity.EventBookmark
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("bookmarked_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventBookmarkRepository) Create(ctx context.Context, bookmark *entity.EventBookmark) error {
	return xcontext.DB(ctx).Create(bookmark).Error
}

func (r *eventBookmarkRepository) Delete(ctx context.Context, eventID, userID string) error {
	return xcontext.DB(ctx).
		Where("event_id=? AND user_id=?", eventID, userID).
		Delete(&entity.EventBookmark{}).Error
}
