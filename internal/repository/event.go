package repository

import (
	"context"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type EventRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Event, error)
	GetListByClubID(ctx context.Context, clubID string) ([]entity.Event, error)
	GetListByClubIDs(ctx context.Context, clubIDs []string) ([]entity.Event, error)
	GetUpcoming(ctx context.Context, fromDate string) ([]entity.Event, error)
	Create(ctx context.Context, event *entity.Event) error
	Update(ctx context.Context, id string, changes map[string]any) error
	Delete(ctx context.Context, id string) error
}

type eventRepository struct{}

func NewEventRepository() *eventRepository {
	return &eventRepository{}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	var result entity.Event
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *eventRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var result []entity.Event
	err := xcontext.DB(ctx).Where("id IN (?)", ids).Order("date ASC").Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventRepository) GetListByClubID(ctx context.Context, clubID string) ([]entity.Event, error) {
	var result []entity.Event
	err := xcontext.DB(ctx).Where("club_id=?", clubID).Order("date ASC").Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventRepository) GetListByClubIDs(ctx context.Context, clubIDs []string) ([]entity.Event, error) {
	if len(clubIDs) == 0 {
		return nil, nil
	}

	var result []entity.Event
	err := xcontext.DB(ctx).Where("club_id IN (?)", clubIDs).Order("date ASC").Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventRepository) GetUpcoming(ctx context.Context, fromDate string) ([]entity.Event, error) {
	var result []entity.Event
	err := xcontext.DB(ctx).Where("date >= ?", fromDate).Order("date ASC").Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	return xcontext.DB(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, id string, changes map[string]any) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Event{}).
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

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Event{}, "id=?", id).Error
}
