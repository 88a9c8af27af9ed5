package repository

import (
	"context"
	"database/sql"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type EventParticipantRepository interface {
	Get(ctx context.Context, eventID, userID string) (*entity.EventParticipant, error)
	GetListByEventID(ctx context.Context, eventID string) ([]entity.EventParticipant, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.EventParticipant, error)
	Create(ctx context.Context, participant *entity.EventParticipant) error
	UpdateAttendance(ctx context.Context, eventID, userID string, attendance sql.NullBool) error
	Delete(ctx context.Context, eventID, userID string) error
}

type eventParticipantRepository struct{}

func NewEventParticipantRepository() *eventParticipantRepository {
	return &eventParticipantRepository{}
}

func (r *eventParticipantRepository) Get(ctx context.Context, eventID, userID string) (*entity.EventParticipant, error) {
	var result entity.EventParticipant
	err := xcontext.DB(ctx).Where("event_id=? AND user_id=?", eventID, userID).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *eventParticipantRepository) GetListByEventID(ctx context.Context, eventID string) ([]entity.EventParticipant, error) {
	var result []entity.EventParticipant
	err := xcontext.DB(ctx).
		Where("event_id=?", eventID).
		Order("registered_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventParticipantRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.EventParticipant, error) {
	var result []entity.EventParticipant
	err := xcontext.DB(ctx).Where("user_id=?", userID).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventParticipantRepository) Create(ctx context.Context, participant *entity.EventParticipant) error {
	return xcontext.DB(ctx).Create(participant).Error
}

func (r *eventParticipantRepository) UpdateAttendance(
	ctx context.Context, eventID, userID string, attendance sql.NullBool,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.EventParticipant{}).
		Where("event_id=? AND user_id=?", eventID, userID).
		Update("attendance", attendance)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *eventParticipantRepository) Delete(ctx context.Context, eventID, userID string) error {
	return xcontext.DB(ctx).
		Where("event_id=? AND user_id=?", eventID, userID).
		Delete(&entity.EventParticipant{}).Error
}
