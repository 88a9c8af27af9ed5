package entity

import (
	"database/sql"
	"time"
)

type EventParticipant struct {
	Base

	EventID string `gorm:"column:event_id;uniqueIndex:idx_event_participants_event_user"`
	UserID  string `gorm:"column:user_id;uniqueIndex:idx_event_participants_event_user"`

	Name  string
	Email string

	RegisteredAt time.Time

	// Attendance is tri-state: unset until an organizer marks it.
	Attendance sql.NullBool
}

func (EventParticipant) TableName() string {
	return "event_participants"
}
