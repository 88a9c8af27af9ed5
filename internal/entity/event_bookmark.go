package entity

import "time"

type EventBookmark struct {
	Base

	EventID string `gorm:"column:event_id;uniqueIndex:idx_event_bookmarks_event_user"`
	UserID  string `gorm:"column:user_id;uniqueIndex:idx_event_bookmarks_event_user"`

	BookmarkedAt time.Time
}

func (EventBookmark) TableName() string {
	return "event_bookmarks"
}
