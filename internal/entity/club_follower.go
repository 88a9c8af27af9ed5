package entity

import "time"

type ClubFollower struct {
	Base

	ClubID string `gorm:"column:club_id;uniqueIndex:idx_club_followers_club_user"`
	UserID string `gorm:"column:user_id;uniqueIndex:idx_club_followers_club_user"`

	FollowedAt time.Time
}

func (ClubFollower) TableName() string {
	return "club_followers"
}
