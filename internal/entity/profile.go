package entity

import "time"

type ProfileRole string

const (
	ProfileRoleStudent   ProfileRole = "student"
	ProfileRoleOrganizer ProfileRole = "organizer"
)

// Profile mirrors the authenticated identity one-to-one; its ID is the
// auth service's user id, never generated by this layer.
type Profile struct {
	ID        string `gorm:"primarykey"`
	Name      string
	Email     string
	Role      ProfileRole
	CreatedAt time.Time
}

func (Profile) TableName() string {
	return "profiles"
}
