package entity

import (
	"time"
)

type MemberRole string

const (
	RoleMember    MemberRole = "member"
	RoleLead      MemberRole = "lead"
	RoleOrganizer MemberRole = "organizer"
)

type ClubMember struct {
	Base

	ClubID string `gorm:"column:club_id;uniqueIndex:idx_club_members_club_user"`
	UserID string `gorm:"column:user_id;uniqueIndex:idx_club_members_club_user"`

	Name  string
	Email string
	Role  MemberRole

	JoinedAt time.Time
}

func (ClubMember) TableName() string {
	return "club_members"
}
