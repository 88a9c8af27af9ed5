package entity

import "database/sql"

type Event struct {
	Base

	Title       string
	Description string `gorm:"type:text"`

	ClubID sql.NullString `gorm:"column:club_id;index"`
	// ClubName is denormalized from the clubs table at creation time.
	ClubName string `gorm:"column:club_name"`

	// Date is the gateway's date string (2006-01-02); range filters
	// compare it lexically.
	Date     string `gorm:"index"`
	Time     string
	Location string

	ImageURL    string        `gorm:"column:image_url"`
	Rules       Array[string] `gorm:"type:text"`
	Eligibility string        `gorm:"type:text"`

	MaxParticipants        sql.NullInt64
	RegisteredParticipants int

	Results    string `gorm:"type:text"`
	Highlights string `gorm:"type:text"`

	OrganizerID string `gorm:"column:organizer_id"`
}

func (Event) TableName() string {
	return "events"
}
