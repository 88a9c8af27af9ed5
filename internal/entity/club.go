package entity

type Club struct {
	Base

	Name        string `gorm:"unique"`
	Description string `gorm:"type:text"`
	Category    string
	Vision      string `gorm:"type:text"`

	// Advisory display counters; the relationship tables are the source
	// of truth for membership and following.
	MemberCount int
	EventCount  int
	Followers   int

	ImageURL          string        `gorm:"column:image_url"`
	Leads             Array[string] `gorm:"type:text"`
	OngoingActivities Array[string] `gorm:"type:text"`

	OrganizerID string `gorm:"column:organizer_id"`
}

func (Club) TableName() string {
	return "clubs"
}
