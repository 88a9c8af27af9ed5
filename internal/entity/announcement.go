package entity

// Announcement rows are immutable once created; the only mutation the
// client performs afterwards is deletion.
type Announcement struct {
	Base

	ClubID  string `gorm:"column:club_id;index"`
	Title   string
	Content string `gorm:"type:text"`

	CreatedBy string `gorm:"column:created_by"`
}

func (Announcement) TableName() string {
	return "club_announcements"
}
