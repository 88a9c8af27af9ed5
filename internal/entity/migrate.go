package entity

import "gorm.io/gorm"

// MigrateTable creates the table schema. Production schema belongs to
// the hosted gateway; this exists for test databases and the seed tool.
// It takes the handle directly so this package stays import-free of
// the context helpers, which themselves depend on the model layer.
func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&Club{},
		&Event{},
		&ClubMember{},
		&ClubFollower{},
		&Announcement{},
		&EventParticipant{},
		&EventBookmark{},
		&Profile{},
	)
}
