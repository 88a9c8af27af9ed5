package model

type Announcement struct {
	ID        string `json:"id"`
	ClubID    string `json:"clubId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	CreatedBy string `json:"createdBy"`
}

type GetClubAnnouncementsRequest struct {
	ClubID string `json:"clubId"`
}

type GetClubAnnouncementsResponse struct {
	Announcements []Announcement `json:"announcements"`
}

type CreateAnnouncementRequest struct {
	ClubID  string `json:"clubId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateAnnouncementResponse struct {
	Announcement Announcement `json:"announcement"`
}

type DeleteAnnouncementRequest struct {
	AnnouncementID string `json:"announcementId"`
}

type DeleteAnnouncementResponse struct{}
