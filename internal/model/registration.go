package model

type EventParticipant struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registeredAt"`
	// Attendance stays nil until an organizer marks it.
	Attendance *bool `json:"attendance,omitempty"`
}

type GetMyRegistrationsRequest struct{}

type GetMyRegistrationsResponse struct {
	EventIDs []string `json:"eventIds"`
}

type RegisterForEventRequest struct {
	EventID string `json:"eventId"`
}

type RegisterForEventResponse struct{}

type UnregisterFromEventRequest struct {
	EventID string `json:"eventId"`
}

type UnregisterFromEventResponse struct{}

type GetEventParticipantsRequest struct {
	EventID string `json:"eventId"`
}

type GetEventParticipantsResponse struct {
	Participants []EventParticipant `json:"participants"`
}

type SetAttendanceRequest struct {
	EventID string `json:"eventId"`
	UserID  string `json:"userId"`
	// Attendance nil resets the mark to unset.
	Attendance *bool `json:"attendance"`
}

type SetAttendanceResponse struct{}

type BookmarkEventRequest struct {
	EventID string `json:"eventId"`
}

type BookmarkEventResponse struct{}

type UnbookmarkEventRequest struct {
	EventID string `json:"eventId"`
}

type UnbookmarkEventResponse struct{}

type GetMyBookmarksRequest struct{}

type GetMyBookmarksResponse struct {
	EventIDs []string `json:"eventIds"`
}
