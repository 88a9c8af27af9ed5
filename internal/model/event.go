package model

type Event struct {
	ID                     string   `json:"id"`
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	ClubID                 string   `json:"clubId,omitempty"`
	ClubName               string   `json:"clubName"`
	Date                   string   `json:"date"`
	Time                   string   `json:"time"`
	Location               string   `json:"location"`
	ImageURL               string   `json:"imageUrl"`
	Rules                  []string `json:"rules,omitempty"`
	Eligibility            string   `json:"eligibility,omitempty"`
	MaxParticipants        int      `json:"maxParticipants,omitempty"`
	RegisteredParticipants int      `json:"registeredParticipants"`
	Results                string   `json:"results,omitempty"`
	Highlights             string   `json:"highlights,omitempty"`
}

type GetClubEventsRequest struct {
	ClubID string `json:"clubId"`
}

type GetClubEventsResponse struct {
	Events []Event `json:"events"`
}

type GetUpcomingEventsRequest struct{}

type GetUpcomingEventsResponse struct {
	Events []Event `json:"events"`
}

type GetEventRequest struct {
	EventID string `json:"eventId"`
}

type GetEventResponse struct {
	Event *Event `json:"event"`
}

type GetMyEventsRequest struct{}

type GetMyEventsResponse struct {
	Events []Event `json:"events"`
}

type GetRegisteredEventsRequest struct{}

type GetRegisteredEventsResponse struct {
	Events []Event `json:"events"`
}

type CreateEventRequest struct {
	ClubID          string   `json:"clubId"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Location        string   `json:"location"`
	ImageURL        string   `json:"imageUrl"`
	Rules           []string `json:"rules"`
	Eligibility     string   `json:"eligibility"`
	MaxParticipants int      `json:"maxParticipants"`
}

type CreateEventResponse struct {
	Event Event `json:"event"`
}

// EventChanges mirrors the columns an organizer may edit after
// creation. Nil fields are not sent to the gateway.
type EventChanges struct {
	Title           *string   `json:"title,omitempty" structs:"title,omitempty"`
	Description     *string   `json:"description,omitempty" structs:"description,omitempty"`
	Date            *string   `json:"date,omitempty" structs:"date,omitempty"`
	Time            *string   `json:"time,omitempty" structs:"time,omitempty"`
	Location        *string   `json:"location,omitempty" structs:"location,omitempty"`
	ImageURL        *string   `json:"imageUrl,omitempty" structs:"image_url,omitempty"`
	Rules           *[]string `json:"rules,omitempty" structs:"rules,omitempty"`
	Eligibility     *string   `json:"eligibility,omitempty" structs:"eligibility,omitempty"`
	MaxParticipants *int      `json:"maxParticipants,omitempty" structs:"max_participants,omitempty"`
	Results         *string   `json:"results,omitempty" structs:"results,omitempty"`
	Highlights      *string   `json:"highlights,omitempty" structs:"highlights,omitempty"`
}

type UpdateEventRequest struct {
	EventID string       `json:"eventId"`
	Changes EventChanges `json:"changes"`
}

type UpdateEventResponse struct{}

type DeleteEventRequest struct {
	EventID string `json:"eventId"`
}

type DeleteEventResponse struct{}
