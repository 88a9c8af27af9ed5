package model

type Club struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Vision            string   `json:"vision,omitempty"`
	MemberCount       int      `json:"memberCount"`
	EventCount        int      `json:"eventCount"`
	ImageURL          string   `json:"imageUrl"`
	Leads             []string `json:"leads,omitempty"`
	OngoingActivities []string `json:"ongoingActivities,omitempty"`
	Followers         int      `json:"followers"`
}

type ClubMember struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinedAt string `json:"joinedAt"`
}

type GetClubsRequest struct{}

type GetClubsResponse struct {
	Clubs []Club `json:"clubs"`
}

type GetClubRequest struct {
	ClubID string `json:"clubId"`
}

// Club is nil when no such club exists; the caller must check before
// dereferencing.
type GetClubResponse struct {
	Club *Club `json:"club"`
}

type CreateClubRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Vision            string   `json:"vision"`
	ImageURL          string   `json:"imageUrl"`
	Leads             []string `json:"leads"`
	OngoingActivities []string `json:"ongoingActivities"`
}

type CreateClubResponse struct {
	Club Club `json:"club"`
}

// ClubChanges lists the updatable columns. Nil fields are left
// untouched at the gateway; omission never nulls a column out.
type ClubChanges struct {
	Name              *string   `json:"name,omitempty" structs:"name,omitempty"`
	Description       *string   `json:"description,omitempty" structs:"description,omitempty"`
	Category          *string   `json:"category,omitempty" structs:"category,omitempty"`
	Vision            *string   `json:"vision,omitempty" structs:"vision,omitempty"`
	ImageURL          *string   `json:"imageUrl,omitempty" structs:"image_url,omitempty"`
	Leads             *[]string `json:"leads,omitempty" structs:"leads,omitempty"`
	OngoingActivities *[]string `json:"ongoingActivities,omitempty" structs:"ongoing_activities,omitempty"`
}

type UpdateClubRequest struct {
	ClubID  string      `json:"clubId"`
	Changes ClubChanges `json:"changes"`
}

type UpdateClubResponse struct{}

type JoinClubRequest struct {
	ClubID string `json:"clubId"`
}

type JoinClubResponse struct{}

type LeaveClubRequest struct {
	ClubID string `json:"clubId"`
}

type LeaveClubResponse struct{}

type FollowClubRequest struct {
	ClubID string `json:"clubId"`
}

type FollowClubResponse struct{}

type UnfollowClubRequest struct {
	ClubID string `json:"clubId"`
}

type UnfollowClubResponse struct{}

type GetMyClubsRequest struct{}

type GetMyClubsResponse struct {
	Clubs []Club `json:"clubs"`
}

type GetFollowedClubsRequest struct{}

type GetFollowedClubsResponse struct {
	Clubs []Club `json:"clubs"`
}

type GetClubMembersRequest struct {
	ClubID string `json:"clubId"`
}

type GetClubMembersResponse struct {
	Members []ClubMember `json:"members"`
}

type RemoveMemberRequest struct {
	ClubID string `json:"clubId"`
	UserID string `json:"userId"`
}

type RemoveMemberResponse struct{}
