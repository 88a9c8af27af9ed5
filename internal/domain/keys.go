package domain

// Cache key tags. A tag plus its filter values names exactly one query
// result; mutations invalidate the tags they affect.
const (
	keyClubs             = "clubs"
	keyClub              = "club"
	keyMyClubs           = "myClubs"
	keyFollowedClubs     = "followedClubs"
	keyClubMembers       = "clubMembers"
	keyClubEvents        = "clubEvents"
	keyUpcomingEvents    = "upcomingEvents"
	keyEvent             = "event"
	keyMyEvents          = "myEvents"
	keyRegisteredEvents  = "registeredEvents"
	keyMyRegistrations   = "myRegistrations"
	keyEventParticipants = "eventParticipants"
	keyClubAnnouncements = "clubAnnouncements"
	keyMyProfile         = "myProfile"
	keyMyBookmarks       = "myBookmarks"
)
