package model

import (
	"time"

	"github.com/clubsphere/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano
const DefaultDateLayout string = "2006-01-02"

// The Convert functions own the wire-row to app-shape mapping in the
// read direction; field lists are exhaustive so a renamed gateway
// column breaks here instead of deep inside a view.

func ConvertClub(club *entity.Club) Club {
	if club == nil {
		return Club{}
	}

	return Club{
		ID:                club.ID,
		Name:              club.Name,
		Description:       club.Description,
		Category:          club.Category,
		Vision:            club.Vision,
		MemberCount:       club.MemberCount,
		EventCount:        club.EventCount,
		ImageURL:          club.ImageURL,
		Leads:             club.Leads,
		OngoingActivities: club.OngoingActivities,
		Followers:         club.Followers,
	}
}

func ConvertClubs(clubs []entity.Club) []Club {
	result := []Club{}
	for i := range clubs {
		result = append(result, ConvertClub(&clubs[i]))
	}

	return result
}

func ConvertEvent(event *entity.Event) Event {
	if event == nil {
		return Event{}
	}

	return Event{
		ID:                     event.ID,
		Title:                  event.Title,
		Description:            event.Description,
		ClubID:                 event.ClubID.String,
		ClubName:               event.ClubName,
		Date:                   event.Date,
		Time:                   event.Time,
		Location:               event.Location,
		ImageURL:               event.ImageURL,
		Rules:                  event.Rules,
		Eligibility:            event.Eligibility,
		MaxParticipants:        int(event.MaxParticipants.Int64),
		RegisteredParticipants: event.RegisteredParticipants,
		Results:                event.Results,
		Highlights:             event.Highlights,
	}
}

func ConvertEvents(events []entity.Event) []Event {
	result := []Event{}
	for i := range events {
		result = append(result, ConvertEvent(&events[i]))
	}

	return result
}

func ConvertClubMember(member *entity.ClubMember) ClubMember {
	if member == nil {
		return ClubMember{}
	}

	return ClubMember{
		ID:       member.ID,
		UserID:   member.UserID,
		Name:     member.Name,
		Email:    member.Email,
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt.Format(DefaultTimeLayout),
	}
}

func ConvertClubMembers(members []entity.ClubMember) []ClubMember {
	result := []ClubMember{}
	for i := range members {
		result = append(result, ConvertClubMember(&members[i]))
	}

	return result
}

func ConvertAnnouncement(announcement *entity.Announcement) Announcement {
	if announcement == nil {
		return Announcement{}
	}

	return Announcement{
		ID:        announcement.ID,
		ClubID:    announcement.ClubID,
		Title:     announcement.Title,
		Content:   announcement.Content,
		CreatedAt: announcement.CreatedAt.Format(DefaultTimeLayout),
		CreatedBy: announcement.CreatedBy,
	}
}

func ConvertAnnouncements(announcements []entity.Announcement) []Announcement {
	result := []Announcement{}
	for i := range announcements {
		result = append(result, ConvertAnnouncement(&announcements[i]))
	}

	return result
}

func ConvertEventParticipant(participant *entity.EventParticipant) EventParticipant {
	if participant == nil {
		return EventParticipant{}
	}

	var attendance *bool
	if participant.Attendance.Valid {
		value := participant.Attendance.Bool
		attendance = &value
	}

	return EventParticipant{
		ID:           participant.ID,
		UserID:       participant.UserID,
		Name:         participant.Name,
		Email:        participant.Email,
		RegisteredAt: participant.RegisteredAt.Format(DefaultTimeLayout),
		Attendance:   attendance,
	}
}

func ConvertEventParticipants(participants []entity.EventParticipant) []EventParticipant {
	result := []EventParticipant{}
	for i := range participants {
		result = append(result, ConvertEventParticipant(&participants[i]))
	}

	return result
}

func ConvertProfile(profile *entity.Profile) Profile {
	if profile == nil {
		return Profile{}
	}

	return Profile{
		ID:        profile.ID,
		Name:      profile.Name,
		Email:     profile.Email,
		Role:      string(profile.Role),
		CreatedAt: profile.CreatedAt.Format(DefaultTimeLayout),
	}
}
