package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/internal/repository"
	"github.com/clubsphere/backend/pkg/idutil"
)

// insertDemoData fills an empty database with a small demo campus.
func insertDemoData(ctx context.Context) error {
	clubRepo := repository.NewClubRepository()
	eventRepo := repository.NewEventRepository()
	memberRepo := repository.NewClubMemberRepository()
	announcementRepo := repository.NewAnnouncementRepository()

	organizerID := idutil.New()

	clubs := []entity.Club{
		{
			Base:              entity.Base{ID: idutil.New()},
			Name:              "Robotics Club",
			Description:       "Design, build and battle robots across the academic year.",
			Category:          "Technical",
			Vision:            "Hands-on engineering for everyone",
			Leads:             entity.Array[string]{"Rohan Iyer", "Meera Pillai"},
			OngoingActivities: entity.Array[string]{"Line follower league", "ROS study group"},
			OrganizerID:       organizerID,
		},
		{
			Base:        entity.Base{ID: idutil.New()},
			Name:        "Drama Club",
			Description: "Two stage productions every semester plus weekly improv.",
			Category:    "Cultural",
			Leads:       entity.Array[string]{"Sana Qureshi"},
			OrganizerID: organizerID,
		},
		{
			Base:        entity.Base{ID: idutil.New()},
			Name:        "Photography Club",
			Description: "Photo walks, darkroom sessions and an annual exhibition.",
			Category:    "Arts",
			OrganizerID: organizerID,
		},
	}

	for i := range clubs {
		if err := clubRepo.Create(ctx, &clubs[i]); err != nil {
			return err
		}

		err := memberRepo.Create(ctx, &entity.ClubMember{
			Base:     entity.Base{ID: idutil.New()},
			ClubID:   clubs[i].ID,
			UserID:   organizerID,
			Name:     "Demo Organizer",
			Email:    "organizer@campus.edu",
			Role:     entity.RoleOrganizer,
			JoinedAt: time.Now(),
		})
		if err != nil {
			return err
		}
	}

	nextMonth := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	events := []entity.Event{
		{
			Base:            entity.Base{ID: idutil.New()},
			Title:           "RoboWars",
			Description:     "Annual combat robotics tournament, open to all departments.",
			ClubID:          sql.NullString{Valid: true, String: clubs[0].ID},
			ClubName:        clubs[0].Name,
			Date:            nextMonth,
			Time:            "10:00",
			Location:        "Main Auditorium",
			Rules:           entity.Array[string]{"Teams of up to 4", "Max bot weight 15kg"},
			Eligibility:     "Open to all students",
			MaxParticipants: sql.NullInt64{Valid: true, Int64: 64},
			OrganizerID:     organizerID,
		},
		{
			Base:        entity.Base{ID: idutil.New()},
			Title:       "Monsoon Play Auditions",
			Description: "Auditions for the semester production.",
			ClubID:      sql.NullString{Valid: true, String: clubs[1].ID},
			ClubName:    clubs[1].Name,
			Date:        nextMonth,
			Time:        "16:00",
			Location:    "Black Box Theatre",
			OrganizerID: organizerID,
		},
	}

	for i := range events {
		if err := eventRepo.Create(ctx, &events[i]); err != nil {
			return err
		}
	}

	return announcementRepo.Create(ctx, &entity.Announcement{
		Base:      entity.Base{ID: idutil.New()},
		ClubID:    clubs[0].ID,
		Title:     "Lab access hours extended",
		Content:   "The robotics lab stays open until 10pm during competition season.",
		CreatedBy: organizerID,
	})
}
