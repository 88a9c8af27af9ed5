package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/internal/model"
	"github.com/clubsphere/backend/internal/repository"
)

// Identities and rows shared by the domain tests. IDs are fixed
// canonical UUIDs so the identifier gate accepts them.
var (
	Student = model.AccessToken{
		ID:    "11111111-1111-4111-8111-111111111111",
		Name:  "Asha Verma",
		Email: "asha@campus.edu",
		Role:  "student",
	}

	Organizer = model.AccessToken{
		ID:    "22222222-2222-4222-8222-222222222222",
		Name:  "Rohan Iyer",
		Email: "rohan@campus.edu",
		Role:  "organizer",
	}

	RoboticsClub = entity.Club{
		Base:        entity.Base{ID: "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"},
		Name:        "Robotics Club",
		Description: "Build robots, break robots, repeat.",
		Category:    "Technical",
		Vision:      "A robot in every dorm room",
		Leads:       entity.Array[string]{"Rohan Iyer"},
		OrganizerID: Organizer.ID,
	}

	DramaClub = entity.Club{
		Base:        entity.Base{ID: "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"},
		Name:        "Drama Club",
		Description: "Stage productions every semester.",
		Category:    "Cultural",
		OrganizerID: Organizer.ID,
	}

	RoboWars = entity.Event{
		Base:        entity.Base{ID: "cccccccc-cccc-4ccc-8ccc-cccccccccccc"},
		Title:       "RoboWars",
		Description: "Annual combat robotics tournament.",
		ClubID:      sql.NullString{Valid: true, String: RoboticsClub.ID},
		ClubName:    RoboticsClub.Name,
		Date:        "2030-05-10",
		Time:        "10:00",
		Location:    "Main Auditorium",
		OrganizerID: Organizer.ID,
	}

	PastWorkshop = entity.Event{
		Base:        entity.Base{ID: "dddddddd-dddd-4ddd-8ddd-dddddddddddd"},
		Title:       "Arduino Workshop",
		ClubID:      sql.NullString{Valid: true, String: RoboticsClub.ID},
		ClubName:    RoboticsClub.Name,
		Date:        "2020-01-15",
		Time:        "14:00",
		Location:    "Lab 3",
		OrganizerID: Organizer.ID,
	}
)

// InsertFixtures seeds the mock database with the sample rows above.
// The organizer holds the lead role in the robotics club.
func InsertFixtures(ctx context.Context) {
	clubRepo := repository.NewClubRepository()
	for _, club := range []entity.Club{RoboticsClub, DramaClub} {
		club := club
		if err := clubRepo.Create(ctx, &club); err != nil {
			panic(err)
		}
	}

	eventRepo := repository.NewEventRepository()
	for _, event := range []entity.Event{RoboWars, PastWorkshop} {
		event := event
		if err := eventRepo.Create(ctx, &event); err != nil {
			panic(err)
		}
	}

	memberRepo := repository.NewClubMemberRepository()
	err := memberRepo.Create(ctx, &entity.ClubMember{
		Base:     entity.Base{ID: "eeeeeeee-eeee-4eee-8eee-eeeeeeeeeeee"},
		ClubID:   RoboticsClub.ID,
		UserID:   Organizer.ID,
		Name:     Organizer.Name,
		Email:    Organizer.Email,
		Role:     entity.RoleOrganizer,
		JoinedAt: time.Now(),
	})
	if err != nil {
		panic(err)
	}

	profileRepo := repository.NewProfileRepository()
	for _, user := range []model.AccessToken{Student, Organizer} {
		err := profileRepo.Upsert(ctx, &entity.Profile{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      entity.ProfileRole(user.Role),
			CreatedAt: time.Now(),
		})
		if err != nil {
			panic(err)
		}
	}
}
