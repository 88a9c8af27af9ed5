package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/clubsphere/backend/internal/common"
	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/internal/model"
	"github.com/clubsphere/backend/internal/repository"
	"github.com/clubsphere/backend/pkg/errorx"
	"github.com/clubsphere/backend/pkg/idutil"
	"github.com/clubsphere/backend/pkg/qcache"
	"github.com/clubsphere/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RegistrationDomain interface {
	GetMyRegistrations(context.Context, *model.GetMyRegistrationsRequest) (*model.GetMyRegistrationsResponse, error)
	GetRegisteredEvents(context.Context, *model.GetRegisteredEventsRequest) (*model.GetRegisteredEventsResponse, error)
	Register(context.Context, *model.RegisterForEventRequest) (*model.RegisterForEventResponse, error)
	Unregister(context.Context, *model.UnregisterFromEventRequest) (*model.UnregisterFromEventResponse, error)
	GetParticipants(context.Context, *model.GetEventParticipantsRequest) (*model.GetEventParticipantsResponse, error)
	SetAttendance(context.Context, *model.SetAttendanceRequest) (*model.SetAttendanceResponse, error)
	Bookmark(context.Context, *model.BookmarkEventRequest) (*model.BookmarkEventResponse, error)
	Unbookmark(context.Context, *model.UnbookmarkEventRequest) (*model.UnbookmarkEventResponse, error)
	GetMyBookmarks(context.Context, *model.GetMyBookmarksRequest) (*model.GetMyBookmarksResponse, error)
}

type registrationDomain struct {
	participantRepo repository.EventParticipantRepository
	bookmarkRepo    repository.EventBookmarkRepository
	eventRepo       repository.EventRepository
	clubRepo        repository.ClubRepository
	memberRepo      repository.ClubMemberRepository
	roleVerifier    *common.ClubRoleVerifier
	cache           qcache.Cache
}

func NewRegistrationDomain(
	participantRepo repository.EventParticipantRepository,
	bookmarkRepo repository.EventBookmarkRepository,
	eventRepo repository.EventRepository,
	clubRepo repository.ClubRepository,
	memberRepo repository.ClubMemberRepository,
	cache qcache.Cache,
) RegistrationDomain {
	return &registrationDomain{
		participantRepo: participantRepo,
		bookmarkRepo:    bookmarkRepo,
		eventRepo:       eventRepo,
		clubRepo:        clubRepo,
		memberRepo:      memberRepo,
		roleVerifier:    common.NewClubRoleVerifier(clubRepo, memberRepo),
		cache:           cache,
	}
}

func (d *registrationDomain) GetMyRegistrations(
	ctx context.Context, req *model.GetMyRegistrationsRequest,
) (*model.GetMyRegistrationsResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	eventIDs, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyMyRegistrations, user.ID),
		func(ctx context.Context) ([]string, error) {
			rows, err := d.participantRepo.GetListByUserID(ctx, user.ID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get registrations: %v", err)
				return nil, errorx.Remote(err)
			}

			ids := []string{}
			for _, row := range rows {
				ids = append(ids, row.EventID)
			}

			return ids, nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetMyRegistrationsResponse{EventIDs: eventIDs}, nil
}

func (d *registrationDomain) GetRegisteredEvents(
	ctx context.Context, req *model.GetRegisteredEventsRequest,
) (*model.GetRegisteredEventsResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	events, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyRegisteredEvents, user.ID),
		func(ctx context.Context) ([]model.Event, error) {
			registrations, err := d.participantRepo.GetListByUserID(ctx, user.ID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get registrations: %v", err)
				return nil, errorx.Remote(err)
			}

			eventIDs := make([]string, 0, len(registrations))
			for _, registration := range registrations {
				eventIDs = append(eventIDs, registration.EventID)
			}

			rows, err := d.eventRepo.GetByIDs(ctx, eventIDs)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get events: %v", err)
				return nil, errorx.Remote(err)
			}

			return model.ConvertEvents(rows), nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetRegisteredEventsResponse{Events: events}, nil
}

func (d *registrationDomain) Register(
	ctx context.Context, req *model.RegisterForEventRequest,
) (*model.RegisterForEventResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !idutil.Valid(req.EventID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid event id")
	}

	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Remote(err)
	}

	if event.MaxParticipants.Valid && int64(event.RegisteredParticipants) >= event.MaxParticipants.Int64 {
		return nil, errorx.New(errorx.BadRequest, "Event is full")
	}

	participant := &entity.EventParticipant{
		Base:         entity.Base{ID: idutil.New()},
		EventID:      req.EventID,
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		RegisteredAt: time.Now(),
	}

	if err := d.participantRepo.Create(ctx, participant); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot register for event: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx,
		qcache.NewKey(keyMyRegistrations, user.ID),
		qcache.NewKey(keyRegisteredEvents, user.ID),
		qcache.NewKey(keyEventParticipants, req.EventID),
	)

	return &model.RegisterForEventResponse{}, nil
}

func (d *registrationDomain) Unregister(
	ctx context.Context, req *model.UnregisterFromEventRequest,
) (*model.UnregisterFromEventResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !idutil.Valid(req.EventID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid event id")
	}

	if err := d.participantRepo.Delete(ctx, req.EventID, user.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot unregister from event: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx,
		qcache.NewKey(keyMyRegistrations, user.ID),
		qcache.NewKey(keyRegisteredEvents, user.ID),
		qcache.NewKey(keyEventParticipants, req.EventID),
	)

	return &model.UnregisterFromEventResponse{}, nil
}

func (d *registrationDomain) GetParticipants(
	ctx context.Context, req *model.GetEventParticipantsRequest,
) (*model.GetEventParticipantsResponse, error) {
	if !idutil.Valid(req.EventID) {
		return &model.GetEventParticipantsResponse{Participants: []model.EventParticipant{}}, nil
	}

	participants, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyEventParticipants, req.EventID),
		func(ctx context.Context) ([]model.EventParticipant, error) {
			rows, err := d.participantRepo.GetListByEventID(ctx, req.EventID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get participants: %v", err)
				return nil, errorx.Remote(err)
			}

			return model.ConvertEventParticipants(rows), nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetEventParticipantsResponse{Participants: participants}, nil
}

func (d *registrationDomain) SetAttendance(
	ctx context.Context, req *model.SetAttendanceRequest,
) (*model.SetAttendanceResponse, error) {
	if _, err := common.CurrentUser(ctx); err != nil {
		return nil, err
	}

	if !idutil.Valid(req.EventID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid event id")
	}

	if !idutil.Valid(req.UserID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid user id")
	}

	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Remote(err)
	}

	if err := d.roleVerifier.Verify(ctx, event.ClubID.String, entity.RoleLead, entity.RoleOrganizer); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	attendance := sql.NullBool{}
	if req.Attendance != nil {
		attendance = sql.NullBool{Valid: true, Bool: *req.Attendance}
	}

	if err := d.participantRepo.UpdateAttendance(ctx, req.EventID, req.UserID, attendance); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found registration")
		}

		xcontext.Logger(ctx).Errorf("Cannot set attendance: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx, qcache.NewKey(keyEventParticipants, req.EventID))

	return &model.SetAttendanceResponse{}, nil
}

func (d *registrationDomain) Bookmark(
	ctx context.Context, req *model.BookmarkEventRequest,
) (*model.BookmarkEventResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !idutil.Valid(req.EventID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid event id")
	}

	if _, err := d.eventRepo.GetByID(ctx, req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Remote(err)
	}

	bookmark := &entity.EventBookmark{
		Base:         entity.Base{ID: idutil.New()},
		EventID:      req.EventID,
		UserID:       user.ID,
		BookmarkedAt: time.Now(),
	}

	if err := d.bookmarkRepo.Create(ctx, bookmark); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot bookmark event: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx, qcache.NewKey(keyMyBookmarks, user.ID))

	return &model.BookmarkEventResponse{}, nil
}

func (d *registrationDomain) Unbookmark(
	ctx context.Context, req *model.UnbookmarkEventRequest,
) (*model.UnbookmarkEventResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !idutil.Valid(req.EventID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid event id")
	}

	if err := d.bookmarkRepo.Delete(ctx, req.EventID, user.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot unbookmark event: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx, qcache.NewKey(keyMyBookmarks, user.ID))

	return &model.UnbookmarkEventResponse{}, nil
}

func (d *registrationDomain) GetMyBookmarks(
	ctx context.Context, req *model.GetMyBookmarksRequest,
) (*model.GetMyBookmarksResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	eventIDs, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyMyBookmarks, user.ID),
		func(ctx context.Context) ([]string, error) {
			rows, err := d.bookmarkRepo.GetListByUserID(ctx, user.ID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get bookmarks: %v", err)
				return nil, errorx.Remote(err)
			}

			ids := []string{}
			for _, row := range rows {
				ids = append(ids, row.EventID)
			}

			return ids, nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetMyBookmarksResponse{EventIDs: eventIDs}, nil
}
