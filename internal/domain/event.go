package domain

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/clubsphere/backend/internal/common"
	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/internal/model"
	"github.com/clubsphere/backend/internal/repository"
	"github.com/clubsphere/backend/pkg/errorx"
	"github.com/clubsphere/backend/pkg/idutil"
	"github.com/clubsphere/backend/pkg/qcache"
	"github.com/clubsphere/backend/pkg/xcontext"
	"github.com/fatih/structs"
	"gorm.io/gorm"
)

type EventDomain interface {
	GetListByClubID(context.Context, *model.GetClubEventsRequest) (*model.GetClubEventsResponse, error)
	GetUpcoming(context.Context, *model.GetUpcomingEventsRequest) (*model.GetUpcomingEventsResponse, error)
	Get(context.Context, *model.GetEventRequest) (*model.GetEventResponse, error)
	GetMyEvents(context.Context, *model.GetMyEventsRequest) (*model.GetMyEventsResponse, error)
	Create(context.Context, *model.CreateEventRequest) (*model.CreateEventResponse, error)
	Update(context.Context, *model.UpdateEventRequest) (*model.UpdateEventResponse, error)
	Delete(context.Context, *model.DeleteEventRequest) (*model.DeleteEventResponse, error)
}

type eventDomain struct {
	eventRepo    repository.EventRepository
	clubRepo     repository.ClubRepository
	memberRepo   repository.ClubMemberRepository
	roleVerifier *common.ClubRoleVerifier
	cache        qcache.Cache
}

func NewEventDomain(
	eventRepo repository.EventRepository,
	clubRepo repository.ClubRepository,
	memberRepo repository.ClubMemberRepository,
	cache qcache.Cache,
) EventDomain {
	return &eventDomain{
		eventRepo:    eventRepo,
		clubRepo:     clubRepo,
		memberRepo:   memberRepo,
		roleVerifier: common.NewClubRoleVerifier(clubRepo, memberRepo),
		cache:        cache,
	}
}

func (d *eventDomain) GetListByClubID(
	ctx context.Context, req *model.GetClubEventsRequest,
) (*model.GetClubEventsResponse, error) {
	if !idutil.Valid(req.ClubID) {
		return &model.GetClubEventsResponse{Events: []model.Event{}}, nil
	}

	events, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyClubEvents, req.ClubID),
		func(ctx context.Context) ([]model.Event, error) {
			rows, err := d.eventRepo.GetListByClubID(ctx, req.ClubID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get club events: %v", err)
				return nil, errorx.Remote(err)
			}

			return model.ConvertEvents(rows), nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetClubEventsResponse{Events: events}, nil
}

func (d *eventDomain) GetUpcoming(
	ctx context.Context, req *model.GetUpcomingEventsRequest,
) (*model.GetUpcomingEventsResponse, error) {
	events, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyUpcomingEvents),
		func(ctx context.Context) ([]model.Event, error) {
			today := time.Now().Format(model.DefaultDateLayout)
			rows, err := d.eventRepo.GetUpcoming(ctx, today)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get upcoming events: %v", err)
				return nil, errorx.Remote(err)
			}

			return model.ConvertEvents(rows), nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetUpcomingEventsResponse{Events: events}, nil
}

func (d *eventDomain) Get(
	ctx context.Context, req *model.GetEventRequest,
) (*model.GetEventResponse, error) {
	if !idutil.Valid(req.EventID) {
		return &model.GetEventResponse{}, nil
	}

	event, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyEvent, req.EventID),
		func(ctx context.Context) (*model.Event, error) {
			row, err := d.eventRepo.GetByID(ctx, req.EventID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil
				}

				xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
				return nil, errorx.Remote(err)
			}

			converted := model.ConvertEvent(row)
			return &converted, nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetEventResponse{Event: event}, nil
}

// GetMyEvents lists the events of every club the caller is a member
// of.
func (d *eventDomain) GetMyEvents(
	ctx context.Context, req *model.GetMyEventsRequest,
) (*model.GetMyEventsResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	events, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyMyEvents, user.ID),
		func(ctx context.Context) ([]model.Event, error) {
			memberships, err := d.memberRepo.GetListByUserID(ctx, user.ID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get memberships: %v", err)
				return nil, errorx.Remote(err)
			}

			clubIDs := make([]string, 0, len(memberships))
			for _, membership := range memberships {
				clubIDs = append(clubIDs, membership.ClubID)
			}

			rows, err := d.eventRepo.GetListByClubIDs(ctx, clubIDs)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get events: %v", err)
				return nil, errorx.Remote(err)
			}

			return model.ConvertEvents(rows), nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetMyEventsResponse{Events: events}, nil
}

func (d *eventDomain) Create(
	ctx context.Context, req *model.CreateEventRequest,
) (*model.CreateEventResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !idutil.Valid(req.ClubID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid club id")
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, errorx.New(errorx.BadRequest, "Event title must not be empty")
	}

	if _, err := time.Parse(model.DefaultDateLayout, req.Date); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid event date")
	}

	if err := d.roleVerifier.Verify(ctx, req.ClubID, entity.RoleLead, entity.RoleOrganizer); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	club, err := d.clubRepo.GetByID(ctx, req.ClubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found club")
		}

		xcontext.Logger(ctx).Errorf("Cannot get club: %v", err)
		return nil, errorx.Remote(err)
	}

	maxParticipants := sql.NullInt64{}
	if req.MaxParticipants > 0 {
		maxParticipants = sql.NullInt64{Valid: true, Int64: int64(req.MaxParticipants)}
	}

	event := &entity.Event{
		Base:            entity.Base{ID: idutil.New()},
		Title:           req.Title,
		Description:     req.Description,
		ClubID:          sql.NullString{Valid: true, String: club.ID},
		ClubName:        club.Name,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		ImageURL:        req.ImageURL,
		Rules:           req.Rules,
		Eligibility:     req.Eligibility,
		MaxParticipants: maxParticipants,
		OrganizerID:     user.ID,
	}

	if err := d.eventRepo.Create(ctx, event); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create event: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx,
		qcache.NewKey(keyClubEvents, req.ClubID),
		qcache.NewKey(keyUpcomingEvents),
	)
	d.cache.InvalidateTag(ctx, keyMyEvents)

	return &model.CreateEventResponse{Event: model.ConvertEvent(event)}, nil
}

func (d *eventDomain) Update(
	ctx context.Context, req *model.UpdateEventRequest,
) (*model.UpdateEventResponse, error) {
	if _, err := common.CurrentUser(ctx); err != nil {
		return nil, err
	}

	if !idutil.Valid(req.EventID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid event id")
	}

	// The club is taken from the stored event, never from the caller.
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

	if req.Changes.Date != nil {
		if _, err := time.Parse(model.DefaultDateLayout, *req.Changes.Date); err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid event date")
		}
	}

	changes := structs.Map(&req.Changes)
	if req.Changes.Rules != nil {
		changes["rules"] = entity.Array[string](*req.Changes.Rules)
	}

	if len(changes) == 0 {
		return &model.UpdateEventResponse{}, nil
	}

	if err := d.eventRepo.Update(ctx, req.EventID, changes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot update event: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx,
		qcache.NewKey(keyClubEvents, event.ClubID.String),
		qcache.NewKey(keyUpcomingEvents),
		qcache.NewKey(keyEvent, req.EventID),
	)
	d.cache.InvalidateTag(ctx, keyMyEvents)

	return &model.UpdateEventResponse{}, nil
}

func (d *eventDomain) Delete(
	ctx context.Context, req *model.DeleteEventRequest,
) (*model.DeleteEventResponse, error) {
	if _, err := common.CurrentUser(ctx); err != nil {
		return nil, err
	}

	if !idutil.Valid(req.EventID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid event id")
	}

	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.DeleteEventResponse{}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Remote(err)
	}

	if err := d.roleVerifier.Verify(ctx, event.ClubID.String, entity.RoleLead, entity.RoleOrganizer); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.eventRepo.Delete(ctx, req.EventID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete event: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx,
		qcache.NewKey(keyClubEvents, event.ClubID.String),
		qcache.NewKey(keyUpcomingEvents),
		qcache.NewKey(keyEvent, req.EventID),
	)
	d.cache.InvalidateTag(ctx, keyMyEvents)
	d.cache.InvalidateTag(ctx, keyRegisteredEvents)

	return &model.DeleteEventResponse{}, nil
}
