package domain

import (
	"context"
	"errors"
	"strings"

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

type AnnouncementDomain interface {
	GetListByClubID(context.Context, *model.GetClubAnnouncementsRequest) (*model.GetClubAnnouncementsResponse, error)
	Create(context.Context, *model.CreateAnnouncementRequest) (*model.CreateAnnouncementResponse, error)
	Delete(context.Context, *model.DeleteAnnouncementRequest) (*model.DeleteAnnouncementResponse, error)
}

type announcementDomain struct {
	announcementRepo repository.AnnouncementRepository
	clubRepo         repository.ClubRepository
	memberRepo       repository.ClubMemberRepository
	roleVerifier     *common.ClubRoleVerifier
	cache            qcache.Cache
}

func NewAnnouncementDomain(
	announcementRepo repository.AnnouncementRepository,
	clubRepo repository.ClubRepository,
	memberRepo repository.ClubMemberRepository,
	cache qcache.Cache,
) AnnouncementDomain {
	return &announcementDomain{
		announcementRepo: announcementRepo,
		clubRepo:         clubRepo,
		memberRepo:       memberRepo,
		roleVerifier:     common.NewClubRoleVerifier(clubRepo, memberRepo),
		cache:            cache,
	}
}

func (d *announcementDomain) GetListByClubID(
	ctx context.Context, req *model.GetClubAnnouncementsRequest,
) (*model.GetClubAnnouncementsResponse, error) {
	if !idutil.Valid(req.ClubID) {
		return &model.GetClubAnnouncementsResponse{Announcements: []model.Announcement{}}, nil
	}

	announcements, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyClubAnnouncements, req.ClubID),
		func(ctx context.Context) ([]model.Announcement, error) {
			rows, err := d.announcementRepo.GetListByClubID(ctx, req.ClubID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get announcements: %v", err)
				return nil, errorx.Remote(err)
			}

			return model.ConvertAnnouncements(rows), nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetClubAnnouncementsResponse{Announcements: announcements}, nil
}

func (d *announcementDomain) Create(
	ctx context.Context, req *model.CreateAnnouncementRequest,
) (*model.CreateAnnouncementResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !idutil.Valid(req.ClubID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid club id")
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, errorx.New(errorx.BadRequest, "Announcement title must not be empty")
	}

	if err := d.roleVerifier.Verify(ctx, req.ClubID, entity.RoleLead, entity.RoleOrganizer); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	announcement := &entity.Announcement{
		Base:      entity.Base{ID: idutil.New()},
		ClubID:    req.ClubID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: user.ID,
	}

	if err := d.announcementRepo.Create(ctx, announcement); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create announcement: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx, qcache.NewKey(keyClubAnnouncements, req.ClubID))

	return &model.CreateAnnouncementResponse{
		Announcement: model.ConvertAnnouncement(announcement),
	}, nil
}

func (d *announcementDomain) Delete(
	ctx context.Context, req *model.DeleteAnnouncementRequest,
) (*model.DeleteAnnouncementResponse, error) {
	if _, err := common.CurrentUser(ctx); err != nil {
		return nil, err
	}

	if !idutil.Valid(req.AnnouncementID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid announcement id")
	}

	// Ownership comes from the stored row, never from the caller.
	announcement, err := d.announcementRepo.GetByID(ctx, req.AnnouncementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.DeleteAnnouncementResponse{}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get announcement: %v", err)
		return nil, errorx.Remote(err)
	}

	if err := d.roleVerifier.Verify(ctx, announcement.ClubID, entity.RoleLead, entity.RoleOrganizer); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.announcementRepo.Delete(ctx, req.AnnouncementID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete announcement: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx, qcache.NewKey(keyClubAnnouncements, announcement.ClubID))

	return &model.DeleteAnnouncementResponse{}, nil
}
