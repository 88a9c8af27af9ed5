package domain

import (
	"context"
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

type ClubDomain interface {
	GetList(context.Context, *model.GetClubsRequest) (*model.GetClubsResponse, error)
	Get(context.Context, *model.GetClubRequest) (*model.GetClubResponse, error)
	Create(context.Context, *model.CreateClubRequest) (*model.CreateClubResponse, error)
	Update(context.Context, *model.UpdateClubRequest) (*model.UpdateClubResponse, error)
	Join(context.Context, *model.JoinClubRequest) (*model.JoinClubResponse, error)
	Leave(context.Context, *model.LeaveClubRequest) (*model.LeaveClubResponse, error)
	Follow(context.Context, *model.FollowClubRequest) (*model.FollowClubResponse, error)
	Unfollow(context.Context, *model.UnfollowClubRequest) (*model.UnfollowClubResponse, error)
	GetMyClubs(context.Context, *model.GetMyClubsRequest) (*model.GetMyClubsResponse, error)
	GetFollowedClubs(context.Context, *model.GetFollowedClubsRequest) (*model.GetFollowedClubsResponse, error)
	GetMembers(context.Context, *model.GetClubMembersRequest) (*model.GetClubMembersResponse, error)
	RemoveMember(context.Context, *model.RemoveMemberRequest) (*model.RemoveMemberResponse, error)
}

type clubDomain struct {
	clubRepo     repository.ClubRepository
	memberRepo   repository.ClubMemberRepository
	followerRepo repository.ClubFollowerRepository
	roleVerifier *common.ClubRoleVerifier
	cache        qcache.Cache
}

func NewClubDomain(
	clubRepo repository.ClubRepository,
	memberRepo repository.ClubMemberRepository,
	followerRepo repository.ClubFollowerRepository,
	cache qcache.Cache,
) ClubDomain {
	return &clubDomain{
		clubRepo:     clubRepo,
		memberRepo:   memberRepo,
		followerRepo: followerRepo,
		roleVerifier: common.NewClubRoleVerifier(clubRepo, memberRepo),
		cache:        cache,
	}
}

func (d *clubDomain) GetList(
	ctx context.Context, req *model.GetClubsRequest,
) (*model.GetClubsResponse, error) {
	clubs, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyClubs),
		func(ctx context.Context) ([]model.Club, error) {
			rows, err := d.clubRepo.GetList(ctx)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get clubs: %v", err)
				return nil, errorx.Remote(err)
			}

			return model.ConvertClubs(rows), nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetClubsResponse{Clubs: clubs}, nil
}

func (d *clubDomain) Get(
	ctx context.Context, req *model.GetClubRequest,
) (*model.GetClubResponse, error) {
	// A malformed id cannot name a row; answer without asking the
	// gateway.
	if !idutil.Valid(req.ClubID) {
		return &model.GetClubResponse{}, nil
	}

	club, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyClub, req.ClubID),
		func(ctx context.Context) (*model.Club, error) {
			row, err := d.clubRepo.GetByID(ctx, req.ClubID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil
				}

				xcontext.Logger(ctx).Errorf("Cannot get club: %v", err)
				return nil, errorx.Remote(err)
			}

			converted := model.ConvertClub(row)
			return &converted, nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetClubResponse{Club: club}, nil
}

func (d *clubDomain) Create(
	ctx context.Context, req *model.CreateClubRequest,
) (*model.CreateClubResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, errorx.New(errorx.BadRequest, "Club name must not be empty")
	}

	club := &entity.Club{
		Base:              entity.Base{ID: idutil.New()},
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Vision:            req.Vision,
		ImageURL:          req.ImageURL,
		Leads:             req.Leads,
		OngoingActivities: req.OngoingActivities,
		OrganizerID:       user.ID,
	}

	if err := d.clubRepo.Create(ctx, club); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create club: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx, qcache.NewKey(keyClubs))

	return &model.CreateClubResponse{Club: model.ConvertClub(club)}, nil
}

func (d *clubDomain) Update(
	ctx context.Context, req *model.UpdateClubRequest,
) (*model.UpdateClubResponse, error) {
	if _, err := common.CurrentUser(ctx); err != nil {
		return nil, err
	}

	if !idutil.Valid(req.ClubID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid club id")
	}

	if err := d.roleVerifier.Verify(ctx, req.ClubID, entity.RoleLead, entity.RoleOrganizer); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	changes := structs.Map(&req.Changes)
	if req.Changes.Leads != nil {
		changes["leads"] = entity.Array[string](*req.Changes.Leads)
	}
	if req.Changes.OngoingActivities != nil {
		changes["ongoing_activities"] = entity.Array[string](*req.Changes.OngoingActivities)
	}

	if len(changes) == 0 {
		return &model.UpdateClubResponse{}, nil
	}

	if err := d.clubRepo.Update(ctx, req.ClubID, changes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found club")
		}

		xcontext.Logger(ctx).Errorf("Cannot update club: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx,
		qcache.NewKey(keyClubs),
		qcache.NewKey(keyClub, req.ClubID),
	)

	return &model.UpdateClubResponse{}, nil
}

func (d *clubDomain) Join(
	ctx context.Context, req *model.JoinClubRequest,
) (*model.JoinClubResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !idutil.Valid(req.ClubID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid club id")
	}

	// A membership row must never point at a club that does not exist.
	if _, err := d.clubRepo.GetByID(ctx, req.ClubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found club")
		}

		xcontext.Logger(ctx).Errorf("Cannot get club: %v", err)
		return nil, errorx.Remote(err)
	}

	member := &entity.ClubMember{
		Base:     entity.Base{ID: idutil.New()},
		ClubID:   req.ClubID,
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     entity.RoleMember,
		JoinedAt: time.Now(),
	}

	if err := d.memberRepo.Create(ctx, member); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot join club: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx,
		qcache.NewKey(keyClubs),
		qcache.NewKey(keyClubMembers, req.ClubID),
		qcache.NewKey(keyMyClubs, user.ID),
		qcache.NewKey(keyMyEvents, user.ID),
	)

	return &model.JoinClubResponse{}, nil
}

func (d *clubDomain) Leave(
	ctx context.Context, req *model.LeaveClubRequest,
) (*model.LeaveClubResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !idutil.Valid(req.ClubID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid club id")
	}

	if err := d.memberRepo.Delete(ctx, req.ClubID, user.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot leave club: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx,
		qcache.NewKey(keyClubs),
		qcache.NewKey(keyClubMembers, req.ClubID),
		qcache.NewKey(keyMyClubs, user.ID),
		qcache.NewKey(keyMyEvents, user.ID),
	)

	return &model.LeaveClubResponse{}, nil
}

func (d *clubDomain) Follow(
	ctx context.Context, req *model.FollowClubRequest,
) (*model.FollowClubResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !idutil.Valid(req.ClubID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid club id")
	}

	if _, err := d.clubRepo.GetByID(ctx, req.ClubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found club")
		}

		xcontext.Logger(ctx).Errorf("Cannot get club: %v", err)
		return nil, errorx.Remote(err)
	}

	follower := &entity.ClubFollower{
		Base:       entity.Base{ID: idutil.New()},
		ClubID:     req.ClubID,
		UserID:     user.ID,
		FollowedAt: time.Now(),
	}

	if err := d.followerRepo.Create(ctx, follower); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot follow club: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx,
		qcache.NewKey(keyClubs),
		qcache.NewKey(keyFollowedClubs, user.ID),
	)

	return &model.FollowClubResponse{}, nil
}

func (d *clubDomain) Unfollow(
	ctx context.Context, req *model.UnfollowClubRequest,
) (*model.UnfollowClubResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if !idutil.Valid(req.ClubID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid club id")
	}

	if err := d.followerRepo.Delete(ctx, req.ClubID, user.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot unfollow club: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx,
		qcache.NewKey(keyClubs),
		qcache.NewKey(keyFollowedClubs, user.ID),
	)

	return &model.UnfollowClubResponse{}, nil
}

func (d *clubDomain) GetMyClubs(
	ctx context.Context, req *model.GetMyClubsRequest,
) (*model.GetMyClubsResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	clubs, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyMyClubs, user.ID),
		func(ctx context.Context) ([]model.Club, error) {
			rows, err := d.clubRepo.GetJoinedList(ctx, user.ID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get joined clubs: %v", err)
				return nil, errorx.Remote(err)
			}

			return model.ConvertClubs(rows), nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetMyClubsResponse{Clubs: clubs}, nil
}

func (d *clubDomain) GetFollowedClubs(
	ctx context.Context, req *model.GetFollowedClubsRequest,
) (*model.GetFollowedClubsResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	clubs, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyFollowedClubs, user.ID),
		func(ctx context.Context) ([]model.Club, error) {
			rows, err := d.clubRepo.GetFollowedList(ctx, user.ID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get followed clubs: %v", err)
				return nil, errorx.Remote(err)
			}

			return model.ConvertClubs(rows), nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetFollowedClubsResponse{Clubs: clubs}, nil
}

func (d *clubDomain) GetMembers(
	ctx context.Context, req *model.GetClubMembersRequest,
) (*model.GetClubMembersResponse, error) {
	if !idutil.Valid(req.ClubID) {
		return &model.GetClubMembersResponse{Members: []model.ClubMember{}}, nil
	}

	members, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyClubMembers, req.ClubID),
		func(ctx context.Context) ([]model.ClubMember, error) {
			rows, err := d.memberRepo.GetListByClubID(ctx, req.ClubID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get club members: %v", err)
				return nil, errorx.Remote(err)
			}

			return model.ConvertClubMembers(rows), nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetClubMembersResponse{Members: members}, nil
}

func (d *clubDomain) RemoveMember(
	ctx context.Context, req *model.RemoveMemberRequest,
) (*model.RemoveMemberResponse, error) {
	if _, err := common.CurrentUser(ctx); err != nil {
		return nil, err
	}

	if !idutil.Valid(req.ClubID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid club id")
	}

	if !idutil.Valid(req.UserID) {
		return nil, errorx.New(errorx.BadRequest, "Invalid user id")
	}

	if err := d.roleVerifier.Verify(ctx, req.ClubID, entity.RoleLead, entity.RoleOrganizer); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.memberRepo.Delete(ctx, req.ClubID, req.UserID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot remove member: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx,
		qcache.NewKey(keyClubs),
		qcache.NewKey(keyClubMembers, req.ClubID),
		qcache.NewKey(keyMyClubs, req.UserID),
		qcache.NewKey(keyMyEvents, req.UserID),
	)

	return &model.RemoveMemberResponse{}, nil
}
