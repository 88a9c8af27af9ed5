package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/clubsphere/backend/internal/common"
	"github.com/clubsphere/backend/internal/model"
	"github.com/clubsphere/backend/internal/repository"
	"github.com/clubsphere/backend/pkg/errorx"
	"github.com/clubsphere/backend/pkg/qcache"
	"github.com/clubsphere/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProfileDomain interface {
	GetMyProfile(context.Context, *model.GetMyProfileRequest) (*model.GetMyProfileResponse, error)
	UpdateMyProfile(context.Context, *model.UpdateMyProfileRequest) (*model.UpdateMyProfileResponse, error)
}

type profileDomain struct {
	profileRepo repository.ProfileRepository
	cache       qcache.Cache
}

func NewProfileDomain(profileRepo repository.ProfileRepository, cache qcache.Cache) ProfileDomain {
	return &profileDomain{profileRepo: profileRepo, cache: cache}
}

func (d *profileDomain) GetMyProfile(
	ctx context.Context, req *model.GetMyProfileRequest,
) (*model.GetMyProfileResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := qcache.Fetch(ctx, d.cache, qcache.NewKey(keyMyProfile, user.ID),
		func(ctx context.Context) (*model.Profile, error) {
			row, err := d.profileRepo.GetByID(ctx, user.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil
				}

				xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
				return nil, errorx.Remote(err)
			}

			converted := model.ConvertProfile(row)
			return &converted, nil
		})
	if err != nil {
		return nil, err
	}

	return &model.GetMyProfileResponse{Profile: profile}, nil
}

func (d *profileDomain) UpdateMyProfile(
	ctx context.Context, req *model.UpdateMyProfileRequest,
) (*model.UpdateMyProfileResponse, error) {
	user, err := common.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, errorx.New(errorx.BadRequest, "Name must not be empty")
	}

	if err := d.profileRepo.Update(ctx, user.ID, map[string]any{"name": req.Name}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot update profile: %v", err)
		return nil, errorx.Remote(err)
	}

	d.cache.Invalidate(ctx, qcache.NewKey(keyMyProfile, user.ID))

	return &model.UpdateMyProfileResponse{}, nil
}
