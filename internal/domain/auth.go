package domain

import (
	"context"
	"time"

	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/internal/model"
	"github.com/clubsphere/backend/internal/repository"
	"github.com/clubsphere/backend/pkg/authenticator"
	"github.com/clubsphere/backend/pkg/errorx"
	"github.com/clubsphere/backend/pkg/qcache"
	"github.com/clubsphere/backend/pkg/xcontext"
)

type AuthDomain interface {
	OAuth2Verify(context.Context, *model.OAuth2VerifyRequest) (*model.OAuth2VerifyResponse, error)
}

type authDomain struct {
	profileRepo repository.ProfileRepository
	verifiers   []authenticator.IDTokenVerifier
	cache       qcache.Cache
}

func NewAuthDomain(
	profileRepo repository.ProfileRepository,
	verifiers []authenticator.IDTokenVerifier,
	cache qcache.Cache,
) AuthDomain {
	return &authDomain{profileRepo: profileRepo, verifiers: verifiers, cache: cache}
}

// OAuth2Verify exchanges an ID token issued by the hosted auth service
// for a session token. The profile row is created on first sign-in.
func (d *authDomain) OAuth2Verify(
	ctx context.Context, req *model.OAuth2VerifyRequest,
) (*model.OAuth2VerifyResponse, error) {
	verifier, ok := d.getVerifier(req.Type)
	if !ok {
		return nil, errorx.New(errorx.BadRequest, "Unsupported auth service %s", req.Type)
	}

	info, err := verifier.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot verify id token: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Invalid id token")
	}

	role := entity.ProfileRole(info.Role)
	if role == "" {
		role = entity.ProfileRoleStudent
	}

	profile := &entity.Profile{
		ID:        info.ID,
		Name:      info.Name,
		Email:     info.Email,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := d.profileRepo.Upsert(ctx, profile); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert profile: %v", err)
		return nil, errorx.Remote(err)
	}

	row, err := d.profileRepo.GetByID(ctx, info.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Remote(err)
	}

	cfg := xcontext.Configs(ctx)
	token, err := xcontext.TokenEngine(ctx).Generate(cfg.Auth.AccessToken.Expiration, model.AccessToken{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Role:  string(row.Role),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	d.cache.Invalidate(ctx, qcache.NewKey(keyMyProfile, info.ID))

	return &model.OAuth2VerifyResponse{AccessToken: token}, nil
}

func (d *authDomain) getVerifier(service string) (authenticator.IDTokenVerifier, bool) {
	for _, verifier := range d.verifiers {
		if verifier.Service() == service {
			return verifier, true
		}
	}

	return nil, false
}
