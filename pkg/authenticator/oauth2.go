package authenticator

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubsphere/backend/config"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/mitchellh/mapstructure"
)

type oidcVerifier struct {
	provider *oidc.Provider

	name     string
	clientID string
	idField  string
}

// NewOIDCVerifier builds a verifier against the hosted auth service's
// OIDC issuer. Discovery happens once, at construction.
func NewOIDCVerifier(ctx context.Context, cfg config.OAuth2Config) (IDTokenVerifier, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("cannot discover issuer %s: %w", cfg.Issuer, err)
	}

	return &oidcVerifier{
		provider: provider,
		name:     cfg.Name,
		clientID: cfg.ClientID,
		idField:  cfg.IDField,
	}, nil
}

func (v *oidcVerifier) Service() string {
	return v.name
}

func (v *oidcVerifier) VerifyIDToken(ctx context.Context, rawIDToken string) (UserInfo, error) {
	idToken, err := v.provider.Verifier(&oidc.Config{ClientID: v.clientID}).Verify(ctx, rawIDToken)
	if err != nil {
		return UserInfo{}, err
	}

	var claims map[string]any
	if err := idToken.Claims(&claims); err != nil {
		return UserInfo{}, errors.New("invalid id token")
	}

	var profile struct {
		Subject string `mapstructure:"sub"`
		Email   string `mapstructure:"email"`
		Name    string `mapstructure:"name"`
		Role    string `mapstructure:"role"`
	}
	if err := mapstructure.Decode(claims, &profile); err != nil {
		return UserInfo{}, fmt.Errorf("malformed id token claims: %w", err)
	}

	info := UserInfo{
		ID:    profile.Subject,
		Email: profile.Email,
		Name:  profile.Name,
		Role:  profile.Role,
	}

	if v.idField == "email" {
		info.ID = profile.Email
	}

	if info.ID == "" {
		return UserInfo{}, fmt.Errorf("no usable %s field in id token", v.idField)
	}

	return info, nil
}
