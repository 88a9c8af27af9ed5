package testutil

import (
	"context"

	"github.com/clubsphere/backend/pkg/authenticator"
	"github.com/clubsphere/backend/pkg/errorx"
)

type MockIDTokenVerifier struct {
	ServiceName       string
	VerifyIDTokenFunc func(context.Context, string) (authenticator.UserInfo, error)
}

func (m *MockIDTokenVerifier) Service() string {
	if m.ServiceName == "" {
		return "google"
	}

	return m.ServiceName
}

func (m *MockIDTokenVerifier) VerifyIDToken(
	ctx context.Context, rawIDToken string,
) (authenticator.UserInfo, error) {
	if m.VerifyIDTokenFunc != nil {
		return m.VerifyIDTokenFunc(ctx, rawIDToken)
	}

	return authenticator.UserInfo{}, errorx.New(errorx.NotImplemented, "Not implemented")
}
