package authenticator

import (
	"context"
	"time"
)

// TokenEngine signs and verifies the session tokens this layer hands
// to the embedding application after a successful login.
type TokenEngine interface {
	Generate(expiration time.Duration, obj any) (string, error)
	Verify(token string, obj any) error
}

// UserInfo is the identity the hosted authentication service vouches
// for. Metadata fields are optional on the wire.
type UserInfo struct {
	ID    string
	Email string
	Name  string
	Role  string
}

// IDTokenVerifier checks an ID token issued by the hosted auth service
// and extracts the identity it certifies.
type IDTokenVerifier interface {
	Service() string
	VerifyIDToken(ctx context.Context, rawIDToken string) (UserInfo, error)
}
