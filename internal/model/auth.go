package model

// AccessToken is the identity payload carried inside a session token
// and attached to the context of every authenticated call.
type AccessToken struct {
	ID    string `json:"id" mapstructure:"id"`
	Name  string `json:"name" mapstructure:"name"`
	Email string `json:"email" mapstructure:"email"`
	Role  string `json:"role" mapstructure:"role"`
}

type OAuth2VerifyRequest struct {
	Type    string `json:"type"`
	IDToken string `json:"idToken"`
}

type OAuth2VerifyResponse struct {
	AccessToken string `json:"accessToken"`
}
