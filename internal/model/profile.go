package model

type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type GetMyProfileRequest struct{}

type GetMyProfileResponse struct {
	Profile *Profile `json:"profile"`
}

type UpdateMyProfileRequest struct {
	Name string `json:"name"`
}

type UpdateMyProfileResponse struct{}
