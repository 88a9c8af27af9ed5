package model

type UploadClubImageRequest struct {
	FileName string `json:"fileName"`
	Mime     string `json:"mime"`
	Data     []byte `json:"data"`
}

type UploadClubImageResponse struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}
