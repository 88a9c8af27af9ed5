package domain

import (
	"context"

	"github.com/clubsphere/backend/internal/common"
	"github.com/clubsphere/backend/internal/model"
	"github.com/clubsphere/backend/pkg/errorx"
	"github.com/clubsphere/backend/pkg/storage"
)

type FileDomain interface {
	UploadClubImage(context.Context, *model.UploadClubImageRequest) (*model.UploadClubImageResponse, error)
}

type fileDomain struct {
	storage storage.Storage
}

func NewFileDomain(storage storage.Storage) FileDomain {
	return &fileDomain{storage: storage}
}

func (d *fileDomain) UploadClubImage(
	ctx context.Context, req *model.UploadClubImageRequest,
) (*model.UploadClubImageResponse, error) {
	if _, err := common.CurrentUser(ctx); err != nil {
		return nil, err
	}

	if len(req.Data) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Empty image data")
	}

	uresp, err := common.ProcessClubImage(ctx, d.storage, req.FileName, req.Mime, req.Data)
	if err != nil {
		return nil, err
	}

	return &model.UploadClubImageResponse{
		URL:          uresp[0].Url,
		ThumbnailURL: uresp[1].Url,
	}, nil
}
