package common

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/clubsphere/backend/pkg/errorx"
	"github.com/clubsphere/backend/pkg/storage"
	"github.com/clubsphere/backend/pkg/xcontext"
	"github.com/nfnt/resize"

	mathUtil "github.com/pkg/math"
)

type size struct {
	w int
	h int
}

func (s size) String() string {
	return fmt.Sprintf("%dx%d", s.w, s.h)
}

var ClubImageSizes = []size{
	{w: 1024, h: 1024},
	{w: 256, h: 256},
}

// ProcessClubImage resizes the uploaded image into the standard club
// image sizes and uploads all of them in one shot. Responses come back
// in the same order as ClubImageSizes, largest first.
func ProcessClubImage(
	ctx context.Context,
	fileStorage storage.Storage,
	fileName, mime string,
	data []byte,
) ([]*storage.UploadResponse, error) {
	if int64(len(data)) > xcontext.Configs(ctx).File.MaxSize {
		return nil, errorx.New(errorx.BadRequest, "Image is too large")
	}

	img, err := decodeImg(mime, bytes.NewReader(data))
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "We just accept jpeg, gif or png")
	}

	objs := make([]*storage.UploadObject, 0, len(ClubImageSizes))
	for _, size := range ClubImageSizes {
		bounds := img.Bounds()
		w := mathUtil.MinInt(size.w, bounds.Dx())
		h := mathUtil.MinInt(size.h, bounds.Dy())

		img := resize.Thumbnail(uint(w), uint(h), img, resize.Lanczos2)
		b, err := encodeImg(mime, img)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot encode image: %v", err)
			return nil, errorx.Unknown
		}

		objs = append(objs, &storage.UploadObject{
			Bucket:   storage.BucketClubImages,
			Prefix:   "clubs",
			FileName: fmt.Sprintf("%s-%s", size, fileName),
			Mime:     mime,
			Data:     b,
		})
	}

	uresp, err := fileStorage.BulkUpload(ctx, objs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upload image: %v", err)
		return nil, errorx.Unknown
	}

	return uresp, nil
}

func decodeImg(mime string, data io.Reader) (img image.Image, err error) {
	switch mime {
	case "image/jpeg":
		img, err = jpeg.Decode(data)
	case "image/png", "application/octet-stream":
		img, err = png.Decode(data)
	case "image/gif":
		img, err = gif.Decode(data)
	default:
		return nil, fmt.Errorf("unsupported mime type %s", mime)
	}
	return img, err
}

func encodeImg(mime string, img image.Image) (b []byte, err error) {
	buf := new(bytes.Buffer)

	switch mime {
	case "image/jpeg":
		err = jpeg.Encode(buf, img, nil)
	case "image/png", "application/octet-stream":
		err = png.Encode(buf, img)
	case "image/gif":
		err = gif.Encode(buf, img, nil)
	default:
		return nil, fmt.Errorf("unsupported mime type %s", mime)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), err
}
