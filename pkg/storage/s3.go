package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/clubsphere/backend/config"
	"github.com/google/uuid"
)

type s3Storage struct {
	uploader *s3manager.Uploader
	cfg      config.S3Configs
}

func NewS3Storage(cfg config.S3Configs) Storage {
	session, _ := session.NewSession(&aws.Config{
		Region:           aws.String(cfg.Region),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(cfg.SSLDisabled),
	})

	return &s3Storage{
		uploader: s3manager.NewUploader(session),
		cfg:      cfg,
	}
}

// generateObjectKey prepends a fresh uuid so repeated uploads of the
// same file name never collide; the caller owns key uniqueness per the
// gateway contract.
func (s *s3Storage) generateObjectKey(object *UploadObject) *UploadResponse {
	key := fmt.Sprintf("%s-%s", uuid.NewString(), object.FileName)
	if object.Prefix != "" {
		key = fmt.Sprintf("%s/%s", object.Prefix, key)
	}

	return &UploadResponse{
		Url:      fmt.Sprintf("%s/%s/%s", s.cfg.PublicEndpoint, object.Bucket, key),
		FileName: key,
	}
}

func (s *s3Storage) Upload(ctx context.Context, object *UploadObject) (*UploadResponse, error) {
	resp := s.generateObjectKey(object)
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(object.Bucket),
		Key:         aws.String(resp.FileName),
		Body:        bytes.NewReader(object.Data),
		ACL:         aws.String("public-read"),
		ContentType: aws.String(object.Mime),
	})
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w, bucket %s, key %s", err, object.Bucket, resp.FileName)
	}

	return resp, nil
}

func (s *s3Storage) BulkUpload(ctx context.Context, objects []*UploadObject) ([]*UploadResponse, error) {
	batch := make([]s3manager.BatchUploadObject, 0, len(objects))
	out := make([]*UploadResponse, 0, len(objects))
	for _, o := range objects {
		resp := s.generateObjectKey(o)
		batch = append(batch, s3manager.BatchUploadObject{
			Object: &s3manager.UploadInput{
				Bucket:      aws.String(o.Bucket),
				Key:         aws.String(resp.FileName),
				Body:        bytes.NewReader(o.Data),
				ACL:         aws.String("public-read"),
				ContentType: aws.String(o.Mime),
			},
		})
		out = append(out, resp)
	}

	err := s3manager.NewUploaderWithClient(s.uploader.S3).UploadWithIterator(
		ctx, &s3manager.UploadObjectsIterator{Objects: batch},
	)
	if err != nil {
		return nil, fmt.Errorf("bulk upload failed: %w", err)
	}

	return out, nil
}
