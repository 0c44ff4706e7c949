package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioImageStorage keeps images in an S3 compatible bucket.
type minioImageStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewMinioImageStorage connects to the bucket and creates it when missing.
func NewMinioImageStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (ImageStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("error creating bucket %q: %w", cfg.Bucket, err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("created image bucket")
	}

	return &minioImageStorage{client: client, bucket: cfg.Bucket, logger: log}, nil
}

func (s *minioImageStorage) Put(ctx context.Context, name string, r io.Reader, size int64) error {
	if err := ValidateImageName(name); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: ImageContentType(name),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioImageStorage.Put").Str("name", name).Msg("failed to upload image")
		return fmt.Errorf("error uploading image: %w", err)
	}
	return nil
}

func (s *minioImageStorage) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ValidateImageName(name); err != nil {
		return nil, err
	}

	if _, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("error reading image: %w", err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("error reading image: %w", err)
	}
	return obj, nil
}

func (s *minioImageStorage) Delete(ctx context.Context, name string) error {
	if err := ValidateImageName(name); err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("error deleting image: %w", err)
	}
	return nil
}
