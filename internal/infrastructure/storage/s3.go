package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"viewtube/internal/core/ports"
	"viewtube/pkg/config"
)

// S3MediaStore hosts uploaded media on an S3-compatible object store.
type S3MediaStore struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

// NewS3MediaStore configures a client and uploader targeting the bucket
// named in cfg. A non-empty endpoint switches to path-style addressing
// for S3-compatible services.
func NewS3MediaStore(ctx context.Context, cfg config.Config) (*S3MediaStore, error) {
	if strings.TrimSpace(cfg.Media.Bucket) == "" {
		return nil, fmt.Errorf("media store: bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Media.Region),
	}

	if strings.TrimSpace(cfg.Media.Endpoint) != "" {
		endpoint := cfg.Media.Endpoint
		region := cfg.Media.Region
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, _ string, _ ...interface{}) (aws.Endpoint, error) {
			if service == s3.ServiceID {
				return aws.Endpoint{
					URL:           endpoint,
					SigningRegion: region,
				}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = strings.TrimSpace(cfg.Media.Endpoint) != ""
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 5 * 1024 * 1024
		u.LeavePartsOnError = false
	})

	return &S3MediaStore{
		client:   client,
		uploader: uploader,
		bucket:   cfg.Media.Bucket,
		baseURL:  strings.TrimSuffix(cfg.Media.PublicBaseURL, "/"),
	}, nil
}

// Store uploads the local file under a generated key and removes the
// local file whether or not the upload succeeded.
func (s *S3MediaStore) Store(ctx context.Context, localFilePath string) (*ports.StoredAsset, error) {
	defer os.Remove(localFilePath)

	f, err := os.Open(localFilePath)
	if err != nil {
		return nil, fmt.Errorf("media store: open %s: %w", localFilePath, err)
	}
	defer f.Close()

	ext := filepath.Ext(localFilePath)
	key := uuid.NewString() + ext

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("media store: upload %s: %w", key, err)
	}

	return &ports.StoredAsset{
		URL:      s.publicURL(key),
		PublicID: key,
	}, nil
}

// DeleteByID removes the object holding the asset. Deleting an asset
// that no longer exists is not an error.
func (s *S3MediaStore) DeleteByID(ctx context.Context, publicID string) error {
	if strings.TrimSpace(publicID) == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		var notFound *s3types.NotFound
		if errors.As(err, &noKey) || errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("media store: delete %s: %w", publicID, err)
	}
	return nil
}

func (s *S3MediaStore) publicURL(key string) string {
	if s.baseURL == "" {
		return key
	}
	return s.baseURL + "/" + key
}
