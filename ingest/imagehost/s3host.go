package imagehost

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"path"
	"time"

	// Register the decoders for the image formats we accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mochilabs/go-catalog-server/ingest"
)

const awsConfigTimeout = 3 * time.Second

// S3ImageHost stores uploads in an S3 bucket and reports the public URL and
// pixel dimensions of the stored image.
type S3ImageHost struct {
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

var _ ingest.ImageHost = (*S3ImageHost)(nil)

// NewS3ImageHost creates an image host backed by the given bucket. profile
// selects a shared AWS config profile and may be empty; baseURL overrides the
// default virtual-hosted bucket URL and may be empty.
func NewS3ImageHost(ctx context.Context, bucket, baseURL, profile string) (*S3ImageHost, error) {
	if bucket == "" {
		return nil, errors.New("[NewS3ImageHost] bucket is required")
	}

	ctxCfg, cancel := context.WithTimeout(ctx, awsConfigTimeout)
	defer cancel()

	var opts []func(*awsconfig.LoadOptions) error
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctxCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[NewS3ImageHost] load aws config")
	}

	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}

	return &S3ImageHost{
		uploader: manager.NewUploader(s3.NewFromConfig(cfg)),
		bucket:   bucket,
		baseURL:  baseURL,
	}, nil
}

// Upload measures the image, stores it under a fresh key inside folder, and
// reports where it lives. Bytes that do not decode as a supported image are
// rejected before anything is stored.
func (h *S3ImageHost) Upload(ctx context.Context, folder string, data []byte) (*ingest.HostedImage, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ingest.UnsupportedImageErr, err.Error())
	}

	key := path.Join(folder, uuid.New().String())
	if _, err := h.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(http.DetectContentType(data)),
	}); err != nil {
		return nil, errors.Wrap(err, "[S3ImageHost.Upload] upload to s3")
	}

	return &ingest.HostedImage{
		URL:    h.baseURL + "/" + key,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
