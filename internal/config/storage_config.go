package config

import (
	"strconv"
	"time"
)

const defaultUploadTimeoutSeconds = 30

type Storage struct{}

var _ StorageConfig = Storage{}

// GetS3Bucket returns the upload bucket. An empty value disables uploads;
// direct-URL photos keep working.
func (Storage) GetS3Bucket() string {
	return GetEnv("S3_BUCKET", "")
}

// GetS3BaseURL overrides the public URL prefix for stored objects, for
// deployments fronting the bucket with a CDN.
func (Storage) GetS3BaseURL() string {
	return GetEnv("S3_BASE_URL", "")
}

func (Storage) GetAWSProfile() string {
	return GetEnv("AWS_PROFILE", "")
}

// GetUploadTimeout bounds a single upload to the image host.
func (Storage) GetUploadTimeout() time.Duration {
	seconds, err := strconv.Atoi(GetEnv("UPLOAD_TIMEOUT_SECONDS", ""))
	if err != nil || seconds <= 0 {
		seconds = defaultUploadTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}
