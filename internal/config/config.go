package config

import "time"

type Config interface {
	EnvConfig
	CorsConfig
	AuthConfig
	StorageConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type AuthConfig interface {
	GetJWTSecret() string
	GetAdminUsername() string
	GetAdminPasswordHash() string
}

type CorsConfig interface {
	GetAllowedOrigin() string
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type StorageConfig interface {
	GetS3Bucket() string
	GetS3BaseURL() string
	GetAWSProfile() string
	GetUploadTimeout() time.Duration
}

type mainConfig struct {
	EnvVars
	Cors
	Auth
	Storage
}

func New() Config {
	return mainConfig{}
}
