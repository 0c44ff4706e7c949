// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable the portal reads.
const EnvPrefix = "F4F_"

// StructuredConfig is the complete server configuration.
// Sources are merged in the order environment, flags, JSON file, defaults;
// the first source that sets a value wins.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Auth Auth `envPrefix:"AUTH_"`

	// Admin describes the administrator account created on first start.
	Admin Admin `envPrefix:"ADMIN_"`

	Storage Storage `envPrefix:"STORAGE_"`

	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath points to an optional JSON config file.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application metadata.
type App struct {
	// Version is the semantic version reported by GET /version.
	Version string `env:"VERSION"`

	LogLevel string `env:"LOG_LEVEL"`
}

// Auth configures access tokens.
type Auth struct {
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	TokenIssuer string `env:"TOKEN_ISSUER"`

	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Admin is the bootstrap administrator. It is only created when no user
// with that name exists.
type Admin struct {
	Username string `env:"USERNAME"`

	Password string `env:"PASSWORD"`
}

// Storage groups the database and the food image storage.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	Images Images `envPrefix:"IMAGES_"`
}

// DB configures the Postgres connection.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

const (
	ImageBackendFile = "file"
	ImageBackendS3   = "s3"
)

// Images selects where uploaded food images are stored.
type Images struct {
	// Backend is ImageBackendFile or ImageBackendS3.
	Backend string `env:"BACKEND"`

	// Dir is the image directory of the file backend.
	Dir string `env:"DIR"`

	S3 S3 `envPrefix:"S3_"`
}

// S3 configures an S3 compatible object store.
type S3 struct {
	Endpoint  string `env:"ENDPOINT" json:"endpoint"`
	AccessKey string `env:"ACCESS_KEY" json:"access_key"`
	SecretKey string `env:"SECRET_KEY" json:"secret_key"`
	Bucket    string `env:"BUCKET" json:"bucket"`
	Region    string `env:"REGION" json:"region"`
	UseSSL    bool   `env:"USE_SSL" json:"use_ssl"`
}

// Server configures the listeners.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	GRPCAddress string `env:"GRPC_ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MaxUploadSize limits multipart food image uploads, in bytes.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// GetStructuredConfig reads the server configuration from the environment,
// the command line and an optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
