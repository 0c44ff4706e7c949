package config

import "errors"

var (
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAuthConfigs    = errors.New("invalid auth configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidAdminConfigs   = errors.New("invalid admin configuration")
	ErrInvalidClientConfigs  = errors.New("invalid admin client configuration")
)
