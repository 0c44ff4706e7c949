package client

import "errors"

var (
	ErrNotSignedIn         = errors.New("not signed in")
	ErrSessionExpired      = errors.New("session expired")
	ErrNotAdministrator    = errors.New("only administrators may edit the study schema")
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrUnknownExportFormat = errors.New("unknown export format")
)
