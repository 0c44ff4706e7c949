package store

import "errors"

// Sentinel errors returned by repositories. Callers match them with [errors.Is].
var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("entity was not found")

	// ErrAlreadyExists is returned on a unique violation, e.g. when another
	// entity of the same kind already uses the identifier.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrStillReferenced is returned on a foreign key violation.
	ErrStillReferenced = errors.New("entity is still referenced")

	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrUserNotFound       = errors.New("no user was found")

	ErrImageNotFound = errors.New("image file was not found")
	ErrInvalidImage  = errors.New("invalid image file name")
)

// Low-level database errors.
var (
	ErrNilDB                = errors.New("db is nil")
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrEncodingDocument     = errors.New("failed to encode document")
	ErrDecodingDocument     = errors.New("failed to decode document")
)
