package store

import (
	"context"
	"io"

	"github.com/MKhiriev/f4f-study-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores portal accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// DocumentRepository persists one kind of schema entity. Entities are kept as
// JSON documents keyed by id; the identifier column carries a unique index.
type DocumentRepository[T any] interface {
	// Upsert inserts the entity or replaces the stored one with the same id.
	Upsert(ctx context.Context, entity T) (T, error)
	Get(ctx context.Context, id string) (T, error)
	// List returns every entity ordered by identifier, then id.
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id string) error
	// IdentifierExists reports whether an entity other than exceptID uses identifier.
	IdentifierExists(ctx context.Context, identifier, exceptID string) (bool, error)
}

type (
	FormRepository     = DocumentRepository[models.InputForm]
	FieldRepository    = DocumentRepository[models.InputField]
	EnumRepository     = DocumentRepository[models.InputEnum]
	FoodEnumRepository = DocumentRepository[models.FoodEnum]
	FoodItemRepository = DocumentRepository[models.FoodEnumItem]
	StudyRepository    = DocumentRepository[models.Study]
)

// FoodImageRepository stores food image metadata. The files themselves live
// in an [ImageStorage].
type FoodImageRepository interface {
	DocumentRepository[models.FoodImage]
	FindByFilename(ctx context.Context, filename string) (models.FoodImage, error)
}

// ImageStorage keeps the uploaded food image files.
type ImageStorage interface {
	Put(ctx context.Context, name string, r io.Reader, size int64) error
	Get(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
}

// ClientStateRepository is the durable key/value state of the admin client.
type ClientStateRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}
