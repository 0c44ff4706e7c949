package service

import (
	"context"
	"io"

	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// DocumentService manages one kind of schema entity.
//
// Save assigns a permanent id to entities carrying [models.NewElementID],
// validates the entity against the stored schema and persists it. The
// returned result holds the warnings of a successful save. A blocking result
// is reported as a [*ValidationError].
//
// Validate runs the same checks without storing anything.
//
// Delete refuses entities that other entities still reference with a
// [*ReferencedError].
type DocumentService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Save(ctx context.Context, entity T) (T, schema.Result, error)
	Validate(ctx context.Context, entity T) (schema.Result, error)
	Delete(ctx context.Context, id string) error
}

type (
	FormService     = DocumentService[models.InputForm]
	FieldService    = DocumentService[models.InputField]
	EnumService     = DocumentService[models.InputEnum]
	FoodEnumService = DocumentService[models.FoodEnum]
	FoodItemService = DocumentService[models.FoodEnumItem]
	StudyService    = DocumentService[models.Study]
)

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// request validation or text sanitization.
type DocumentServiceWrapper[T any] interface {
	Wrap(DocumentService[T]) DocumentService[T]
}

// IdentifierService answers the check_identifier requests of the editors.
type IdentifierService interface {
	CheckIdentifier(ctx context.Context, ns models.IdentifierNamespace, identifier, original string) (models.IdentifierCheckResult, error)
}

// SchemaToolsService bundles the stateless helpers the editors call while
// a schema entity is being edited.
type SchemaToolsService interface {
	PreviewDefault(ctx context.Context, req models.DefaultValueRequest) (models.DefaultValueResponse, error)
	EvaluateTransition(ctx context.Context, req models.TransitionRequest) (models.TransitionResponse, error)
	// FoodGraph analyzes the food screen graph. An empty initial falls back
	// to the initial food screen of the first study.
	FoodGraph(ctx context.Context, initial string) (schema.FoodGraphReport, error)
}

// FoodImageService manages food image metadata together with the files.
type FoodImageService interface {
	// Upload stores file under a fresh name. When meta refers to a stored
	// image, the image is replaced and its old file removed.
	Upload(ctx context.Context, meta models.FoodImage, originalName string, file io.Reader, size int64) (models.FoodImage, error)
	UpdateMetadata(ctx context.Context, meta models.FoodImage) (models.FoodImage, error)
	Get(ctx context.Context, id string) (models.FoodImage, error)
	List(ctx context.Context) ([]models.FoodImage, error)
	// Open returns the file stored under filename and its content type.
	Open(ctx context.Context, filename string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, id string) error
}

// ExportService produces schema snapshots for download.
type ExportService interface {
	Export(ctx context.Context) (models.SchemaBundle, error)
	// Encode renders a bundle as "yaml" or "json" and returns the content type.
	Encode(bundle models.SchemaBundle, format string) ([]byte, string, error)
}

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// EnsureAdmin creates the configured administrator unless the account exists.
	EnsureAdmin(ctx context.Context) error
}

// HealthService reports whether the storage behind the services is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SnapshotLoader reads the complete stored schema.
type SnapshotLoader interface {
	Load(ctx context.Context) (models.SchemaBundle, error)
}

// SnapshotLoaderFunc adapts a function to [SnapshotLoader].
type SnapshotLoaderFunc func(ctx context.Context) (models.SchemaBundle, error)

func (f SnapshotLoaderFunc) Load(ctx context.Context) (models.SchemaBundle, error) {
	return f(ctx)
}
