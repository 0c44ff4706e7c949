package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/service"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// ─────────────────────────────────────────────
// Service fakes. Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockAuthService struct {
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) EnsureAdmin(_ context.Context) error {
	return nil
}

type fakeDocumentService[T any] struct {
	listFn     func(ctx context.Context) ([]T, error)
	getFn      func(ctx context.Context, id string) (T, error)
	saveFn     func(ctx context.Context, entity T) (T, schema.Result, error)
	validateFn func(ctx context.Context, entity T) (schema.Result, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeDocumentService[T]) List(ctx context.Context) ([]T, error) {
	return f.listFn(ctx)
}

func (f *fakeDocumentService[T]) Get(ctx context.Context, id string) (T, error) {
	return f.getFn(ctx, id)
}

func (f *fakeDocumentService[T]) Save(ctx context.Context, entity T) (T, schema.Result, error) {
	return f.saveFn(ctx, entity)
}

func (f *fakeDocumentService[T]) Validate(ctx context.Context, entity T) (schema.Result, error) {
	return f.validateFn(ctx, entity)
}

func (f *fakeDocumentService[T]) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type mockIdentifierService struct {
	checkFn func(ctx context.Context, ns models.IdentifierNamespace, identifier, original string) (models.IdentifierCheckResult, error)
}

func (m *mockIdentifierService) CheckIdentifier(ctx context.Context, ns models.IdentifierNamespace, identifier, original string) (models.IdentifierCheckResult, error) {
	return m.checkFn(ctx, ns, identifier, original)
}

type mockSchemaToolsService struct {
	previewFn  func(ctx context.Context, req models.DefaultValueRequest) (models.DefaultValueResponse, error)
	evaluateFn func(ctx context.Context, req models.TransitionRequest) (models.TransitionResponse, error)
	graphFn    func(ctx context.Context, initial string) (schema.FoodGraphReport, error)
}

func (m *mockSchemaToolsService) PreviewDefault(ctx context.Context, req models.DefaultValueRequest) (models.DefaultValueResponse, error) {
	return m.previewFn(ctx, req)
}

func (m *mockSchemaToolsService) EvaluateTransition(ctx context.Context, req models.TransitionRequest) (models.TransitionResponse, error) {
	return m.evaluateFn(ctx, req)
}

func (m *mockSchemaToolsService) FoodGraph(ctx context.Context, initial string) (schema.FoodGraphReport, error) {
	return m.graphFn(ctx, initial)
}

type mockFoodImageService struct {
	uploadFn func(ctx context.Context, meta models.FoodImage, originalName string, file io.Reader, size int64) (models.FoodImage, error)
	updateFn func(ctx context.Context, meta models.FoodImage) (models.FoodImage, error)
	getFn    func(ctx context.Context, id string) (models.FoodImage, error)
	listFn   func(ctx context.Context) ([]models.FoodImage, error)
	openFn   func(ctx context.Context, filename string) (io.ReadCloser, string, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockFoodImageService) Upload(ctx context.Context, meta models.FoodImage, originalName string, file io.Reader, size int64) (models.FoodImage, error) {
	return m.uploadFn(ctx, meta, originalName, file, size)
}

func (m *mockFoodImageService) UpdateMetadata(ctx context.Context, meta models.FoodImage) (models.FoodImage, error) {
	return m.updateFn(ctx, meta)
}

func (m *mockFoodImageService) Get(ctx context.Context, id string) (models.FoodImage, error) {
	return m.getFn(ctx, id)
}

func (m *mockFoodImageService) List(ctx context.Context) ([]models.FoodImage, error) {
	return m.listFn(ctx)
}

func (m *mockFoodImageService) Open(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	return m.openFn(ctx, filename)
}

func (m *mockFoodImageService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockExportService struct {
	exportFn func(ctx context.Context) (models.SchemaBundle, error)
	encodeFn func(bundle models.SchemaBundle, format string) ([]byte, string, error)
}

func (m *mockExportService) Export(ctx context.Context) (models.SchemaBundle, error) {
	return m.exportFn(ctx)
}

func (m *mockExportService) Encode(bundle models.SchemaBundle, format string) ([]byte, string, error) {
	return m.encodeFn(bundle, format)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const adminToken = "admin-token"

// tokenAuth accepts adminToken as an administrator and "nurse-token" as a
// nurse. Every other token is rejected.
func tokenAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			switch tokenString {
			case adminToken:
				return models.Token{UserID: 1, TokenClaims: models.TokenClaims{Role: models.RoleAdministrator}}, nil
			case "nurse-token":
				return models.Token{UserID: 2, TokenClaims: models.TokenClaims{Role: models.RoleNurse}}, nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

// newTestRouter builds the full router over svcs. Missing auth and app info
// services are filled in.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = tokenAuth()
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "v1.0.0"}
	}
	return NewHandler(svcs, logger.Nop()).Init()
}

// serveAdmin sends req with the administrator token.
func serveAdmin(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(_ context.Context) error {
	return m.err
}
