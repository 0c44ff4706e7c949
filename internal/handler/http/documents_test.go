package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/service"
	"github.com/MKhiriev/f4f-study-portal/models"
)

const storedFormID = "0190c8a4-8a43-7f4e-9c53-3f3a1c1d0001"

func formRouter(t *testing.T, forms *fakeDocumentService[models.InputForm]) http.Handler {
	t.Helper()
	return newTestRouter(t, &service.Services{FormService: forms})
}

func TestListDocuments(t *testing.T) {
	forms := &fakeDocumentService[models.InputForm]{
		listFn: func(_ context.Context) ([]models.InputForm, error) {
			return []models.InputForm{{ID: storedFormID, Identifier: "baseline", Fields: []string{}}}, nil
		},
	}

	rec := serveAdmin(t, formRouter(t, forms), httptest.NewRequest(http.MethodGet, "/forms", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.InputForm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "baseline", got[0].Identifier)
}

func TestListDocuments_EmptyIsArray(t *testing.T) {
	forms := &fakeDocumentService[models.InputForm]{
		listFn: func(_ context.Context) ([]models.InputForm, error) { return nil, nil },
	}

	rec := serveAdmin(t, formRouter(t, forms), httptest.NewRequest(http.MethodGet, "/forms", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetDocument(t *testing.T) {
	forms := &fakeDocumentService[models.InputForm]{
		getFn: func(_ context.Context, id string) (models.InputForm, error) {
			if id != storedFormID {
				return models.InputForm{}, service.ErrNotFound
			}
			return models.InputForm{ID: id, Identifier: "baseline"}, nil
		},
	}
	router := formRouter(t, forms)

	rec := serveAdmin(t, router, httptest.NewRequest(http.MethodGet, "/forms/form/"+storedFormID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serveAdmin(t, router, httptest.NewRequest(http.MethodGet, "/forms/form/0190c8a4-8a43-7f4e-9c53-3f3a1c1d9999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSaveDocument_ReturnsEntityAndWarnings(t *testing.T) {
	warning := schema.Issue{Path: "fields[0]", Code: schema.CodeMissingReference, Message: "unknown field"}
	forms := &fakeDocumentService[models.InputForm]{
		saveFn: func(_ context.Context, f models.InputForm) (models.InputForm, schema.Result, error) {
			assert.Equal(t, models.NewElementID, f.ID)
			f.ID = storedFormID
			return f, schema.Result{Warnings: []schema.Issue{warning}}, nil
		},
	}

	body := `{"id":"` + models.NewElementID + `","identifier":"baseline","fields":[]}`
	rec := serveAdmin(t, formRouter(t, forms), httptest.NewRequest(http.MethodPut, "/forms/form", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp saveResponse[models.InputForm]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, storedFormID, resp.Entity.ID)
	assert.Equal(t, []schema.Issue{warning}, resp.Result.Warnings)
}

func TestSaveDocument_Errors(t *testing.T) {
	blocking := schema.Result{Errors: []schema.Issue{{Path: "identifier", Code: schema.CodeLabelRequired, Message: "required"}}}
	conflict := schema.Result{Errors: []schema.Issue{{Path: "identifier", Code: schema.CodeIdentifierInUse, Message: "in use"}}}

	tests := []struct {
		name       string
		body       string
		saveErr    error
		wantStatus int
		wantResult bool
	}{
		{name: "bad JSON", body: `{"id":`, wantStatus: http.StatusBadRequest},
		{name: "invalid request", body: `{}`, saveErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "blocking validation", body: `{}`, saveErr: service.NewValidationError(blocking), wantStatus: http.StatusUnprocessableEntity, wantResult: true},
		{name: "identifier in use", body: `{}`, saveErr: service.NewValidationError(conflict), wantStatus: http.StatusConflict, wantResult: true},
		{name: "unknown id", body: `{}`, saveErr: service.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "storage failure", body: `{}`, saveErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forms := &fakeDocumentService[models.InputForm]{
				saveFn: func(_ context.Context, f models.InputForm) (models.InputForm, schema.Result, error) {
					return models.InputForm{}, schema.Result{}, tt.saveErr
				},
			}

			rec := serveAdmin(t, formRouter(t, forms), httptest.NewRequest(http.MethodPut, "/forms/form", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			if tt.wantResult {
				require.NotNil(t, resp.Result)
				assert.Len(t, resp.Result.Errors, 1)
			} else {
				assert.Nil(t, resp.Result)
			}
		})
	}
}

func TestValidateDocument_DryRunReturnsResult(t *testing.T) {
	res := schema.Result{Errors: []schema.Issue{{Path: "identifier", Code: schema.CodeIdentifierReserved, Message: "reserved"}}}
	fields := &fakeDocumentService[models.InputField]{
		validateFn: func(_ context.Context, f models.InputField) (schema.Result, error) {
			assert.Equal(t, "id", f.Identifier)
			return res, nil
		},
	}
	router := newTestRouter(t, &service.Services{FieldService: fields})

	body := `{"id":"` + models.NewElementID + `","identifier":"id","datatype":"StringType"}`
	rec := serveAdmin(t, router, httptest.NewRequest(http.MethodPost, "/forms/validate/field", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var got schema.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, res, got)
}

func TestDeleteDocument(t *testing.T) {
	tests := []struct {
		name           string
		deleteErr      error
		wantStatus     int
		wantReferences []string
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", deleteErr: service.ErrNotFound, wantStatus: http.StatusNotFound},
		{
			name:           "still referenced",
			deleteErr:      &service.ReferencedError{ID: storedFormID, References: []string{"study:1", "field:2"}},
			wantStatus:     http.StatusConflict,
			wantReferences: []string{"study:1", "field:2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deleted string
			forms := &fakeDocumentService[models.InputForm]{
				deleteFn: func(_ context.Context, id string) error {
					deleted = id
					return tt.deleteErr
				},
			}

			rec := serveAdmin(t, formRouter(t, forms), httptest.NewRequest(http.MethodDelete, "/forms/form/"+storedFormID, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, storedFormID, deleted)
			if tt.wantReferences != nil {
				var resp errorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantReferences, resp.References)
			}
		})
	}
}

func TestStudyRoutesUseStudyService(t *testing.T) {
	studies := &fakeDocumentService[models.Study]{
		listFn: func(_ context.Context) ([]models.Study, error) {
			return []models.Study{{ID: storedFormID}}, nil
		},
	}
	router := newTestRouter(t, &service.Services{StudyService: studies})

	rec := serveAdmin(t, router, httptest.NewRequest(http.MethodGet, "/schema/studies", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), storedFormID)
}
