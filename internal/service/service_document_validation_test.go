package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/validators"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// recordingFormService remembers what reached the wrapped service.
type recordingFormService struct {
	saved   []models.InputForm
	deleted []string
}

func (r *recordingFormService) List(context.Context) ([]models.InputForm, error) { return nil, nil }

func (r *recordingFormService) Get(_ context.Context, id string) (models.InputForm, error) {
	return models.InputForm{ID: id}, nil
}

func (r *recordingFormService) Save(_ context.Context, f models.InputForm) (models.InputForm, schema.Result, error) {
	r.saved = append(r.saved, f)
	return f, schema.Result{}, nil
}

func (r *recordingFormService) Validate(_ context.Context, f models.InputForm) (schema.Result, error) {
	r.saved = append(r.saved, f)
	return schema.Result{}, nil
}

func (r *recordingFormService) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func newWrappedFormService() (FormService, *recordingFormService) {
	inner := &recordingFormService{}
	svc := NewDocumentValidationService[models.InputForm](validators.NewRequestValidator(), NewSanitizer().Form).Wrap(inner)
	return svc, inner
}

func TestDocumentValidationService_Save_SanitizesTexts(t *testing.T) {
	svc, inner := newWrappedFormService()

	_, _, err := svc.Save(context.Background(), models.InputForm{
		Identifier:  "daily",
		Title:       lstr("<b>Daily</b> questions"),
		Description: lstr(`<p>Answer <a href="https://example.org" onclick="steal()">all</a></p><script>alert(1)</script>`),
	})

	require.NoError(t, err)
	require.Len(t, inner.saved, 1)
	assert.Equal(t, "Daily questions", inner.saved[0].Title.Text("en"))

	desc := inner.saved[0].Description.Text("en")
	assert.Contains(t, desc, "<p>Answer")
	assert.NotContains(t, desc, "onclick")
	assert.NotContains(t, desc, "script")
}

func TestDocumentValidationService_Save_RejectsMalformedID(t *testing.T) {
	svc, inner := newWrappedFormService()

	_, _, err := svc.Save(context.Background(), models.InputForm{ID: "form-1", Identifier: "daily"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidEntityID)
	assert.Empty(t, inner.saved)
}

func TestDocumentValidationService_Validate_Sanitizes(t *testing.T) {
	svc, inner := newWrappedFormService()

	_, err := svc.Validate(context.Background(), models.InputForm{Identifier: "daily", Title: lstr("<i>x</i>")})

	require.NoError(t, err)
	assert.Equal(t, "x", inner.saved[0].Title.Text("en"))
}

func TestDocumentValidationService_DeleteAndGet_CheckID(t *testing.T) {
	svc, inner := newWrappedFormService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, "../etc"), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.Delete(ctx, models.NewElementID+"x"), ErrInvalidDataProvided)
	require.NoError(t, svc.Delete(ctx, formID))
	assert.Equal(t, []string{formID}, inner.deleted)

	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	got, err := svc.Get(ctx, formID)
	require.NoError(t, err)
	assert.Equal(t, formID, got.ID)
}
