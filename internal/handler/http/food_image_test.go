package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/service"
	"github.com/MKhiriev/f4f-study-portal/models"
)

const storedImageID = "0190c8a4-8a43-7f4e-9c53-3f3a1c1d0100"

// multipartUpload builds an upload request. An empty meta omits the JSON
// part and a nil file omits the file part.
func multipartUpload(t *testing.T, meta string, filename string, file []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if meta != "" {
		require.NoError(t, mw.WriteField(imageMetaField, meta))
	}
	if file != nil {
		part, err := mw.CreateFormFile(imageFileField, filename)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/schema/foodimage", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadFoodImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake")
	filename := "0190c8a4-8a43-7f4e-9c53-3f3a1c1d0200.png"

	images := &mockFoodImageService{
		uploadFn: func(_ context.Context, meta models.FoodImage, originalName string, file io.Reader, size int64) (models.FoodImage, error) {
			assert.Equal(t, models.NewElementID, meta.ID)
			require.NotNil(t, meta.LicenseName)
			assert.Equal(t, "CC0", *meta.LicenseName)
			assert.Equal(t, "Apple.PNG", originalName)
			assert.Equal(t, int64(len(png)), size)

			got, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, png, got)

			meta.ID = storedImageID
			meta.Filename = &filename
			return meta, nil
		},
	}
	router := newTestRouter(t, &service.Services{FoodImageService: images})

	rec := serveAdmin(t, router, multipartUpload(t, `{"licenseName":"CC0"}`, "Apple.PNG", png))

	require.Equal(t, http.StatusOK, rec.Code)

	var saved models.FoodImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, storedImageID, saved.ID)
	require.NotNil(t, saved.Filename)
	assert.Equal(t, filename, *saved.Filename)
}

func TestUploadFoodImage_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{
			name: "missing file",
			req: func(t *testing.T) *http.Request {
				return multipartUpload(t, `{"licenseName":"CC0"}`, "", nil)
			},
		},
		{
			name: "broken metadata",
			req: func(t *testing.T) *http.Request {
				return multipartUpload(t, `{"licenseName":`, "a.png", []byte("x"))
			},
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/schema/foodimage", strings.NewReader(`{}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := &mockFoodImageService{
				uploadFn: func(context.Context, models.FoodImage, string, io.Reader, int64) (models.FoodImage, error) {
					t.Fatal("upload must not be called")
					return models.FoodImage{}, nil
				},
			}
			router := newTestRouter(t, &service.Services{FoodImageService: images})

			rec := serveAdmin(t, router, tt.req(t))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUploadFoodImage_InvalidImage(t *testing.T) {
	images := &mockFoodImageService{
		uploadFn: func(context.Context, models.FoodImage, string, io.Reader, int64) (models.FoodImage, error) {
			return models.FoodImage{}, service.ErrInvalidImage
		},
	}
	router := newTestRouter(t, &service.Services{FoodImageService: images})

	rec := serveAdmin(t, router, multipartUpload(t, "", "apple.gif", []byte("GIF89a")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadFoodImage(t *testing.T) {
	images := &mockFoodImageService{
		openFn: func(_ context.Context, filename string) (io.ReadCloser, string, error) {
			if filename != "apple.png" {
				return nil, "", service.ErrNotFound
			}
			return io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil
		},
	}
	router := newTestRouter(t, &service.Services{FoodImageService: images})

	req := httptest.NewRequest(http.MethodGet, "/schema/foodimage/by_filename/apple.png", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serveAdmin(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "png-bytes", rec.Body.String())

	rec = serveAdmin(t, router, httptest.NewRequest(http.MethodGet, "/schema/foodimage/by_filename/pear.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateFoodImage(t *testing.T) {
	images := &mockFoodImageService{
		updateFn: func(_ context.Context, meta models.FoodImage) (models.FoodImage, error) {
			assert.Equal(t, storedImageID, meta.ID)
			return meta, nil
		},
	}
	router := newTestRouter(t, &service.Services{FoodImageService: images})

	body := `{"id":"` + storedImageID + `","sourceInfo":"own photo"}`
	rec := serveAdmin(t, router, httptest.NewRequest(http.MethodPut, "/schema/foodimage", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "own photo")
}

func TestDeleteFoodImage_StillUsed(t *testing.T) {
	images := &mockFoodImageService{
		deleteFn: func(_ context.Context, id string) error {
			return &service.ReferencedError{ID: id, References: []string{"foodenumitem:apple"}}
		},
	}
	router := newTestRouter(t, &service.Services{FoodImageService: images})

	rec := serveAdmin(t, router, httptest.NewRequest(http.MethodDelete, "/schema/foodimage/"+storedImageID, nil))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "foodenumitem:apple")
}

func TestListFoodImages_EmptyIsArray(t *testing.T) {
	images := &mockFoodImageService{
		listFn: func(context.Context) ([]models.FoodImage, error) { return nil, nil },
	}
	router := newTestRouter(t, &service.Services{FoodImageService: images})

	rec := serveAdmin(t, router, httptest.NewRequest(http.MethodGet, "/schema/foodimages", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUploadFoodImage_TooLarge(t *testing.T) {
	images := &mockFoodImageService{
		uploadFn: func(context.Context, models.FoodImage, string, io.Reader, int64) (models.FoodImage, error) {
			t.Fatal("upload must not be called")
			return models.FoodImage{}, nil
		},
	}
	h := NewHandler(&service.Services{AuthService: tokenAuth(), FoodImageService: images}, logger.Nop()).
		WithMaxUploadSize(64)

	rec := serveAdmin(t, h.Init(), multipartUpload(t, "", "big.png", bytes.Repeat([]byte("x"), 1024)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
