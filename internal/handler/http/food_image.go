package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/service"
	"github.com/MKhiriev/f4f-study-portal/internal/utils"
	"github.com/MKhiriev/f4f-study-portal/models"
)

const (
	imageFileField = "image_file"
	imageMetaField = "food_image_json"
)

func (h *Handler) listFoodImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.services.FoodImageService.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listFoodImages", err)
		return
	}
	if images == nil {
		images = []models.FoodImage{}
	}

	utils.WriteJSON(w, images, http.StatusOK)
}

func (h *Handler) getFoodImage(w http.ResponseWriter, r *http.Request) {
	image, err := h.services.FoodImageService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getFoodImage", err)
		return
	}

	utils.WriteJSON(w, image, http.StatusOK)
}

// uploadFoodImage stores a new image or replaces the file of an existing one.
// The request is multipart with the file in "image_file" and the metadata
// as JSON in "food_image_json".
func (h *Handler) uploadFoodImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		writeError(w, r, "*Handler.uploadFoodImage", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	var meta models.FoodImage
	if raw := r.FormValue(imageMetaField); raw != "" {
		if err := json.Unmarshal([]byte(raw), &meta); err != nil {
			writeError(w, r, "*Handler.uploadFoodImage", fmt.Errorf("%w: %w: %w", service.ErrInvalidDataProvided, ErrInvalidJSON, err))
			return
		}
	}
	if meta.ID == "" {
		meta.ID = models.NewElementID
	}

	file, header, err := r.FormFile(imageFileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			err = ErrMissingImageFile
		}
		writeError(w, r, "*Handler.uploadFoodImage", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}
	defer file.Close()

	saved, err := h.services.FoodImageService.Upload(r.Context(), meta, header.Filename, file, header.Size)
	if err != nil {
		writeError(w, r, "*Handler.uploadFoodImage", err)
		return
	}

	log.Info().Str("func", "*Handler.uploadFoodImage").Str("id", saved.ID).Msg("food image uploaded")
	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) updateFoodImage(w http.ResponseWriter, r *http.Request) {
	var meta models.FoodImage
	if err := decodeJSON(r, &meta); err != nil {
		writeError(w, r, "*Handler.updateFoodImage", err)
		return
	}

	saved, err := h.services.FoodImageService.UpdateMetadata(r.Context(), meta)
	if err != nil {
		writeError(w, r, "*Handler.updateFoodImage", err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) downloadFoodImage(w http.ResponseWriter, r *http.Request) {
	file, contentType, err := h.services.FoodImageService.Open(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, "*Handler.downloadFoodImage", err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", contentType)
	// Stored files are never overwritten, a replaced image gets a new name.
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, file); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.downloadFoodImage").Msg("error streaming image")
	}
}

func (h *Handler) deleteFoodImage(w http.ResponseWriter, r *http.Request) {
	if err := h.services.FoodImageService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteFoodImage", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
