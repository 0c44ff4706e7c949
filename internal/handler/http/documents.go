package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/service"
	"github.com/MKhiriev/f4f-study-portal/internal/utils"
)

// saveResponse is returned by the upsert routes. Result carries the
// warnings that did not block the save.
type saveResponse[T any] struct {
	Entity T             `json:"entity"`
	Result schema.Result `json:"result"`
}

// The document routes are the same for every schema entity, so they are
// built from the entity's service instead of being Handler methods.

func listDocuments[T any](svc service.DocumentService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entities, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, "listDocuments", err)
			return
		}
		if entities == nil {
			entities = []T{}
		}

		utils.WriteJSON(w, entities, http.StatusOK)
	}
}

func getDocument[T any](svc service.DocumentService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entity, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, "getDocument", err)
			return
		}

		utils.WriteJSON(w, entity, http.StatusOK)
	}
}

func saveDocument[T any](svc service.DocumentService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var entity T
		if err := decodeJSON(r, &entity); err != nil {
			writeError(w, r, "saveDocument", err)
			return
		}

		saved, res, err := svc.Save(r.Context(), entity)
		if err != nil {
			writeError(w, r, "saveDocument", err)
			return
		}

		log.Debug().Str("func", "saveDocument").Int("warnings", len(res.Warnings)).Msg("entity saved")
		utils.WriteJSON(w, saveResponse[T]{Entity: saved, Result: res}, http.StatusOK)
	}
}

// validateDocument is the dry run of saveDocument. Blocking errors are part
// of the 200 response body here.
func validateDocument[T any](svc service.DocumentService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entity T
		if err := decodeJSON(r, &entity); err != nil {
			writeError(w, r, "validateDocument", err)
			return
		}

		res, err := svc.Validate(r.Context(), entity)
		if err != nil {
			writeError(w, r, "validateDocument", err)
			return
		}

		utils.WriteJSON(w, res, http.StatusOK)
	}
}

func deleteDocument[T any](svc service.DocumentService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, "deleteDocument", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// decodeJSON reads the request body into dst. Decoding failures are
// reported as invalid data so that they map to 400.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w: %w", service.ErrInvalidDataProvided, ErrInvalidJSON, err)
	}
	return nil
}
