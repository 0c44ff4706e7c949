package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/internal/service"
	"github.com/MKhiriev/f4f-study-portal/internal/utils"
)

// errorStatuses is checked in order, the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidImage, http.StatusBadRequest},
	{service.ErrUnknownExportFormat, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrIdentifierConflict, http.StatusConflict},
	{service.ErrStillReferenced, http.StatusConflict},
	{service.ErrValidation, http.StatusUnprocessableEntity},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	// Result is set when a save was blocked by validation.
	Result *schema.Result `json:"result,omitempty"`
	// References lists the entities that prevented a delete.
	References []string `json:"references,omitempty"`
}

// writeError logs err and answers with its mapped status. Internal errors
// are not exposed to the client.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	resp := errorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
		resp.Error = http.StatusText(status)
	} else {
		log.Info().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		resp.Result = &validationErr.Result
	}
	var referencedErr *service.ReferencedError
	if errors.As(err, &referencedErr) {
		resp.References = referencedErr.References
	}

	utils.WriteJSON(w, resp, status)
}
