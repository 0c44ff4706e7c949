package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/f4f-study-portal/internal/service"
	"github.com/MKhiriev/f4f-study-portal/internal/utils"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// checkIdentifier answers whether {identifier} is free in ns. The optional
// "original" query parameter names the identifier the edited entity already
// has, which is never reported as in use.
func (h *Handler) checkIdentifier(ns models.IdentifierNamespace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identifier := chi.URLParam(r, "identifier")
		original := r.URL.Query().Get("original")

		res, err := h.services.IdentifierService.CheckIdentifier(r.Context(), ns, identifier, original)
		if err != nil {
			writeError(w, r, "*Handler.checkIdentifier", err)
			return
		}

		utils.WriteJSON(w, models.IdentifierCheckResponse{Result: res, Message: res.Message()}, http.StatusOK)
	}
}

func (h *Handler) previewDefault(w http.ResponseWriter, r *http.Request) {
	var req models.DefaultValueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.previewDefault", err)
		return
	}

	resp, err := h.services.SchemaToolsService.PreviewDefault(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.previewDefault", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) evaluateTransition(w http.ResponseWriter, r *http.Request) {
	var req models.TransitionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.evaluateTransition", err)
		return
	}

	resp, err := h.services.SchemaToolsService.EvaluateTransition(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.evaluateTransition", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) foodGraph(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.SchemaToolsService.FoodGraph(r.Context(), r.URL.Query().Get("initial"))
	if err != nil {
		writeError(w, r, "*Handler.foodGraph", err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = service.ExportFormatYAML
	}

	bundle, err := h.services.ExportService.Export(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.export", err)
		return
	}

	data, contentType, err := h.services.ExportService.Encode(bundle, format)
	if err != nil {
		writeError(w, r, "*Handler.export", err)
		return
	}

	filename := fmt.Sprintf("f4f-schema-%s.%s", bundle.ExportedAt.Format("20060102-150405"), format)
	utils.WriteAttachment(w, data, contentType, filename)
}
