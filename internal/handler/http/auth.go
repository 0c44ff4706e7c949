package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/utils"
	"github.com/MKhiriev/f4f-study-portal/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	log.Info().Str("func", "*Handler.login").Int64("id", user.UserID).Str("role", string(user.Role)).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   "Bearer",
		Role:        user.Role,
	}, http.StatusOK)
}
