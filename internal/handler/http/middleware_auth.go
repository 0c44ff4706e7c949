package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/utils"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the user id and role in
// the request context. Requests without a valid token are rejected with
// 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = utils.WithUser(ctx, token.UserID, token.TokenClaims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole lets only users with one of roles through. It must run after
// auth and answers 403 Forbidden otherwise.
func requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || !slices.Contains(roles, role) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.FromRequest(r).Info().Err(ErrRoleNotAllowed).
					Int64("user_id", userID).
					Str("role", string(role)).
					Send()
				http.Error(w, ErrRoleNotAllowed.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
