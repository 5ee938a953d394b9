package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// All rejections go through the error responder and end in 401
// Unauthorized:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not "Bearer <token>" ([ErrInvalidAuthorizationHeader]).
//   - The token is expired, forged or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.respondError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.respondError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		log.Debug().Int64("user_id", token.UserID).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// userIDFromRequest returns the id stored by the auth middleware.
func userIDFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || userID <= 0 {
		return 0, ErrMissingUserID
	}
	return userID, nil
}
