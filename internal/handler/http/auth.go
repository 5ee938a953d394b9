package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/internal/utils"
	"github.com/MKhiriev/travel-journal-api/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		return err
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, user)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Int64("id", registeredUser.UserID).Msg("user signed up")

	return h.respondWithToken(ctx, w, registeredUser, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		return err
	}

	foundUser, err := h.services.AuthService.SignIn(ctx, credentials)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully signed in")

	return h.respondWithToken(ctx, w, foundUser, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

// respondWithToken issues a token for user and sends it both in the
// Authorization header and in the body.
func (h *Handler) respondWithToken(ctx context.Context, w http.ResponseWriter, user models.User, status int) error {
	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return err
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	_, err = utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user}, status)
	return err
}
