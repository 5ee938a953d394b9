package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/internal/utils"
	"github.com/MKhiriev/travel-journal-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) error {
	filter, err := postFilterFromQuery(r)
	if err != nil {
		return err
	}

	posts, err := h.services.PostService.ListPosts(r.Context(), filter)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, posts, http.StatusOK)
	return err
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) error {
	postID, err := postIDFromPath(r)
	if err != nil {
		return err
	}

	post, err := h.services.PostService.GetPost(r.Context(), postID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, post, http.StatusOK)
	return err
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	var post models.Post
	if err = decodeJSON(r, &post); err != nil {
		return err
	}
	post.UserID = userID

	created, err := h.services.PostService.CreatePost(r.Context(), post)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Int64("post_id", created.PostID).Int64("user_id", userID).Msg("post created")

	_, err = utils.WriteJSON(w, created, http.StatusCreated)
	return err
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	postID, err := postIDFromPath(r)
	if err != nil {
		return err
	}

	var post models.Post
	if err = decodeJSON(r, &post); err != nil {
		return err
	}
	post.PostID = postID
	post.UserID = userID

	updated, err := h.services.PostService.UpdatePost(r.Context(), post)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, updated, http.StatusOK)
	return err
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	postID, err := postIDFromPath(r)
	if err != nil {
		return err
	}

	if err = h.services.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		return err
	}

	logger.FromRequest(r).Info().Int64("post_id", postID).Int64("user_id", userID).Msg("post deleted")

	_, err = utils.WriteJSON(w, nil, http.StatusNoContent)
	return err
}

// postIDFromPath parses the {id} URL parameter. Only positive integers are
// valid ids.
func postIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	postID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || postID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPostID, raw)
	}
	return postID, nil
}

// postFilterFromQuery reads author, limit and offset. A missing limit is
// left at zero for the service to default.
func postFilterFromQuery(r *http.Request) (models.PostFilter, error) {
	query := r.URL.Query()
	filter := models.PostFilter{Author: query.Get("author")}

	var err error
	if raw := query.Get("limit"); raw != "" {
		if filter.Limit, err = strconv.ParseUint(raw, 10, 64); err != nil || filter.Limit == 0 {
			return models.PostFilter{}, fmt.Errorf("%w: limit %q", ErrInvalidQuery, raw)
		}
	}
	if raw := query.Get("offset"); raw != "" {
		// drivers bind offsets as signed 64-bit integers
		if filter.Offset, err = strconv.ParseUint(raw, 10, 63); err != nil {
			return models.PostFilter{}, fmt.Errorf("%w: offset %q", ErrInvalidQuery, raw)
		}
	}

	return filter, nil
}
