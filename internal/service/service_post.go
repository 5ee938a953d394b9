// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/internal/store"
	"github.com/MKhiriev/travel-journal-api/internal/validators"
	"github.com/MKhiriev/travel-journal-api/models"
)

type postService struct {
	postRepository store.PostRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewPostService(postRepository store.PostRepository, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		validator:      validator,
		logger:         logger,
	}
}

// ListPosts returns one page of posts, newest first. A zero Limit selects
// DefaultPostsLimit.
func (s *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultPostsLimit
	}
	filter.Author = strings.TrimSpace(filter.Author)

	if err := s.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	posts, err := s.postRepository.ListPosts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

func (s *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	if postID <= 0 {
		return models.Post{}, ErrInvalidDataProvided
	}

	post, err := s.postRepository.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("getting post failed: %w", err)
	}

	return post, nil
}

// CreatePost stores a new post owned by post.UserID.
func (s *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.UserID <= 0 {
		return models.Post{}, ErrInvalidDataProvided
	}

	post = trimPost(post)
	if err := s.validator.Validate(ctx, post); err != nil {
		log.Debug().Err(err).Msg("invalid post provided")
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	post.PostID = 0
	post.CreatedAt = now()
	post.UpdatedAt = post.CreatedAt

	created, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Int64("user_id", post.UserID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

// UpdatePost replaces title, author, content and cover of an existing post.
// Only the owner may update it; others get ErrNotPostOwner.
func (s *postService) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.PostID <= 0 || post.UserID <= 0 {
		return models.Post{}, ErrInvalidDataProvided
	}

	post = trimPost(post)
	if err := s.validator.Validate(ctx, post); err != nil {
		log.Debug().Err(err).Msg("invalid post provided")
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.checkOwner(ctx, post.PostID, post.UserID); err != nil {
		return models.Post{}, err
	}

	post.UpdatedAt = now()
	updated, err := s.postRepository.UpdatePost(ctx, post)
	if err != nil {
		log.Err(err).Int64("post_id", post.PostID).Msg("post update failed")
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	return updated, nil
}

// DeletePost removes a post owned by userID.
func (s *postService) DeletePost(ctx context.Context, postID, userID int64) error {
	if postID <= 0 || userID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := s.checkOwner(ctx, postID, userID); err != nil {
		return err
	}

	if err := s.postRepository.DeletePost(ctx, postID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", postID).Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	return nil
}

func (s *postService) checkOwner(ctx context.Context, postID, userID int64) error {
	existing, err := s.postRepository.GetPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("getting post failed: %w", err)
	}

	if existing.UserID != userID {
		logger.FromContext(ctx).Warn().
			Int64("post_id", postID).
			Int64("owner_id", existing.UserID).
			Int64("user_id", userID).
			Msg("post modification by non-owner")
		return ErrNotPostOwner
	}

	return nil
}

func trimPost(post models.Post) models.Post {
	post.Title = strings.TrimSpace(post.Title)
	post.Author = strings.TrimSpace(post.Author)
	post.Content = strings.TrimSpace(post.Content)
	post.Cover = strings.TrimSpace(post.Cover)
	return post
}
