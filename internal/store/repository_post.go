package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts post and returns it with the assigned PostID.
// A post whose owner does not exist yields [ErrNoUserWasFound].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(r.db.builder, post)
	if err != nil {
		return models.Post{}, err
	}

	created, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Post{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// ListPosts returns one page of posts, newest first. An empty page is an
// empty non-nil slice.
func (r *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsQuery(r.db.builder, filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error selecting posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, filter.Limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error scanning post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error iterating posts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// GetPost returns the post with postID or [ErrPostNotFound].
func (r *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostQuery(r.db.builder, postID)
	if err != nil {
		return models.Post{}, err
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error selecting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// UpdatePost replaces the editable fields of the post identified by
// post.PostID and returns the stored row.
func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(r.db.builder, post)
	if err != nil {
		return models.Post{}, err
	}

	updated, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error updating post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeletePost removes the post with postID. [ErrPostNotFound] is returned
// when no row was deleted.
func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(r.db.builder, postID)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.PostID,
		&post.UserID,
		&post.Title,
		&post.Author,
		&post.Content,
		&post.Cover,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	return post, err
}
