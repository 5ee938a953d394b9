// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/travel-journal-api/models"
)

var (
	userColumns = []string{"user_id", "name", "email", "password_hash", "created_at"}
	postColumns = []string{"post_id", "user_id", "title", "author", "content", "cover", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(models.User{}.TableName()).
		Columns("name", "email", "password_hash", "created_at").
		Values(user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	query, args, err := b.Insert(models.Post{}.TableName()).
		Columns("user_id", "title", "author", "content", "cover", "created_at", "updated_at").
		Values(post.UserID, post.Title, post.Author, post.Content, post.Cover, post.CreatedAt, post.UpdatedAt).
		Suffix(returning(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectPostsQuery lists posts newest first. Posts created at the same
// instant are ordered by descending id so paging is stable.
func buildSelectPostsQuery(b sq.StatementBuilderType, filter models.PostFilter) (string, []any, error) {
	builder := b.Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("created_at DESC", "post_id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	if filter.Author != "" {
		builder = builder.Where(sq.Eq{"author": filter.Author})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectPostQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	query, args, err := b.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	query, args, err := b.Update(models.Post{}.TableName()).
		Set("title", post.Title).
		Set("author", post.Author).
		Set("content", post.Content).
		Set("cover", post.Cover).
		Set("updated_at", post.UpdatedAt).
		Where(sq.Eq{"post_id": post.PostID}).
		Suffix(returning(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeletePostQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	query, args, err := b.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
