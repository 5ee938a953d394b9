package store

import (
	"context"

	"github.com/MKhiriev/travel-journal-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists journal author accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PostRepository persists journal posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
