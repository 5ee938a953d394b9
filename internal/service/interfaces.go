package service

import (
	"context"

	"github.com/MKhiriev/travel-journal-api/models"
)

type AuthService interface {
	SignUp(ctx context.Context, user models.User) (models.User, error)
	SignIn(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type PostService interface {
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// UpdatePost replaces the post identified by post.PostID on behalf of
	// the user post.UserID.
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, postID, userID int64) error
}
