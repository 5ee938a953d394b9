package models

import "time"

// Post is a single travel journal entry.
type Post struct {
	// PostID is the server-assigned identifier of the post.
	PostID int64 `json:"id"`

	// UserID is the owner of the post. It is always taken from the
	// authenticated token, never from the request body.
	UserID int64 `json:"user_id"`

	// Title is the headline of the journal entry.
	Title string `json:"title" validate:"required,max=200"`

	// Author is the name shown next to the entry.
	Author string `json:"author" validate:"required,max=100"`

	// Content is the body of the journal entry.
	Content string `json:"content" validate:"required,max=20000"`

	// Cover is an optional URL of the cover image.
	Cover string `json:"cover" validate:"omitempty,url,max=2048"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostFilter narrows down the list of posts returned by ListPosts.
type PostFilter struct {
	// Author, when non-empty, selects only posts with exactly that author.
	Author string `validate:"max=100"`

	// Limit is the maximum number of posts returned.
	Limit uint64 `validate:"min=1,max=100"`

	// Offset is the number of posts skipped from the newest one.
	Offset uint64
}
