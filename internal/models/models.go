package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

type Group struct {
	GroupID     int64  `json:"groupId" db:"group_id"`
	Slug        string `json:"slug" db:"slug"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
}

type Post struct {
	PostID    int64     `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	GroupID   *int64    `json:"groupId" db:"group_id"`
	Text      string    `json:"text" db:"text"`
	Image     *string   `json:"image" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	// Данные автора и группы (для JOIN запросов)
	AuthorUsername string  `json:"authorUsername" db:"author_username"`
	GroupSlug      *string `json:"groupSlug" db:"group_slug"`
}

type Comment struct {
	CommentID int64     `json:"commentId" db:"comment_id"`
	PostID    int64     `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	// Имя автора (для JOIN запросов)
	AuthorUsername string `json:"authorUsername" db:"author_username"`
}

type Follow struct {
	FollowID   int64     `json:"followId" db:"follow_id"`
	FollowerID string    `json:"followerId" db:"follower_id"`
	AuthorID   string    `json:"authorId" db:"author_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
