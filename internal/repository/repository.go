package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует в БД.
var ErrNotFound = errors.New("запись не найдена")

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, groupID int64) (*models.Group, error)
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	GetAll(ctx context.Context) ([]models.Group, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int64) error
	UpdateImage(ctx context.Context, postID int64, image string) error
	ListAll(ctx context.Context, limit, offset int) ([]models.Post, error)
	CountAll(ctx context.Context) (int, error)
	ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]models.Post, error)
	CountByGroup(ctx context.Context, groupID int64) (int, error)
	ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]models.Post, error)
	CountByAuthor(ctx context.Context, authorID string) (int, error)
	ListByFollower(ctx context.Context, followerID string, limit, offset int) ([]models.Post, error)
	CountByFollower(ctx context.Context, followerID string) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
}

type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Delete(ctx context.Context, followerID, authorID string) error
	Exists(ctx context.Context, followerID, authorID string) (bool, error)
}

type StatsRepository interface {
	CountRows(ctx context.Context) (*Stats, error)
}

type Repository struct {
	User    UserRepository
	Group   GroupRepository
	Post    PostRepository
	Comment CommentRepository
	Follow  FollowRepository
	Stats   StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Group:   NewGroupRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Follow:  NewFollowRepository(db),
		Stats:   NewStatsRepository(db),
	}
}
