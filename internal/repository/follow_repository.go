package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create вставляет подписку, если такой пары ещё нет. Повторная вставка —
// no-op за счёт ON CONFLICT, уникальность пары гарантирует БД.
func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	query := `
		INSERT INTO follows (follower_id, author_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (follower_id, author_id) DO NOTHING
	`

	follow.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query, follow.FollowerID, follow.AuthorID, follow.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

// Delete удаляет подписку. Отсутствие подписки не считается ошибкой.
func (r *followRepository) Delete(ctx context.Context, followerID, authorID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND author_id = $2`

	_, err := r.db.ExecContext(ctx, query, followerID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, authorID string) (bool, error) {
	query := `SELECT COUNT(*) FROM follows WHERE follower_id = $1 AND author_id = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, followerID, authorID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}

	return count > 0, nil
}
