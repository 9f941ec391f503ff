package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Stats — счётчики записей для диагностического эндпоинта.
type Stats struct {
	Users    int `json:"users" db:"users"`
	Groups   int `json:"groups" db:"groups"`
	Posts    int `json:"posts" db:"posts"`
	Comments int `json:"comments" db:"comments"`
	Follows  int `json:"follows" db:"follows"`
}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountRows(ctx context.Context) (*Stats, error) {
	var stats Stats

	err := r.db.GetContext(ctx, &stats, `
			SELECT
				(SELECT COUNT(*) FROM users)    AS users,
				(SELECT COUNT(*) FROM groups)   AS groups,
				(SELECT COUNT(*) FROM posts)    AS posts,
				(SELECT COUNT(*) FROM comments) AS comments,
				(SELECT COUNT(*) FROM follows)  AS follows
		`)

	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте записей базы данных: %w", err)
	}

	return &stats, nil
}
