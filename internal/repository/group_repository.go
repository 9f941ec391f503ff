package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
)

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO groups (slug, title, description)
		VALUES ($1, $2, $3)
		RETURNING group_id
	`

	err := r.db.QueryRowContext(ctx, query, group.Slug, group.Title, group.Description).Scan(&group.GroupID)
	if err != nil {
		return fmt.Errorf("ошибка при создании группы: %w", err)
	}

	return nil
}

func (r *groupRepository) GetByID(ctx context.Context, groupID int64) (*models.Group, error) {
	var group models.Group

	query := `SELECT * FROM groups WHERE group_id = $1`

	err := r.db.GetContext(ctx, &group, query, groupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("группа с ID %d: %w", groupID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении группы: %w", err)
	}

	return &group, nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	var group models.Group

	query := `SELECT * FROM groups WHERE slug = $1`

	err := r.db.GetContext(ctx, &group, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("группа %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении группы: %w", err)
	}

	return &group, nil
}

func (r *groupRepository) GetAll(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group

	query := `SELECT * FROM groups ORDER BY title`

	err := r.db.SelectContext(ctx, &groups, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка групп: %w", err)
	}

	return groups, nil
}
