package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

// selectPosts — общая часть запросов выборки постов с данными автора и группы.
const selectPosts = `
		SELECT p.post_id, p.author_id, p.group_id, p.text, p.image, p.created_at,
		       u.username AS author_username, g.slug AS group_slug
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		LEFT JOIN groups g ON g.group_id = p.group_id`

// Порядок выдачи во всех лентах: новые выше, при равном времени — больший ID выше.
const orderPosts = ` ORDER BY p.created_at DESC, p.post_id DESC`

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (author_id, group_id, text, image, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING post_id
	`

	post.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		post.AuthorID,
		post.GroupID,
		post.Text,
		post.Image,
		post.CreatedAt,
	).Scan(&post.PostID)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := selectPosts + ` WHERE p.post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// Update изменяет только текст, группу и картинку. Автор и дата создания
// не перезаписываются.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			text = :text,
			group_id = :group_id,
			image = :image
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", post.PostID, ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	// комментарии удаляются каскадно по внешнему ключу
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) UpdateImage(ctx context.Context, postID int64, image string) error {
	query := `UPDATE posts SET image = $1 WHERE post_id = $2`

	result, err := r.db.ExecContext(ctx, query, image, postID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении картинки поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) ListAll(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := selectPosts + orderPosts + ` LIMIT $1 OFFSET $2`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return count, nil
}

func (r *PostRepositoryImpl) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]models.Post, error) {
	query := selectPosts + ` WHERE p.group_id = $1` + orderPosts + ` LIMIT $2 OFFSET $3`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, groupID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов группы: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE group_id = $1`, groupID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов группы: %w", err)
	}

	return count, nil
}

func (r *PostRepositoryImpl) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]models.Post, error) {
	query := selectPosts + ` WHERE p.author_id = $1` + orderPosts + ` LIMIT $2 OFFSET $3`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов автора: %w", err)
	}

	return count, nil
}

// ListByFollower возвращает посты авторов, на которых подписан follower.
// Выборка через явный JOIN по таблице подписок.
func (r *PostRepositoryImpl) ListByFollower(ctx context.Context, followerID string, limit, offset int) ([]models.Post, error) {
	query := selectPosts + `
		JOIN follows f ON f.author_id = p.author_id
		WHERE f.follower_id = $1` + orderPosts + ` LIMIT $2 OFFSET $3`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, followerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты подписок: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByFollower(ctx context.Context, followerID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM posts p
		JOIN follows f ON f.author_id = p.author_id
		WHERE f.follower_id = $1
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, followerID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте ленты подписок: %w", err)
	}

	return count, nil
}
