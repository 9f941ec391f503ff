package service

import (
	"context"
	"io"
	"log"
	"strings"

	"yatube/internal/cache"
	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

type CreatePostRequest struct {
	AuthorID string  `json:"authorId"`
	Text     string  `json:"text"`
	GroupID  *int64  `json:"groupId"`
	Image    *string `json:"image"`
}

type EditPostRequest struct {
	RequesterID string  `json:"requesterId"`
	PostID      int64   `json:"postId"`
	Text        string  `json:"text"`
	GroupID     *int64  `json:"groupId"`
	Image       *string `json:"image"`
}

type ContentService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	EditPost(ctx context.Context, req EditPostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, requesterID string, postID int64) error
	GetPost(ctx context.Context, postID int64) (*models.Post, []models.Comment, error)
	AddComment(ctx context.Context, authorID string, postID int64, text string) (*models.Comment, error)
	AttachImage(ctx context.Context, requesterID string, postID int64, fileName string, file io.Reader, size int64) (*models.Post, error)
}

type contentService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	groupRepo   repository.GroupRepository
	storage     storage.Storage
	feedCache   cache.Cache
}

func NewContentService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	groupRepo repository.GroupRepository,
	storage storage.Storage,
	feedCache cache.Cache,
) ContentService {
	return &contentService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		groupRepo:   groupRepo,
		storage:     storage,
		feedCache:   feedCache,
	}
}

func (s *contentService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrTextRequired
	}

	// группа необязательна, но указанная должна существовать
	if req.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *req.GroupID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		AuthorID: req.AuthorID,
		GroupID:  req.GroupID,
		Text:     text,
		Image:    req.Image,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateGlobalFeed(ctx)

	return post, nil
}

func (s *contentService) EditPost(ctx context.Context, req EditPostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != req.RequesterID {
		return nil, ErrPermissionDenied
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrTextRequired
	}

	if req.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *req.GroupID); err != nil {
			return nil, err
		}
	}

	// автор и дата создания не меняются
	post.Text = text
	post.GroupID = req.GroupID
	post.Image = req.Image

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateGlobalFeed(ctx)

	return post, nil
}

func (s *contentService) DeletePost(ctx context.Context, requesterID string, postID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != requesterID {
		return ErrPermissionDenied
	}

	// комментарии удаляются каскадно вместе с постом
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	if post.Image != nil {
		if err := s.storage.DeleteImage(ctx, *post.Image); err != nil {
			log.Printf("Предупреждение: не удалось удалить картинку поста %d: %v", postID, err)
		}
	}

	s.invalidateGlobalFeed(ctx)

	return nil
}

func (s *contentService) GetPost(ctx context.Context, postID int64) (*models.Post, []models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	return post, comments, nil
}

func (s *contentService) AddComment(ctx context.Context, authorID string, postID int64, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *contentService) AttachImage(ctx context.Context, requesterID string, postID int64, fileName string, file io.Reader, size int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != requesterID {
		return nil, ErrPermissionDenied
	}

	objectName, err := s.storage.UploadImage(ctx, fileName, file, size)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.UpdateImage(ctx, postID, objectName); err != nil {
		// запись не состоялась, файл в хранилище больше не нужен
		if delErr := s.storage.DeleteImage(ctx, objectName); delErr != nil {
			log.Printf("Предупреждение: не удалось удалить из MinIO: %v", delErr)
		}
		return nil, err
	}

	if post.Image != nil {
		if err := s.storage.DeleteImage(ctx, *post.Image); err != nil {
			log.Printf("Предупреждение: не удалось удалить старую картинку: %v", err)
		}
	}

	post.Image = &objectName

	s.invalidateGlobalFeed(ctx)

	return post, nil
}

// invalidateGlobalFeed сбрасывает кеш глобальной ленты после каждой записи,
// чтобы лента сразу отражала изменения.
func (s *contentService) invalidateGlobalFeed(ctx context.Context) {
	if err := s.feedCache.DelByPattern(ctx, cache.GLOBAL_FEED_PATTERN); err != nil {
		log.Printf("Предупреждение: не удалось сбросить кеш ленты: %v", err)
	}
}
