package service

import (
	"context"
	"errors"
	"log"

	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/models"
	"yatube/internal/repository"
)

const MAX_LIMIT = 100

// Page — страница ленты с метаданными пагинации. Номера страниц с единицы;
// страница за пределами набора — пустая, а не ошибка.
type Page struct {
	Posts      []models.Post `json:"posts"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
	HasNext    bool          `json:"hasNext"`
}

type FeedService interface {
	GlobalFeed(ctx context.Context, page, limit int) (*Page, error)
	GroupFeed(ctx context.Context, slug string, page, limit int) (*Page, *models.Group, error)
	AuthorFeed(ctx context.Context, username string, page, limit int) (*Page, *models.User, error)
	FollowingFeed(ctx context.Context, viewerID string, page, limit int) (*Page, error)
}

type feedService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	feedCache cache.Cache
	cfg       *config.Config
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	feedCache cache.Cache,
	cfg *config.Config,
) FeedService {
	return &feedService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		feedCache: feedCache,
		cfg:       cfg,
	}
}

func (s *feedService) normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MAX_LIMIT {
		limit = s.cfg.PostsPerPage
	}
	return page, limit
}

func buildPage(posts []models.Post, page, limit, total int) *Page {
	if posts == nil {
		posts = []models.Post{}
	}

	totalPages := (total + limit - 1) / limit

	return &Page{
		Posts:      posts,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// GlobalFeed читает страницу через кеш. Промах — выборка из БД и запись в кеш
// с коротким TTL; сброс кеша при любой записи делает ContentService.
func (s *feedService) GlobalFeed(ctx context.Context, page, limit int) (*Page, error) {
	page, limit = s.normalize(page, limit)

	key := cache.GlobalFeedKey(page, limit)
	cached, err := cache.Get[Page](s.feedCache, ctx, key)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("Предупреждение: ошибка чтения кеша ленты: %v", err)
	}

	posts, err := s.postRepo.ListAll(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	result := buildPage(posts, page, limit, total)

	if err := s.feedCache.SetJSON(ctx, key, result, s.cfg.FeedCacheTTL); err != nil {
		log.Printf("Предупреждение: не удалось записать ленту в кеш: %v", err)
	}

	return result, nil
}

func (s *feedService) GroupFeed(ctx context.Context, slug string, page, limit int) (*Page, *models.Group, error) {
	page, limit = s.normalize(page, limit)

	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.postRepo.ListByGroup(ctx, group.GroupID, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.postRepo.CountByGroup(ctx, group.GroupID)
	if err != nil {
		return nil, nil, err
	}

	return buildPage(posts, page, limit, total), group, nil
}

func (s *feedService) AuthorFeed(ctx context.Context, username string, page, limit int) (*Page, *models.User, error) {
	page, limit = s.normalize(page, limit)

	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, author.UserID, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.UserID)
	if err != nil {
		return nil, nil, err
	}

	return buildPage(posts, page, limit, total), author, nil
}

// FollowingFeed — посты авторов, на которых подписан viewer. Пользователь без
// подписок получает пустую страницу, это не ошибка.
func (s *feedService) FollowingFeed(ctx context.Context, viewerID string, page, limit int) (*Page, error) {
	page, limit = s.normalize(page, limit)

	posts, err := s.postRepo.ListByFollower(ctx, viewerID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByFollower(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	return buildPage(posts, page, limit, total), nil
}
