package service

import (
	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

type Service struct {
	Auth    AuthService
	Content ContentService
	Feed    FeedService
	Follow  FollowService
}

func NewService(repo *repository.Repository, cfg *config.Config, storage storage.Storage, feedCache cache.Cache) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, cfg),
		Content: NewContentService(repo.Post, repo.Comment, repo.Group, storage, feedCache),
		Feed:    NewFeedService(repo.Post, repo.Group, repo.User, feedCache, cfg),
		Follow:  NewFollowService(repo.Follow, repo.User),
	}
}
