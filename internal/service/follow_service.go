package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, targetUsername string) error
	Unfollow(ctx context.Context, followerID, targetUsername string) error
	IsFollowing(ctx context.Context, followerID, authorID string) (bool, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow создает подписку на автора. Подписка на себя и повторная подписка —
// тихие no-op, дубликат пары невозможен.
func (s *followService) Follow(ctx context.Context, followerID, targetUsername string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	if author.UserID == followerID {
		return nil
	}

	exists, err := s.followRepo.Exists(ctx, followerID, author.UserID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	follow := &models.Follow{
		FollowerID: followerID,
		AuthorID:   author.UserID,
	}

	return s.followRepo.Create(ctx, follow)
}

// Unfollow удаляет подписку. Повторное удаление — успешный no-op.
func (s *followService) Unfollow(ctx context.Context, followerID, targetUsername string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	return s.followRepo.Delete(ctx, followerID, author.UserID)
}

func (s *followService) IsFollowing(ctx context.Context, followerID, authorID string) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, authorID)
}
