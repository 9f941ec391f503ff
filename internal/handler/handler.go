package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	ContentService service.ContentService
	FeedService    service.FeedService
	FollowService  service.FollowService
	UserRepo       repository.UserRepository
	GroupRepo      repository.GroupRepository
	StatsRepo      repository.StatsRepository
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		ContentService: service.Content,
		FeedService:    service.Feed,
		FollowService:  service.Follow,
		UserRepo:       repo.User,
		GroupRepo:      repo.Group,
		StatsRepo:      repo.Stats,
		Cfg:            config,
		Validate:       validator.New(),
	}
}

// currentUserID достает ID пользователя, положенный в контекст middleware.
// Пустая строка — анонимный запрос.
func currentUserID(r *http.Request) string {
	userID, _ := r.Context().Value("userID").(string)
	return userID
}
