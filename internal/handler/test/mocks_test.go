package test

import (
	"context"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"yatube/internal/config"
	handlers "yatube/internal/handler"
	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/service"
)

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) GlobalFeed(ctx context.Context, page, limit int) (*service.Page, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page), args.Error(1)
}

func (m *MockFeedService) GroupFeed(ctx context.Context, slug string, page, limit int) (*service.Page, *models.Group, error) {
	args := m.Called(ctx, slug, page, limit)
	var feed *service.Page
	if args.Get(0) != nil {
		feed = args.Get(0).(*service.Page)
	}
	var group *models.Group
	if args.Get(1) != nil {
		group = args.Get(1).(*models.Group)
	}
	return feed, group, args.Error(2)
}

func (m *MockFeedService) AuthorFeed(ctx context.Context, username string, page, limit int) (*service.Page, *models.User, error) {
	args := m.Called(ctx, username, page, limit)
	var feed *service.Page
	if args.Get(0) != nil {
		feed = args.Get(0).(*service.Page)
	}
	var author *models.User
	if args.Get(1) != nil {
		author = args.Get(1).(*models.User)
	}
	return feed, author, args.Error(2)
}

func (m *MockFeedService) FollowingFeed(ctx context.Context, viewerID string, page, limit int) (*service.Page, error) {
	args := m.Called(ctx, viewerID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page), args.Error(1)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) CreatePost(ctx context.Context, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockContentService) EditPost(ctx context.Context, req service.EditPostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockContentService) DeletePost(ctx context.Context, requesterID string, postID int64) error {
	args := m.Called(ctx, requesterID, postID)
	return args.Error(0)
}

func (m *MockContentService) GetPost(ctx context.Context, postID int64) (*models.Post, []models.Comment, error) {
	args := m.Called(ctx, postID)
	var post *models.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*models.Post)
	}
	var comments []models.Comment
	if args.Get(1) != nil {
		comments = args.Get(1).([]models.Comment)
	}
	return post, comments, args.Error(2)
}

func (m *MockContentService) AddComment(ctx context.Context, authorID string, postID int64, text string) (*models.Comment, error) {
	args := m.Called(ctx, authorID, postID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockContentService) AttachImage(ctx context.Context, requesterID string, postID int64, fileName string, file io.Reader, size int64) (*models.Post, error) {
	args := m.Called(ctx, requesterID, postID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, followerID, targetUsername string) error {
	args := m.Called(ctx, followerID, targetUsername)
	return args.Error(0)
}

func (m *MockFollowService) Unfollow(ctx context.Context, followerID, targetUsername string) error {
	args := m.Called(ctx, followerID, targetUsername)
	return args.Error(0)
}

func (m *MockFollowService) IsFollowing(ctx context.Context, followerID, authorID string) (bool, error) {
	args := m.Called(ctx, followerID, authorID)
	return args.Bool(0), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockAuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type handlerMocks struct {
	auth    *MockAuthService
	content *MockContentService
	feed    *MockFeedService
	follow  *MockFollowService
}

func newTestHandlers() (*handlers.Handlers, *handlerMocks) {
	m := &handlerMocks{
		auth:    new(MockAuthService),
		content: new(MockContentService),
		feed:    new(MockFeedService),
		follow:  new(MockFollowService),
	}

	h := &handlers.Handlers{
		AuthService:    m.auth,
		ContentService: m.content,
		FeedService:    m.feed,
		FollowService:  m.follow,
		Cfg: &config.Config{
			PostsPerPage:  10,
			MaxUploadSize: 10 << 20,
		},
		Validate: validator.New(),
	}

	return h, m
}

// withUser кладет ID пользователя в контекст запроса так же,
// как это делает auth middleware.
func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "userID", userID))
}
