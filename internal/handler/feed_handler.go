package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"yatube/internal/models"
	"yatube/internal/service"
)

type GroupFeedResponse struct {
	Group *models.Group `json:"group"`
	Feed  *service.Page `json:"feed"`
}

type ProfileResponse struct {
	Author    UserResponse  `json:"author"`
	Following bool          `json:"following"`
	Feed      *service.Page `json:"feed"`
}

// parsePagination читает page и limit из query-строки; значения вне диапазона
// нормализует сервисный слой.
func parsePagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

// Index — глобальная лента: все посты, новые выше.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	feed, err := h.FeedService.GlobalFeed(r.Context(), page, limit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, feed, http.StatusOK)
}

// GroupFeed — посты одной группы по её slug.
func (h *Handlers) GroupFeed(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	page, limit := parsePagination(r)

	feed, group, err := h.FeedService.GroupFeed(r.Context(), slug, page, limit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, GroupFeedResponse{Group: group, Feed: feed}, http.StatusOK)
}

// Profile — посты автора и признак подписки текущего пользователя на него.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	page, limit := parsePagination(r)

	feed, author, err := h.FeedService.AuthorFeed(r.Context(), username, page, limit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	following := false
	if viewerID := currentUserID(r); viewerID != "" {
		following, err = h.FollowService.IsFollowing(r.Context(), viewerID, author.UserID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
	}

	response := ProfileResponse{
		Author:    newUserResponse(author),
		Following: following,
		Feed:      feed,
	}

	WriteSuccess(w, response, http.StatusOK)
}

// FollowingFeed — персональная лента из постов авторов, на которых подписан
// текущий пользователь.
func (h *Handlers) FollowingFeed(w http.ResponseWriter, r *http.Request) {
	viewerID := currentUserID(r)
	if viewerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	page, limit := parsePagination(r)

	feed, err := h.FeedService.FollowingFeed(r.Context(), viewerID, page, limit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, feed, http.StatusOK)
}
