package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"yatube/internal/models"
	"yatube/internal/service"
)

type CreatePostRequest struct {
	Text    string `json:"text" validate:"required"`
	GroupID *int64 `json:"groupId"`
}

type UpdatePostRequest struct {
	Text    string  `json:"text" validate:"required"`
	GroupID *int64  `json:"groupId"`
	Image   *string `json:"image"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type PostDetailResponse struct {
	Post     *models.Post     `json:"post"`
	Comments []models.Comment `json:"comments"`
}

func parsePostID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	post, comments, err := h.ContentService.GetPost(r.Context(), postID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	WriteSuccess(w, PostDetailResponse{Post: post, Comments: comments}, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID := currentUserID(r)
	if authorID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Текст поста обязателен", http.StatusBadRequest)
		return
	}

	serviceReq := service.CreatePostRequest{
		AuthorID: authorID,
		Text:     req.Text,
		GroupID:  req.GroupID,
	}

	post, err := h.ContentService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	requesterID := currentUserID(r)
	if requesterID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Текст поста обязателен", http.StatusBadRequest)
		return
	}

	serviceReq := service.EditPostRequest{
		RequesterID: requesterID,
		PostID:      postID,
		Text:        req.Text,
		GroupID:     req.GroupID,
		Image:       req.Image,
	}

	post, err := h.ContentService.EditPost(r.Context(), serviceReq)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	requesterID := currentUserID(r)
	if requesterID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	if err := h.ContentService.DeletePost(r.Context(), requesterID, postID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	authorID := currentUserID(r)
	if authorID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Текст комментария обязателен", http.StatusBadRequest)
		return
	}

	comment, err := h.ContentService.AddComment(r.Context(), authorID, postID, req.Text)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

// UploadImage принимает multipart-файл и прикрепляет его к посту.
// Содержимое файла не интерпретируется, в посте хранится только ссылка.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	requesterID := currentUserID(r)
	if requesterID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой", http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Файл image обязателен", http.StatusBadRequest)
		return
	}
	defer file.Close()

	post, err := h.ContentService.AttachImage(r.Context(), requesterID, postID, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}
