package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"yatube/internal/repository"
	"yatube/internal/service"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError сопоставляет ошибку сервисного слоя с HTTP-статусом.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrPermissionDenied):
		WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrTextRequired):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrAuthRequired):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
