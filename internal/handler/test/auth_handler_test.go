package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	handlers "yatube/internal/handler"
	"yatube/internal/models"
	"yatube/internal/repository"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *handlerMocks)
		wantStatus int
	}{
		{
			name: "Успешная регистрация",
			body: `{"username": "new_user", "email": "new@example.com", "password": "secret123"}`,
			setupMock: func(m *handlerMocks) {
				m.auth.On("Register", mock.Anything, repository.CreateUserRequest{
					Username: "new_user",
					Email:    "new@example.com",
					Password: "secret123",
				}).Return(&models.User{
					UserID:   uuid.New().String(),
					Username: "new_user",
					Email:    "new@example.com",
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Недопустимые символы в username",
			body:       `{"username": "плохой юзер", "email": "new@example.com", "password": "secret123"}`,
			setupMock:  func(m *handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Короткий пароль",
			body:       `{"username": "new_user", "email": "new@example.com", "password": "123"}`,
			setupMock:  func(m *handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Невалидный email",
			body:       `{"username": "new_user", "email": "not-an-email", "password": "secret123"}`,
			setupMock:  func(m *handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Пользователь уже существует",
			body: `{"username": "new_user", "email": "new@example.com", "password": "secret123"}`,
			setupMock: func(m *handlerMocks) {
				m.auth.On("Register", mock.Anything, mock.AnythingOfType("repository.CreateUserRequest")).
					Return(nil, fmt.Errorf("пользователь new_user уже существует"))
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandlers()
			tt.setupMock(m)

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.Register(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("Успешный вход", func(t *testing.T) {
		h, m := newTestHandlers()

		user := &models.User{
			UserID:   uuid.New().String(),
			Username: "test_user",
			Email:    "test@example.com",
		}
		m.auth.On("Login", mock.Anything, "test@example.com", "secret123").
			Return(user, "access-token", "refresh-token", nil)

		body := `{"email": "test@example.com", "password": "secret123"}`
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		h.Login(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handlers.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, "refresh-token", resp.RefreshToken)
		assert.Equal(t, "test_user", resp.User.Username)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		h, m := newTestHandlers()

		m.auth.On("Login", mock.Anything, "test@example.com", "wrong").
			Return(nil, "", "", fmt.Errorf("ошибка аутентификации"))

		body := `{"email": "test@example.com", "password": "wrong"}`
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		h.Login(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
