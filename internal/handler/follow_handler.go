package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	followerID := currentUserID(r)
	if followerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	username := mux.Vars(r)["username"]

	if err := h.FollowService.Follow(r.Context(), followerID, username); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"following": true}, http.StatusOK)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID := currentUserID(r)
	if followerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	username := mux.Vars(r)["username"]

	if err := h.FollowService.Unfollow(r.Context(), followerID, username); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"following": false}, http.StatusOK)
}
