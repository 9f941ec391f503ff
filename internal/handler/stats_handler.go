package handlers

import (
	"net/http"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// StatsHandler — диагностика: счётчики записей по всем таблицам.
func (h *Handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsRepo.CountRows(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, stats, http.StatusOK)
}

// Groups — список всех групп.
func (h *Handlers) Groups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.GroupRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, groups, http.StatusOK)
}
