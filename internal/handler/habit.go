package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/habitrack/habitrack-go/internal/middleware"
	"github.com/habitrack/habitrack-go/internal/model"
	"github.com/habitrack/habitrack-go/internal/service"
)

// HabitHandler handles HTTP requests for habit operations.
type HabitHandler struct {
	service *service.HabitService
}

// NewHabitHandler creates a new HabitHandler.
func NewHabitHandler(svc *service.HabitService) *HabitHandler {
	return &HabitHandler{service: svc}
}

// habitIDParam parses the habit_id URL parameter.
func habitIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "habit_id"), 10, 64)
}

// HandleCreate handles POST /habits requests.
func (h *HabitHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.CreateHabit(r.Context(), user.ID, req)
	if err != nil {
		if errors.Is(err, service.ErrHabitNameRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /habits requests.
func (h *HabitHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	habits, err := h.service.ListHabits(r.Context(), user.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, habits)
}

// HandleGet handles GET /habits/{habit_id} requests.
func (h *HabitHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	habitID, err := habitIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("habit not found"))
		return
	}

	resp, err := h.service.GetHabit(r.Context(), user.ID, habitID)
	if err != nil {
		if errors.Is(err, service.ErrHabitNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /habits/{habit_id} requests.
func (h *HabitHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	habitID, err := habitIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("habit not found"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.UpdateHabit(r.Context(), user.ID, habitID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHabitNameRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrHabitNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /habits/{habit_id} requests.
func (h *HabitHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	habitID, err := habitIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("habit not found"))
		return
	}

	if err := h.service.DeleteHabit(r.Context(), user.ID, habitID); err != nil {
		if errors.Is(err, service.ErrHabitNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
