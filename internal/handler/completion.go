package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/habitrack/habitrack-go/internal/middleware"
	"github.com/habitrack/habitrack-go/internal/model"
	"github.com/habitrack/habitrack-go/internal/service"
)

// CompletionHandler handles HTTP requests for habit completion operations.
type CompletionHandler struct {
	service *service.HabitService
}

// NewCompletionHandler creates a new CompletionHandler.
func NewCompletionHandler(svc *service.HabitService) *CompletionHandler {
	return &CompletionHandler{service: svc}
}

// HandleCreate handles POST /habits/{habit_id}/completions requests.
func (h *CompletionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	var req model.CreateCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.CreateCompletion(r.Context(), user.ID, habitID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompletionDateRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrHabitNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrDuplicateCompletion):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdate handles PUT /habits/{habit_id}/completions/{date} requests.
func (h *CompletionHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	date, err := model.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.UpdateCompletion(r.Context(), user.ID, habitID, date, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHabitNotFound), errors.Is(err, service.ErrCompletionNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /habits/{habit_id}/completions/{date} requests.
func (h *CompletionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	date, err := model.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.service.DeleteCompletion(r.Context(), user.ID, habitID, date); err != nil {
		switch {
		case errors.Is(err, service.ErrHabitNotFound), errors.Is(err, service.ErrCompletionNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
