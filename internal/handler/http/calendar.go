package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/calendar"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// List implements CalendarHandler.
func (h *calendarHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.calendarService.ListEntries(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements CalendarHandler.
func (h *calendarHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.calendarService.CreateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Calendar entry created", result)
}

// Delete implements CalendarHandler.
func (h *calendarHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.calendarService.DeleteEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar entry deleted", nil)
}
