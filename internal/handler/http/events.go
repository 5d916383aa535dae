// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-calendar/internal/utils"
	"github.com/MKhiriev/go-calendar/models"
	"github.com/go-chi/chi/v5"
)

const eventIDParam = "id"

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var request models.CreateEventRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	event, err := h.services.EventService.Create(r.Context(), request, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, event, http.StatusCreated)
}

func (h *Handler) findAllEvents(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	events, err := h.services.EventService.FindAll(r.Context(), userID)
	writeEvents(w, r, events, err)
}

// findUpcomingEvents serves GET /api/events/upcoming?limit=N.
func (h *Handler) findUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, r, ErrInvalidLimit)
			return
		}
		limit = parsed
	}

	events, err := h.services.EventService.FindUpcoming(r.Context(), userID, limit)
	writeEvents(w, r, events, err)
}

// findEventsByDateRange serves GET /api/events/date-range?startDate=&endDate=.
func (h *Handler) findEventsByDateRange(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	query := r.URL.Query()

	rawStart, rawEnd := query.Get("startDate"), query.Get("endDate")
	if rawStart == "" || rawEnd == "" {
		writeError(w, r, ErrMissingDateRange)
		return
	}

	start, err := utils.ParseTimestamp(rawStart)
	if err != nil {
		writeError(w, r, ErrInvalidDateParam)
		return
	}
	end, err := utils.ParseTimestamp(rawEnd)
	if err != nil {
		writeError(w, r, ErrInvalidDateParam)
		return
	}

	events, err := h.services.EventService.FindByDateRange(r.Context(), userID, start, end)
	writeEvents(w, r, events, err)
}

// findEventsByMonth serves GET /api/events/month/{year}/{month}; month is 1-indexed.
func (h *Handler) findEventsByMonth(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, r, ErrInvalidYearParam)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, r, ErrInvalidMonthParam)
		return
	}

	events, err := h.services.EventService.FindByMonth(r.Context(), userID, year, month)
	writeEvents(w, r, events, err)
}

func (h *Handler) findOneEvent(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	event, err := h.services.EventService.FindOne(r.Context(), chi.URLParam(r, eventIDParam), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, event, http.StatusOK)
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var request models.UpdateEventRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	event, err := h.services.EventService.Update(r.Context(), chi.URLParam(r, eventIDParam), request, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, event, http.StatusOK)
}

func (h *Handler) removeEvent(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.services.EventService.Remove(r.Context(), chi.URLParam(r, eventIDParam), userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeEvents(w http.ResponseWriter, r *http.Request, events []models.Event, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	_, _ = utils.WriteJSON(w, events, http.StatusOK)
}
