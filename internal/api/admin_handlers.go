package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentacar/internal/auth"
	"rentacar/internal/booking"
	"rentacar/internal/entities"
	apperrors "rentacar/internal/errors"
	"rentacar/internal/service"

	"github.com/gorilla/mux"
)

// EventLister reads the persisted lifecycle audit trail.
type EventLister interface {
	ListEvents(reservationID string) ([]booking.Event, error)
}

type AdminHandler struct {
	Service *service.ReservationService
	Events  EventLister
}

func NewAdminHandler(svc *service.ReservationService, events EventLister) *AdminHandler {
	return &AdminHandler{Service: svc, Events: events}
}

func (h *AdminHandler) ListVehicleReservations(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]
	statuses, err := parseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, "Invalid status filter", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	reservations, err := h.Service.ListReservationsForVehicle(vehicleID, statuses, limit, offset)
	if err != nil {
		apperrors.WriteError(w, err)
		return
	}
	list := entities.NewReservationsList(reservations)
	list.Limit = limit
	list.Offset = offset
	writeJSON(w, http.StatusOK, list)
}

// UpdateReservationStatus applies an operator transition: accept, refuse,
// cancel, complete, fail or refund.
func (h *AdminHandler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id := mux.Vars(r)["id"]

	var req entities.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	target, ok := booking.ParseStatus(req.Status)
	if !ok {
		http.Error(w, "Unknown status", http.StatusBadRequest)
		return
	}

	actor := service.Actor{ID: ident.UserID, Role: ident.Role}
	res, err := h.Service.Transition(id, actor, target)
	if err != nil {
		apperrors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.NewReservationResponse(res))
}

// ListReservationEvents returns the audit trail of one reservation, oldest
// first. The reservation is looked up first so unknown ids 404 instead of
// returning an empty trail.
func (h *AdminHandler) ListReservationEvents(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if _, err := h.Service.GetReservation(id); err != nil {
		apperrors.WriteError(w, err)
		return
	}
	events, err := h.Events.ListEvents(id)
	if err != nil {
		apperrors.WriteError(w, err)
		return
	}
	if events == nil {
		events = []booking.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}
