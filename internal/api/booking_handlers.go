package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"rentacar/internal/auth"
	"rentacar/internal/booking"
	"rentacar/internal/entities"
	apperrors "rentacar/internal/errors"
	"rentacar/internal/service"
	"rentacar/internal/utils"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	Service *service.ReservationService
}

func NewBookingHandler(svc *service.ReservationService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req entities.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		apperrors.WriteError(w, booking.ErrInvalidInterval)
		return
	}

	available, err := h.Service.CheckAvailability(req.VehicleID, start, end)
	if err != nil {
		apperrors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.AvailabilityResponse{
		VehicleID:          req.VehicleID,
		RequestedStartDate: req.StartDate,
		RequestedEndDate:   req.EndDate,
		Available:          available,
	})
}

func (h *BookingHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req entities.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		apperrors.WriteError(w, booking.ErrInvalidInterval)
		return
	}

	res, err := h.Service.RequestBooking(req.VehicleID, ident.UserID, start, end)
	if err != nil {
		apperrors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.NewReservationResponse(res))
}

func (h *BookingHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id := mux.Vars(r)["id"]

	res, err := h.Service.GetReservation(id)
	if err != nil {
		apperrors.WriteError(w, err)
		return
	}
	// Renters only see their own reservations.
	if ident.Role != booking.RoleOperator && res.RenterID != ident.UserID {
		apperrors.WriteError(w, booking.ErrUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, entities.NewReservationResponse(res))
}

func (h *BookingHandler) ListMyReservations(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	statuses, err := parseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, "Invalid status filter", http.StatusBadRequest)
		return
	}

	reservations, err := h.Service.ListReservationsForRenter(ident.UserID, statuses)
	if err != nil {
		apperrors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.NewReservationsList(reservations))
}

func (h *BookingHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id := mux.Vars(r)["id"]

	actor := service.Actor{ID: ident.UserID, Role: ident.Role}
	res, err := h.Service.Transition(id, actor, booking.StatusCancelled)
	if err != nil {
		apperrors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.NewReservationResponse(res))
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := utils.ParseDay(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := utils.ParseDay(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parseStatusFilter(raw string) ([]booking.Status, error) {
	if raw == "" {
		return nil, nil
	}
	var statuses []booking.Status
	for _, part := range strings.Split(raw, ",") {
		status, ok := booking.ParseStatus(strings.TrimSpace(part))
		if !ok {
			return nil, booking.ErrInvalidInterval
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
