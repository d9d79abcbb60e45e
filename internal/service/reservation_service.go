package service

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"rentacar/internal/booking"

	"github.com/google/uuid"
)

const defaultLockWait = 500 * time.Millisecond

// ReservationStore is the primary reservation record store.
type ReservationStore interface {
	Create(res *booking.Reservation) error
	Get(id string) (*booking.Reservation, error)
	UpdateStatus(id string, status booking.Status, updatedAt time.Time) error
	ListByVehicle(vehicleID string, statuses []booking.Status, limit, offset int) ([]booking.Reservation, error)
	ListByRenter(renterID string, statuses []booking.Status) ([]booking.Reservation, error)
	ListOccupying() ([]booking.Reservation, error)
	ListAcceptedEndedBefore(day time.Time) ([]booking.Reservation, error)
	ListPendingStartedBefore(day time.Time) ([]booking.Reservation, error)
}

// VehicleCatalog is the slice of the external catalog the engine consumes.
type VehicleCatalog interface {
	VehicleExists(id string) (bool, error)
	IsVehicleRetired(id string) (bool, error)
	DayRateCents(id string) (int, error)
}

// Actor is the authenticated caller of a transition.
type Actor struct {
	ID   string
	Role booking.Role
}

// SystemOperator is the actor the cron sweeps act as.
var SystemOperator = Actor{ID: "system", Role: booking.RoleOperator}

// ReservationService coordinates bookings: it serializes access to each
// vehicle's availability, runs conflict checks, owns reservation records and
// publishes lifecycle events. Pricing and catalog lookups resolve before the
// vehicle lock is taken; store writes and index mutations happen inside it;
// events go out after.
type ReservationService struct {
	store    ReservationStore
	catalog  VehicleCatalog
	pricing  *PricingService
	sink     booking.Sink
	index    *booking.AvailabilityIndex
	locks    *booking.VehicleLocks
	clock    booking.Clock
	lockWait time.Duration
}

func NewReservationService(store ReservationStore, catalog VehicleCatalog, pricing *PricingService, sink booking.Sink) *ReservationService {
	if sink == nil {
		sink = booking.NoOpSink{}
	}
	return &ReservationService{
		store:    store,
		catalog:  catalog,
		pricing:  pricing,
		sink:     sink,
		index:    booking.NewAvailabilityIndex(),
		locks:    booking.NewVehicleLocks(),
		clock:    booking.RealClock{},
		lockWait: lockWaitFromEnv(),
	}
}

func lockWaitFromEnv() time.Duration {
	if ms, err := strconv.Atoi(os.Getenv("LOCK_WAIT_MS")); err == nil && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultLockWait
}

// LoadIndex rebuilds the in-memory availability index from the store. Call
// once at startup before serving requests.
func (s *ReservationService) LoadIndex() error {
	occupying, err := s.store.ListOccupying()
	if err != nil {
		return fmt.Errorf("loading availability index: %w", err)
	}
	s.index.Load(occupying)
	log.Printf("Availability index loaded with %d occupying reservations", len(occupying))
	return nil
}

// RequestBooking validates the range, checks the vehicle's availability under
// its exclusive section and creates a pending reservation.
func (s *ReservationService) RequestBooking(vehicleID, renterID string, start, end time.Time) (*booking.Reservation, error) {
	iv, err := booking.NewInterval(start, end)
	if err != nil {
		return nil, err
	}
	if iv.Start.Before(booking.DayOf(s.clock.Now())) {
		return nil, fmt.Errorf("start date in the past: %w", booking.ErrInvalidInterval)
	}
	if err := s.checkVehicle(vehicleID); err != nil {
		return nil, err
	}

	// Price resolves before the lock so no external call runs while holding it.
	price, err := s.pricing.Quote(vehicleID, iv)
	if err != nil {
		return nil, err
	}

	if err := s.locks.Acquire(vehicleID, s.lockWait); err != nil {
		return nil, err
	}
	defer s.locks.Release(vehicleID)

	if !s.index.IsFree(vehicleID, iv) {
		return nil, booking.ErrConflict
	}

	now := s.clock.Now().UTC()
	res := &booking.Reservation{
		ID:                 uuid.NewString(),
		VehicleID:          vehicleID,
		RenterID:           renterID,
		Interval:           iv,
		Status:             booking.StatusPending,
		PriceSnapshotCents: price,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.store.Create(res); err != nil {
		return nil, fmt.Errorf("creating reservation: %w", err)
	}
	s.index.Commit(vehicleID, res.ID, iv)

	s.sink.Publish(booking.Event{
		ReservationID: res.ID,
		VehicleID:     res.VehicleID,
		RenterID:      res.RenterID,
		To:            booking.StatusPending,
		At:            now,
	})
	return res, nil
}

// Transition moves a reservation to target on behalf of actor, enforcing the
// authorization policy and the lifecycle table. Replaying a transition that
// already happened returns the current record and emits nothing.
func (s *ReservationService) Transition(reservationID string, actor Actor, target booking.Status) (*booking.Reservation, error) {
	res, err := s.store.Get(reservationID)
	if err != nil {
		return nil, err
	}
	if err := booking.Authorize(actor.Role, target); err != nil {
		return nil, err
	}
	if actor.Role == booking.RoleRenter && actor.ID != res.RenterID {
		return nil, booking.ErrUnauthorized
	}

	if err := s.locks.Acquire(res.VehicleID, s.lockWait); err != nil {
		return nil, err
	}
	defer s.locks.Release(res.VehicleID)

	// Re-read under the lock; another transition may have raced us here.
	res, err = s.store.Get(reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status == target {
		return res, nil
	}
	if !res.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%s -> %s: %w", res.Status, target, booking.ErrInvalidTransition)
	}

	now := s.clock.Now().UTC()
	if err := s.store.UpdateStatus(res.ID, target, now); err != nil {
		return nil, err
	}
	// Leaving the occupying set frees the slot before anyone can observe the
	// new status; the index mutation happens under the same lock.
	if res.Status.Occupying() && !target.Occupying() {
		s.index.Release(res.VehicleID, res.ID)
	}

	from := res.Status
	res.Status = target
	res.UpdatedAt = now

	s.sink.Publish(booking.Event{
		ReservationID: res.ID,
		VehicleID:     res.VehicleID,
		RenterID:      res.RenterID,
		From:          from,
		To:            target,
		At:            now,
	})
	return res, nil
}

// CheckAvailability answers whether the vehicle is free for the range. Reads
// the index without the vehicle lock, so the answer may be slightly stale;
// RequestBooking re-checks under the lock.
func (s *ReservationService) CheckAvailability(vehicleID string, start, end time.Time) (bool, error) {
	iv, err := booking.NewInterval(start, end)
	if err != nil {
		return false, err
	}
	if err := s.checkVehicle(vehicleID); err != nil {
		return false, err
	}
	return s.index.IsFree(vehicleID, iv), nil
}

func (s *ReservationService) GetReservation(id string) (*booking.Reservation, error) {
	return s.store.Get(id)
}

// ListReservationsForVehicle pages through a vehicle's reservations. A limit
// of zero or less returns everything.
func (s *ReservationService) ListReservationsForVehicle(vehicleID string, statuses []booking.Status, limit, offset int) ([]booking.Reservation, error) {
	return s.store.ListByVehicle(vehicleID, statuses, limit, offset)
}

func (s *ReservationService) ListReservationsForRenter(renterID string, statuses []booking.Status) ([]booking.Reservation, error) {
	return s.store.ListByRenter(renterID, statuses)
}

func (s *ReservationService) checkVehicle(vehicleID string) error {
	exists, err := s.catalog.VehicleExists(vehicleID)
	if err != nil {
		return fmt.Errorf("checking vehicle %s: %w", vehicleID, err)
	}
	if !exists {
		return booking.ErrVehicleUnavailable
	}
	retired, err := s.catalog.IsVehicleRetired(vehicleID)
	if err != nil {
		return err
	}
	if retired {
		return booking.ErrVehicleUnavailable
	}
	return nil
}
