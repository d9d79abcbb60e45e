package service

import (
	"errors"
	"log"

	"rentacar/internal/booking"
)

// JobService runs the cron lifecycle sweeps. Every change goes through the
// coordinator so occupancy release and event emission stay consistent;
// records are never deleted.
type JobService struct {
	svc   *ReservationService
	store ReservationStore
	clock booking.Clock
}

func NewJobService(svc *ReservationService, store ReservationStore) *JobService {
	return &JobService{svc: svc, store: store, clock: booking.RealClock{}}
}

// CompleteFinishedReservations marks accepted reservations whose rental
// period has passed as completed.
func (j *JobService) CompleteFinishedReservations() error {
	log.Println("Cron Job: Checking for reservations to mark as 'completed'...")

	today := booking.DayOf(j.clock.Now())
	finished, err := j.store.ListAcceptedEndedBefore(today)
	if err != nil {
		return err
	}
	if len(finished) == 0 {
		log.Println("Cron Job: No accepted reservations found past their end date.")
		return nil
	}

	completed := 0
	for _, res := range finished {
		if _, err := j.svc.Transition(res.ID, SystemOperator, booking.StatusCompleted); err != nil {
			if errors.Is(err, booking.ErrBusy) {
				log.Printf("Cron Job: reservation %s busy, will retry next run", res.ID)
				continue
			}
			log.Printf("Cron Job: could not complete reservation %s: %v", res.ID, err)
			continue
		}
		completed++
	}
	log.Printf("Cron Job: Marked %d of %d reservations as 'completed'.", completed, len(finished))
	return nil
}

// CancelStalePendingReservations cancels pending reservations whose start day
// arrived without an operator decision, freeing the slot for others.
func (j *JobService) CancelStalePendingReservations() error {
	log.Println("Cron Job: Checking for stale pending reservations...")

	today := booking.DayOf(j.clock.Now())
	stale, err := j.store.ListPendingStartedBefore(today)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		log.Println("Cron Job: No stale pending reservations found.")
		return nil
	}

	cancelled := 0
	for _, res := range stale {
		if _, err := j.svc.Transition(res.ID, SystemOperator, booking.StatusCancelled); err != nil {
			log.Printf("Cron Job: could not cancel stale reservation %s: %v", res.ID, err)
			continue
		}
		cancelled++
	}
	log.Printf("Cron Job: Cancelled %d of %d stale pending reservations.", cancelled, len(stale))
	return nil
}
