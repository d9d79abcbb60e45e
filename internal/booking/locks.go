package booking

import (
	"sync"
	"time"
)

// VehicleLocks provides one exclusive section per vehicle id, so bookings for
// different vehicles proceed in parallel while bookings for the same vehicle
// serialize. Acquisition carries a bounded wait: a caller that cannot get the
// section in time fails with ErrBusy instead of queueing indefinitely behind
// a popular vehicle.
type VehicleLocks struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func NewVehicleLocks() *VehicleLocks {
	return &VehicleLocks{locks: make(map[string]chan struct{})}
}

func (l *VehicleLocks) lock(vehicleID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.locks[vehicleID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[vehicleID] = ch
	}
	return ch
}

// Acquire takes the vehicle's exclusive section, waiting at most wait.
func (l *VehicleLocks) Acquire(vehicleID string, wait time.Duration) error {
	ch := l.lock(vehicleID)
	select {
	case ch <- struct{}{}:
		return nil
	default:
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case ch <- struct{}{}:
		return nil
	case <-timer.C:
		return ErrBusy
	}
}

// Release frees the vehicle's exclusive section. Must pair with a successful
// Acquire.
func (l *VehicleLocks) Release(vehicleID string) {
	select {
	case <-l.lock(vehicleID):
	default:
	}
}
