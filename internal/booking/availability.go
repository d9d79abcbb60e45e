package booking

import (
	"sort"
	"sync"
)

type occupancy struct {
	reservationID string
	interval      Interval
}

// AvailabilityIndex holds, per vehicle, the intervals of reservations in an
// occupying status, sorted by start day. It is a secondary index over the
// reservation store and can be rebuilt from it at any time with Load.
//
// The internal mutex only protects the maps themselves. Check-then-act
// sequences (IsFree followed by Commit, or a guard followed by Release) must
// run under the vehicle's exclusive section from VehicleLocks.
type AvailabilityIndex struct {
	mu        sync.RWMutex
	byVehicle map[string][]occupancy
}

func NewAvailabilityIndex() *AvailabilityIndex {
	return &AvailabilityIndex{byVehicle: make(map[string][]occupancy)}
}

// Load rebuilds the index from the occupying reservations of the primary
// store, discarding whatever was indexed before.
func (ix *AvailabilityIndex) Load(reservations []Reservation) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.byVehicle = make(map[string][]occupancy)
	for _, res := range reservations {
		if !res.Status.Occupying() {
			continue
		}
		ix.byVehicle[res.VehicleID] = insertSorted(ix.byVehicle[res.VehicleID], occupancy{
			reservationID: res.ID,
			interval:      res.Interval,
		})
	}
}

// IsFree reports whether no occupying interval on the vehicle overlaps iv.
func (ix *AvailabilityIndex) IsFree(vehicleID string, iv Interval) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	for _, occ := range ix.byVehicle[vehicleID] {
		if occ.interval.Start.After(iv.End) {
			break // sorted by start, nothing later can overlap
		}
		if occ.interval.Overlaps(iv) {
			return false
		}
	}
	return true
}

// Commit adds the interval to the vehicle's occupying set. The caller must
// have verified IsFree under the same exclusive section.
func (ix *AvailabilityIndex) Commit(vehicleID, reservationID string, iv Interval) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.byVehicle[vehicleID] = insertSorted(ix.byVehicle[vehicleID], occupancy{
		reservationID: reservationID,
		interval:      iv,
	})
}

// Release drops the reservation's interval from the vehicle's occupying set.
// Releasing an interval that was already released is a no-op.
func (ix *AvailabilityIndex) Release(vehicleID, reservationID string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	occs := ix.byVehicle[vehicleID]
	for i, occ := range occs {
		if occ.reservationID == reservationID {
			ix.byVehicle[vehicleID] = append(occs[:i], occs[i+1:]...)
			return
		}
	}
}

// OccupiedCount returns how many occupying intervals the vehicle has.
func (ix *AvailabilityIndex) OccupiedCount(vehicleID string) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.byVehicle[vehicleID])
}

func insertSorted(occs []occupancy, occ occupancy) []occupancy {
	i := sort.Search(len(occs), func(i int) bool {
		return occs[i].interval.Start.After(occ.interval.Start)
	})
	occs = append(occs, occupancy{})
	copy(occs[i+1:], occs[i:])
	occs[i] = occ
	return occs
}
