package scheme

// SeatAllocator hands out seats 0..capacity-1 per flight, in order, and
// never the same seat twice for one flight.
type SeatAllocator struct {
	defaultCapacity int
	capacity        map[string]int
	next            map[string]int
}

func NewSeatAllocator(defaultCapacity int) *SeatAllocator {
	return &SeatAllocator{
		defaultCapacity: defaultCapacity,
		capacity:        make(map[string]int),
		next:            make(map[string]int),
	}
}

// SetCapacity fixes the number of seats for flightID. It has no effect once
// seats have been handed out for that flight.
func (a *SeatAllocator) SetCapacity(flightID string, n int) {
	if _, started := a.next[flightID]; started {
		return
	}
	a.capacity[flightID] = n
}

func (a *SeatAllocator) Capacity(flightID string) int {
	if n, ok := a.capacity[flightID]; ok {
		return n
	}
	return a.defaultCapacity
}

func (a *SeatAllocator) Next(flightID string) (int, error) {
	seat := a.next[flightID]
	capacity := a.Capacity(flightID)
	if seat >= capacity {
		return 0, &ExhaustedAllocationError{FlightID: flightID, Capacity: capacity}
	}
	a.next[flightID] = seat + 1
	return seat, nil
}

// Assigned returns how many seats flightID has handed out.
func (a *SeatAllocator) Assigned(flightID string) int {
	return a.next[flightID]
}
