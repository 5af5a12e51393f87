// Package availability keeps a per-venue calendar of holds and answers
// overlap queries against it.
package availability

import (
	"sort"
	"sync"

	"github.com/stpnv0/HallBooker/internal/domain"
)

type hold struct {
	bookingID string
	rng       domain.TimeRange
	confirmed bool
	active    bool
}

// calendar is a single venue's holds ordered by start instant. Its mutex is
// the per-venue exclusion scope: check-and-insert runs entirely under it, so
// two overlapping requests for the same venue can never both insert.
// Different venues never contend.
type calendar struct {
	mu    sync.Mutex
	holds []*hold
}

// Index is the in-memory availability structure for all venues.
type Index struct {
	mu     sync.RWMutex
	venues map[string]*calendar
}

func NewIndex() *Index {
	return &Index{venues: make(map[string]*calendar)}
}

func (i *Index) calendar(venueID string) *calendar {
	i.mu.RLock()
	c, ok := i.venues[venueID]
	i.mu.RUnlock()
	if ok {
		return c
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if c, ok = i.venues[venueID]; ok {
		return c
	}
	c = &calendar{}
	i.venues[venueID] = c
	return c
}

// conflictsLocked scans holds ordered by start with early exit once a hold
// starts at or after the queried end. Inactive holds never block.
func (c *calendar) conflictsLocked(r domain.TimeRange) []string {
	var ids []string
	for _, h := range c.holds {
		if !h.rng.Start.Before(r.End) {
			break
		}
		if h.active && h.rng.Overlaps(r) {
			ids = append(ids, h.bookingID)
		}
	}
	return ids
}

// FindConflicts returns the booking IDs whose active holds overlap the range.
func (i *Index) FindConflicts(venueID string, r domain.TimeRange) []string {
	c := i.calendar(venueID)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conflictsLocked(r)
}

// InsertHold atomically checks for conflicts and registers a tentative hold.
func (i *Index) InsertHold(venueID, bookingID string, r domain.TimeRange) error {
	c := i.calendar(venueID)
	c.mu.Lock()
	defer c.mu.Unlock()

	if ids := c.conflictsLocked(r); len(ids) > 0 {
		return &domain.ConflictError{VenueID: venueID, BookingIDs: ids}
	}

	pos := sort.Search(len(c.holds), func(n int) bool {
		return c.holds[n].rng.Start.After(r.Start)
	})
	h := &hold{bookingID: bookingID, rng: r, active: true}
	c.holds = append(c.holds, nil)
	copy(c.holds[pos+1:], c.holds[pos:])
	c.holds[pos] = h

	return nil
}

// Release removes a hold. No-op if absent, so a retried cancellation is safe.
func (i *Index) Release(venueID, bookingID string) {
	c := i.calendar(venueID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for n, h := range c.holds {
		if h.bookingID == bookingID {
			c.holds = append(c.holds[:n], c.holds[n+1:]...)
			return
		}
	}
}

// Confirm upgrades a tentative hold. Pure metadata: PENDING and APPROVED
// block new requests equally.
func (i *Index) Confirm(venueID, bookingID string) {
	c := i.calendar(venueID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, h := range c.holds {
		if h.bookingID == bookingID {
			h.confirmed = true
			return
		}
	}
}

// Deactivate keeps the entry for history but stops it from blocking new
// requests; used when a booking completes.
func (i *Index) Deactivate(venueID, bookingID string) {
	c := i.calendar(venueID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, h := range c.holds {
		if h.bookingID == bookingID {
			h.active = false
			return
		}
	}
}

// Restore rebuilds the index from persisted active bookings at startup.
func (i *Index) Restore(holds []domain.Hold) {
	for _, h := range holds {
		c := i.calendar(h.VenueID)
		c.mu.Lock()
		pos := sort.Search(len(c.holds), func(n int) bool {
			return c.holds[n].rng.Start.After(h.Range.Start)
		})
		entry := &hold{bookingID: h.BookingID, rng: h.Range, confirmed: h.Confirmed, active: true}
		c.holds = append(c.holds, nil)
		copy(c.holds[pos+1:], c.holds[pos:])
		c.holds[pos] = entry
		c.mu.Unlock()
	}
}
