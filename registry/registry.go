// registry/registry.go
package registry

import (
	"log"
	"sync"
	"time"

	"Gin_redis_rental_registry/clock"
	"Gin_redis_rental_registry/models"
)

// DefaultMaxRentalDays bounds how long a single rental may run. There is no
// runtime knob for it; it is fixed when the registry is constructed.
const DefaultMaxRentalDays = 4

const day = 24 * time.Hour

// Notification is one record of the append-only rental log, emitted once
// per successful rent.
type Notification struct {
	Category models.Category `json:"category"`
	Index    int             `json:"index"`
	Renter   string          `json:"renter"`
}

// Notifier receives rental notifications. A failing notifier is logged and
// ignored; it can never fail the rent itself.
type Notifier interface {
	ItemRented(n Notification) error
}

type nopNotifier struct{}

func (nopNotifier) ItemRented(Notification) error { return nil }

// Registry owns the ordered item list and the administrator identity. All
// operations run under one mutex, so each call is atomic: it either applies
// fully or leaves the state untouched.
type Registry struct {
	mu sync.Mutex

	items         []models.Item
	administrator string
	maxRentalDays int

	clk      clock.Clock
	notifier Notifier
}

// New captures the creating identity as the fixed administrator. clk and
// notifier are ambient plumbing; nil means system clock / discard.
func New(administrator string, clk clock.Clock, notifier Notifier) *Registry {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Registry{
		administrator: administrator,
		maxRentalDays: DefaultMaxRentalDays,
		clk:           clk,
		notifier:      notifier,
	}
}

// Administrator returns the identity fixed at construction.
func (r *Registry) Administrator() string { return r.administrator }

// MaxRentalDays returns the fixed upper bound on rental duration.
func (r *Registry) MaxRentalDays() int { return r.maxRentalDays }

// ListItem appends a new available item and returns its index. Indices are
// stable for the lifetime of the registry: items are never deleted and never
// reordered. Only the administrator may list.
func (r *Registry) ListItem(caller string, category models.Category, dailyRate int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.administrator {
		return 0, ErrUnauthorized
	}

	r.items = append(r.items, models.Item{
		Category:  category,
		Status:    models.StatusAvailable,
		DailyRate: dailyRate,
	})
	return len(r.items) - 1, nil
}

// RentItem picks the lowest-index available item of the category (first-fit,
// deterministic), marks it rented by caller until now + days, and returns
// its index. The rental log gets one record per success.
func (r *Registry) RentItem(caller string, category models.Category, days int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if days > r.maxRentalDays {
		return 0, ErrDurationExceeded
	}
	idx := r.findAvailable(category)
	if idx < 0 {
		return 0, ErrNoAvailability
	}

	// Mutate in place. Earlier drafts appended a duplicate of the rented
	// item here, which left two entries for one physical unit and broke
	// index stability; the item list must only ever grow via ListItem.
	it := &r.items[idx]
	it.Status = models.StatusRented
	it.Renter = caller
	it.EndTime = r.clk.Now().Add(time.Duration(days) * day)

	if err := r.notifier.ItemRented(Notification{Category: category, Index: idx, Renter: caller}); err != nil {
		log.Printf("rental notification for item %d dropped: %v", idx, err)
	}
	return idx, nil
}

// ExpireItem resets a rented item whose period has elapsed back to
// available. Anyone may call it; expiration is housekeeping, not a
// privilege. Nothing happens on failure.
func (r *Registry) ExpireItem(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.items) {
		return ErrIndexOutOfRange
	}
	it := &r.items[index]
	if it.Status != models.StatusRented {
		return ErrNotRented
	}
	if r.clk.Now().Before(it.EndTime) {
		return ErrNotYetEligible
	}

	it.Status = models.StatusAvailable
	it.Renter = ""
	it.EndTime = time.Time{}
	return nil
}

// ItemCount reports how many items have ever been listed.
func (r *Registry) ItemCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// GetItem returns a snapshot of the item at index.
func (r *Registry) GetItem(index int) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.items) {
		return models.Item{}, ErrIndexOutOfRange
	}
	return r.items[index], nil
}

// Items returns a snapshot of the whole list, in index order.
func (r *Registry) Items() []models.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Item, len(r.items))
	copy(out, r.items)
	return out
}

// IsAvailable reports whether any available item of the category exists.
// It is a pure predicate: no match means false, never an error.
func (r *Registry) IsAvailable(category models.Category) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findAvailable(category) >= 0
}

// findAvailable scans in index order and returns the first available item
// of the category, or -1. Callers hold the lock.
func (r *Registry) findAvailable(category models.Category) int {
	for i := range r.items {
		if r.items[i].Category == category && r.items[i].Status == models.StatusAvailable {
			return i
		}
	}
	return -1
}
