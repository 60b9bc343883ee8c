package registry_test

import (
	"testing"
	"time"

	"Gin_redis_rental_registry/models"
	"Gin_redis_rental_registry/registry"

	"pgregory.net/rapid"
)

var categories = []models.Category{
	models.CategoryCactus,
	models.CategoryFern,
	models.CategoryBonsai,
}

// A minimal shadow model of what the registry is supposed to be: an
// append-only list where renting and expiring flip one entry in place.
type shadowItem struct {
	category models.Category
	rate     int64
	rented   bool
	renter   string
	endTime  time.Time
}

func TestRegistryStateMachine(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clk := &testClock{now: t0}
		reg := registry.New("admin", clk, nil)
		var shadow []shadowItem

		firstAvailable := func(cat models.Category) int {
			for i, it := range shadow {
				if it.category == cat && !it.rented {
					return i
				}
			}
			return -1
		}

		t.Repeat(map[string]func(*rapid.T){
			"list": func(t *rapid.T) {
				cat := rapid.SampledFrom(categories).Draw(t, "cat")
				rate := rapid.Int64Range(0, 500).Draw(t, "rate")
				idx, err := reg.ListItem("admin", cat, rate)
				if err != nil {
					t.Fatalf("admin listing failed: %v", err)
				}
				if idx != len(shadow) {
					t.Fatalf("got index %d for the %dth listing", idx, len(shadow))
				}
				shadow = append(shadow, shadowItem{category: cat, rate: rate})
			},
			"listUnauthorized": func(t *rapid.T) {
				caller := rapid.SampledFrom([]string{"tenant1", "tenant2", "mallory", ""}).Draw(t, "caller")
				_, err := reg.ListItem(caller, models.CategoryCactus, 1)
				if err != registry.ErrUnauthorized {
					t.Fatalf("non-admin listing: got %v, want ErrUnauthorized", err)
				}
			},
			"rent": func(t *rapid.T) {
				caller := rapid.SampledFrom([]string{"tenant1", "tenant2", "tenant3"}).Draw(t, "caller")
				cat := rapid.SampledFrom(categories).Draw(t, "cat")
				days := rapid.IntRange(1, registry.DefaultMaxRentalDays+2).Draw(t, "days")

				idx, err := reg.RentItem(caller, cat, days)
				switch {
				case days > registry.DefaultMaxRentalDays:
					if err != registry.ErrDurationExceeded {
						t.Fatalf("days=%d: got %v, want ErrDurationExceeded", days, err)
					}
				case firstAvailable(cat) < 0:
					if err != registry.ErrNoAvailability {
						t.Fatalf("no %s available: got %v, want ErrNoAvailability", cat, err)
					}
				default:
					want := firstAvailable(cat)
					if err != nil {
						t.Fatalf("rent should have chosen %d: %v", want, err)
					}
					if idx != want {
						t.Fatalf("rent chose %d, first fit is %d", idx, want)
					}
					shadow[idx].rented = true
					shadow[idx].renter = caller
					shadow[idx].endTime = clk.now.Add(time.Duration(days) * day)
				}
			},
			"expire": func(t *rapid.T) {
				idx := rapid.IntRange(-1, len(shadow)).Draw(t, "idx")
				err := reg.ExpireItem(idx)
				switch {
				case idx < 0 || idx >= len(shadow):
					if err != registry.ErrIndexOutOfRange {
						t.Fatalf("idx=%d: got %v, want ErrIndexOutOfRange", idx, err)
					}
				case !shadow[idx].rented:
					if err != registry.ErrNotRented {
						t.Fatalf("idx=%d not rented: got %v, want ErrNotRented", idx, err)
					}
				case clk.now.Before(shadow[idx].endTime):
					if err != registry.ErrNotYetEligible {
						t.Fatalf("idx=%d still running: got %v, want ErrNotYetEligible", idx, err)
					}
				default:
					if err != nil {
						t.Fatalf("eligible expire failed: %v", err)
					}
					shadow[idx].rented = false
					shadow[idx].renter = ""
					shadow[idx].endTime = time.Time{}
				}
			},
			"advance": func(t *rapid.T) {
				hours := rapid.IntRange(1, 5*24).Draw(t, "hours")
				clk.now = clk.now.Add(time.Duration(hours) * time.Hour)
			},
			"": func(t *rapid.T) {
				if reg.ItemCount() != len(shadow) {
					t.Fatalf("count %d, shadow has %d", reg.ItemCount(), len(shadow))
				}
				for i, want := range shadow {
					got, err := reg.GetItem(i)
					if err != nil {
						t.Fatalf("GetItem(%d): %v", i, err)
					}
					if got.Category != want.category || got.DailyRate != want.rate {
						t.Fatalf("item %d identity changed: %+v", i, got)
					}
					if want.rented {
						if got.Status != models.StatusRented || got.Renter != want.renter || !got.EndTime.Equal(want.endTime) {
							t.Fatalf("item %d: %+v, want rented by %s until %s", i, got, want.renter, want.endTime)
						}
					} else {
						if got.Status != models.StatusAvailable || got.Renter != "" || !got.EndTime.IsZero() {
							t.Fatalf("item %d should be clean and available: %+v", i, got)
						}
					}
				}
				for _, cat := range categories {
					if reg.IsAvailable(cat) != (firstAvailable(cat) >= 0) {
						t.Fatalf("IsAvailable(%s) disagrees with the item list", cat)
					}
				}
			},
		})
	})
}
