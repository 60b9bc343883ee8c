// models/item.go
package models

import (
	"strings"
	"time"
)

// Category classifies items for availability search. Closed set; anything
// else is rejected at the API boundary.
type Category string

const (
	CategoryCactus Category = "cactus"
	CategoryFern   Category = "fern"
	CategoryBonsai Category = "bonsai"
)

// ParseCategory maps user input onto the closed category set.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryCactus:
		return CategoryCactus, true
	case CategoryFern:
		return CategoryFern, true
	case CategoryBonsai:
		return CategoryBonsai, true
	}
	return "", false
}

// Status is the item lifecycle state.
type Status string

const (
	StatusAvailable Status = "available"
	StatusRented    Status = "rented"
	// StatusExpired is reserved vocabulary: no transition assigns it. An
	// elapsed rental stays rented until someone expires it back to available.
	StatusExpired Status = "expired"
)

// Item is one rentable unit. The index in the registry is its identifier;
// items are never deleted, so indices stay stable.
type Item struct {
	Category Category `json:"category"`
	Status   Status   `json:"status"`

	// DailyRate is informational only. It is recorded at listing time and
	// never charged or transferred anywhere.
	DailyRate int64 `json:"dailyRate"`

	EndTime time.Time `json:"endTime,omitzero"`
	Renter  string    `json:"renter,omitempty"`
}
