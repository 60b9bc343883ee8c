// stream/rentals.go
package stream

import (
	"context"
	"time"

	"Gin_redis_rental_registry/registry"

	"github.com/redis/go-redis/v9"
)

// RentalsStream is the Redis Stream every successful rent is appended to.
// It is written for external observers only; nothing in this service reads
// it back.
const RentalsStream = "registry:rentals"

// RentalLog publishes registry notifications to a Redis Stream.
type RentalLog struct {
	rdb *redis.Client
}

func NewRentalLog(rdb *redis.Client) *RentalLog { return &RentalLog{rdb: rdb} }

func (l *RentalLog) ItemRented(n registry.Notification) error {
	// Short deadline: the registry calls this inside its lock, and a slow
	// Redis must not stall rent calls.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return l.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: RentalsStream,
		Values: map[string]interface{}{
			"category": string(n.Category),
			"index":    n.Index,
			"renter":   n.Renter,
		},
	}).Err()
}
