package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"gigboard/internal/models"
)

const upcomingKey = "gigboard:events:upcoming"

// EventCache keeps the public upcoming-events listing in Redis for a
// short TTL. Admin mutations invalidate it; everything here is best
// effort and a Redis failure just means a store round trip.
type EventCache struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *log.Logger
}

func NewEventCache(client *redis.Client, ttl time.Duration) *EventCache {
	return &EventCache{
		Client: client,
		TTL:    ttl,
		Logger: log.Default(),
	}
}

func (c *EventCache) GetUpcoming() ([]models.Event, bool) {
	payload, err := c.Client.Get(context.Background(), upcomingKey).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.Logger.Printf("REDIS: failed to read events cache: %v", err)
		return nil, false
	}

	var events []models.Event
	if err := json.Unmarshal([]byte(payload), &events); err != nil {
		c.Logger.Printf("REDIS: dropping unreadable events cache: %v", err)
		c.Invalidate()
		return nil, false
	}
	return events, true
}

func (c *EventCache) SetUpcoming(events []models.Event) {
	payload, err := json.Marshal(events)
	if err != nil {
		c.Logger.Printf("REDIS: failed to marshal events cache: %v", err)
		return
	}
	if err := c.Client.Set(context.Background(), upcomingKey, payload, c.TTL).Err(); err != nil {
		c.Logger.Printf("REDIS: failed to write events cache: %v", err)
	}
}

func (c *EventCache) Invalidate() {
	if err := c.Client.Del(context.Background(), upcomingKey).Err(); err != nil {
		c.Logger.Printf("REDIS: failed to invalidate events cache: %v", err)
	}
}
