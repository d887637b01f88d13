// Package reminders dispatches due anniversary reminders through Redis.
package reminders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/anniversaries"
)

const (
	dedupeKeyPrefix = "trackers:reminder:"  // trackers:reminder:{tenant}:{anniversary}:{next_date}
	channelPrefix   = "trackers:reminders:" // trackers:reminders:{tenant}
	QueueKey        = "trackers:reminders:queue"
	dedupeTTL       = 400 * 24 * time.Hour
)

// Event is the payload published for one due reminder.
type Event struct {
	ID            string `json:"id"`
	TenantID      string `json:"tenant_id"`
	AnniversaryID string `json:"anniversary_id"`
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	NextDate      string `json:"next_date"`
	DaysUntil     int    `json:"days_until"`
	Years         int    `json:"years"`
	SentAt        string `json:"sent_at"`
}

type Publisher struct {
	client *redis.Client
	now    func() time.Time
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client, now: time.Now}
}

func dedupeKey(tenantID, anniversaryID, nextDate string) string {
	return fmt.Sprintf("%s%s:%s:%s", dedupeKeyPrefix, tenantID, anniversaryID, nextDate)
}

// Channel is the pub/sub channel carrying a tenant's reminders.
func Channel(tenantID string) string {
	return channelPrefix + tenantID
}

// Publish sends the reminder unless this occurrence was already sent.
// It reports whether anything was published.
func (p *Publisher) Publish(ctx context.Context, tenantID string, u anniversaries.Upcoming) (bool, error) {
	next := u.NextDate.String()
	key := dedupeKey(tenantID, u.ID, next)

	fresh, err := p.client.SetNX(ctx, key, p.now().UTC().Format(time.RFC3339), dedupeTTL).Result()
	if err != nil {
		return false, fmt.Errorf("reserve reminder: %w", err)
	}
	if !fresh {
		return false, nil
	}

	data, err := json.Marshal(Event{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		AnniversaryID: u.ID,
		Name:          u.Name,
		Kind:          u.Kind,
		NextDate:      next,
		DaysUntil:     u.DaysUntil,
		Years:         u.Years,
		SentAt:        p.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		_ = p.client.Del(ctx, key).Err()
		return false, fmt.Errorf("marshal reminder: %w", err)
	}

	pipe := p.client.Pipeline()
	pipe.Publish(ctx, Channel(tenantID), data)
	pipe.RPush(ctx, QueueKey, data)
	if _, err := pipe.Exec(ctx); err != nil {
		// release so the next pass retries
		_ = p.client.Del(ctx, key).Err()
		return false, fmt.Errorf("publish reminder: %w", err)
	}
	return true, nil
}
