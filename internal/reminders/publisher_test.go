package reminders

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/anniversaries"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func upcoming(id string, next civil.Date) anniversaries.Upcoming {
	return anniversaries.Upcoming{
		Anniversary: anniversaries.Anniversary{ID: id, Name: "Mum", Kind: anniversaries.KindBirthday},
		NextDate:    next,
		DaysUntil:   3,
		Years:       60,
	}
}

func TestPublish_OncePerOccurrence(t *testing.T) {
	mr, client := newRedis(t)
	p := NewPublisher(client)
	ctx := context.Background()
	u := upcoming("a1", civil.Date{Year: 2026, Month: time.March, Day: 4})

	sent, err := p.Publish(ctx, "t1", u)
	require.NoError(t, err)
	assert.True(t, sent)

	sent, err = p.Publish(ctx, "t1", u)
	require.NoError(t, err)
	assert.False(t, sent)

	queued, err := mr.List(QueueKey)
	require.NoError(t, err)
	require.Len(t, queued, 1)

	var ev Event
	require.NoError(t, json.Unmarshal([]byte(queued[0]), &ev))
	assert.Equal(t, "t1", ev.TenantID)
	assert.Equal(t, "a1", ev.AnniversaryID)
	assert.Equal(t, "2026-03-04", ev.NextDate)
	assert.Equal(t, 60, ev.Years)

	key := "trackers:reminder:t1:a1:2026-03-04"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, dedupeTTL, mr.TTL(key))
}

func TestPublish_NextOccurrenceIsNew(t *testing.T) {
	mr, client := newRedis(t)
	p := NewPublisher(client)
	ctx := context.Background()

	_, err := p.Publish(ctx, "t1", upcoming("a1", civil.Date{Year: 2026, Month: time.March, Day: 4}))
	require.NoError(t, err)
	sent, err := p.Publish(ctx, "t1", upcoming("a1", civil.Date{Year: 2027, Month: time.March, Day: 4}))
	require.NoError(t, err)
	assert.True(t, sent)

	// same anniversary id under another tenant is independent
	sent, err = p.Publish(ctx, "t2", upcoming("a1", civil.Date{Year: 2026, Month: time.March, Day: 4}))
	require.NoError(t, err)
	assert.True(t, sent)

	queued, err := mr.List(QueueKey)
	require.NoError(t, err)
	assert.Len(t, queued, 3)
}

func TestPublish_Subscriber(t *testing.T) {
	_, client := newRedis(t)
	p := NewPublisher(client)
	ctx := context.Background()

	sub := client.Subscribe(ctx, Channel("t1"))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	_, err = p.Publish(ctx, "t1", upcoming("a1", civil.Date{Year: 2026, Month: time.March, Day: 4}))
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "trackers:reminders:t1", msg.Channel)
		assert.Contains(t, msg.Payload, `"anniversary_id":"a1"`)
	case <-time.After(2 * time.Second):
		t.Fatal("no reminder received")
	}
}

func TestPublish_RedisDown(t *testing.T) {
	mr, client := newRedis(t)
	mr.Close()

	_, err := NewPublisher(client).Publish(context.Background(), "t1",
		upcoming("a1", civil.Date{Year: 2026, Month: time.March, Day: 4}))
	assert.Error(t, err)
}
