package mediator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct{ N int }
type pong struct{ N int }

type recorded struct {
	name string
	err  error
}

type fakeRecorder struct{ calls []recorded }

func (f *fakeRecorder) ObserveRequest(name string, _ time.Duration, err error) {
	f.calls = append(f.calls, recorded{name: name, err: err})
}

func TestSend(t *testing.T) {
	m := New()
	RegisterFunc(m, func(_ context.Context, p ping) (pong, error) {
		return pong{N: p.N + 1}, nil
	})

	res, err := Send[ping, pong](context.Background(), m, ping{N: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, res.N)
}

func TestSend_NoHandler(t *testing.T) {
	m := New()
	_, err := Send[ping, pong](context.Background(), m, ping{})
	assert.ErrorIs(t, err, ErrNoHandler)
}

func TestSend_WrongResponseType(t *testing.T) {
	m := New()
	RegisterFunc(m, func(_ context.Context, p ping) (pong, error) { return pong{}, nil })

	_, err := Send[ping, string](context.Background(), m, ping{})
	assert.ErrorIs(t, err, ErrHandlerType)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	m := New()
	fn := func(_ context.Context, p ping) (pong, error) { return pong{}, nil }
	RegisterFunc(m, fn)
	assert.Panics(t, func() { RegisterFunc(m, fn) })
}

func TestBehaviorsOrder(t *testing.T) {
	var order []string
	tag := func(label string) Behavior {
		return func(ctx context.Context, name string, next Next) error {
			order = append(order, label+":"+name)
			return next(ctx)
		}
	}

	m := New(tag("outer"), tag("inner"))
	RegisterFunc(m, func(_ context.Context, p ping) (pong, error) {
		order = append(order, "handler")
		return pong{}, nil
	})

	_, err := Send[ping, pong](context.Background(), m, ping{})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer:ping", "inner:ping", "handler"}, order)
}

func TestMetricsBehavior(t *testing.T) {
	rec := &fakeRecorder{}
	boom := errors.New("boom")

	m := New(Metrics(rec))
	RegisterFunc(m, func(_ context.Context, p ping) (pong, error) {
		if p.N < 0 {
			return pong{}, boom
		}
		return pong{}, nil
	})

	_, _ = Send[ping, pong](context.Background(), m, ping{N: 1})
	_, err := Send[ping, pong](context.Background(), m, ping{N: -1})
	assert.ErrorIs(t, err, boom)

	require.Len(t, rec.calls, 2)
	assert.Equal(t, "ping", rec.calls[0].name)
	assert.NoError(t, rec.calls[0].err)
	assert.ErrorIs(t, rec.calls[1].err, boom)
}
