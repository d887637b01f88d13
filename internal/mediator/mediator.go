// Package mediator dispatches command and query objects to their handlers.
//
// Each request type has exactly one handler. Behaviors wrap every dispatch,
// which is where logging and metrics hook in.
package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	ErrNoHandler   = errors.New("no handler registered")
	ErrHandlerType = errors.New("handler response type mismatch")
)

// Handler processes one request type.
type Handler[Req any, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[Req any, Res any] func(ctx context.Context, req Req) (Res, error)

func (f HandlerFunc[Req, Res]) Handle(ctx context.Context, req Req) (Res, error) {
	return f(ctx, req)
}

// Next continues the pipeline.
type Next func(ctx context.Context) error

// Behavior wraps a dispatch. name is the request type name.
type Behavior func(ctx context.Context, name string, next Next) error

type Mediator struct {
	mu        sync.RWMutex
	handlers  map[reflect.Type]any
	behaviors []Behavior
}

// New creates a mediator. Behaviors run in the given order, outermost first.
func New(behaviors ...Behavior) *Mediator {
	return &Mediator{
		handlers:  make(map[reflect.Type]any),
		behaviors: behaviors,
	}
}

// Register binds h to Req. It panics if Req already has a handler.
func Register[Req any, Res any](m *Mediator, h Handler[Req, Res]) {
	t := reflect.TypeFor[Req]()

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.handlers[t]; exists {
		panic(fmt.Sprintf("mediator: duplicate handler for %s", t))
	}
	m.handlers[t] = h
}

// RegisterFunc is Register for plain functions.
func RegisterFunc[Req any, Res any](m *Mediator, fn func(ctx context.Context, req Req) (Res, error)) {
	Register[Req, Res](m, HandlerFunc[Req, Res](fn))
}

// Send dispatches req to its handler through the behavior pipeline.
func Send[Req any, Res any](ctx context.Context, m *Mediator, req Req) (Res, error) {
	var zero Res
	t := reflect.TypeFor[Req]()

	m.mu.RLock()
	raw, ok := m.handlers[t]
	m.mu.RUnlock()
	if !ok {
		return zero, fmt.Errorf("%w for %s", ErrNoHandler, t)
	}

	h, ok := raw.(Handler[Req, Res])
	if !ok {
		return zero, fmt.Errorf("%w for %s", ErrHandlerType, t)
	}

	var res Res
	final := func(ctx context.Context) error {
		var err error
		res, err = h.Handle(ctx, req)
		return err
	}

	if err := m.chain(t.Name(), final)(ctx); err != nil {
		return zero, err
	}
	return res, nil
}

func (m *Mediator) chain(name string, final Next) Next {
	next := final
	for i := len(m.behaviors) - 1; i >= 0; i-- {
		b := m.behaviors[i]
		inner := next
		next = func(ctx context.Context) error {
			return b(ctx, name, inner)
		}
	}
	return next
}

// Unit is the response of handlers that return nothing.
type Unit struct{}
