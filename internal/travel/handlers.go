package travel

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
)

type handlers struct {
	store Store
	now   func() time.Time
}

// RegisterHandlers binds every destination request to m. now may be nil.
func RegisterHandlers(m *mediator.Mediator, store Store, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	h := &handlers{store: store, now: now}
	mediator.RegisterFunc(m, h.create)
	mediator.RegisterFunc(m, h.get)
	mediator.RegisterFunc(m, h.list)
	mediator.RegisterFunc(m, h.update)
	mediator.RegisterFunc(m, h.visit)
	mediator.RegisterFunc(m, h.delete)
}

func (h *handlers) today() civil.Date {
	return civil.DateOf(h.now())
}

func (h *handlers) create(ctx context.Context, req CreateDestination) (*Destination, error) {
	f := req.Fields.Normalize(h.today())
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Create(ctx, f)
}

func (h *handlers) get(ctx context.Context, req GetDestination) (*Destination, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("destination")
	}
	return h.store.Get(ctx, req.ID)
}

func (h *handlers) list(ctx context.Context, req ListDestinations) ([]Destination, error) {
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != "" && !statuses[status] {
		return nil, apperr.Invalid("status must be one of wishlist, planned, visited")
	}
	return h.store.List(ctx, status)
}

func (h *handlers) update(ctx context.Context, req UpdateDestination) (*Destination, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("destination")
	}
	f := req.Fields.Normalize(h.today())
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Update(ctx, req.ID, f)
}

func (h *handlers) visit(ctx context.Context, req MarkVisited) (*Destination, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("destination")
	}
	on := h.today()
	if req.VisitedOn != nil {
		if !req.VisitedOn.IsValid() {
			return nil, apperr.Invalid("visited_on must be a valid date")
		}
		on = *req.VisitedOn
	}
	return h.store.MarkVisited(ctx, req.ID, on)
}

func (h *handlers) delete(ctx context.Context, req DeleteDestination) (mediator.Unit, error) {
	if !ids.Valid(req.ID) {
		return mediator.Unit{}, apperr.NotFound("destination")
	}
	ok, err := h.store.Delete(ctx, req.ID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("destination")
	}
	return mediator.Unit{}, nil
}
