package anniversaries

import (
	"context"
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

// RegisterHandlers binds every anniversary request to m. now may be nil.
func RegisterHandlers(m *mediator.Mediator, store Store, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	h := &handlers{store: store, now: now}
	mediator.RegisterFunc(m, h.create)
	mediator.RegisterFunc(m, h.get)
	mediator.RegisterFunc(m, h.list)
	mediator.RegisterFunc(m, h.update)
	mediator.RegisterFunc(m, h.delete)
	mediator.RegisterFunc(m, h.upcoming)
	mediator.RegisterFunc(m, h.due)
}

func (h *handlers) today() civil.Date {
	return civil.DateOf(h.now())
}

func (h *handlers) create(ctx context.Context, req CreateAnniversary) (*Anniversary, error) {
	f := req.Fields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Create(ctx, f)
}

func (h *handlers) get(ctx context.Context, req GetAnniversary) (*Anniversary, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("anniversary")
	}
	return h.store.Get(ctx, req.ID)
}

func (h *handlers) list(ctx context.Context, _ ListAnniversaries) ([]Anniversary, error) {
	return h.store.List(ctx)
}

func (h *handlers) update(ctx context.Context, req UpdateAnniversary) (*Anniversary, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("anniversary")
	}
	f := req.Fields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Update(ctx, req.ID, f)
}

func (h *handlers) delete(ctx context.Context, req DeleteAnniversary) (mediator.Unit, error) {
	if !ids.Valid(req.ID) {
		return mediator.Unit{}, apperr.NotFound("anniversary")
	}
	ok, err := h.store.Delete(ctx, req.ID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("anniversary")
	}
	return mediator.Unit{}, nil
}

func (h *handlers) upcoming(ctx context.Context, req ListUpcoming) ([]Upcoming, error) {
	days := req.Days
	if days < 1 || days > MaxUpcomingDays {
		return nil, apperr.Invalid("days must be between 1 and %d", MaxUpcomingDays)
	}
	items, err := h.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return Within(items, h.today(), days), nil
}

func (h *handlers) due(ctx context.Context, _ ListDue) ([]Upcoming, error) {
	items, err := h.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return Due(items, h.today()), nil
}
