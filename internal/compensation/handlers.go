package compensation

import (
	"context"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
)

type handlers struct {
	store Store
}

func RegisterHandlers(m *mediator.Mediator, store Store) {
	h := &handlers{store: store}
	mediator.RegisterFunc(m, h.create)
	mediator.RegisterFunc(m, h.get)
	mediator.RegisterFunc(m, h.list)
	mediator.RegisterFunc(m, h.update)
	mediator.RegisterFunc(m, h.delete)
}

func (h *handlers) create(ctx context.Context, req CreateCompensation) (*Compensation, error) {
	f := req.Fields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Create(ctx, f)
}

func (h *handlers) get(ctx context.Context, req GetCompensation) (*Compensation, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("compensation")
	}
	return h.store.Get(ctx, req.ID)
}

func (h *handlers) list(ctx context.Context, _ ListCompensations) ([]Compensation, error) {
	return h.store.List(ctx)
}

func (h *handlers) update(ctx context.Context, req UpdateCompensation) (*Compensation, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("compensation")
	}
	f := req.Fields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Update(ctx, req.ID, f)
}

func (h *handlers) delete(ctx context.Context, req DeleteCompensation) (mediator.Unit, error) {
	if !ids.Valid(req.ID) {
		return mediator.Unit{}, apperr.NotFound("compensation")
	}
	ok, err := h.store.Delete(ctx, req.ID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("compensation")
	}
	return mediator.Unit{}, nil
}
