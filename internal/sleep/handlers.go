package sleep

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
	mediator.RegisterFunc(m, h.stats)
}

func (h *handlers) create(ctx context.Context, req CreateRecord) (*Record, error) {
	f := req.Fields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Create(ctx, f)
}

func (h *handlers) get(ctx context.Context, req GetRecord) (*Record, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("sleep record")
	}
	return h.store.Get(ctx, req.ID)
}

func (h *handlers) list(ctx context.Context, req ListRecords) ([]Record, error) {
	if err := req.Range.validate(); err != nil {
		return nil, err
	}
	return h.store.List(ctx, req.Range)
}

func (h *handlers) update(ctx context.Context, req UpdateRecord) (*Record, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("sleep record")
	}
	f := req.Fields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Update(ctx, req.ID, f)
}

func (h *handlers) delete(ctx context.Context, req DeleteRecord) (mediator.Unit, error) {
	if !ids.Valid(req.ID) {
		return mediator.Unit{}, apperr.NotFound("sleep record")
	}
	ok, err := h.store.Delete(ctx, req.ID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("sleep record")
	}
	return mediator.Unit{}, nil
}

func (h *handlers) stats(ctx context.Context, req GetStats) (*Stats, error) {
	if err := req.Range.validate(); err != nil {
		return nil, err
	}
	return h.store.Stats(ctx, req.Range)
}
