package properties

import (
	"context"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
)

type handlers struct {
	store Store
}

// RegisterHandlers binds property and lease requests to m.
func RegisterHandlers(m *mediator.Mediator, store Store) {
	h := &handlers{store: store}
	mediator.RegisterFunc(m, h.createProperty)
	mediator.RegisterFunc(m, h.getProperty)
	mediator.RegisterFunc(m, h.listProperties)
	mediator.RegisterFunc(m, h.updateProperty)
	mediator.RegisterFunc(m, h.deleteProperty)

	mediator.RegisterFunc(m, h.createLease)
	mediator.RegisterFunc(m, h.getLease)
	mediator.RegisterFunc(m, h.listLeases)
	mediator.RegisterFunc(m, h.updateLease)
	mediator.RegisterFunc(m, h.deleteLease)
}

func (h *handlers) createProperty(ctx context.Context, req CreateProperty) (*Property, error) {
	f := req.PropertyFields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.CreateProperty(ctx, f)
}

func (h *handlers) getProperty(ctx context.Context, req GetProperty) (*Property, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("property")
	}
	return h.store.GetProperty(ctx, req.ID)
}

func (h *handlers) listProperties(ctx context.Context, _ ListProperties) ([]Property, error) {
	return h.store.ListProperties(ctx)
}

func (h *handlers) updateProperty(ctx context.Context, req UpdateProperty) (*Property, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("property")
	}
	f := req.PropertyFields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.UpdateProperty(ctx, req.ID, f)
}

func (h *handlers) deleteProperty(ctx context.Context, req DeleteProperty) (mediator.Unit, error) {
	if !ids.Valid(req.ID) {
		return mediator.Unit{}, apperr.NotFound("property")
	}
	ok, err := h.store.DeleteProperty(ctx, req.ID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("property")
	}
	return mediator.Unit{}, nil
}

func (h *handlers) createLease(ctx context.Context, req CreateLease) (*Lease, error) {
	f := req.LeaseFields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.CreateLease(ctx, f)
}

func (h *handlers) getLease(ctx context.Context, req GetLease) (*Lease, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("lease")
	}
	return h.store.GetLease(ctx, req.ID)
}

func (h *handlers) listLeases(ctx context.Context, req ListLeases) ([]Lease, error) {
	if req.PropertyID != "" {
		if !ids.Valid(req.PropertyID) {
			return nil, apperr.NotFound("property")
		}
		if _, err := h.store.GetProperty(ctx, req.PropertyID); err != nil {
			return nil, err
		}
	}
	return h.store.ListLeases(ctx, req.PropertyID)
}

func (h *handlers) updateLease(ctx context.Context, req UpdateLease) (*Lease, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("lease")
	}
	f := req.LeaseFields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.UpdateLease(ctx, req.ID, f)
}

func (h *handlers) deleteLease(ctx context.Context, req DeleteLease) (mediator.Unit, error) {
	if !ids.Valid(req.ID) {
		return mediator.Unit{}, apperr.NotFound("lease")
	}
	ok, err := h.store.DeleteLease(ctx, req.ID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("lease")
	}
	return mediator.Unit{}, nil
}
