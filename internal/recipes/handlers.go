package recipes

import (
	"context"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
)

type handlers struct {
	store Store
}

// RegisterHandlers binds every recipe request to m.
func RegisterHandlers(m *mediator.Mediator, store Store) {
	h := &handlers{store: store}
	mediator.RegisterFunc(m, h.create)
	mediator.RegisterFunc(m, h.get)
	mediator.RegisterFunc(m, h.list)
	mediator.RegisterFunc(m, h.update)
	mediator.RegisterFunc(m, h.rate)
	mediator.RegisterFunc(m, h.delete)
}

func (h *handlers) create(ctx context.Context, req CreateRecipe) (*Recipe, error) {
	f := req.Fields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Create(ctx, f)
}

func (h *handlers) get(ctx context.Context, req GetRecipe) (*Recipe, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("recipe")
	}
	return h.store.Get(ctx, req.ID)
}

func (h *handlers) list(ctx context.Context, _ ListRecipes) ([]Recipe, error) {
	return h.store.List(ctx)
}

func (h *handlers) update(ctx context.Context, req UpdateRecipe) (*Recipe, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("recipe")
	}
	f := req.Fields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Update(ctx, req.ID, f)
}

func (h *handlers) rate(ctx context.Context, req RateRecipe) (*Recipe, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("recipe")
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}
	return h.store.SetRating(ctx, req.ID, req.Rating)
}

func (h *handlers) delete(ctx context.Context, req DeleteRecipe) (mediator.Unit, error) {
	if !ids.Valid(req.ID) {
		return mediator.Unit{}, apperr.NotFound("recipe")
	}
	ok, err := h.store.Delete(ctx, req.ID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("recipe")
	}
	return mediator.Unit{}, nil
}
