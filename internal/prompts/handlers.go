package prompts

import (
	"context"
	"strings"

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
	mediator.RegisterFunc(m, h.addFavorite)
	mediator.RegisterFunc(m, h.listFavorites)
	mediator.RegisterFunc(m, h.removeFavorite)
}

func (h *handlers) create(ctx context.Context, req CreatePrompt) (*Prompt, error) {
	f := req.Fields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Create(ctx, f)
}

func (h *handlers) get(ctx context.Context, req GetPrompt) (*Prompt, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("prompt")
	}
	return h.store.Get(ctx, req.ID)
}

func (h *handlers) list(ctx context.Context, req ListPrompts) ([]Prompt, error) {
	return h.store.List(ctx, req.Tag)
}

func (h *handlers) update(ctx context.Context, req UpdatePrompt) (*Prompt, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("prompt")
	}
	f := req.Fields.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Update(ctx, req.ID, f)
}

func (h *handlers) delete(ctx context.Context, req DeletePrompt) (mediator.Unit, error) {
	if !ids.Valid(req.ID) {
		return mediator.Unit{}, apperr.NotFound("prompt")
	}
	ok, err := h.store.Delete(ctx, req.ID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("prompt")
	}
	return mediator.Unit{}, nil
}

func (h *handlers) addFavorite(ctx context.Context, req AddFavorite) (*Favorite, error) {
	if !ids.Valid(req.PromptID) {
		return nil, apperr.NotFound("prompt")
	}
	return h.store.AddFavorite(ctx, req.PromptID, strings.TrimSpace(req.Note))
}

func (h *handlers) listFavorites(ctx context.Context, req ListFavorites) ([]Favorite, error) {
	if !ids.Valid(req.PromptID) {
		return nil, apperr.NotFound("prompt")
	}
	if _, err := h.store.Get(ctx, req.PromptID); err != nil {
		return nil, err
	}
	return h.store.ListFavorites(ctx, req.PromptID)
}

func (h *handlers) removeFavorite(ctx context.Context, req RemoveFavorite) (mediator.Unit, error) {
	if !ids.Valid(req.PromptID) || !ids.Valid(req.FavoriteID) {
		return mediator.Unit{}, apperr.NotFound("favorite")
	}
	ok, err := h.store.RemoveFavorite(ctx, req.PromptID, req.FavoriteID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("favorite")
	}
	return mediator.Unit{}, nil
}
