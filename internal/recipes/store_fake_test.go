package recipes

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

// memStore is an in-memory Store keyed by tenant.
type memStore struct {
	rows map[string]map[string]Recipe
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]map[string]Recipe)}
}

func (s *memStore) bucket(ctx context.Context) (map[string]Recipe, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	if s.rows[tid] == nil {
		s.rows[tid] = make(map[string]Recipe)
	}
	return s.rows[tid], nil
}

func apply(r *Recipe, f Fields) {
	r.Name, r.Meat, r.Wood = f.Name, f.Meat, f.Wood
	r.SmokerTempF, r.CookMinutes, r.Rating, r.Notes = f.SmokerTempF, f.CookMinutes, f.Rating, f.Notes
	r.UpdatedAt = time.Now()
}

func (s *memStore) Create(ctx context.Context, f Fields) (*Recipe, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	r := Recipe{ID: ids.New(), CreatedAt: time.Now()}
	apply(&r, f)
	b[r.ID] = r
	return &r, nil
}

func (s *memStore) Get(ctx context.Context, id string) (*Recipe, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	r, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("recipe")
	}
	return &r, nil
}

func (s *memStore) List(ctx context.Context) ([]Recipe, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Recipe, 0, len(b))
	for _, r := range b {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}

func (s *memStore) Update(ctx context.Context, id string, f Fields) (*Recipe, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	r, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("recipe")
	}
	apply(&r, f)
	b[id] = r
	return &r, nil
}

func (s *memStore) SetRating(ctx context.Context, id string, rating int) (*Recipe, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	r, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("recipe")
	}
	r.Rating = &rating
	b[id] = r
	return &r, nil
}

func (s *memStore) Delete(ctx context.Context, id string) (bool, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return false, err
	}
	if _, ok := b[id]; !ok {
		return false, nil
	}
	delete(b, id)
	return true, nil
}
