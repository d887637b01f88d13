package anniversaries

import (
	"context"
	"sort"
	"time"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

type memStore struct {
	rows map[string]map[string]Anniversary
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]map[string]Anniversary)}
}

func (s *memStore) bucket(ctx context.Context) (map[string]Anniversary, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	if s.rows[tid] == nil {
		s.rows[tid] = make(map[string]Anniversary)
	}
	return s.rows[tid], nil
}

func apply(a *Anniversary, f Fields) {
	a.Name, a.Date, a.Kind, a.RemindDaysBefore, a.Notes = f.Name, f.Date, f.Kind, f.remindDays(), f.Notes
	a.UpdatedAt = time.Now()
}

func (s *memStore) Create(ctx context.Context, f Fields) (*Anniversary, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	a := Anniversary{ID: ids.New(), CreatedAt: time.Now()}
	apply(&a, f)
	b[a.ID] = a
	return &a, nil
}

func (s *memStore) Get(ctx context.Context, id string) (*Anniversary, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	a, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("anniversary")
	}
	return &a, nil
}

func (s *memStore) List(ctx context.Context) ([]Anniversary, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Anniversary, 0, len(b))
	for _, a := range b {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Month != out[j].Date.Month {
			return out[i].Date.Month < out[j].Date.Month
		}
		return out[i].Date.Day < out[j].Date.Day
	})
	return out, nil
}

func (s *memStore) Update(ctx context.Context, id string, f Fields) (*Anniversary, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	a, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("anniversary")
	}
	apply(&a, f)
	b[id] = a
	return &a, nil
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
