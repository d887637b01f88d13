package travel

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/civil"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

type memStore struct {
	rows map[string]map[string]Destination
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]map[string]Destination)}
}

func (s *memStore) bucket(ctx context.Context) (map[string]Destination, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	if s.rows[tid] == nil {
		s.rows[tid] = make(map[string]Destination)
	}
	return s.rows[tid], nil
}

func apply(d *Destination, f Fields) {
	d.Country, d.City, d.Priority, d.Status = f.Country, f.City, f.Priority, f.Status
	d.EstimatedCost, d.VisitedOn, d.Notes = f.EstimatedCost, f.VisitedOn, f.Notes
	d.UpdatedAt = time.Now()
}

func (s *memStore) Create(ctx context.Context, f Fields) (*Destination, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	d := Destination{ID: ids.New(), CreatedAt: time.Now()}
	apply(&d, f)
	b[d.ID] = d
	return &d, nil
}

func (s *memStore) Get(ctx context.Context, id string) (*Destination, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	d, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("destination")
	}
	return &d, nil
}

var rank = map[string]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}

func (s *memStore) List(ctx context.Context, status string) ([]Destination, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Destination, 0, len(b))
	for _, d := range b {
		if status == "" || d.Status == status {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if rank[out[i].Priority] != rank[out[j].Priority] {
			return rank[out[i].Priority] < rank[out[j].Priority]
		}
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		return out[i].City < out[j].City
	})
	return out, nil
}

func (s *memStore) Update(ctx context.Context, id string, f Fields) (*Destination, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	d, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("destination")
	}
	apply(&d, f)
	b[id] = d
	return &d, nil
}

func (s *memStore) MarkVisited(ctx context.Context, id string, on civil.Date) (*Destination, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	d, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("destination")
	}
	d.Status, d.VisitedOn = StatusVisited, &on
	b[id] = d
	return &d, nil
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
