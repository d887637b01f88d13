package donations

import (
	"context"
	"sort"
	"time"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

type memStore struct {
	rows map[string]map[string]Donation
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]map[string]Donation)}
}

func (s *memStore) bucket(ctx context.Context) (map[string]Donation, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}
	if s.rows[tid] == nil {
		s.rows[tid] = make(map[string]Donation)
	}
	return s.rows[tid], nil
}

func apply(d *Donation, f Fields) {
	d.Organization, d.Amount, d.DonatedOn, d.Category = f.Organization, f.Amount, f.DonatedOn, f.Category
	d.TaxDeductible, d.ReceiptNumber, d.Notes = f.TaxDeductible, f.ReceiptNumber, f.Notes
	d.UpdatedAt = time.Now()
}

func (s *memStore) Create(ctx context.Context, f Fields) (*Donation, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	d := Donation{ID: ids.New(), CreatedAt: time.Now()}
	apply(&d, f)
	b[d.ID] = d
	return &d, nil
}

func (s *memStore) Get(ctx context.Context, id string) (*Donation, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	d, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("donation")
	}
	return &d, nil
}

func (s *memStore) List(ctx context.Context, year int) ([]Donation, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Donation, 0, len(b))
	for _, d := range b {
		if year == 0 || d.DonatedOn.Year == year {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DonatedOn.After(out[j].DonatedOn) })
	return out, nil
}

func (s *memStore) Update(ctx context.Context, id string, f Fields) (*Donation, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	d, ok := b[id]
	if !ok {
		return nil, apperr.NotFound("donation")
	}
	apply(&d, f)
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

func (s *memStore) Totals(ctx context.Context, year int) ([]CategoryTotal, error) {
	list, err := s.List(ctx, year)
	if err != nil {
		return nil, err
	}
	byCat := map[string]*CategoryTotal{}
	var out []CategoryTotal
	for _, d := range list {
		t, ok := byCat[d.Category]
		if !ok {
			t = &CategoryTotal{Category: d.Category}
			byCat[d.Category] = t
		}
		t.Count++
		t.Total += d.Amount
		if d.TaxDeductible {
			t.TaxDeductible += d.Amount
		}
	}
	for _, t := range byCat {
		out = append(out, *t)
	}
	return out, nil
}
