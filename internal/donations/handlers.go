package donations

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

// RegisterHandlers binds every donation request to m. now may be nil.
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
	mediator.RegisterFunc(m, h.summary)
}

func (h *handlers) today() civil.Date {
	return civil.DateOf(h.now())
}

func validYear(y int) error {
	if y < 1 || y > 9999 {
		return apperr.Invalid("year must be between 1 and 9999")
	}
	return nil
}

func (h *handlers) create(ctx context.Context, req CreateDonation) (*Donation, error) {
	f := req.Fields.Normalize(h.today())
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Create(ctx, f)
}

func (h *handlers) get(ctx context.Context, req GetDonation) (*Donation, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("donation")
	}
	return h.store.Get(ctx, req.ID)
}

func (h *handlers) list(ctx context.Context, req ListDonations) ([]Donation, error) {
	if req.Year != 0 {
		if err := validYear(req.Year); err != nil {
			return nil, err
		}
	}
	return h.store.List(ctx, req.Year)
}

func (h *handlers) update(ctx context.Context, req UpdateDonation) (*Donation, error) {
	if !ids.Valid(req.ID) {
		return nil, apperr.NotFound("donation")
	}
	f := req.Fields.Normalize(h.today())
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return h.store.Update(ctx, req.ID, f)
}

func (h *handlers) delete(ctx context.Context, req DeleteDonation) (mediator.Unit, error) {
	if !ids.Valid(req.ID) {
		return mediator.Unit{}, apperr.NotFound("donation")
	}
	ok, err := h.store.Delete(ctx, req.ID)
	if err != nil {
		return mediator.Unit{}, err
	}
	if !ok {
		return mediator.Unit{}, apperr.NotFound("donation")
	}
	return mediator.Unit{}, nil
}

func (h *handlers) summary(ctx context.Context, req GetSummary) (*Summary, error) {
	year := req.Year
	if year == 0 {
		year = h.today().Year
	}
	if err := validYear(year); err != nil {
		return nil, err
	}
	rows, err := h.store.Totals(ctx, year)
	if err != nil {
		return nil, err
	}
	s := Summarize(year, rows)
	return &s, nil
}
