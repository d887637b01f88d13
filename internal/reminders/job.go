package reminders

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/anniversaries"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenants"
)

type TenantLister interface {
	List(ctx context.Context) ([]tenants.Tenant, error)
}

type Sink interface {
	Publish(ctx context.Context, tenantID string, u anniversaries.Upcoming) (bool, error)
}

// Result counts what one pass did.
type Result struct {
	Tenants   int `json:"tenants"`
	Due       int `json:"due"`
	Published int `json:"published"`
	Failed    int `json:"failed"`
}

type Job struct {
	tenants TenantLister
	m       *mediator.Mediator
	sink    Sink
	logger  *slog.Logger
}

func NewJob(tl TenantLister, m *mediator.Mediator, sink Sink, logger *slog.Logger) *Job {
	if logger == nil {
		logger = slog.Default()
	}
	return &Job{tenants: tl, m: m, sink: sink, logger: logger}
}

// Run makes one pass over every tenant. A failing tenant is logged and
// skipped; the error is only returned when tenants cannot be listed.
func (j *Job) Run(ctx context.Context) (Result, error) {
	var res Result

	list, err := j.tenants.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list tenants: %w", err)
	}

	for _, t := range list {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Tenants++

		tctx := tenant.WithID(ctx, t.ID)
		due, err := mediator.Send[anniversaries.ListDue, []anniversaries.Upcoming](tctx, j.m, anniversaries.ListDue{})
		if err != nil {
			j.logger.Error("list due reminders", "tenant_id", t.ID, "error", err)
			res.Failed++
			continue
		}
		res.Due += len(due)

		for _, u := range due {
			sent, err := j.sink.Publish(ctx, t.ID, u)
			if err != nil {
				j.logger.Error("publish reminder", "tenant_id", t.ID, "anniversary_id", u.ID, "error", err)
				res.Failed++
				continue
			}
			if sent {
				res.Published++
			}
		}
	}

	j.logger.Info("reminder pass finished",
		"tenants", res.Tenants, "due", res.Due, "published", res.Published, "failed", res.Failed)
	return res, nil
}
