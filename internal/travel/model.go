// Package travel keeps the destination wishlist.
package travel

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/money"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusWishlist = "wishlist"
	StatusPlanned  = "planned"
	StatusVisited  = "visited"
)

var priorities = map[string]bool{PriorityLow: true, PriorityMedium: true, PriorityHigh: true}

var statuses = map[string]bool{StatusWishlist: true, StatusPlanned: true, StatusVisited: true}

type Destination struct {
	ID            string      `json:"id"`
	Country       string      `json:"country"`
	City          string      `json:"city"`
	Priority      string      `json:"priority"`
	Status        string      `json:"status"`
	EstimatedCost float64     `json:"estimated_cost"`
	VisitedOn     *civil.Date `json:"visited_on"`
	Notes         string      `json:"notes"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type Fields struct {
	Country       string      `json:"country" yaml:"country"`
	City          string      `json:"city" yaml:"city"`
	Priority      string      `json:"priority" yaml:"priority"`
	Status        string      `json:"status" yaml:"status"`
	EstimatedCost float64     `json:"estimated_cost" yaml:"estimated_cost"`
	VisitedOn     *civil.Date `json:"visited_on" yaml:"visited_on"`
	Notes         string      `json:"notes" yaml:"notes"`
}

// Normalize fills defaults. A visited destination always carries a date; any other status clears it.
func (f Fields) Normalize(today civil.Date) Fields {
	f.Country = strings.TrimSpace(f.Country)
	f.City = strings.TrimSpace(f.City)
	f.Notes = strings.TrimSpace(f.Notes)
	f.Priority = strings.ToLower(strings.TrimSpace(f.Priority))
	if f.Priority == "" {
		f.Priority = PriorityMedium
	}
	f.Status = strings.ToLower(strings.TrimSpace(f.Status))
	if f.Status == "" {
		f.Status = StatusWishlist
	}
	f.EstimatedCost = money.Round(f.EstimatedCost)

	switch {
	case f.Status != StatusVisited:
		f.VisitedOn = nil
	case f.VisitedOn == nil:
		d := today
		f.VisitedOn = &d
	}
	return f
}

func (f Fields) Validate() error {
	if f.Country == "" {
		return apperr.Invalid("country is required")
	}
	if !priorities[f.Priority] {
		return apperr.Invalid("priority must be one of low, medium, high")
	}
	if !statuses[f.Status] {
		return apperr.Invalid("status must be one of wishlist, planned, visited")
	}
	if f.EstimatedCost < 0 {
		return apperr.Invalid("estimated_cost must not be negative")
	}
	if !money.Fits(f.EstimatedCost, 12) {
		return apperr.Invalid("estimated_cost is too large")
	}
	if f.VisitedOn != nil && !f.VisitedOn.IsValid() {
		return apperr.Invalid("visited_on must be a valid date")
	}
	return nil
}

type CreateDestination struct {
	Fields
}

type GetDestination struct {
	ID string
}

// ListDestinations filters by status when Status is set.
type ListDestinations struct {
	Status string
}

type UpdateDestination struct {
	ID string
	Fields
}

// MarkVisited sets status visited. VisitedOn defaults to today.
type MarkVisited struct {
	ID        string
	VisitedOn *civil.Date
}

type DeleteDestination struct {
	ID string
}
