// Package properties manages rental properties and the leases written against them.
//
// A lease may exist without a property. Deleting a property detaches its leases.
package properties

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/money"
)

const (
	KindHouse      = "house"
	KindApartment  = "apartment"
	KindCondo      = "condo"
	KindCommercial = "commercial"
	KindOther      = "other"

	LeasePending = "pending"
	LeaseActive  = "active"
	LeaseEnded   = "ended"
)

var kinds = map[string]bool{KindHouse: true, KindApartment: true, KindCondo: true, KindCommercial: true, KindOther: true}

var leaseStatuses = map[string]bool{LeasePending: true, LeaseActive: true, LeaseEnded: true}

type Property struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Kind             string    `json:"kind"`
	PurchasePrice    float64   `json:"purchase_price"`
	ActiveLeaseCount int       `json:"active_lease_count"`
	MonthlyIncome    float64   `json:"monthly_income"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PropertyFields struct {
	Name          string  `json:"name" yaml:"name"`
	Address       string  `json:"address" yaml:"address"`
	Kind          string  `json:"kind" yaml:"kind"`
	PurchasePrice float64 `json:"purchase_price" yaml:"purchase_price"`
}

func (f PropertyFields) Normalize() PropertyFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Address = strings.TrimSpace(f.Address)
	f.Kind = strings.ToLower(strings.TrimSpace(f.Kind))
	if f.Kind == "" {
		f.Kind = KindOther
	}
	f.PurchasePrice = money.Round(f.PurchasePrice)
	return f
}

func (f PropertyFields) Validate() error {
	if f.Name == "" {
		return apperr.Invalid("name is required")
	}
	if f.Address == "" {
		return apperr.Invalid("address is required")
	}
	if !kinds[f.Kind] {
		return apperr.Invalid("kind must be one of house, apartment, condo, commercial, other")
	}
	if f.PurchasePrice < 0 {
		return apperr.Invalid("purchase_price must not be negative")
	}
	if !money.Fits(f.PurchasePrice, 14) {
		return apperr.Invalid("purchase_price is too large")
	}
	return nil
}

type Lease struct {
	ID          string      `json:"id"`
	PropertyID  *string     `json:"property_id"`
	TenantName  string      `json:"tenant_name"`
	MonthlyRent float64     `json:"monthly_rent"`
	Deposit     float64     `json:"deposit"`
	StartDate   civil.Date  `json:"start_date"`
	EndDate     *civil.Date `json:"end_date"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type LeaseFields struct {
	PropertyID  *string     `json:"property_id" yaml:"property_id"`
	TenantName  string      `json:"tenant_name" yaml:"tenant_name"`
	MonthlyRent float64     `json:"monthly_rent" yaml:"monthly_rent"`
	Deposit     float64     `json:"deposit" yaml:"deposit"`
	StartDate   civil.Date  `json:"start_date" yaml:"start_date"`
	EndDate     *civil.Date `json:"end_date" yaml:"end_date"`
	Status      string      `json:"status" yaml:"status"`
}

func (f LeaseFields) Normalize() LeaseFields {
	if f.PropertyID != nil {
		id := strings.TrimSpace(*f.PropertyID)
		if id == "" {
			f.PropertyID = nil
		} else {
			f.PropertyID = &id
		}
	}
	f.TenantName = strings.TrimSpace(f.TenantName)
	f.MonthlyRent = money.Round(f.MonthlyRent)
	f.Deposit = money.Round(f.Deposit)
	f.Status = strings.ToLower(strings.TrimSpace(f.Status))
	if f.Status == "" {
		f.Status = LeaseActive
	}
	return f
}

func (f LeaseFields) Validate() error {
	if f.PropertyID != nil && !ids.Valid(*f.PropertyID) {
		return apperr.NotFound("property")
	}
	if f.TenantName == "" {
		return apperr.Invalid("tenant_name is required")
	}
	if f.MonthlyRent <= 0 {
		return apperr.Invalid("monthly_rent must be greater than zero")
	}
	if !money.Fits(f.MonthlyRent, 12) {
		return apperr.Invalid("monthly_rent is too large")
	}
	if f.Deposit < 0 {
		return apperr.Invalid("deposit must not be negative")
	}
	if !money.Fits(f.Deposit, 12) {
		return apperr.Invalid("deposit is too large")
	}
	if !f.StartDate.IsValid() {
		return apperr.Invalid("start_date is required (YYYY-MM-DD)")
	}
	if f.EndDate != nil && !f.EndDate.After(f.StartDate) {
		return apperr.Invalid("end_date must be after start_date")
	}
	if !leaseStatuses[f.Status] {
		return apperr.Invalid("status must be one of pending, active, ended")
	}
	return nil
}

type CreateProperty struct {
	PropertyFields
}

type GetProperty struct {
	ID string
}

type ListProperties struct{}

type UpdateProperty struct {
	ID string
	PropertyFields
}

type DeleteProperty struct {
	ID string
}

type CreateLease struct {
	LeaseFields
}

type GetLease struct {
	ID string
}

// ListLeases narrows to one property when PropertyID is set.
type ListLeases struct {
	PropertyID string
}

type UpdateLease struct {
	ID string
	LeaseFields
}

type DeleteLease struct {
	ID string
}
