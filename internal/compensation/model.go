// Package compensation compares job offers by total compensation.
package compensation

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/money"
)

const DefaultCurrency = "USD"

type Compensation struct {
	ID                string      `json:"id"`
	Employer          string      `json:"employer"`
	Title             string      `json:"title"`
	BaseSalary        float64     `json:"base_salary"`
	Bonus             float64     `json:"bonus"`
	Equity            float64     `json:"equity"`
	Benefits          float64     `json:"benefits"`
	TotalCompensation float64     `json:"total_compensation"`
	Currency          string      `json:"currency"`
	EffectiveDate     *civil.Date `json:"effective_date"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Fields are client-editable. Any total the client sends is ignored.
type Fields struct {
	Employer      string      `json:"employer" yaml:"employer"`
	Title         string      `json:"title" yaml:"title"`
	BaseSalary    float64     `json:"base_salary" yaml:"base_salary"`
	Bonus         float64     `json:"bonus" yaml:"bonus"`
	Equity        float64     `json:"equity" yaml:"equity"`
	Benefits      float64     `json:"benefits" yaml:"benefits"`
	Currency      string      `json:"currency" yaml:"currency"`
	EffectiveDate *civil.Date `json:"effective_date" yaml:"effective_date"`
}

func (f Fields) Normalize() Fields {
	f.Employer = strings.TrimSpace(f.Employer)
	f.Title = strings.TrimSpace(f.Title)
	f.BaseSalary = money.Round(f.BaseSalary)
	f.Bonus = money.Round(f.Bonus)
	f.Equity = money.Round(f.Equity)
	f.Benefits = money.Round(f.Benefits)
	f.Currency = strings.ToUpper(strings.TrimSpace(f.Currency))
	if f.Currency == "" {
		f.Currency = DefaultCurrency
	}
	return f
}

// amountPrecision matches the NUMERIC(14,2) compensation columns.
const amountPrecision = 14

func (f Fields) Validate() error {
	if f.Employer == "" {
		return apperr.Invalid("employer is required")
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"base_salary", f.BaseSalary},
		{"bonus", f.Bonus},
		{"equity", f.Equity},
		{"benefits", f.Benefits},
	} {
		if c.v < 0 {
			return apperr.Invalid("%s must not be negative", c.name)
		}
		if !money.Fits(c.v, amountPrecision) {
			return apperr.Invalid("%s is too large", c.name)
		}
	}
	if !money.Fits(f.Total(), amountPrecision) {
		return apperr.Invalid("total compensation is too large")
	}
	if !isCurrencyCode(f.Currency) {
		return apperr.Invalid("currency must be a 3-letter code")
	}
	if f.EffectiveDate != nil && !f.EffectiveDate.IsValid() {
		return apperr.Invalid("effective_date must be a valid date")
	}
	return nil
}

// Total is the recomputed total compensation.
func (f Fields) Total() float64 {
	return money.Sum(f.BaseSalary, f.Bonus, f.Equity, f.Benefits)
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

type CreateCompensation struct {
	Fields
}

type GetCompensation struct {
	ID string
}

type ListCompensations struct{}

type UpdateCompensation struct {
	ID string
	Fields
}

type DeleteCompensation struct {
	ID string
}
