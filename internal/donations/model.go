// Package donations records charitable giving and yearly totals for tax time.
package donations

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/money"
)

const Uncategorized = "uncategorized"

type Donation struct {
	ID            string     `json:"id"`
	Organization  string     `json:"organization"`
	Amount        float64    `json:"amount"`
	DonatedOn     civil.Date `json:"donated_on"`
	Category      string     `json:"category"`
	TaxDeductible bool       `json:"tax_deductible"`
	ReceiptNumber string     `json:"receipt_number"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type Fields struct {
	Organization  string     `json:"organization" yaml:"organization"`
	Amount        float64    `json:"amount" yaml:"amount"`
	DonatedOn     civil.Date `json:"donated_on" yaml:"donated_on"`
	Category      string     `json:"category" yaml:"category"`
	TaxDeductible bool       `json:"tax_deductible" yaml:"tax_deductible"`
	ReceiptNumber string     `json:"receipt_number" yaml:"receipt_number"`
	Notes         string     `json:"notes" yaml:"notes"`
}

// Normalize trims text, rounds the amount and dates undated gifts today.
func (f Fields) Normalize(today civil.Date) Fields {
	f.Organization = strings.TrimSpace(f.Organization)
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	f.ReceiptNumber = strings.TrimSpace(f.ReceiptNumber)
	f.Notes = strings.TrimSpace(f.Notes)
	f.Amount = money.Round(f.Amount)
	if f.DonatedOn.IsZero() {
		f.DonatedOn = today
	}
	return f
}

func (f Fields) Validate() error {
	if f.Organization == "" {
		return apperr.Invalid("organization is required")
	}
	if f.Amount <= 0 {
		return apperr.Invalid("amount must be greater than zero")
	}
	if !money.Fits(f.Amount, 12) {
		return apperr.Invalid("amount is too large")
	}
	if !f.DonatedOn.IsValid() {
		return apperr.Invalid("donated_on must be a valid date")
	}
	return nil
}

// Summary totals one calendar year.
type Summary struct {
	Year               int                `json:"year"`
	Count              int                `json:"count"`
	Total              float64            `json:"total"`
	TaxDeductibleTotal float64            `json:"tax_deductible_total"`
	ByCategory         map[string]float64 `json:"by_category"`
}

// CategoryTotal is one grouped row of a yearly summary.
type CategoryTotal struct {
	Category      string
	Count         int
	Total         float64
	TaxDeductible float64
}

// Summarize folds grouped rows into a Summary.
func Summarize(year int, rows []CategoryTotal) Summary {
	s := Summary{Year: year, ByCategory: make(map[string]float64, len(rows))}
	for _, r := range rows {
		cat := r.Category
		if cat == "" {
			cat = Uncategorized
		}
		s.Count += r.Count
		s.Total += r.Total
		s.TaxDeductibleTotal += r.TaxDeductible
		s.ByCategory[cat] = money.Round(s.ByCategory[cat] + r.Total)
	}
	s.Total = money.Round(s.Total)
	s.TaxDeductibleTotal = money.Round(s.TaxDeductibleTotal)
	return s
}

type CreateDonation struct {
	Fields
}

type GetDonation struct {
	ID string
}

// ListDonations filters by calendar year when Year is set.
type ListDonations struct {
	Year int
}

type UpdateDonation struct {
	ID string
	Fields
}

type DeleteDonation struct {
	ID string
}

// GetSummary defaults to the current year when Year is zero.
type GetSummary struct {
	Year int
}
