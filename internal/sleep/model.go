// Package sleep logs nights of sleep and their quality.
package sleep

import (
	"math"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
)

const (
	MinQuality = 1
	MaxQuality = 10

	maxNight = 24 * time.Hour
)

type Record struct {
	ID              string    `json:"id"`
	BedTime         time.Time `json:"bed_time"`
	WakeTime        time.Time `json:"wake_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Quality         int       `json:"quality"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Fields struct {
	BedTime  time.Time `json:"bed_time" yaml:"bed_time"`
	WakeTime time.Time `json:"wake_time" yaml:"wake_time"`
	Quality  int       `json:"quality" yaml:"quality"`
	Notes    string    `json:"notes" yaml:"notes"`
}

func (f Fields) Normalize() Fields {
	f.Notes = strings.TrimSpace(f.Notes)
	return f
}

func (f Fields) Validate() error {
	if f.BedTime.IsZero() || f.WakeTime.IsZero() {
		return apperr.Invalid("bed_time and wake_time are required")
	}
	if !f.WakeTime.After(f.BedTime) {
		return apperr.Invalid("wake_time must be after bed_time")
	}
	if f.WakeTime.Sub(f.BedTime) > maxNight {
		return apperr.Invalid("a sleep record cannot exceed 24 hours")
	}
	if f.Quality < MinQuality || f.Quality > MaxQuality {
		return apperr.Invalid("quality must be between %d and %d", MinQuality, MaxQuality)
	}
	return nil
}

// DurationMinutes is the whole minutes between bed and wake.
func (f Fields) DurationMinutes() int {
	return int(f.WakeTime.Sub(f.BedTime) / time.Minute)
}

// Range bounds bed_time. Nil ends are open. To is inclusive unless ToExclusive
// is set, which is how a whole-day bound is carried.
type Range struct {
	From        *time.Time
	To          *time.Time
	ToExclusive bool
}

func (r Range) validate() error {
	if r.From == nil || r.To == nil {
		return nil
	}
	if r.To.Before(*r.From) || (r.ToExclusive && r.To.Equal(*r.From)) {
		return apperr.Invalid("to must not be before from")
	}
	return nil
}

type Stats struct {
	Count                  int     `json:"count"`
	AverageDurationMinutes float64 `json:"average_duration_minutes"`
	AverageQuality         float64 `json:"average_quality"`
	BestQuality            int     `json:"best_quality"`
	WorstQuality           int     `json:"worst_quality"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

type CreateRecord struct {
	Fields
}

type GetRecord struct {
	ID string
}

type ListRecords struct {
	Range
}

type UpdateRecord struct {
	ID string
	Fields
}

type DeleteRecord struct {
	ID string
}

type GetStats struct {
	Range
}
