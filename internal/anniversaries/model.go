// Package anniversaries tracks recurring dates and which of them are coming up.
package anniversaries

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
)

const (
	KindBirthday     = "birthday"
	KindWedding      = "wedding"
	KindRelationship = "relationship"
	KindMemorial     = "memorial"
	KindOther        = "other"

	DefaultRemindDays = 7
	maxRemindDays     = 365
)

var kinds = map[string]bool{
	KindBirthday: true, KindWedding: true, KindRelationship: true, KindMemorial: true, KindOther: true,
}

type Anniversary struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Date             civil.Date `json:"date"`
	Kind             string     `json:"kind"`
	RemindDaysBefore int        `json:"remind_days_before"`
	Notes            string     `json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type Fields struct {
	Name             string     `json:"name" yaml:"name"`
	Date             civil.Date `json:"date" yaml:"date"`
	Kind             string     `json:"kind" yaml:"kind"`
	RemindDaysBefore *int       `json:"remind_days_before" yaml:"remind_days_before"`
	Notes            string     `json:"notes" yaml:"notes"`
}

// Normalize trims text and fills defaults.
func (f Fields) Normalize() Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.Notes = strings.TrimSpace(f.Notes)
	f.Kind = strings.ToLower(strings.TrimSpace(f.Kind))
	if f.Kind == "" {
		f.Kind = KindOther
	}
	if f.RemindDaysBefore == nil {
		d := DefaultRemindDays
		f.RemindDaysBefore = &d
	}
	return f
}

func (f Fields) Validate() error {
	if f.Name == "" {
		return apperr.Invalid("name is required")
	}
	if !f.Date.IsValid() {
		return apperr.Invalid("date is required (YYYY-MM-DD)")
	}
	if !kinds[f.Kind] {
		return apperr.Invalid("kind must be one of birthday, wedding, relationship, memorial, other")
	}
	if d := f.remindDays(); d < 0 || d > maxRemindDays {
		return apperr.Invalid("remind_days_before must be between 0 and %d", maxRemindDays)
	}
	return nil
}

func (f Fields) remindDays() int {
	if f.RemindDaysBefore == nil {
		return DefaultRemindDays
	}
	return *f.RemindDaysBefore
}

type CreateAnniversary struct {
	Fields
}

type GetAnniversary struct {
	ID string
}

type ListAnniversaries struct{}

type UpdateAnniversary struct {
	ID string
	Fields
}

type DeleteAnniversary struct {
	ID string
}

// ListUpcoming asks for occurrences in the next Days days.
type ListUpcoming struct {
	Days int
}

// ListDue asks for anniversaries whose reminder window has opened today.
type ListDue struct{}
