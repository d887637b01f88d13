package anniversaries

import (
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	DefaultUpcomingDays = 30
	MaxUpcomingDays     = 366
)

// Upcoming is an anniversary with its next occurrence resolved.
type Upcoming struct {
	Anniversary
	NextDate  civil.Date `json:"next_date"`
	DaysUntil int        `json:"days_until"`
	Years     int        `json:"years"`
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func occurrenceIn(d civil.Date, year int) civil.Date {
	if d.Month == time.February && d.Day == 29 && !isLeap(year) {
		return civil.Date{Year: year, Month: time.February, Day: 28}
	}
	return civil.Date{Year: year, Month: d.Month, Day: d.Day}
}

// NextOccurrence returns the first occurrence of d on or after today.
// Feb 29 falls on Feb 28 in common years.
func NextOccurrence(d, today civil.Date) civil.Date {
	next := occurrenceIn(d, today.Year)
	if next.Before(today) {
		next = occurrenceIn(d, today.Year+1)
	}
	return next
}

func resolve(a Anniversary, today civil.Date) Upcoming {
	next := NextOccurrence(a.Date, today)
	return Upcoming{
		Anniversary: a,
		NextDate:    next,
		DaysUntil:   next.DaysSince(today),
		Years:       next.Year - a.Date.Year,
	}
}

func sortUpcoming(out []Upcoming) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysUntil != out[j].DaysUntil {
			return out[i].DaysUntil < out[j].DaysUntil
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
}

// Within returns the items occurring at most days days from today.
func Within(items []Anniversary, today civil.Date, days int) []Upcoming {
	out := make([]Upcoming, 0, len(items))
	for _, a := range items {
		if u := resolve(a, today); u.DaysUntil <= days {
			out = append(out, u)
		}
	}
	sortUpcoming(out)
	return out
}

// Due returns the items whose reminder window includes today.
func Due(items []Anniversary, today civil.Date) []Upcoming {
	out := make([]Upcoming, 0)
	for _, a := range items {
		if u := resolve(a, today); u.DaysUntil <= a.RemindDaysBefore {
			out = append(out, u)
		}
	}
	sortUpcoming(out)
	return out
}
