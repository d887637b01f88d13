package seed

import (
	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/storage/postgres"
)

// batch is one COPY into a table.
type batch struct {
	table   string
	columns []string
	rows    [][]any
}

func (b *batch) add(row ...any) {
	b.rows = append(b.rows, row)
}

// batches turns a prepared tenant into COPY batches, parents first.
func (t *Tenant) batches(newID func() uuid.UUID) []batch {
	tid := t.ID

	rec := batch{table: "recipes", columns: []string{"id", "tenant_id", "name", "meat", "wood", "smoker_temp_f", "cook_minutes", "rating", "notes"}}
	for _, f := range t.Recipes {
		rec.add(newID(), tid, f.Name, f.Meat, f.Wood, f.SmokerTempF, f.CookMinutes, postgres.NullInt(f.Rating), f.Notes)
	}

	ann := batch{table: "anniversaries", columns: []string{"id", "tenant_id", "name", "date", "kind", "remind_days_before", "notes"}}
	for _, f := range t.Anniversaries {
		ann.add(newID(), tid, f.Name, postgres.Date(f.Date), f.Kind, *f.RemindDaysBefore, f.Notes)
	}

	don := batch{table: "donations", columns: []string{"id", "tenant_id", "organization", "amount", "donated_on", "category", "tax_deductible", "receipt_number", "notes"}}
	for _, f := range t.Donations {
		don.add(newID(), tid, f.Organization, f.Amount, postgres.Date(f.DonatedOn), f.Category, f.TaxDeductible, f.ReceiptNumber, f.Notes)
	}

	slp := batch{table: "sleep_records", columns: []string{"id", "tenant_id", "bed_time", "wake_time", "duration_minutes", "quality", "notes"}}
	for _, f := range t.SleepRecords {
		slp.add(newID(), tid, f.BedTime, f.WakeTime, f.DurationMinutes(), f.Quality, f.Notes)
	}

	dst := batch{table: "destinations", columns: []string{"id", "tenant_id", "country", "city", "priority", "status", "estimated_cost", "visited_on", "notes"}}
	for _, f := range t.Destinations {
		dst.add(newID(), tid, f.Country, f.City, f.Priority, f.Status, f.EstimatedCost, postgres.NullDate(f.VisitedOn), f.Notes)
	}

	prm := batch{table: "prompts", columns: []string{"id", "tenant_id", "title", "body", "category", "tags"}}
	fav := batch{table: "favorites", columns: []string{"id", "tenant_id", "prompt_id", "note"}}
	for _, p := range t.Prompts {
		pid := newID()
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		prm.add(pid, tid, p.Title, p.Body, p.Category, tags)
		for _, note := range p.Favorites {
			fav.add(newID(), tid, pid, note)
		}
	}

	prp := batch{table: "properties", columns: []string{"id", "tenant_id", "name", "address", "kind", "purchase_price"}}
	les := batch{table: "leases", columns: []string{"id", "tenant_id", "property_id", "tenant_name", "monthly_rent", "deposit", "start_date", "end_date", "status"}}
	for _, p := range t.Properties {
		pid := newID()
		prp.add(pid, tid, p.Name, p.Address, p.Kind, p.PurchasePrice)
		for _, l := range p.Leases {
			les.add(newID(), tid, pid, l.TenantName, l.MonthlyRent, l.Deposit, postgres.Date(l.StartDate), postgres.NullDate(l.EndDate), l.Status)
		}
	}

	skl := batch{table: "skills", columns: []string{"id", "tenant_id", "name", "category", "proficiency"}}
	crs := batch{table: "courses", columns: []string{"id", "tenant_id", "skill_id", "title", "provider", "url", "status", "completed_on", "hours"}}
	for _, s := range t.Skills {
		sid := newID()
		skl.add(sid, tid, s.Name, s.Category, s.Proficiency)
		for _, c := range s.Courses {
			crs.add(newID(), tid, sid, c.Title, c.Provider, c.URL, c.Status, postgres.NullDate(c.CompletedOn), c.Hours)
		}
	}

	cmp := batch{table: "compensations", columns: []string{"id", "tenant_id", "employer", "title", "base_salary", "bonus", "equity", "benefits", "total_compensation", "currency", "effective_date"}}
	for _, f := range t.Compensations {
		cmp.add(newID(), tid, f.Employer, f.Title, f.BaseSalary, f.Bonus, f.Equity, f.Benefits, f.Total(), f.Currency, postgres.NullDate(f.EffectiveDate))
	}

	all := []batch{rec, ann, don, slp, dst, prm, fav, prp, les, skl, crs, cmp}
	out := all[:0]
	for _, b := range all {
		if len(b.rows) > 0 {
			out = append(out, b)
		}
	}
	return out
}
