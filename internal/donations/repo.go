package donations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

type Store interface {
	Create(ctx context.Context, f Fields) (*Donation, error)
	Get(ctx context.Context, id string) (*Donation, error)
	List(ctx context.Context, year int) ([]Donation, error)
	Update(ctx context.Context, id string, f Fields) (*Donation, error)
	Delete(ctx context.Context, id string) (bool, error)
	Totals(ctx context.Context, year int) ([]CategoryTotal, error)
}

var _ Store = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const columns = `id, organization, amount, donated_on, category, tax_deductible, receipt_number, notes, created_at, updated_at`

func scan(row postgres.Scanner) (*Donation, error) {
	var d Donation
	var on time.Time
	if err := row.Scan(&d.ID, &d.Organization, &d.Amount, &on, &d.Category, &d.TaxDeductible,
		&d.ReceiptNumber, &d.Notes, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.DonatedOn = civil.DateOf(on)
	return &d, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("donation")
	}
	return duplicate(err)
}

// duplicate maps a clash on the per-tenant receipt number index.
func duplicate(err error) error {
	if postgres.IsUniqueViolation(err) {
		return apperr.Conflict("receipt_number already recorded")
	}
	return err
}

func (r *Repo) Create(ctx context.Context, f Fields) (*Donation, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
insert into donations (id, tenant_id, organization, amount, donated_on, category, tax_deductible, receipt_number, notes)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
returning ` + columns
	d, err := scan(r.db.QueryRowContext(ctx, q, ids.New(), tid, f.Organization, f.Amount, postgres.Date(f.DonatedOn),
		f.Category, f.TaxDeductible, f.ReceiptNumber, f.Notes))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, duplicate(err)
		}
		return nil, fmt.Errorf("insert donation: %w", err)
	}
	return d, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Donation, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	d, err := scan(r.db.QueryRowContext(ctx, `select `+columns+` from donations where tenant_id = $1 and id = $2`, tid, id))
	if err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

func (r *Repo) List(ctx context.Context, year int) ([]Donation, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `select ` + columns + ` from donations where tenant_id = $1`
	args := []any{tid}
	if year != 0 {
		q += ` and extract(year from donated_on) = $2`
		args = append(args, year)
	}
	q += ` order by donated_on desc, created_at desc`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	out := make([]Donation, 0, 16)
	for rows.Next() {
		d, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, id string, f Fields) (*Donation, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
update donations
set organization = $3, amount = $4, donated_on = $5, category = $6, tax_deductible = $7,
    receipt_number = $8, notes = $9, updated_at = now()
where tenant_id = $1 and id = $2
returning ` + columns
	d, err := scan(r.db.QueryRowContext(ctx, q, tid, id, f.Organization, f.Amount, postgres.Date(f.DonatedOn),
		f.Category, f.TaxDeductible, f.ReceiptNumber, f.Notes))
	if err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `delete from donations where tenant_id = $1 and id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete donation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Totals groups one year's donations by category.
func (r *Repo) Totals(ctx context.Context, year int) ([]CategoryTotal, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
select category, count(*), coalesce(sum(amount), 0),
       coalesce(sum(case when tax_deductible then amount else 0 end), 0)
from donations
where tenant_id = $1 and extract(year from donated_on) = $2
group by category
order by category`
	rows, err := r.db.QueryContext(ctx, q, tid, year)
	if err != nil {
		return nil, fmt.Errorf("donation totals: %w", err)
	}
	defer rows.Close()

	var out []CategoryTotal
	for rows.Next() {
		var t CategoryTotal
		if err := rows.Scan(&t.Category, &t.Count, &t.Total, &t.TaxDeductible); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
