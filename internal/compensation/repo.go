package compensation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

type Store interface {
	Create(ctx context.Context, f Fields) (*Compensation, error)
	Get(ctx context.Context, id string) (*Compensation, error)
	List(ctx context.Context) ([]Compensation, error)
	Update(ctx context.Context, id string, f Fields) (*Compensation, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var _ Store = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const columns = `id, employer, title, base_salary, bonus, equity, benefits, total_compensation, currency, effective_date, created_at, updated_at`

func scan(row postgres.Scanner) (*Compensation, error) {
	var c Compensation
	var effective sql.NullTime
	if err := row.Scan(&c.ID, &c.Employer, &c.Title, &c.BaseSalary, &c.Bonus, &c.Equity, &c.Benefits,
		&c.TotalCompensation, &c.Currency, &effective, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.EffectiveDate = postgres.DatePtr(effective)
	return &c, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("compensation")
	}
	return err
}

// Create stores f with its total recomputed.
func (r *Repo) Create(ctx context.Context, f Fields) (*Compensation, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
insert into compensations (id, tenant_id, employer, title, base_salary, bonus, equity, benefits, total_compensation, currency, effective_date)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
returning ` + columns
	c, err := scan(r.db.QueryRowContext(ctx, q, ids.New(), tid, f.Employer, f.Title, f.BaseSalary, f.Bonus, f.Equity,
		f.Benefits, f.Total(), f.Currency, postgres.NullDate(f.EffectiveDate)))
	if err != nil {
		return nil, fmt.Errorf("insert compensation: %w", err)
	}
	return c, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Compensation, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	c, err := scan(r.db.QueryRowContext(ctx, `select `+columns+` from compensations where tenant_id = $1 and id = $2`, tid, id))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (r *Repo) List(ctx context.Context) ([]Compensation, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `select `+columns+` from compensations where tenant_id = $1
order by total_compensation desc, lower(employer)`, tid)
	if err != nil {
		return nil, fmt.Errorf("list compensations: %w", err)
	}
	defer rows.Close()

	out := make([]Compensation, 0, 8)
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Update replaces f and recomputes the total.
func (r *Repo) Update(ctx context.Context, id string, f Fields) (*Compensation, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
update compensations
set employer = $3, title = $4, base_salary = $5, bonus = $6, equity = $7, benefits = $8,
    total_compensation = $9, currency = $10, effective_date = $11, updated_at = now()
where tenant_id = $1 and id = $2
returning ` + columns
	c, err := scan(r.db.QueryRowContext(ctx, q, tid, id, f.Employer, f.Title, f.BaseSalary, f.Bonus, f.Equity,
		f.Benefits, f.Total(), f.Currency, postgres.NullDate(f.EffectiveDate)))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `delete from compensations where tenant_id = $1 and id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete compensation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
