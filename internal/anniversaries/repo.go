package anniversaries

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
	Create(ctx context.Context, f Fields) (*Anniversary, error)
	Get(ctx context.Context, id string) (*Anniversary, error)
	List(ctx context.Context) ([]Anniversary, error)
	Update(ctx context.Context, id string, f Fields) (*Anniversary, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var _ Store = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const columns = `id, name, date, kind, remind_days_before, notes, created_at, updated_at`

func scan(row postgres.Scanner) (*Anniversary, error) {
	var a Anniversary
	var date time.Time
	if err := row.Scan(&a.ID, &a.Name, &date, &a.Kind, &a.RemindDaysBefore, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Date = civil.DateOf(date)
	return &a, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("anniversary")
	}
	return err
}

func (r *Repo) Create(ctx context.Context, f Fields) (*Anniversary, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
insert into anniversaries (id, tenant_id, name, date, kind, remind_days_before, notes)
values ($1, $2, $3, $4, $5, $6, $7)
returning ` + columns
	a, err := scan(r.db.QueryRowContext(ctx, q, ids.New(), tid, f.Name, postgres.Date(f.Date), f.Kind, f.remindDays(), f.Notes))
	if err != nil {
		return nil, fmt.Errorf("insert anniversary: %w", err)
	}
	return a, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Anniversary, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	a, err := scan(r.db.QueryRowContext(ctx, `select `+columns+` from anniversaries where tenant_id = $1 and id = $2`, tid, id))
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (r *Repo) List(ctx context.Context) ([]Anniversary, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `select ` + columns + ` from anniversaries where tenant_id = $1
order by extract(month from date), extract(day from date), lower(name)`
	rows, err := r.db.QueryContext(ctx, q, tid)
	if err != nil {
		return nil, fmt.Errorf("list anniversaries: %w", err)
	}
	defer rows.Close()

	out := make([]Anniversary, 0, 16)
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, id string, f Fields) (*Anniversary, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
update anniversaries
set name = $3, date = $4, kind = $5, remind_days_before = $6, notes = $7, updated_at = now()
where tenant_id = $1 and id = $2
returning ` + columns
	a, err := scan(r.db.QueryRowContext(ctx, q, tid, id, f.Name, postgres.Date(f.Date), f.Kind, f.remindDays(), f.Notes))
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `delete from anniversaries where tenant_id = $1 and id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete anniversary: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
