package travel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

type Store interface {
	Create(ctx context.Context, f Fields) (*Destination, error)
	Get(ctx context.Context, id string) (*Destination, error)
	List(ctx context.Context, status string) ([]Destination, error)
	Update(ctx context.Context, id string, f Fields) (*Destination, error)
	MarkVisited(ctx context.Context, id string, on civil.Date) (*Destination, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var _ Store = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const columns = `id, country, city, priority, status, estimated_cost, visited_on, notes, created_at, updated_at`

const ordering = `order by case priority when 'high' then 0 when 'medium' then 1 else 2 end, lower(country), lower(city)`

func scan(row postgres.Scanner) (*Destination, error) {
	var d Destination
	var visited sql.NullTime
	if err := row.Scan(&d.ID, &d.Country, &d.City, &d.Priority, &d.Status, &d.EstimatedCost,
		&visited, &d.Notes, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.VisitedOn = postgres.DatePtr(visited)
	return &d, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("destination")
	}
	return err
}

func (r *Repo) Create(ctx context.Context, f Fields) (*Destination, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
insert into destinations (id, tenant_id, country, city, priority, status, estimated_cost, visited_on, notes)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
returning ` + columns
	d, err := scan(r.db.QueryRowContext(ctx, q, ids.New(), tid, f.Country, f.City, f.Priority, f.Status,
		f.EstimatedCost, postgres.NullDate(f.VisitedOn), f.Notes))
	if err != nil {
		return nil, fmt.Errorf("insert destination: %w", err)
	}
	return d, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Destination, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	d, err := scan(r.db.QueryRowContext(ctx, `select `+columns+` from destinations where tenant_id = $1 and id = $2`, tid, id))
	if err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

func (r *Repo) List(ctx context.Context, status string) ([]Destination, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `select ` + columns + ` from destinations where tenant_id = $1`
	args := []any{tid}
	if status != "" {
		q += ` and status = $2`
		args = append(args, status)
	}

	rows, err := r.db.QueryContext(ctx, q+` `+ordering, args...)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()

	out := make([]Destination, 0, 16)
	for rows.Next() {
		d, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, id string, f Fields) (*Destination, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
update destinations
set country = $3, city = $4, priority = $5, status = $6, estimated_cost = $7, visited_on = $8, notes = $9, updated_at = now()
where tenant_id = $1 and id = $2
returning ` + columns
	d, err := scan(r.db.QueryRowContext(ctx, q, tid, id, f.Country, f.City, f.Priority, f.Status,
		f.EstimatedCost, postgres.NullDate(f.VisitedOn), f.Notes))
	if err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

func (r *Repo) MarkVisited(ctx context.Context, id string, on civil.Date) (*Destination, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
update destinations
set status = 'visited', visited_on = $3, updated_at = now()
where tenant_id = $1 and id = $2
returning ` + columns
	d, err := scan(r.db.QueryRowContext(ctx, q, tid, id, postgres.Date(on)))
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

	res, err := r.db.ExecContext(ctx, `delete from destinations where tenant_id = $1 and id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete destination: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
