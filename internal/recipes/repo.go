package recipes

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

// Store persists recipes for the tenant in ctx.
type Store interface {
	Create(ctx context.Context, f Fields) (*Recipe, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	List(ctx context.Context) ([]Recipe, error)
	Update(ctx context.Context, id string, f Fields) (*Recipe, error)
	SetRating(ctx context.Context, id string, rating int) (*Recipe, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var _ Store = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const columns = `id, name, meat, wood, smoker_temp_f, cook_minutes, rating, notes, created_at, updated_at`

func scan(row postgres.Scanner) (*Recipe, error) {
	var r Recipe
	var rating sql.NullInt64
	if err := row.Scan(&r.ID, &r.Name, &r.Meat, &r.Wood, &r.SmokerTempF, &r.CookMinutes,
		&rating, &r.Notes, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.Rating = postgres.IntPtr(rating)
	return &r, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("recipe")
	}
	return err
}

func (r *Repo) Create(ctx context.Context, f Fields) (*Recipe, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
insert into recipes (id, tenant_id, name, meat, wood, smoker_temp_f, cook_minutes, rating, notes)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
returning ` + columns
	rec, err := scan(r.db.QueryRowContext(ctx, q, ids.New(), tid, f.Name, f.Meat, f.Wood,
		f.SmokerTempF, f.CookMinutes, postgres.NullInt(f.Rating), f.Notes))
	if err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}
	return rec, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Recipe, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `select ` + columns + ` from recipes where tenant_id = $1 and id = $2`
	rec, err := scan(r.db.QueryRowContext(ctx, q, tid, id))
	if err != nil {
		return nil, notFound(err)
	}
	return rec, nil
}

func (r *Repo) List(ctx context.Context) ([]Recipe, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `select ` + columns + ` from recipes where tenant_id = $1 order by lower(name), created_at`
	rows, err := r.db.QueryContext(ctx, q, tid)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	out := make([]Recipe, 0, 16)
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, id string, f Fields) (*Recipe, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
update recipes
set name = $3, meat = $4, wood = $5, smoker_temp_f = $6, cook_minutes = $7, rating = $8, notes = $9, updated_at = now()
where tenant_id = $1 and id = $2
returning ` + columns
	rec, err := scan(r.db.QueryRowContext(ctx, q, tid, id, f.Name, f.Meat, f.Wood,
		f.SmokerTempF, f.CookMinutes, postgres.NullInt(f.Rating), f.Notes))
	if err != nil {
		return nil, notFound(err)
	}
	return rec, nil
}

func (r *Repo) SetRating(ctx context.Context, id string, rating int) (*Recipe, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
update recipes
set rating = $3, updated_at = now()
where tenant_id = $1 and id = $2
returning ` + columns
	rec, err := scan(r.db.QueryRowContext(ctx, q, tid, id, rating))
	if err != nil {
		return nil, notFound(err)
	}
	return rec, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `delete from recipes where tenant_id = $1 and id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete recipe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
