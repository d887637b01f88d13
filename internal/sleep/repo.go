package sleep

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

type Store interface {
	Create(ctx context.Context, f Fields) (*Record, error)
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, rg Range) ([]Record, error)
	Update(ctx context.Context, id string, f Fields) (*Record, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context, rg Range) (*Stats, error)
}

var _ Store = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const columns = `id, bed_time, wake_time, duration_minutes, quality, notes, created_at, updated_at`

func scan(row postgres.Scanner) (*Record, error) {
	var r Record
	if err := row.Scan(&r.ID, &r.BedTime, &r.WakeTime, &r.DurationMinutes, &r.Quality, &r.Notes, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("sleep record")
	}
	return err
}

// where builds the tenant and bed_time predicates shared by List and Stats.
func where(tid string, rg Range) (string, []any) {
	clause := `tenant_id = $1`
	args := []any{tid}
	if rg.From != nil {
		args = append(args, *rg.From)
		clause += ` and bed_time >= $` + strconv.Itoa(len(args))
	}
	if rg.To != nil {
		args = append(args, *rg.To)
		op := ` and bed_time <= $`
		if rg.ToExclusive {
			op = ` and bed_time < $`
		}
		clause += op + strconv.Itoa(len(args))
	}
	return clause, args
}

func (r *Repo) Create(ctx context.Context, f Fields) (*Record, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
insert into sleep_records (id, tenant_id, bed_time, wake_time, duration_minutes, quality, notes)
values ($1, $2, $3, $4, $5, $6, $7)
returning ` + columns
	rec, err := scan(r.db.QueryRowContext(ctx, q, ids.New(), tid, f.BedTime, f.WakeTime, f.DurationMinutes(), f.Quality, f.Notes))
	if err != nil {
		return nil, fmt.Errorf("insert sleep record: %w", err)
	}
	return rec, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Record, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := scan(r.db.QueryRowContext(ctx, `select `+columns+` from sleep_records where tenant_id = $1 and id = $2`, tid, id))
	if err != nil {
		return nil, notFound(err)
	}
	return rec, nil
}

func (r *Repo) List(ctx context.Context, rg Range) ([]Record, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	clause, args := where(tid, rg)
	rows, err := r.db.QueryContext(ctx, `select `+columns+` from sleep_records where `+clause+` order by bed_time desc`, args...)
	if err != nil {
		return nil, fmt.Errorf("list sleep records: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0, 32)
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, id string, f Fields) (*Record, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
update sleep_records
set bed_time = $3, wake_time = $4, duration_minutes = $5, quality = $6, notes = $7, updated_at = now()
where tenant_id = $1 and id = $2
returning ` + columns
	rec, err := scan(r.db.QueryRowContext(ctx, q, tid, id, f.BedTime, f.WakeTime, f.DurationMinutes(), f.Quality, f.Notes))
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

	res, err := r.db.ExecContext(ctx, `delete from sleep_records where tenant_id = $1 and id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete sleep record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repo) Stats(ctx context.Context, rg Range) (*Stats, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	clause, args := where(tid, rg)
	q := `
select count(*), coalesce(avg(duration_minutes), 0), coalesce(avg(quality), 0),
       coalesce(max(quality), 0), coalesce(min(quality), 0)
from sleep_records where ` + clause

	var s Stats
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&s.Count, &s.AverageDurationMinutes, &s.AverageQuality,
		&s.BestQuality, &s.WorstQuality); err != nil {
		return nil, fmt.Errorf("sleep stats: %w", err)
	}
	s.AverageDurationMinutes = round1(s.AverageDurationMinutes)
	s.AverageQuality = round1(s.AverageQuality)
	return &s, nil
}
