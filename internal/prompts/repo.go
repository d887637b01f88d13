package prompts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/ids"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

type Store interface {
	Create(ctx context.Context, f Fields) (*Prompt, error)
	Get(ctx context.Context, id string) (*Prompt, error)
	List(ctx context.Context, tag string) ([]Prompt, error)
	Update(ctx context.Context, id string, f Fields) (*Prompt, error)
	Delete(ctx context.Context, id string) (bool, error)

	AddFavorite(ctx context.Context, promptID, note string) (*Favorite, error)
	ListFavorites(ctx context.Context, promptID string) ([]Favorite, error)
	RemoveFavorite(ctx context.Context, promptID, favoriteID string) (bool, error)
}

var _ Store = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const selectPrompt = `
select p.id, p.title, p.body, p.category, p.tags,
       (select count(*) from favorites f where f.prompt_id = p.id) as favorite_count,
       p.created_at, p.updated_at
from prompts p`

func scan(row postgres.Scanner) (*Prompt, error) {
	var p Prompt
	if err := row.Scan(&p.ID, &p.Title, &p.Body, &p.Category, pq.Array(&p.Tags), &p.FavoriteCount,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("prompt")
	}
	return err
}

func (r *Repo) Create(ctx context.Context, f Fields) (*Prompt, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	id := ids.New()
	_, err = r.db.ExecContext(ctx, `
insert into prompts (id, tenant_id, title, body, category, tags)
values ($1, $2, $3, $4, $5, $6)`, id, tid, f.Title, f.Body, f.Category, pq.Array(f.Tags))
	if err != nil {
		return nil, fmt.Errorf("insert prompt: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *Repo) Get(ctx context.Context, id string) (*Prompt, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	p, err := scan(r.db.QueryRowContext(ctx, selectPrompt+` where p.tenant_id = $1 and p.id = $2`, tid, id))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *Repo) List(ctx context.Context, tag string) ([]Prompt, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := selectPrompt + ` where p.tenant_id = $1`
	args := []any{tid}
	if tag = strings.TrimSpace(tag); tag != "" {
		q += ` and exists (select 1 from unnest(p.tags) t where lower(t) = lower($2))`
		args = append(args, tag)
	}
	q += ` order by lower(p.title), p.created_at`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	out := make([]Prompt, 0, 16)
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, id string, f Fields) (*Prompt, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `
update prompts
set title = $3, body = $4, category = $5, tags = $6, updated_at = now()
where tenant_id = $1 and id = $2`, tid, id, f.Title, f.Body, f.Category, pq.Array(f.Tags))
	if err != nil {
		return nil, fmt.Errorf("update prompt: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, apperr.NotFound("prompt")
	}
	return r.Get(ctx, id)
}

// Delete removes the prompt. Its favorites cascade.
func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `delete from prompts where tenant_id = $1 and id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete prompt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddFavorite inserts only when the prompt belongs to the tenant.
func (r *Repo) AddFavorite(ctx context.Context, promptID, note string) (*Favorite, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
insert into favorites (id, tenant_id, prompt_id, note)
select $1::uuid, p.tenant_id, p.id, $4::text
from prompts p
where p.tenant_id = $2 and p.id = $3
returning id, prompt_id, note, created_at`
	var f Favorite
	err = r.db.QueryRowContext(ctx, q, ids.New(), tid, promptID, note).Scan(&f.ID, &f.PromptID, &f.Note, &f.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

func (r *Repo) ListFavorites(ctx context.Context, promptID string) ([]Favorite, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
select id, prompt_id, note, created_at
from favorites
where tenant_id = $1 and prompt_id = $2
order by created_at desc`, tid, promptID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	out := make([]Favorite, 0, 8)
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.PromptID, &f.Note, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *Repo) RemoveFavorite(ctx context.Context, promptID, favoriteID string) (bool, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `delete from favorites where tenant_id = $1 and prompt_id = $2 and id = $3`,
		tid, promptID, favoriteID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
