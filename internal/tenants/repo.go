// Package tenants keeps the registry of known tenants.
package tenants

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type Tenant struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpsertTenant struct {
	ID          string
	DisplayName string
	Email       string
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// EnsureTenant inserts the tenant or refreshes it, keeping existing values for empty fields.
func (r *Repo) EnsureTenant(ctx context.Context, u UpsertTenant) (string, error) {
	if u.ID == "" {
		return "", fmt.Errorf("tenant id required")
	}

	const q = `
insert into tenants (id, display_name, email, updated_at)
values ($1, nullif($2,''), nullif($3,''), now())
on conflict (id) do update
set
  display_name = coalesce(excluded.display_name, tenants.display_name),
  email = coalesce(excluded.email, tenants.email),
  updated_at = now()
returning id;
`
	var id string
	if err := r.db.QueryRowContext(ctx, q, u.ID, u.DisplayName, u.Email).Scan(&id); err != nil {
		return "", fmt.Errorf("ensure tenant: %w", err)
	}
	return id, nil
}

// List returns every tenant ordered by id.
func (r *Repo) List(ctx context.Context) ([]Tenant, error) {
	const q = `
select id, coalesce(display_name, ''), coalesce(email, ''), created_at
from tenants
order by id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	out := make([]Tenant, 0, 8)
	for rows.Next() {
		var t Tenant
		if err := rows.Scan(&t.ID, &t.DisplayName, &t.Email, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
