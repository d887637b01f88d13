package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Stats counts loaded rows per table.
type Stats struct {
	Tenants int
	Rows    map[string]int64
}

type tx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error)
}

type Loader struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
	newID  func() uuid.UUID
}

func NewLoader(pool *pgxpool.Pool, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{pool: pool, logger: logger, newID: uuid.New}
}

// Load writes each tenant in its own transaction. File must already be prepared.
func (l *Loader) Load(ctx context.Context, f *File) (Stats, error) {
	st := Stats{Rows: make(map[string]int64)}

	for i := range f.Tenants {
		t := &f.Tenants[i]
		err := pgx.BeginFunc(ctx, l.pool, func(tx pgx.Tx) error {
			return l.loadTenant(ctx, tx, t, st.Rows)
		})
		if err != nil {
			return st, fmt.Errorf("seed tenant %s: %w", t.ID, err)
		}
		st.Tenants++
		l.logger.Info("seeded tenant", "tenant_id", t.ID)
	}
	return st, nil
}

const upsertTenant = `
insert into tenants (id, display_name, email, updated_at)
values ($1, nullif($2,''), nullif($3,''), now())
on conflict (id) do update
set
  display_name = coalesce(excluded.display_name, tenants.display_name),
  email = coalesce(excluded.email, tenants.email),
  updated_at = now();
`

func (l *Loader) loadTenant(ctx context.Context, tx tx, t *Tenant, counts map[string]int64) error {
	if _, err := tx.Exec(ctx, upsertTenant, t.ID, t.DisplayName, t.Email); err != nil {
		return fmt.Errorf("upsert tenant: %w", err)
	}

	for _, b := range t.batches(l.newID) {
		n, err := tx.CopyFrom(ctx, pgx.Identifier{b.table}, b.columns, pgx.CopyFromRows(b.rows))
		if err != nil {
			return fmt.Errorf("copy %s: %w", b.table, err)
		}
		counts[b.table] += n
	}
	return nil
}
