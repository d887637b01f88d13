package properties

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
	CreateProperty(ctx context.Context, f PropertyFields) (*Property, error)
	GetProperty(ctx context.Context, id string) (*Property, error)
	ListProperties(ctx context.Context) ([]Property, error)
	UpdateProperty(ctx context.Context, id string, f PropertyFields) (*Property, error)
	DeleteProperty(ctx context.Context, id string) (bool, error)

	CreateLease(ctx context.Context, f LeaseFields) (*Lease, error)
	GetLease(ctx context.Context, id string) (*Lease, error)
	ListLeases(ctx context.Context, propertyID string) ([]Lease, error)
	UpdateLease(ctx context.Context, id string, f LeaseFields) (*Lease, error)
	DeleteLease(ctx context.Context, id string) (bool, error)
}

var _ Store = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const selectProperty = `
select p.id, p.name, p.address, p.kind, p.purchase_price,
       (select count(*) from leases l where l.property_id = p.id and l.status = 'active') as active_lease_count,
       (select coalesce(sum(l.monthly_rent), 0) from leases l where l.property_id = p.id and l.status = 'active') as monthly_income,
       p.created_at, p.updated_at
from properties p`

const leaseColumns = `id, property_id, tenant_name, monthly_rent, deposit, start_date, end_date, status, created_at, updated_at`

func scanProperty(row postgres.Scanner) (*Property, error) {
	var p Property
	if err := row.Scan(&p.ID, &p.Name, &p.Address, &p.Kind, &p.PurchasePrice, &p.ActiveLeaseCount,
		&p.MonthlyIncome, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanLease(row postgres.Scanner) (*Lease, error) {
	var l Lease
	var propertyID sql.NullString
	var start time.Time
	var end sql.NullTime
	if err := row.Scan(&l.ID, &propertyID, &l.TenantName, &l.MonthlyRent, &l.Deposit, &start, &end,
		&l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.PropertyID = postgres.StringPtr(propertyID)
	l.StartDate = civil.DateOf(start)
	l.EndDate = postgres.DatePtr(end)
	return &l, nil
}

func propertyNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) || postgres.IsForeignKeyViolation(err) {
		return apperr.NotFound("property")
	}
	return err
}

func leaseNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("lease")
	}
	return err
}

func (r *Repo) CreateProperty(ctx context.Context, f PropertyFields) (*Property, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `
insert into properties (id, tenant_id, name, address, kind, purchase_price)
values ($1, $2, $3, $4, $5, $6)
returning id, name, address, kind, purchase_price, 0, 0, created_at, updated_at`
	p, err := scanProperty(r.db.QueryRowContext(ctx, q, ids.New(), tid, f.Name, f.Address, f.Kind, f.PurchasePrice))
	if err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}
	return p, nil
}

func (r *Repo) GetProperty(ctx context.Context, id string) (*Property, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	p, err := scanProperty(r.db.QueryRowContext(ctx, selectProperty+` where p.tenant_id = $1 and p.id = $2`, tid, id))
	if err != nil {
		return nil, propertyNotFound(err)
	}
	return p, nil
}

func (r *Repo) ListProperties(ctx context.Context) ([]Property, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, selectProperty+` where p.tenant_id = $1 order by lower(p.name), p.created_at`, tid)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	out := make([]Property, 0, 8)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateProperty(ctx context.Context, id string, f PropertyFields) (*Property, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `
update properties
set name = $3, address = $4, kind = $5, purchase_price = $6, updated_at = now()
where tenant_id = $1 and id = $2`, tid, id, f.Name, f.Address, f.Kind, f.PurchasePrice)
	if err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, apperr.NotFound("property")
	}
	return r.GetProperty(ctx, id)
}

// DeleteProperty removes the property. Its leases stay with property_id cleared.
func (r *Repo) DeleteProperty(ctx context.Context, id string) (bool, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `delete from properties where tenant_id = $1 and id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete property: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// lockProperty fails with not found unless the property belongs to tid.
func lockProperty(ctx context.Context, tx *sql.Tx, tid string, id *string) error {
	if id == nil {
		return nil
	}
	var ok string
	err := tx.QueryRowContext(ctx, `
select id
from properties
where tenant_id = $1
  and id = $2
for share
`, tid, *id).Scan(&ok)
	if err != nil {
		return propertyNotFound(err)
	}
	return nil
}

func (r *Repo) CreateLease(ctx context.Context, f LeaseFields) (*Lease, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := lockProperty(ctx, tx, tid, f.PropertyID); err != nil {
		return nil, err
	}

	q := `
insert into leases (id, tenant_id, property_id, tenant_name, monthly_rent, deposit, start_date, end_date, status)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
returning ` + leaseColumns
	l, err := scanLease(tx.QueryRowContext(ctx, q, ids.New(), tid, postgres.NullString(f.PropertyID), f.TenantName,
		f.MonthlyRent, f.Deposit, postgres.Date(f.StartDate), postgres.NullDate(f.EndDate), f.Status))
	if err != nil {
		return nil, propertyNotFound(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *Repo) GetLease(ctx context.Context, id string) (*Lease, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	l, err := scanLease(r.db.QueryRowContext(ctx, `select `+leaseColumns+` from leases where tenant_id = $1 and id = $2`, tid, id))
	if err != nil {
		return nil, leaseNotFound(err)
	}
	return l, nil
}

func (r *Repo) ListLeases(ctx context.Context, propertyID string) ([]Lease, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	q := `select ` + leaseColumns + ` from leases where tenant_id = $1`
	args := []any{tid}
	if propertyID != "" {
		q += ` and property_id = $2`
		args = append(args, propertyID)
	}
	q += ` order by start_date desc, lower(tenant_name)`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list leases: %w", err)
	}
	defer rows.Close()

	out := make([]Lease, 0, 8)
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateLease(ctx context.Context, id string, f LeaseFields) (*Lease, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := lockProperty(ctx, tx, tid, f.PropertyID); err != nil {
		return nil, err
	}

	q := `
update leases
set property_id = $3, tenant_name = $4, monthly_rent = $5, deposit = $6, start_date = $7, end_date = $8,
    status = $9, updated_at = now()
where tenant_id = $1 and id = $2
returning ` + leaseColumns
	l, err := scanLease(tx.QueryRowContext(ctx, q, tid, id, postgres.NullString(f.PropertyID), f.TenantName,
		f.MonthlyRent, f.Deposit, postgres.Date(f.StartDate), postgres.NullDate(f.EndDate), f.Status))
	if err != nil {
		return nil, leaseNotFound(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *Repo) DeleteLease(ctx context.Context, id string) (bool, error) {
	tid, err := tenant.Require(ctx)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `delete from leases where tenant_id = $1 and id = $2`, tid, id)
	if err != nil {
		return false, fmt.Errorf("delete lease: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
