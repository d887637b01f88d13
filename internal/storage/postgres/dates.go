package postgres

import (
	"database/sql"
	"time"

	"cloud.google.com/go/civil"
)

// Date converts a civil date into a driver value for a DATE column.
func Date(d civil.Date) time.Time {
	return d.In(time.UTC)
}

// NullDate is Date for optional columns.
func NullDate(d *civil.Date) any {
	if d == nil {
		return nil
	}
	return d.In(time.UTC)
}

// DatePtr converts a scanned nullable DATE.
func DatePtr(nt sql.NullTime) *civil.Date {
	if !nt.Valid {
		return nil
	}
	d := civil.DateOf(nt.Time)
	return &d
}
