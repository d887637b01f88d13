package postgres

import "database/sql"

// NullInt maps an optional int to a driver value.
func NullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

// IntPtr converts a scanned nullable integer.
func IntPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// NullString maps an optional id to a driver value.
func NullString(p *string) any {
	if p == nil || *p == "" {
		return nil
	}
	return *p
}

// StringPtr converts a scanned nullable text column.
func StringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}
