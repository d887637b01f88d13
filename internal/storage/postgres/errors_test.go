package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/trackers-backend/config"
)

func TestErrorCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})
	fk := &pq.Error{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "h", Port: 1, User: "u", Password: "p", Name: "n"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=disable", DSN(cfg))

	cfg.DSN = "postgres://override"
	assert.Equal(t, "postgres://override", DSN(cfg))
}

func TestSchemaCoversTables(t *testing.T) {
	for _, table := range []string{"tenants", "anniversaries", "recipes", "donations", "sleep_records",
		"destinations", "prompts", "favorites", "properties", "leases", "skills", "courses", "compensations"} {
		assert.Contains(t, Schema(), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
