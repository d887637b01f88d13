package travel

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

var destCols = []string{"id", "country", "city", "priority", "status", "estimated_cost", "visited_on", "notes", "created_at", "updated_at"}

func TestRepo_ListByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	ctx := tenant.WithID(context.Background(), "nomad")
	now := time.Now()

	mock.ExpectQuery(`from destinations where tenant_id = \$1 and status = \$2 order by case priority when 'high' then 0`).
		WithArgs("nomad", "visited").
		WillReturnRows(sqlmock.NewRows(destCols).
			AddRow("d1", "Italy", "Rome", "high", "visited", 1200.5, time.Date(2023, 4, 2, 0, 0, 0, 0, time.UTC), "", now, now))

	list, err := NewRepo(db).List(ctx, StatusVisited)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, civil.Date{Year: 2023, Month: 4, Day: 2}, *list[0].VisitedOn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_MarkVisitedMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	ctx := tenant.WithID(context.Background(), "nomad")

	mock.ExpectQuery(`set status = 'visited'`).
		WithArgs("nomad", "d9", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows(destCols))

	_, err = NewRepo(db).MarkVisited(ctx, "d9", civil.Date{Year: 2025, Month: 8, Day: 1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
