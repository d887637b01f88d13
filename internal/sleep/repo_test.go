package sleep

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

var sleepCols = []string{"id", "bed_time", "wake_time", "duration_minutes", "quality", "notes", "created_at", "updated_at"}

const recID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func setup(t *testing.T) (*mediator.Mediator, sqlmock.Sqlmock, context.Context) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := mediator.New()
	RegisterHandlers(m, NewRepo(db))
	return m, mock, tenant.WithID(context.Background(), "sleeper")
}

func TestCreateThenGet(t *testing.T) {
	m, mock, ctx := setup(t)
	wake := bed.Add(8 * time.Hour)
	now := time.Now()

	mock.ExpectQuery(`insert into sleep_records`).
		WithArgs(sqlmock.AnyArg(), "sleeper", bed, wake, 480, 7, "restless").
		WillReturnRows(sqlmock.NewRows(sleepCols).AddRow(recID, bed, wake, 480, 7, "restless", now, now))
	mock.ExpectQuery(`from sleep_records where tenant_id = \$1 and id = \$2`).
		WithArgs("sleeper", recID).
		WillReturnRows(sqlmock.NewRows(sleepCols).AddRow(recID, bed, wake, 480, 7, "restless", now, now))

	created, err := mediator.Send[CreateRecord, *Record](ctx, m, CreateRecord{Fields: Fields{
		BedTime: bed, WakeTime: wake, Quality: 7, Notes: " restless ",
	}})
	require.NoError(t, err)
	assert.Equal(t, 480, created.DurationMinutes)

	got, err := mediator.Send[GetRecord, *Record](ctx, m, GetRecord{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.BedTime, got.BedTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_RejectsBeforeStore(t *testing.T) {
	m, mock, ctx := setup(t)

	_, err := mediator.Send[CreateRecord, *Record](ctx, m, CreateRecord{Fields: Fields{BedTime: bed, WakeTime: bed, Quality: 5}})
	assert.ErrorIs(t, err, apperr.ErrInvalid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteThenGet(t *testing.T) {
	m, mock, ctx := setup(t)

	mock.ExpectExec(`delete from sleep_records`).WithArgs("sleeper", recID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`from sleep_records where tenant_id = \$1 and id = \$2`).
		WithArgs("sleeper", recID).
		WillReturnRows(sqlmock.NewRows(sleepCols))

	_, err := mediator.Send[DeleteRecord, mediator.Unit](ctx, m, DeleteRecord{ID: recID})
	require.NoError(t, err)
	_, err = mediator.Send[GetRecord, *Record](ctx, m, GetRecord{ID: recID})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStats_WithRange(t *testing.T) {
	m, mock, ctx := setup(t)
	from := bed.Add(-48 * time.Hour)
	to := bed

	mock.ExpectQuery(`from sleep_records where tenant_id = \$1 and bed_time >= \$2 and bed_time <= \$3`).
		WithArgs("sleeper", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg", "avg", "max", "min"}).AddRow(3, 441.6667, 6.3333, 9, 4))

	s, err := mediator.Send[GetStats, *Stats](ctx, m, GetStats{Range: Range{From: &from, To: &to}})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 441.7, s.AverageDurationMinutes)
	assert.Equal(t, 6.3, s.AverageQuality)
	assert.Equal(t, 9, s.BestQuality)
	assert.Equal(t, 4, s.WorstQuality)
}

func TestStats_InvertedRange(t *testing.T) {
	m, _, ctx := setup(t)
	later := bed.Add(time.Hour)

	_, err := mediator.Send[GetStats, *Stats](ctx, m, GetStats{Range: Range{From: &later, To: &bed}})
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestList_OpenRange(t *testing.T) {
	m, mock, ctx := setup(t)

	mock.ExpectQuery(`from sleep_records where tenant_id = \$1 order by bed_time desc`).
		WithArgs("sleeper").
		WillReturnRows(sqlmock.NewRows(sleepCols))

	list, err := mediator.Send[ListRecords, []Record](ctx, m, ListRecords{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
