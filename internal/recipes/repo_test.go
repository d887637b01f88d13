package recipes

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

var recipeCols = []string{"id", "name", "meat", "wood", "smoker_temp_f", "cook_minutes", "rating", "notes", "created_at", "updated_at"}

func setupRepo(t *testing.T) (*Repo, sqlmock.Sqlmock, context.Context) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepo(db), mock, tenant.WithID(context.Background(), "pitmaster")
}

func TestRepo_Create(t *testing.T) {
	repo, mock, ctx := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(`insert into recipes`).
		WithArgs(sqlmock.AnyArg(), "pitmaster", "Brisket", "beef", "oak", 250, 600, 5, "").
		WillReturnRows(sqlmock.NewRows(recipeCols).
			AddRow("6f1c1d2e-0000-4000-8000-000000000001", "Brisket", "beef", "oak", 250, 600, 5, "", now, now))

	r, err := repo.Create(ctx, Fields{Name: "Brisket", Meat: "beef", Wood: "oak", SmokerTempF: 250, CookMinutes: 600, Rating: intp(5)})
	require.NoError(t, err)
	assert.Equal(t, "Brisket", r.Name)
	assert.Equal(t, 5, *r.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetNotFound(t *testing.T) {
	repo, mock, ctx := setupRepo(t)

	mock.ExpectQuery(`from recipes where tenant_id = \$1 and id = \$2`).
		WithArgs("pitmaster", "6f1c1d2e-0000-4000-8000-000000000001").
		WillReturnRows(sqlmock.NewRows(recipeCols))

	_, err := repo.Get(ctx, "6f1c1d2e-0000-4000-8000-000000000001")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRepo_ListNullRating(t *testing.T) {
	repo, mock, ctx := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(`from recipes where tenant_id = \$1 order by`).
		WithArgs("pitmaster").
		WillReturnRows(sqlmock.NewRows(recipeCols).
			AddRow("a", "Alpha", "", "", 0, 0, nil, "", now, now).
			AddRow("b", "Beta", "", "", 0, 0, 3, "", now, now))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, list[0].Rating)
	assert.Equal(t, 3, *list[1].Rating)
}

func TestRepo_Delete(t *testing.T) {
	repo, mock, ctx := setupRepo(t)

	mock.ExpectExec(`delete from recipes`).
		WithArgs("pitmaster", "x").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(ctx, "x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepo_RequiresTenant(t *testing.T) {
	repo, _, _ := setupRepo(t)
	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, tenant.ErrNoTenant)
}
