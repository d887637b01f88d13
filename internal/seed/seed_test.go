package seed

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
)

var today = civil.Date{Year: 2026, Month: time.October, Day: 14}

func loadDemo(t *testing.T) *File {
	t.Helper()
	f, err := ParseFile("testdata/demo.yaml")
	require.NoError(t, err)
	require.NoError(t, f.Prepare(today))
	return f
}

func TestParseAndPrepare(t *testing.T) {
	f := loadDemo(t)
	require.Len(t, f.Tenants, 1)
	demo := f.Tenants[0]

	assert.Equal(t, "demo", demo.ID)
	assert.Equal(t, civil.Date{Year: 2016, Month: time.February, Day: 29}, demo.Anniversaries[1].Date)
	assert.Equal(t, 7, *demo.Anniversaries[0].RemindDaysBefore)
	assert.Equal(t, "hunger", demo.Donations[0].Category)
	assert.Equal(t, []string{"writing", "summary"}, demo.Prompts[0].Tags)
	assert.Equal(t, "wishlist", demo.Destinations[0].Status)
	assert.Nil(t, demo.Destinations[0].VisitedOn)
	assert.Equal(t, "USD", demo.Compensations[0].Currency)
	assert.Equal(t, 495, demo.SleepRecords[0].DurationMinutes())
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("tenants:\n  - id: a\n    gadgets: []\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Tenants)
}

func TestPrepare_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want string
	}{
		"missing tenant id": {
			doc:  "tenants:\n  - display_name: x\n",
			want: "tenants[0]: id is required",
		},
		"duplicate tenant": {
			doc:  "tenants:\n  - id: a\n  - id: a\n",
			want: `tenants[1]: duplicate tenant "a"`,
		},
		"recipe without name": {
			doc:  "tenants:\n  - id: a\n    recipes:\n      - meat: pork\n",
			want: "tenants[0].recipes[0]: invalid input: name is required",
		},
		"lease with explicit property": {
			doc:  "tenants:\n  - id: a\n    properties:\n      - name: p\n        address: x\n        leases:\n          - property_id: abc\n            tenant_name: t\n            monthly_rent: 10\n            start_date: 2026-01-01\n",
			want: "property_id is implied by nesting",
		},
		"course with bad url": {
			doc:  "tenants:\n  - id: a\n    skills:\n      - name: Go\n        courses:\n          - title: c\n            url: ftp://x\n",
			want: "tenants[0].skills[0].courses[0]: invalid input: url must be an absolute http(s) URL",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(tc.doc))
			require.NoError(t, err)
			err = f.Prepare(today)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestPrepare_KeepsSentinel(t *testing.T) {
	f, err := Parse(strings.NewReader("tenants:\n  - id: a\n    donations:\n      - organization: x\n        amount: -1\n"))
	require.NoError(t, err)
	assert.True(t, errors.Is(f.Prepare(today), apperr.ErrInvalid))
}

func seqIDs() func() uuid.UUID {
	n := 0
	return func() uuid.UUID {
		n++
		var u uuid.UUID
		u[15] = byte(n)
		return u
	}
}

func TestBatches_ParentsFirst(t *testing.T) {
	demo := loadDemo(t).Tenants[0]
	bs := demo.batches(seqIDs())

	var order []string
	byTable := map[string]batch{}
	for _, b := range bs {
		order = append(order, b.table)
		byTable[b.table] = b
		for _, row := range b.rows {
			require.Len(t, row, len(b.columns), b.table)
			assert.Equal(t, "demo", row[1], b.table)
		}
	}
	assert.Equal(t, []string{
		"recipes", "anniversaries", "donations", "sleep_records", "destinations",
		"prompts", "favorites", "properties", "leases", "skills", "courses", "compensations",
	}, order)

	assert.Equal(t, byTable["prompts"].rows[0][0], byTable["favorites"].rows[0][2])
	assert.Equal(t, byTable["properties"].rows[0][0], byTable["leases"].rows[0][2])
	assert.Equal(t, byTable["skills"].rows[0][0], byTable["courses"].rows[0][2])
	// total recomputed from components
	assert.Equal(t, 245000.0, byTable["compensations"].rows[0][8])
	assert.Equal(t, 495, byTable["sleep_records"].rows[0][4])
}

func TestBatches_SkipsEmptyTables(t *testing.T) {
	tn := Tenant{ID: "a"}
	assert.Empty(t, tn.batches(seqIDs()))
}

type fakeTx struct {
	execs  []string
	copied map[string]int
	failOn string
}

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeTx) CopyFrom(_ context.Context, table pgx.Identifier, _ []string, src pgx.CopyFromSource) (int64, error) {
	if table[0] == f.failOn {
		return 0, errors.New("copy failed")
	}
	var n int64
	for src.Next() {
		if _, err := src.Values(); err != nil {
			return n, err
		}
		n++
	}
	if f.copied == nil {
		f.copied = map[string]int{}
	}
	f.copied[table[0]] += int(n)
	return n, src.Err()
}

func TestLoadTenant(t *testing.T) {
	demo := loadDemo(t).Tenants[0]
	l := &Loader{newID: seqIDs()}
	tx := &fakeTx{}
	counts := map[string]int64{}

	require.NoError(t, l.loadTenant(context.Background(), tx, &demo, counts))
	require.Len(t, tx.execs, 1)
	assert.Contains(t, tx.execs[0], "insert into tenants")
	assert.Equal(t, int64(2), counts["anniversaries"])
	assert.Equal(t, int64(2), counts["destinations"])
	assert.Equal(t, int64(1), counts["favorites"])
	assert.Equal(t, 1, tx.copied["courses"])
}

func TestLoadTenant_CopyError(t *testing.T) {
	demo := loadDemo(t).Tenants[0]
	l := &Loader{newID: seqIDs()}

	err := l.loadTenant(context.Background(), &fakeTx{failOn: "leases"}, &demo, map[string]int64{})
	assert.ErrorContains(t, err, "copy leases")
}
