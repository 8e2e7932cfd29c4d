package leave_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-leave/internal/leave"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupLeaveRepoTest(t *testing.T) (leave.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	return leave.NewRepository(gormDB), sqlMock
}

const overlapQuery = `SELECT count(*) FROM "leave_requests" WHERE user_id = $1 AND status <> $2 AND (NOT (end_date < $3 OR start_date > $4))`

func TestLeaveRepository_HasOverlappingPeriod(t *testing.T) {
	ctx := context.Background()
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	// An existing request spans Sep 10-12. The complement predicate keeps
	// both bounds inclusive, so a new request merely touching either edge
	// still collides.
	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		rows     int64
		expected bool
	}{
		{"new end touches existing start", day(8), day(10), 1, true},
		{"new start touches existing end", day(12), day(14), 1, true},
		{"new range contains existing", day(9), day(13), 1, true},
		{"new range inside existing", day(11), day(11), 1, true},
		{"clear of the window", day(20), day(22), 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, sqlMock := setupLeaveRepoTest(t)

			sqlMock.ExpectQuery(regexp.QuoteMeta(overlapQuery)).
				WithArgs(int64(42), leave.StatusRejected, tc.start, tc.end).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tc.rows))

			got, err := repo.HasOverlappingPeriod(ctx, 42, tc.start, tc.end)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		})
	}

	t.Run("negative query error surfaces", func(t *testing.T) {
		repo, sqlMock := setupLeaveRepoTest(t)

		sqlMock.ExpectQuery(regexp.QuoteMeta(overlapQuery)).
			WillReturnError(assert.AnError)

		got, err := repo.HasOverlappingPeriod(ctx, 42, day(1), day(2))

		assert.Error(t, err)
		assert.False(t, got)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveRepository_FindRecentDecided(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by application date", func(t *testing.T) {
		repo, sqlMock := setupLeaveRepoTest(t)

		sqlMock.ExpectQuery(`SELECT .+ FROM "leave_requests" WHERE status IN \(\$1,\$2\) ORDER BY applied_at DESC LIMIT`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		leaves, err := repo.FindRecentDecided(ctx, 5)

		assert.NoError(t, err)
		assert.Empty(t, leaves)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
