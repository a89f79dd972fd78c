package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/leave"
	"go-payroll/internal/shared/approval"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const overlapQuery = `SELECT count\(\*\) FROM "leave_requests" WHERE employee_id = \$1 AND status IN \(\$2,\s?\$3\) AND .*NOT \(end_date < \$4 OR start_date > \$5\)`

func newRepository(t *testing.T) (leave.Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return leave.NewRepository(gormDB), mock
}

func TestLeaveRepository_HasOverlap(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	// An existing request covers 2026-03-09..2026-03-11.
	tests := []struct {
		name       string
		start, end time.Time
		count      int
		want       bool
	}{
		{"overlapping range", day(10), day(12), 1, true},
		{"starts the day after an existing range ends", day(12), day(13), 0, false},
		{"ends the day before an existing range starts", day(6), day(8), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			mock.ExpectQuery(overlapQuery).
				WithArgs(employeeID.String(), approval.StatusPending, approval.StatusApproved,
					tt.start.Format(leave.DateLayout), tt.end.Format(leave.DateLayout)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.HasOverlap(ctx, employeeID, tt.start, tt.end)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("query failure", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectQuery(overlapQuery).WillReturnError(errors.New("db down"))

		got, err := repo.HasOverlap(ctx, employeeID, day(10), day(12))

		assert.Error(t, err)
		assert.False(t, got)
	})
}
