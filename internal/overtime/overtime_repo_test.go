package overtime_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/overtime"
	"go-payroll/internal/shared/approval"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestOvertimeRepository_HasOverlap(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	at := func(h, m int) time.Time { return time.Date(2026, 3, 3, h, m, 0, 0, time.UTC) }

	// An existing request covers 18:00..20:00.
	tests := []struct {
		name       string
		start, end time.Time
		count      int
		want       bool
	}{
		{"overlapping window", at(19, 0), at(21, 0), 1, true},
		{"starts after the existing window", at(20, 30), at(21, 30), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()
			gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
			assert.NoError(t, err)

			mock.ExpectQuery(`SELECT count\(\*\) FROM "overtime_requests" WHERE employee_id = \$1 AND status IN \(\$2,\s?\$3\) AND .*NOT \(end_time < \$4 OR start_time > \$5\)`).
				WithArgs(employeeID.String(), approval.StatusPending, approval.StatusApproved, tt.start, tt.end).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := overtime.NewRepository(gormDB).HasOverlap(ctx, employeeID, tt.start, tt.end)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
