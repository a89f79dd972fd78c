package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *AttendanceRecord) error
	FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*AttendanceRecord, error)
	SetTimeOut(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	CreateTardiness(ctx context.Context, t *TardinessRecord) error
	FindByEmployeeBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]AttendanceRecord, error)
	FindWithTardinessBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]AttendanceRecord, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, rec *AttendanceRecord) error {
	return r.conn(ctx).Omit("Tardiness").Create(rec).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format(DateLayout)).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// SetTimeOut only writes when time_out is still empty and reports whether it did.
func (r *repository) SetTimeOut(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.conn(ctx).
		Model(&AttendanceRecord{}).
		Where("id = ? AND time_out IS NULL", id).
		Updates(map[string]any{
			"time_out":   at,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) CreateTardiness(ctx context.Context, t *TardinessRecord) error {
	return r.conn(ctx).Create(t).Error
}

func (r *repository) FindByEmployeeBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", from.Format(DateLayout), to.Format(DateLayout)).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindWithTardinessBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.conn(ctx).
		Preload("Tardiness", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", from.Format(DateLayout), to.Format(DateLayout)).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}
