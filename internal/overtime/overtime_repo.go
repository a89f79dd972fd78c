package overtime

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/approval"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=overtime_repo.go -destination=mock/overtime_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, o *OvertimeRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*OvertimeRequest, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]OvertimeRequest, error)
	FindPendingByEmployees(ctx context.Context, employeeIDs []uuid.UUID) ([]OvertimeRequest, error)
	FindByDateRange(ctx context.Context, from, to time.Time, status string) ([]OvertimeRequest, error)
	FindApprovedStartingBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]OvertimeRequest, error)
	ApprovedHoursBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	HasOverlap(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (bool, error)
	Decide(ctx context.Context, id uuid.UUID, status string, approverID uuid.UUID, notes *string, at time.Time) (bool, error)
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

func (r *repository) Create(ctx context.Context, o *OvertimeRequest) error {
	return r.conn(ctx).Create(o).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*OvertimeRequest, error) {
	var o OvertimeRequest
	if err := r.conn(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]OvertimeRequest, error) {
	var list []OvertimeRequest
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_time DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindPendingByEmployees(ctx context.Context, employeeIDs []uuid.UUID) ([]OvertimeRequest, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var list []OvertimeRequest
	err := r.conn(ctx).
		Where("employee_id IN ?", employeeIDs).
		Where("status = ?", approval.StatusPending).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

// FindByDateRange returns requests starting within [from, to).
func (r *repository) FindByDateRange(ctx context.Context, from, to time.Time, status string) ([]OvertimeRequest, error) {
	db := r.conn(ctx).Where("start_time >= ? AND start_time < ?", from, to)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var list []OvertimeRequest
	err := db.Order("start_time ASC").Find(&list).Error
	return list, err
}

func (r *repository) FindApprovedStartingBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]OvertimeRequest, error) {
	var list []OvertimeRequest
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", approval.StatusApproved).
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) ApprovedHoursBetween(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.conn(ctx).
		Model(&OvertimeRequest{}).
		Select("SUM(hours)").
		Where("employee_id = ?", employeeID).
		Where("status = ?", approval.StatusApproved).
		Where("start_time >= ? AND start_time < ?", from, to).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *repository) HasOverlap(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&OvertimeRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", approval.ActiveStatuses).
		Where("NOT (end_time < ? OR start_time > ?)", start, end).
		Count(&count).Error
	return count > 0, err
}

// Decide moves a PENDING request to status. It reports false when the request
// was no longer pending.
func (r *repository) Decide(ctx context.Context, id uuid.UUID, status string, approverID uuid.UUID, notes *string, at time.Time) (bool, error) {
	res := r.conn(ctx).
		Model(&OvertimeRequest{}).
		Where("id = ? AND status = ?", id, approval.StatusPending).
		Updates(map[string]any{
			"status":           status,
			"approver_id":      approverID,
			"supervisor_notes": notes,
			"decided_at":       at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
