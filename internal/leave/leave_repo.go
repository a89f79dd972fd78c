package leave

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/approval"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error)
	FindPendingByEmployees(ctx context.Context, employeeIDs []uuid.UUID) ([]LeaveRequest, error)
	FindByDateRange(ctx context.Context, from, to time.Time, status string) ([]LeaveRequest, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	var l LeaveRequest
	if err := r.conn(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindPendingByEmployees(ctx context.Context, employeeIDs []uuid.UUID) ([]LeaveRequest, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Where("employee_id IN ?", employeeIDs).
		Where("status = ?", approval.StatusPending).
		Order("created_at ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByDateRange(ctx context.Context, from, to time.Time, status string) ([]LeaveRequest, error) {
	db := r.conn(ctx).
		Where("NOT (end_date < ? OR start_date > ?)", from.Format(DateLayout), to.Format(DateLayout))
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var leaves []LeaveRequest
	err := db.Order("start_date ASC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) HasOverlap(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", approval.ActiveStatuses).
		Where("NOT (end_date < ? OR start_date > ?)", start.Format(DateLayout), end.Format(DateLayout)).
		Count(&count).Error
	return count > 0, err
}

// Decide moves a PENDING request to status. It reports false when the request
// was no longer pending.
func (r *repository) Decide(ctx context.Context, id uuid.UUID, status string, approverID uuid.UUID, notes *string, at time.Time) (bool, error) {
	res := r.conn(ctx).
		Model(&LeaveRequest{}).
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
