package leavebalance

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leavebalance_repo.go -destination=mock/leavebalance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, b *LeaveBalance) error
	FindByKey(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error)
	FindByEmployeeYear(ctx context.Context, employeeID uuid.UUID, year int) ([]LeaveBalance, error)
	AddUsage(ctx context.Context, id uuid.UUID, days int) (bool, error)
	SetCarryOver(ctx context.Context, id uuid.UUID, days int) error
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

func (r *repository) Create(ctx context.Context, b *LeaveBalance) error {
	return r.conn(ctx).Create(b).Error
}

func (r *repository) FindByKey(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.conn(ctx).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindByEmployeeYear(ctx context.Context, employeeID uuid.UUID, year int) ([]LeaveBalance, error) {
	var rows []LeaveBalance
	err := r.conn(ctx).
		Where("employee_id = ? AND year = ?", employeeID, year).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// AddUsage moves used and remaining days in one statement. It reports false
// when the row is missing or the remaining days would go negative.
func (r *repository) AddUsage(ctx context.Context, id uuid.UUID, days int) (bool, error) {
	res := r.conn(ctx).
		Model(&LeaveBalance{}).
		Where("id = ? AND total_days + carry_over_days - used_days >= ?", id, days).
		Updates(map[string]any{
			"used_days":      gorm.Expr("used_days + ?", days),
			"remaining_days": gorm.Expr("total_days + carry_over_days - (used_days + ?)", days),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) SetCarryOver(ctx context.Context, id uuid.UUID, days int) error {
	res := r.conn(ctx).
		Model(&LeaveBalance{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"carry_over_days": days,
			"remaining_days":  gorm.Expr("total_days + ? - used_days", days),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
