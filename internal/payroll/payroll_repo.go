package payroll

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// CreateIfAbsent inserts rec unless a record for the same employee and
	// period exists. It reports whether a row was written.
	CreateIfAbsent(ctx context.Context, rec *PayrollRecord) (bool, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID, periodID uuid.UUID) (*PayrollRecord, error)
	FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]PayrollRecord, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]PayrollRecord, error)
	SummarizePeriod(ctx context.Context, periodID uuid.UUID) (PeriodTotals, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) CreateIfAbsent(ctx context.Context, rec *PayrollRecord) (bool, error) {
	res := r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "pay_period_id"}},
			DoNothing: true,
		}).
		Create(rec)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID, periodID uuid.UUID) (*PayrollRecord, error) {
	var rec PayrollRecord
	err := r.conn(ctx).
		Where("employee_id = ? AND pay_period_id = ?", employeeID, periodID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]PayrollRecord, error) {
	var records []PayrollRecord
	err := r.conn(ctx).
		Where("pay_period_id = ?", periodID).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]PayrollRecord, error) {
	var records []PayrollRecord
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) SummarizePeriod(ctx context.Context, periodID uuid.UUID) (PeriodTotals, error) {
	var totals PeriodTotals
	err := r.conn(ctx).
		Model(&PayrollRecord{}).
		Select(`COUNT(*) AS employees,
			COALESCE(SUM(gross_income), 0) AS gross_income,
			COALESCE(SUM(total_deductions), 0) AS total_deductions,
			COALESCE(SUM(net_salary), 0) AS net_salary`).
		Where("pay_period_id = ?", periodID).
		Scan(&totals).Error
	return totals, err
}
