package employee

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByStatus(ctx context.Context, status string) ([]Employee, error)
	FindBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]Employee, error)
	FindByDepartment(ctx context.Context, departmentID uuid.UUID) ([]Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	UpdateSalary(ctx context.Context, id uuid.UUID, basicSalary, hourlyRate decimal.Decimal) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	CreateSalaryChange(ctx context.Context, change *SalaryChange) error
	FindSalaryChanges(ctx context.Context, employeeID uuid.UUID) ([]SalaryChange, error)
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

// conn routes queries through the bound transaction when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).
		Where("status = ?", status).
		Order("employee_number ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).
		Where("supervisor_id = ?", supervisorID).
		Order("employee_number ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByDepartment(ctx context.Context, departmentID uuid.UUID) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).
		Where("department_id = ?", departmentID).
		Order("employee_number ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).Order("employee_number ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) UpdateSalary(ctx context.Context, id uuid.UUID, basicSalary, hourlyRate decimal.Decimal) error {
	res := r.conn(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"basic_salary": basicSalary,
			"hourly_rate":  hourlyRate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.conn(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateSalaryChange(ctx context.Context, change *SalaryChange) error {
	return r.conn(ctx).Create(change).Error
}

func (r *repository) FindSalaryChanges(ctx context.Context, employeeID uuid.UUID) ([]SalaryChange, error) {
	var changes []SalaryChange
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC, created_at DESC").
		Find(&changes).Error
	return changes, err
}
