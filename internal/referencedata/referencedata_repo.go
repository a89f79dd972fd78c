package referencedata

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=referencedata_repo.go -destination=mock/referencedata_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateLeaveType(ctx context.Context, lt *LeaveType) error
	FindLeaveTypes(ctx context.Context) ([]LeaveType, error)
	FindLeaveTypeByID(ctx context.Context, id uuid.UUID) (*LeaveType, error)
	CreateBenefit(ctx context.Context, b *PositionBenefit) error
	FindBenefitsByPosition(ctx context.Context, positionID uuid.UUID) ([]PositionBenefit, error)
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

func (r *repository) CreateLeaveType(ctx context.Context, lt *LeaveType) error {
	return r.conn(ctx).Create(lt).Error
}

func (r *repository) FindLeaveTypes(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.conn(ctx).Order("code ASC").Find(&types).Error
	return types, err
}

func (r *repository) FindLeaveTypeByID(ctx context.Context, id uuid.UUID) (*LeaveType, error) {
	var lt LeaveType
	if err := r.conn(ctx).First(&lt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) CreateBenefit(ctx context.Context, b *PositionBenefit) error {
	return r.conn(ctx).Create(b).Error
}

func (r *repository) FindBenefitsByPosition(ctx context.Context, positionID uuid.UUID) ([]PositionBenefit, error) {
	var benefits []PositionBenefit
	err := r.conn(ctx).
		Where("position_id = ?", positionID).
		Order("name ASC").
		Find(&benefits).Error
	return benefits, err
}
