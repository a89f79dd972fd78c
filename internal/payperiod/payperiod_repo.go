package payperiod

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payperiod_repo.go -destination=mock/payperiod_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *PayPeriod) error
	FindByID(ctx context.Context, id uuid.UUID) (*PayPeriod, error)
	FindAll(ctx context.Context) ([]PayPeriod, error)
	FindByYear(ctx context.Context, year int) ([]PayPeriod, error)
	CountOverlapping(ctx context.Context, start, end time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, p *PayPeriod) error {
	return r.conn(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*PayPeriod, error) {
	var p PayPeriod
	if err := r.conn(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAll(ctx context.Context) ([]PayPeriod, error) {
	var periods []PayPeriod
	err := r.conn(ctx).Order("start_date DESC").Find(&periods).Error
	return periods, err
}

func (r *repository) FindByYear(ctx context.Context, year int) ([]PayPeriod, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, -1)

	var periods []PayPeriod
	err := r.conn(ctx).
		Where("start_date BETWEEN ? AND ?", from, to).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

// CountOverlapping counts periods sharing at least one day with [start, end].
func (r *repository) CountOverlapping(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&PayPeriod{}).
		Where("NOT (end_date < ? OR start_date > ?)", start, end).
		Count(&count).Error
	return count, err
}
