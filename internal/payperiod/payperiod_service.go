package payperiod

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	payperioderrors "go-payroll/internal/payperiod/errors"
	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payperiod_service.go -destination=mock/payperiod_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayPeriodRequest) (PayPeriodResponse, error)
	GenerateSemiMonthly(ctx context.Context, req GenerateSemiMonthlyRequest) ([]PayPeriodResponse, error)
	GetByID(ctx context.Context, id string) (PayPeriodResponse, error)
	List(ctx context.Context, filter ListPayPeriodsFilter) ([]PayPeriodResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payperiod.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payperiod.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePayPeriodRequest) (PayPeriodResponse, error) {
	s.logger.Debug("create pay period requested",
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	p, err := buildPeriod(req)
	if err != nil {
		s.logger.Warn("create pay period validation failed", zap.Error(err))
		return PayPeriodResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayPeriodResponse{}, err
	}
	defer tx.Rollback()

	if err := s.insert(ctx, s.repo.WithTx(tx), p); err != nil {
		return PayPeriodResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create pay period commit failed", zap.Error(err))
		return PayPeriodResponse{}, err
	}

	s.logger.Info("create pay period success", zap.String("pay_period_id", p.ID.String()))
	return mapToResponse(*p), nil
}

// GenerateSemiMonthly creates the 1st-15th and 16th-end periods of a month in
// one transaction. Either both are created or neither.
func (s *service) GenerateSemiMonthly(ctx context.Context, req GenerateSemiMonthlyRequest) ([]PayPeriodResponse, error) {
	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	mid := first.AddDate(0, 0, 14)
	last := first.AddDate(0, 1, -1)
	label := first.Format("January 2006")

	periods := []*PayPeriod{
		{
			ID:          uuid.New(),
			StartDate:   first,
			EndDate:     mid,
			PayDate:     mid.AddDate(0, 0, req.PayDelayDays),
			Description: fmt.Sprintf("%s, first half", label),
		},
		{
			ID:          uuid.New(),
			StartDate:   mid.AddDate(0, 0, 1),
			EndDate:     last,
			PayDate:     last.AddDate(0, 0, req.PayDelayDays),
			Description: fmt.Sprintf("%s, second half", label),
		},
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for _, p := range periods {
		if err := s.insert(ctx, qtx, p); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate pay periods commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("generate pay periods success", zap.String("month", first.Format("2006-01")))
	return []PayPeriodResponse{mapToResponse(*periods[0]), mapToResponse(*periods[1])}, nil
}

func (s *service) insert(ctx context.Context, qtx Repository, p *PayPeriod) error {
	overlapping, err := qtx.CountOverlapping(ctx, p.StartDate, p.EndDate)
	if err != nil {
		s.logger.Error("pay period overlap check failed", zap.Error(err))
		return err
	}
	if overlapping > 0 {
		s.logger.Warn("pay period overlaps existing period",
			zap.String("start_date", p.StartDate.Format(DateLayout)),
			zap.String("end_date", p.EndDate.Format(DateLayout)),
		)
		return payperioderrors.ErrPayPeriodOverlap
	}

	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("pay period persist failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayPeriodResponse, error) {
	periodID, err := uuid.Parse(id)
	if err != nil {
		return PayPeriodResponse{}, payperioderrors.ErrInvalidPayPeriodID
	}

	p, err := s.repo.FindByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayPeriodResponse{}, payperioderrors.ErrPayPeriodNotFound
		}
		return PayPeriodResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) List(ctx context.Context, filter ListPayPeriodsFilter) ([]PayPeriodResponse, error) {
	var (
		periods []PayPeriod
		err     error
	)
	if filter.Year > 0 {
		periods, err = s.repo.FindByYear(ctx, filter.Year)
	} else {
		periods, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]PayPeriodResponse, len(periods))
	for i, p := range periods {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func buildPeriod(req CreatePayPeriodRequest) (*PayPeriod, error) {
	start, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return nil, apperror.ErrInvalidDateFormat
	}
	end, err := time.Parse(DateLayout, req.EndDate)
	if err != nil {
		return nil, apperror.ErrInvalidDateFormat
	}
	payDate, err := time.Parse(DateLayout, req.PayDate)
	if err != nil {
		return nil, apperror.ErrInvalidDateFormat
	}

	if end.Before(start) {
		return nil, payperioderrors.ErrInvalidDateRange
	}
	if payDate.Before(end) {
		return nil, payperioderrors.ErrInvalidPayDate
	}

	return &PayPeriod{
		ID:          uuid.New(),
		StartDate:   start,
		EndDate:     end,
		PayDate:     payDate,
		Description: req.Description,
	}, nil
}

func mapToResponse(p PayPeriod) PayPeriodResponse {
	return PayPeriodResponse{
		ID:          p.ID.String(),
		StartDate:   p.StartDate.Format(DateLayout),
		EndDate:     p.EndDate.Format(DateLayout),
		PayDate:     p.PayDate.Format(DateLayout),
		Description: p.Description,
	}
}
