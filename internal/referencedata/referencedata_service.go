package referencedata

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	referencedataerrors "go-payroll/internal/referencedata/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	LeaveTypesCacheKey     = "refdata:leave_types"
	BenefitsCacheKeyPrefix = "refdata:benefits:"
	referenceDataCacheTTL  = time.Hour
)

// Service serves leave types and position benefits. Reads are cached in redis
// when a client is configured; writes invalidate the affected key.
//
//go:generate mockgen -source=referencedata_service.go -destination=mock/referencedata_service_mock.go -package=mock
type Service interface {
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	CreateBenefit(ctx context.Context, req CreatePositionBenefitRequest) (PositionBenefitResponse, error)
	ListBenefits(ctx context.Context, positionID string) ([]PositionBenefitResponse, error)

	LeaveTypes(ctx context.Context) ([]LeaveType, error)
	GetLeaveType(ctx context.Context, id uuid.UUID) (*LeaveType, error)
	BenefitsForPosition(ctx context.Context, positionID uuid.UUID) ([]PositionBenefit, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("referencedata.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("referencedata.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func BenefitsCacheKey(positionID uuid.UUID) string {
	return BenefitsCacheKeyPrefix + positionID.String()
}

func (s *service) CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	lt := &LeaveType{
		ID:             uuid.New(),
		Code:           req.Code,
		Name:           req.Name,
		Category:       req.Category,
		MaxDaysPerYear: req.MaxDaysPerYear,
	}
	if err := s.repo.CreateLeaveType(ctx, lt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return LeaveTypeResponse{}, referencedataerrors.ErrLeaveTypeCodeExists
		}
		s.logger.Error("create leave type failed", zap.String("code", req.Code), zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.invalidate(ctx, LeaveTypesCacheKey)
	s.logger.Info("create leave type success", zap.String("leave_type_id", lt.ID.String()))
	return mapLeaveType(*lt), nil
}

func (s *service) ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.LeaveTypes(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		resp[i] = mapLeaveType(lt)
	}
	return resp, nil
}

func (s *service) CreateBenefit(ctx context.Context, req CreatePositionBenefitRequest) (PositionBenefitResponse, error) {
	positionID, err := uuid.Parse(req.PositionID)
	if err != nil {
		return PositionBenefitResponse{}, referencedataerrors.ErrInvalidPositionID
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		return PositionBenefitResponse{}, referencedataerrors.ErrInvalidBenefitAmount
	}

	b := &PositionBenefit{
		ID:         uuid.New(),
		PositionID: positionID,
		Name:       req.Name,
		Amount:     amount.Round(2),
	}
	if err := s.repo.CreateBenefit(ctx, b); err != nil {
		s.logger.Error("create position benefit failed", zap.String("position_id", req.PositionID), zap.Error(err))
		return PositionBenefitResponse{}, err
	}

	s.invalidate(ctx, BenefitsCacheKey(positionID))
	return mapBenefit(*b), nil
}

func (s *service) ListBenefits(ctx context.Context, positionID string) ([]PositionBenefitResponse, error) {
	id, err := uuid.Parse(positionID)
	if err != nil {
		return nil, referencedataerrors.ErrInvalidPositionID
	}
	benefits, err := s.BenefitsForPosition(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := make([]PositionBenefitResponse, len(benefits))
	for i, b := range benefits {
		resp[i] = mapBenefit(b)
	}
	return resp, nil
}

func (s *service) LeaveTypes(ctx context.Context) ([]LeaveType, error) {
	return cached(ctx, s, LeaveTypesCacheKey, func() ([]LeaveType, error) {
		return s.repo.FindLeaveTypes(ctx)
	})
}

func (s *service) GetLeaveType(ctx context.Context, id uuid.UUID) (*LeaveType, error) {
	types, err := s.LeaveTypes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range types {
		if types[i].ID == id {
			return &types[i], nil
		}
	}

	// the cache may predate the type; fall back to storage
	lt, err := s.repo.FindLeaveTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, referencedataerrors.ErrLeaveTypeNotFound
		}
		return nil, err
	}
	return lt, nil
}

func (s *service) BenefitsForPosition(ctx context.Context, positionID uuid.UUID) ([]PositionBenefit, error) {
	return cached(ctx, s, BenefitsCacheKey(positionID), func() ([]PositionBenefit, error) {
		return s.repo.FindBenefitsByPosition(ctx, positionID)
	})
}

// cached reads key from redis, and on a miss loads it once per key across
// concurrent callers and stores the result for an hour.
func cached[T any](ctx context.Context, s *service, key string, load func() ([]T, error)) ([]T, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var out []T
			if json.Unmarshal([]byte(raw), &out) == nil {
				return out, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		rows, err := load()
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if payload, err := json.Marshal(rows); err == nil {
				if err := s.rdb.Set(ctx, key, payload, referenceDataCacheTTL).Err(); err != nil {
					s.logger.Warn("reference data cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return rows, nil
	})
	if err != nil {
		s.logger.Error("reference data load failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return v.([]T), nil
}

func (s *service) invalidate(ctx context.Context, key string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate reference data cache",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func mapLeaveType(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:             lt.ID.String(),
		Code:           lt.Code,
		Name:           lt.Name,
		Category:       lt.Category,
		MaxDaysPerYear: lt.MaxDaysPerYear,
	}
}

func mapBenefit(b PositionBenefit) PositionBenefitResponse {
	return PositionBenefitResponse{
		ID:         b.ID.String(),
		PositionID: b.PositionID.String(),
		Name:       b.Name,
		Amount:     b.Amount.StringFixed(2),
	}
}
