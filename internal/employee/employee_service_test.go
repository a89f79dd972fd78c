package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	employeeMock "go-payroll/internal/employee/mock"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	kafkaMock "go-payroll/internal/messaging/kafka/mock"
	"go-payroll/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *employeeMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	repo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, outboxRepo)

	return &serviceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, outbox: outboxRepo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

type outboxTopicMatcher struct {
	topic string
	rid   string
}

func (m outboxTopicMatcher) Matches(x any) bool {
	e, ok := x.(kafka.OutboxEvent)
	if !ok {
		return false
	}
	var payload events.EmployeeCreatedEvent
	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return false
	}
	return e.Topic == m.topic && e.RequestID == m.rid && payload.RequestID == m.rid && payload.EmployeeID == e.AggregateID
}

func (m outboxTopicMatcher) String() string {
	return "outbox event on " + m.topic
}

func TestEmployeeService_Create(t *testing.T) {
	req := employee.CreateEmployeeRequest{
		EmployeeNumber: "EMP-0001",
		FullName:       "Maria Santos",
		BasicSalary:    "30000",
		HourlyRate:     "170.45",
	}

	t.Run("success queues employee_created event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		ctx := contextutil.WithRequestID(context.Background(), "rid-create")

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, employee.StatusActive, e.Status)
			assert.Equal(t, "30000.00", e.BasicSalary.StringFixed(2))
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, outboxTopicMatcher{topic: events.EmployeeCreatedTopic, rid: "rid-create"}).Return(nil)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Maria Santos", resp.FullName)
		assert.Equal(t, "170.45", resp.HourlyRate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative amount rejected before touching storage", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		bad := req
		bad.BasicSalary = "-1"
		_, err := deps.service.Create(context.Background(), bad)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidAmount)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate employee number", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_number"})

		_, err := deps.service.Create(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown supervisor", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		supervisor := uuid.NewString()
		withSupervisor := req
		withSupervisor.SupervisorID = &supervisor

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), uuid.MustParse(supervisor)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(context.Background(), withSupervisor)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_UpdateSalary(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	current := &employee.Employee{
		ID:          uuid.New(),
		FullName:    "Jose Rizal",
		BasicSalary: decimal.NewFromInt(20000),
		HourlyRate:  decimal.NewFromInt(110),
		Status:      employee.StatusActive,
	}

	t.Run("writes salary and history in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)
		deps.repo.EXPECT().UpdateSalary(ctx, current.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, basic, hourly decimal.Decimal) error {
				assert.True(t, basic.Equal(decimal.NewFromInt(25000)))
				assert.True(t, hourly.Equal(decimal.NewFromInt(140)))
				return nil
			})
		deps.repo.EXPECT().CreateSalaryChange(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *employee.SalaryChange) error {
			assert.Equal(t, "20000.00", c.OldBasicSalary.StringFixed(2))
			assert.Equal(t, "25000.00", c.NewBasicSalary.StringFixed(2))
			assert.Equal(t, actorID, *c.ChangedBy)
			return nil
		})

		resp, err := deps.service.UpdateSalary(ctx, actorID.String(), current.ID.String(), employee.UpdateSalaryRequest{
			BasicSalary: "25000", HourlyRate: "140", EffectiveDate: "2026-04-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "25000.00", resp.BasicSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("terminated employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		terminated := *current
		terminated.Status = employee.StatusTerminated

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, current.ID).Return(&terminated, nil)

		_, err := deps.service.UpdateSalary(ctx, actorID.String(), current.ID.String(), employee.UpdateSalaryRequest{
			BasicSalary: "25000", HourlyRate: "140", EffectiveDate: "2026-04-01",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeTerminated)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("history insert failure propagates", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)
		deps.repo.EXPECT().UpdateSalary(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreateSalaryChange(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := deps.service.UpdateSalary(ctx, actorID.String(), current.ID.String(), employee.UpdateSalaryRequest{
			BasicSalary: "25000", HourlyRate: "140", EffectiveDate: "2026-04-01",
		})

		assert.EqualError(t, err, "insert failed")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_List(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	supervisorID := uuid.New()
	deps.repo.EXPECT().FindBySupervisor(ctx, supervisorID).Return([]employee.Employee{
		{ID: uuid.New(), FullName: "A", Status: employee.StatusActive},
		{ID: uuid.New(), FullName: "B", Status: employee.StatusTerminated},
	}, nil)

	resp, err := deps.service.List(ctx, employee.ListEmployeesFilter{
		SupervisorID: supervisorID.String(),
		Status:       employee.StatusActive,
	})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "A", resp[0].FullName)

	_, err = deps.service.List(ctx, employee.ListEmployeesFilter{Status: "RETIRED"})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)
}

func TestEmployeeService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	_, err := deps.service.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)

	id := uuid.New()
	deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)
	_, err = deps.service.GetByID(ctx, id.String())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
