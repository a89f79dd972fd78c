package app

import (
	"database/sql"

	"go-payroll/internal/attendance"
	"go-payroll/internal/audit"
	"go-payroll/internal/config"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/leavebalance"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/overtime"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/payroll"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"
	"go-payroll/internal/referencedata"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// services is the wired object graph. The API, worker and consumer each build
// it once and use the parts they need.
type services struct {
	rbac          rbac.Service
	referenceData referencedata.Service
	employees     employee.Service
	periods       payperiod.Service
	attendance    attendance.Service
	balances      leavebalance.Service
	leaves        leave.Service
	overtimes     overtime.Service
	payroll       payroll.Service
}

func buildServices(
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	rules config.Rules,
	auditLog audit.Logger,
) (*services, error) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	periodRepo := payperiod.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	balanceRepo := leavebalance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	overtimeRepo := overtime.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	referenceRepo := referencedata.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService, err := rbac.NewService(rbac.NewStaticRepository(), enforcer)
	if err != nil {
		return nil, err
	}

	deductions, err := deduction.NewEngine(rules.Deductions.TaxBrackets, rules.Deductions.Contributions)
	if err != nil {
		return nil, err
	}

	// --- Services ---
	referenceService := referencedata.NewService(referenceRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo)
	periodService := payperiod.NewService(db, periodRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, rules.Schedule, auditLog)
	balanceService := leavebalance.NewService(db, balanceRepo, referenceService, employeeRepo, rules.Leave)

	leaveService := leave.NewService(db, leaveRepo, leave.Dependencies{
		Balances:   balanceService,
		LeaveTypes: referenceService,
		Employees:  employeeRepo,
		Audit:      auditLog,
	}, rules)

	overtimeService := overtime.NewService(db, overtimeRepo, overtime.Dependencies{
		Attendance: attendanceService,
		Employees:  employeeRepo,
		Audit:      auditLog,
	}, rules)

	calculator := payroll.NewCalculator(
		attendanceService,
		overtimeService,
		referenceService,
		deductions,
		rules.Location(),
	)
	payrollService := payroll.NewService(db, payrollRepo, calculator, payroll.Dependencies{
		Employees: employeeRepo,
		Periods:   periodRepo,
		Outbox:    outboxRepo,
		Audit:     auditLog,
	})

	return &services{
		rbac:          rbacService,
		referenceData: referenceService,
		employees:     employeeService,
		periods:       periodService,
		attendance:    attendanceService,
		balances:      balanceService,
		leaves:        leaveService,
		overtimes:     overtimeService,
		payroll:       payrollService,
	}, nil
}

func registerRoutes(api *gin.RouterGroup, s *services, rdb *redis.Client) {
	rbac.RegisterRoutes(api, rbac.NewHandler(s.rbac), s.rbac)
	referencedata.RegisterRoutes(api, referencedata.NewHandler(s.referenceData), s.rbac)
	employee.RegisterRoutes(api, employee.NewHandler(s.employees), s.rbac)
	payperiod.RegisterRoutes(api, payperiod.NewHandler(s.periods), s.rbac)
	attendance.RegisterRoutes(api, attendance.NewHandler(s.attendance), s.rbac)
	leavebalance.RegisterRoutes(api, leavebalance.NewHandler(s.balances), s.rbac)
	leave.RegisterRoutes(api, leave.NewHandler(s.leaves), s.rbac)
	overtime.RegisterRoutes(api, overtime.NewHandler(s.overtimes), s.rbac)
	payroll.RegisterRoutes(api, payroll.NewHandlerWithRedis(s.payroll, rdb), s.rbac, rdb)
}
