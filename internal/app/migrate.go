package app

import (
	"go-payroll/internal/attendance"
	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/leavebalance"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/overtime"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/payroll"
	"go-payroll/internal/referencedata"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// models is ordered so referenced tables exist first.
func models() []any {
	return []any{
		&referencedata.LeaveType{},
		&referencedata.PositionBenefit{},
		&employee.Employee{},
		&employee.SalaryChange{},
		&payperiod.PayPeriod{},
		&attendance.AttendanceRecord{},
		&attendance.TardinessRecord{},
		&leavebalance.LeaveBalance{},
		&leave.LeaveRequest{},
		&overtime.OvertimeRequest{},
		&payroll.PayrollRecord{},
		&kafka.OutboxRow{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models()...)
}

// RunMigrations brings the schema up to date and exits.
func RunMigrations(cfg config.Config) error {
	gormDB, sqlDB, err := connectDB(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := Migrate(gormDB); err != nil {
		return err
	}
	zap.L().Named("app.migrate").Info("schema migrated", zap.Int("tables", len(models())))
	return nil
}
