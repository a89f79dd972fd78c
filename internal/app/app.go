package app

import (
	"database/sql"
	"fmt"
	"net/http"

	"go-payroll/internal/audit"
	"go-payroll/internal/config"
	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/connection"
	"go-payroll/internal/shared/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects infrastructure, wires every module and registers routes
// on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config, auditLog audit.Logger) (func(), error) {
	logger := zap.L().Named("app")

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	rules, err := config.LoadRules(cfg.RulesPath, cfg.Timezone)
	if err != nil {
		return nil, err
	}

	gormDB, sqlDB, err := connectDB(cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.MaxRetries)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	svcs, err := buildServices(sqlDB, gormDB, rdb, rules, auditLog)
	if err != nil {
		sqlDB.Close()
		rdb.Close()
		return nil, err
	}

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization", middleware.HeaderRequestID, middleware.HeaderIdempotencyKey)
	corsCfg.AddExposeHeaders(middleware.HeaderRequestID)
	router.Use(cors.New(corsCfg), middleware.RequestID())

	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "up"}, nil)
	})

	api := router.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(zap.L().Named("http")),
	)
	registerRoutes(api, svcs, rdb)

	logger.Info("application wired",
		zap.String("env", cfg.AppEnv),
		zap.String("timezone", rules.Timezone),
		zap.Int("tax_brackets", len(rules.Deductions.TaxBrackets)),
	)

	return func() {
		rdb.Close()
		sqlDB.Close()
	}, nil
}

func connectDB(cfg config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.MaxRetries)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}
