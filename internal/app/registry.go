package app

import (
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/balance"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/department"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leave"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/leavetype"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/messaging/kafka"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/rbac"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/rbac/infra"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/report"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/config"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/user"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	balanceRepo := balance.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	workflowRepo := workflow.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	policy, err := rbac.DefaultPolicy()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, policy)
	if err != nil {
		return err
	}
	authMW := middleware.Authenticate(auth.NewVerifier(cfg.JWTSecret))

	// --- Services ---
	ledger := balance.NewLedger(balanceRepo, cfg.AllowUnallocatedBalance)
	balanceService := balance.NewService(gormDB, balanceRepo)
	departmentService := department.NewService(gormDB, departmentRepo)
	leaveTypeService := leavetype.NewService(gormDB, leaveTypeRepo, outboxRepo, rdb)
	workflowService := workflow.NewService(gormDB, workflowRepo)
	userService := user.NewService(gormDB, userRepo, balanceService)
	leaveService := leave.NewService(
		gormDB,
		leaveRepo,
		ledger,
		workflow.NewResolver(workflowRepo),
		outboxRepo,
	)
	reportService := report.NewService(reportRepo, userRepo, departmentRepo, balanceRepo)

	// --- Handlers ---
	balanceHandler := balance.NewHandler(balanceService)
	departmentHandler := department.NewHandler(departmentService)
	leaveHandler := leave.NewHandler(leaveService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	rbacHandler := rbac.NewHandler(rbacService)
	reportHandler := report.NewHandler(reportService)
	userHandler := user.NewHandler(userService)
	workflowHandler := workflow.NewHandler(workflowService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		balance.RegisterRoutes(api, balanceHandler, rbacService, authMW)
		department.RegisterRoutes(api, departmentHandler, rbacService, authMW)
		leave.RegisterRoutes(api, leaveHandler, rbacService, authMW, middleware.Idempotency(rdb))
		leavetype.RegisterRoutes(api, leaveTypeHandler, rbacService, authMW)
		rbac.RegisterRoutes(api, rbacHandler, authMW)
		report.RegisterRoutes(api, reportHandler, rbacService, authMW)
		user.RegisterRoutes(api, userHandler, rbacService, authMW)
		workflow.RegisterRoutes(api, workflowHandler, rbacService, authMW)
	}

	return nil
}
