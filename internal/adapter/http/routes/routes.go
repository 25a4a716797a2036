package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "billing_core/docs"
	"billing_core/internal/adapter/http/handlers"
	"billing_core/internal/adapter/persistence/repository"
	"billing_core/internal/config"
	"billing_core/internal/infrastructure/database"
	"billing_core/internal/infrastructure/edw"
	"billing_core/internal/infrastructure/logger"
	"billing_core/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers served under /v1.
type Handlers struct {
	Statements *handlers.BillingStatementHandler
	Revenue    *handlers.RevenueHandler
	Tasks      *handlers.StatementTaskHandler
	EmailTasks *handlers.EmailTaskHandler
}

// Run wires the service and serves it until the listener fails.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	h, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}

	router := NewRouter(h, log)
	log.Info("[http][routes] listening", zap.Int("port", cfg.Port))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, h)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config, log *zap.Logger) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Handlers{}, fmt.Errorf("connect dynamodb: %w", err)
	}

	statementRepo := repository.NewBillingStatementDynamoRepository(ddb, cfg.Tables)
	lookupRepo := repository.NewRevenueLookupDynamoRepository(ddb, cfg.Tables)
	lockRepo := repository.NewResourceLockDynamoRepository(ddb, cfg.Tables)
	taskRepo := repository.NewStatementTaskDynamoRepository(ddb, cfg.Tables)
	expenseRepo := repository.NewBillableExpenseDynamoRepository(ddb, cfg.Tables)
	emailTaskRepo := repository.NewEmailTaskDynamoRepository(ddb, cfg.Tables)

	if cfg.EDW.Endpoint == "" {
		log.Warn("[http][routes] EDW endpoint not configured; budget and P&L routes will answer 503")
	}
	edwClient := edw.NewClient(cfg.EDW, log)

	locks := usecase.NewLockUseCase(lockRepo, log)
	statements := usecase.NewBillingStatementUseCase(statementRepo, log)
	internalRevenue := usecase.NewInternalRevenueUseCase(lookupRepo, log)
	siteStatistics := usecase.NewSiteStatisticUseCase(edwClient, log)
	expenseBudgets := usecase.NewExpenseBudgetUseCase(expenseRepo, log)
	tasks := usecase.NewStatementTaskUseCase(taskRepo, lookupRepo, locks, log)
	emailTasks := usecase.NewEmailTaskUseCase(emailTaskRepo, statements, locks, log)

	return Handlers{
		Statements: handlers.NewBillingStatementHandler(statements, log),
		Revenue:    handlers.NewRevenueHandler(internalRevenue, siteStatistics, expenseBudgets, log),
		Tasks:      handlers.NewStatementTaskHandler(tasks, log),
		EmailTasks: handlers.NewEmailTaskHandler(emailTasks, log),
	}, nil
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("[http][routes] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}
