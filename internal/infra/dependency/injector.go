// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ecap-app/backend/config"
	"github.com/ecap-app/backend/internal/application/usecase/analytics"
	"github.com/ecap-app/backend/internal/application/usecase/comparison"
	"github.com/ecap-app/backend/internal/application/usecase/friend"
	"github.com/ecap-app/backend/internal/application/usecase/goal"
	"github.com/ecap-app/backend/internal/application/usecase/record"
	"github.com/ecap-app/backend/internal/application/usecase/report"
	"github.com/ecap-app/backend/internal/domain/entity"
	"github.com/ecap-app/backend/internal/infra/server/router"
	"github.com/ecap-app/backend/internal/integration/adapters"
	"github.com/ecap-app/backend/internal/integration/entrypoint/controller"
	"github.com/ecap-app/backend/internal/integration/entrypoint/middleware"
	"github.com/ecap-app/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	recordRepo := persistence.NewRecordRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	friendRepo := persistence.NewFriendRepository(db)

	// Adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Record use cases (shared by both kinds; the controller fixes the kind)
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo)
	createRecordUseCase := record.NewCreateRecordUseCase(recordRepo)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepo)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepo)
	bulkDeleteRecordsUseCase := record.NewBulkDeleteRecordsUseCase(recordRepo)

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	goalSummaryUseCase := goal.NewGetGoalSummaryUseCase(goalRepo)

	// Report use cases
	createReportUseCase := report.NewCreateReportUseCase(recordRepo, reportRepo)
	getReportUseCase := report.NewGetReportUseCase(reportRepo)
	listReportsUseCase := report.NewListReportsUseCase(reportRepo)

	// Friend use cases
	sendRequestUseCase := friend.NewSendRequestUseCase(friendRepo, userRepo)
	acceptRequestUseCase := friend.NewAcceptRequestUseCase(friendRepo)
	rejectRequestUseCase := friend.NewRejectRequestUseCase(friendRepo)
	listRequestsUseCase := friend.NewListRequestsUseCase(friendRepo)

	// Analytics use cases
	recordSummaryUseCase := analytics.NewGetRecordSummaryUseCase(recordRepo)
	balanceTimelineUseCase := analytics.NewGetBalanceTimelineUseCase(recordRepo)
	comparisonUseCase := comparison.NewGetComparisonUseCase(recordRepo, goalRepo, friendRepo, userRepo)

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	expenseController := controller.NewRecordController(
		entity.RecordKindExpense,
		listRecordsUseCase,
		createRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
		bulkDeleteRecordsUseCase,
	)
	incomeController := controller.NewRecordController(
		entity.RecordKindIncome,
		listRecordsUseCase,
		createRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
		bulkDeleteRecordsUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		goalSummaryUseCase,
	)

	reportController := controller.NewReportController(
		createReportUseCase,
		getReportUseCase,
		listReportsUseCase,
	)

	friendController := controller.NewFriendController(
		sendRequestUseCase,
		acceptRequestUseCase,
		rejectRequestUseCase,
		listRequestsUseCase,
		friendRepo,
	)

	analyticsController := controller.NewAnalyticsController(
		recordSummaryUseCase,
		balanceTimelineUseCase,
	)

	comparisonController := controller.NewComparisonController(comparisonUseCase)

	// Middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var reportRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		reportRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, "ratelimit:reports", 1000, cfg.RateLimit.WindowDuration)
	} else {
		reportRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, "ratelimit:reports", cfg.RateLimit.MaxAttempts, cfg.RateLimit.WindowDuration)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Router
	r := router.NewRouter(
		healthController,
		expenseController,
		incomeController,
		goalController,
		reportController,
		friendController,
		analyticsController,
		comparisonController,
		reportRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
