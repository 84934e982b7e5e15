// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ecap-app/backend/internal/integration/entrypoint/controller"
	"github.com/ecap-app/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	expenseController    *controller.RecordController
	incomeController     *controller.RecordController
	goalController       *controller.GoalController
	reportController     *controller.ReportController
	friendController     *controller.FriendController
	analyticsController  *controller.AnalyticsController
	comparisonController *controller.ComparisonController
	reportRateLimiter    *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.RecordController,
	incomeController *controller.RecordController,
	goalController *controller.GoalController,
	reportController *controller.ReportController,
	friendController *controller.FriendController,
	analyticsController *controller.AnalyticsController,
	comparisonController *controller.ComparisonController,
	reportRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		expenseController:    expenseController,
		incomeController:     incomeController,
		goalController:       goalController,
		reportController:     reportController,
		friendController:     friendController,
		analyticsController:  analyticsController,
		comparisonController: comparisonController,
		reportRateLimiter:    reportRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupRecordRoutes registers the CRUD routes shared by both record kinds.
func (r *Router) setupRecordRoutes(group *gin.RouterGroup, c *controller.RecordController) {
	group.Use(r.authMiddleware.Authenticate())
	group.GET("", c.List)
	group.POST("", c.Create)
	group.PATCH("/:id", c.Update)
	group.DELETE("/:id", c.Delete)
	group.POST("/bulk-delete", c.BulkDelete)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.expenseController != nil && r.authMiddleware != nil {
			r.setupRecordRoutes(v1.Group("/expenses"), r.expenseController)
		}
		if r.incomeController != nil && r.authMiddleware != nil {
			r.setupRecordRoutes(v1.Group("/incomes"), r.incomeController)
		}

		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/summary", r.goalController.Summary)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("", r.reportController.List)
				reports.GET("/:id", r.reportController.Get)

				// Report creation walks the full record history, so it is
				// the one write path behind the rate limiter.
				if r.reportRateLimiter != nil {
					reports.POST("", r.reportRateLimiter.Middleware(), r.reportController.Create)
				} else {
					reports.POST("", r.reportController.Create)
				}
			}
		}

		if r.friendController != nil && r.authMiddleware != nil {
			friends := v1.Group("/friends")
			friends.Use(r.authMiddleware.Authenticate())
			{
				friends.GET("", r.friendController.ListFriends)
				friends.GET("/requests", r.friendController.ListRequests)
				friends.POST("/requests", r.friendController.Send)
				friends.POST("/requests/:id/accept", r.friendController.Accept)
				friends.POST("/requests/:id/reject", r.friendController.Reject)
			}
		}

		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("/expenses", r.analyticsController.ExpenseSummary)
				analytics.GET("/incomes", r.analyticsController.IncomeSummary)
				analytics.GET("/balance", r.analyticsController.BalanceTimeline)
			}
		}

		if r.comparisonController != nil && r.authMiddleware != nil {
			comparison := v1.Group("/comparison")
			comparison.Use(r.authMiddleware.Authenticate())
			{
				comparison.GET("", r.comparisonController.Get)
			}
		}
	}
}
