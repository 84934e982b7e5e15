// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecap-app/backend/internal/application/usecase/analytics"
	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
	"github.com/ecap-app/backend/internal/integration/entrypoint/dto"
	"github.com/ecap-app/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles the analytics summary and timeline endpoints.
type AnalyticsController struct {
	summaryUseCase  *analytics.GetRecordSummaryUseCase
	timelineUseCase *analytics.GetBalanceTimelineUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	summaryUseCase *analytics.GetRecordSummaryUseCase,
	timelineUseCase *analytics.GetBalanceTimelineUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase:  summaryUseCase,
		timelineUseCase: timelineUseCase,
	}
}

// ExpenseSummary handles GET /analytics/expenses requests.
func (c *AnalyticsController) ExpenseSummary(ctx *gin.Context) {
	c.summary(ctx, entity.RecordKindExpense)
}

// IncomeSummary handles GET /analytics/incomes requests.
func (c *AnalyticsController) IncomeSummary(ctx *gin.Context) {
	c.summary(ctx, entity.RecordKindIncome)
}

func (c *AnalyticsController) summary(ctx *gin.Context, kind entity.RecordKind) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := analytics.GetRecordSummaryInput{
		UserID: userID,
		Kind:   kind,
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordSummaryResponse(output))
}

// BalanceTimeline handles GET /analytics/balance requests.
func (c *AnalyticsController) BalanceTimeline(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.timelineUseCase.Execute(ctx.Request.Context(), analytics.GetBalanceTimelineInput{UserID: userID})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceTimelineResponse(output))
}

// handleAnalyticsError maps analytics errors to HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var anlErr *domainerror.AnalyticsError
	if errors.As(err, &anlErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: anlErr.Message,
			Code:  string(anlErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
