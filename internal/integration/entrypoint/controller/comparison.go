// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecap-app/backend/internal/application/usecase/comparison"
	"github.com/ecap-app/backend/internal/integration/entrypoint/dto"
	"github.com/ecap-app/backend/internal/integration/entrypoint/middleware"
)

// ComparisonController handles the friend comparison endpoint.
type ComparisonController struct {
	getUseCase *comparison.GetComparisonUseCase
}

// NewComparisonController creates a new comparison controller instance.
func NewComparisonController(getUseCase *comparison.GetComparisonUseCase) *ComparisonController {
	return &ComparisonController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /comparison requests.
func (c *ComparisonController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), comparison.GetComparisonInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build comparison",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComparisonResponse(output))
}
