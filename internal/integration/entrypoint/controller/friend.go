// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/application/usecase/friend"
	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
	"github.com/ecap-app/backend/internal/integration/entrypoint/dto"
	"github.com/ecap-app/backend/internal/integration/entrypoint/middleware"
)

// FriendController handles friend request endpoints.
type FriendController struct {
	sendUseCase   *friend.SendRequestUseCase
	acceptUseCase *friend.AcceptRequestUseCase
	rejectUseCase *friend.RejectRequestUseCase
	listUseCase   *friend.ListRequestsUseCase
	friendRepo    adapter.FriendRepository
}

// NewFriendController creates a new friend controller instance.
func NewFriendController(
	sendUseCase *friend.SendRequestUseCase,
	acceptUseCase *friend.AcceptRequestUseCase,
	rejectUseCase *friend.RejectRequestUseCase,
	listUseCase *friend.ListRequestsUseCase,
	friendRepo adapter.FriendRepository,
) *FriendController {
	return &FriendController{
		sendUseCase:   sendUseCase,
		acceptUseCase: acceptUseCase,
		rejectUseCase: rejectUseCase,
		listUseCase:   listUseCase,
		friendRepo:    friendRepo,
	}
}

// Send handles POST /friends/requests requests.
func (c *FriendController) Send(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.SendFriendRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recipient ID format",
		})
		return
	}

	input := friend.SendRequestInput{
		RequesterID: userID,
		RecipientID: recipientID,
	}

	output, err := c.sendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFriendError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToFriendRequestResponse(output.Request))
}

// Accept handles POST /friends/requests/:id/accept requests.
func (c *FriendController) Accept(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	requestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request ID format",
		})
		return
	}

	input := friend.AcceptRequestInput{
		RequestID: requestID,
		UserID:    userID,
	}

	output, err := c.acceptUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFriendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFriendRequestResponse(output.Request))
}

// Reject handles POST /friends/requests/:id/reject requests.
func (c *FriendController) Reject(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	requestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request ID format",
		})
		return
	}

	input := friend.RejectRequestInput{
		RequestID: requestID,
		UserID:    userID,
	}

	output, err := c.rejectUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFriendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFriendRequestResponse(output.Request))
}

// ListRequests handles GET /friends/requests requests. The status query
// parameter defaults to pending.
func (c *FriendController) ListRequests(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	status := entity.FriendRequestStatus(ctx.DefaultQuery("status", string(entity.FriendRequestStatusPending)))
	switch status {
	case entity.FriendRequestStatusPending, entity.FriendRequestStatusAccepted, entity.FriendRequestStatusRejected:
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid status. Use pending, accepted or rejected",
		})
		return
	}

	input := friend.ListRequestsInput{
		UserID: userID,
		Status: status,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFriendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFriendRequestListResponse(output.Requests))
}

// ListFriends handles GET /friends requests, returning accepted friends.
func (c *FriendController) ListFriends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	friends, err := c.friendRepo.FindAcceptedFriends(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve friends",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFriendListResponse(friends))
}

// handleFriendError maps friend use case errors to HTTP responses.
func (c *FriendController) handleFriendError(ctx *gin.Context, err error) {
	var frdErr *domainerror.FriendError
	if errors.As(err, &frdErr) {
		ctx.JSON(statusCodeForFriendError(frdErr.Code), dto.ErrorResponse{
			Error: frdErr.Message,
			Code:  string(frdErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForFriendError maps friend error codes to HTTP status codes.
func statusCodeForFriendError(code domainerror.FriendErrorCode) int {
	switch code {
	case domainerror.ErrCodeFriendRequestNotFound,
		domainerror.ErrCodeFriendUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotRequestRecipient:
		return http.StatusForbidden
	case domainerror.ErrCodeRequestAlreadyResolved:
		return http.StatusConflict
	case domainerror.ErrCodeSelfFriendRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
