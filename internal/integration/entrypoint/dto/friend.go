// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ecap-app/backend/internal/domain/entity"
)

// SendFriendRequestRequest represents the request body for sending a friend request.
type SendFriendRequestRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
}

// FriendRequestResponse represents a friend request in API responses.
type FriendRequestResponse struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	RecipientID string    `json:"recipient_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FriendRequestListResponse represents the response for listing friend requests.
type FriendRequestListResponse struct {
	Requests []FriendRequestResponse `json:"requests"`
}

// FriendResponse represents an accepted friend in API responses.
type FriendResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// FriendListResponse represents the response for listing accepted friends.
type FriendListResponse struct {
	Friends []FriendResponse `json:"friends"`
}

// ToFriendRequestResponse converts a domain FriendRequest entity to a DTO.
func ToFriendRequestResponse(fr *entity.FriendRequest) FriendRequestResponse {
	return FriendRequestResponse{
		ID:          fr.ID.String(),
		RequesterID: fr.RequesterID.String(),
		RecipientID: fr.RecipientID.String(),
		Status:      string(fr.Status),
		CreatedAt:   fr.CreatedAt,
		UpdatedAt:   fr.UpdatedAt,
	}
}

// ToFriendRequestListResponse converts a slice of FriendRequest entities to a DTO.
func ToFriendRequestListResponse(requests []*entity.FriendRequest) FriendRequestListResponse {
	items := make([]FriendRequestResponse, len(requests))
	for i, fr := range requests {
		items[i] = ToFriendRequestResponse(fr)
	}
	return FriendRequestListResponse{Requests: items}
}

// ToFriendListResponse converts a slice of User entities to a FriendListResponse DTO.
func ToFriendListResponse(users []*entity.User) FriendListResponse {
	items := make([]FriendResponse, len(users))
	for i, u := range users {
		items[i] = FriendResponse{
			ID:       u.ID.String(),
			Username: u.Username,
			Email:    u.Email,
		}
	}
	return FriendListResponse{Friends: items}
}
