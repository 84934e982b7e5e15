// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/domain/entity"
)

// FriendRequestModel represents the friend_requests table in the database.
// The (requester_id, recipient_id) pair is unique.
type FriendRequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friend_request_pair;index"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friend_request_pair;index"`
	Status      string    `gorm:"type:varchar(10);not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Requester *UserModel `gorm:"foreignKey:RequesterID;references:ID"`
	Recipient *UserModel `gorm:"foreignKey:RecipientID;references:ID"`
}

// TableName returns the table name for the FriendRequestModel.
func (FriendRequestModel) TableName() string {
	return "friend_requests"
}

// ToEntity converts a FriendRequestModel to a domain FriendRequest entity.
func (m *FriendRequestModel) ToEntity() *entity.FriendRequest {
	return &entity.FriendRequest{
		ID:          m.ID,
		RequesterID: m.RequesterID,
		RecipientID: m.RecipientID,
		Status:      entity.FriendRequestStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FriendRequestFromEntity creates a FriendRequestModel from a domain FriendRequest entity.
func FriendRequestFromEntity(request *entity.FriendRequest) *FriendRequestModel {
	return &FriendRequestModel{
		ID:          request.ID,
		RequesterID: request.RequesterID,
		RecipientID: request.RecipientID,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}
