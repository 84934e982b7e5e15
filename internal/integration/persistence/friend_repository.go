// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
	"github.com/ecap-app/backend/internal/integration/persistence/model"
)

// friendRepository implements the adapter.FriendRepository interface.
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend request repository instance.
func NewFriendRepository(db *gorm.DB) adapter.FriendRepository {
	return &friendRepository{
		db: db,
	}
}

// Create creates a new friend request in the database.
func (r *friendRepository) Create(ctx context.Context, request *entity.FriendRequest) error {
	requestModel := model.FriendRequestFromEntity(request)
	result := r.db.WithContext(ctx).Create(requestModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a friend request by its ID.
func (r *friendRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error) {
	var requestModel model.FriendRequestModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&requestModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFriendRequestNotFound
		}
		return nil, result.Error
	}
	return requestModel.ToEntity(), nil
}

// FindByPair retrieves the request for the ordered (requester, recipient)
// pair, or nil when none exists.
func (r *friendRepository) FindByPair(ctx context.Context, requesterID, recipientID uuid.UUID) (*entity.FriendRequest, error) {
	var requestModel model.FriendRequestModel
	result := r.db.WithContext(ctx).
		Where("requester_id = ? AND recipient_id = ?", requesterID, recipientID).
		First(&requestModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return requestModel.ToEntity(), nil
}

// FindByUserAndStatus retrieves all requests with the given status in which
// the user is either requester or recipient.
func (r *friendRepository) FindByUserAndStatus(
	ctx context.Context,
	userID uuid.UUID,
	status entity.FriendRequestStatus,
) ([]*entity.FriendRequest, error) {
	var requestModels []model.FriendRequestModel
	result := r.db.WithContext(ctx).
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?", userID, userID, string(status)).
		Order("created_at DESC").
		Find(&requestModels)
	if result.Error != nil {
		return nil, result.Error
	}

	requests := make([]*entity.FriendRequest, len(requestModels))
	for i, rm := range requestModels {
		requests[i] = rm.ToEntity()
	}
	return requests, nil
}

// UpdateStatus persists a status transition for a friend request.
func (r *friendRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FriendRequestStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.FriendRequestModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFriendRequestNotFound
	}
	return nil
}

// FindAcceptedFriends retrieves the users who share an accepted request with
// the given user, in either direction.
func (r *friendRepository) FindAcceptedFriends(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	var requestModels []model.FriendRequestModel
	result := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Recipient").
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?",
			userID, userID, string(entity.FriendRequestStatusAccepted)).
		Find(&requestModels)
	if result.Error != nil {
		return nil, result.Error
	}

	friends := make([]*entity.User, 0, len(requestModels))
	for i := range requestModels {
		rm := &requestModels[i]
		if rm.RequesterID == userID && rm.Recipient != nil {
			friends = append(friends, rm.Recipient.ToEntity())
		} else if rm.RecipientID == userID && rm.Requester != nil {
			friends = append(friends, rm.Requester.ToEntity())
		}
	}
	return friends, nil
}
