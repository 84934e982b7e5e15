package friend

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

// fakeFriendRepo is an in-memory FriendRepository for state machine tests.
type fakeFriendRepo struct {
	requests map[uuid.UUID]*entity.FriendRequest
}

func newFakeFriendRepo() *fakeFriendRepo {
	return &fakeFriendRepo{requests: make(map[uuid.UUID]*entity.FriendRequest)}
}

func (r *fakeFriendRepo) Create(_ context.Context, request *entity.FriendRequest) error {
	r.requests[request.ID] = request
	return nil
}

func (r *fakeFriendRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FriendRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, domainerror.ErrFriendRequestNotFound
	}
	return request, nil
}

func (r *fakeFriendRepo) FindByPair(_ context.Context, requesterID, recipientID uuid.UUID) (*entity.FriendRequest, error) {
	for _, request := range r.requests {
		if request.RequesterID == requesterID && request.RecipientID == recipientID {
			return request, nil
		}
	}
	return nil, nil
}

func (r *fakeFriendRepo) FindByUserAndStatus(
	_ context.Context,
	userID uuid.UUID,
	status entity.FriendRequestStatus,
) ([]*entity.FriendRequest, error) {
	var result []*entity.FriendRequest
	for _, request := range r.requests {
		if request.Involves(userID) && request.Status == status {
			result = append(result, request)
		}
	}
	return result, nil
}

func (r *fakeFriendRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.FriendRequestStatus) error {
	request, ok := r.requests[id]
	if !ok {
		return domainerror.ErrFriendRequestNotFound
	}
	request.Status = status
	return nil
}

func (r *fakeFriendRepo) FindAcceptedFriends(_ context.Context, _ uuid.UUID) ([]*entity.User, error) {
	return nil, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrFriendUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domainerror.ErrFriendUserNotFound
}

func TestSendRequest(t *testing.T) {
	ctx := context.Background()
	alice := entity.NewUser("alice", "alice@example.com")
	bob := entity.NewUser("bob", "bob@example.com")

	t.Run("creates a pending request", func(t *testing.T) {
		uc := NewSendRequestUseCase(newFakeFriendRepo(), newFakeUserRepo(alice, bob))

		output, err := uc.Execute(ctx, SendRequestInput{RequesterID: alice.ID, RecipientID: bob.ID})

		require.NoError(t, err)
		assert.True(t, output.Created)
		assert.Equal(t, entity.FriendRequestStatusPending, output.Request.Status)
	})

	t.Run("re-sending returns the existing request unchanged", func(t *testing.T) {
		uc := NewSendRequestUseCase(newFakeFriendRepo(), newFakeUserRepo(alice, bob))

		first, err := uc.Execute(ctx, SendRequestInput{RequesterID: alice.ID, RecipientID: bob.ID})
		require.NoError(t, err)

		second, err := uc.Execute(ctx, SendRequestInput{RequesterID: alice.ID, RecipientID: bob.ID})
		require.NoError(t, err)
		assert.False(t, second.Created)
		assert.Equal(t, first.Request.ID, second.Request.ID)
	})

	t.Run("rejects a self request", func(t *testing.T) {
		uc := NewSendRequestUseCase(newFakeFriendRepo(), newFakeUserRepo(alice))

		_, err := uc.Execute(ctx, SendRequestInput{RequesterID: alice.ID, RecipientID: alice.ID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerror.ErrSelfFriendRequest))
	})

	t.Run("rejects an unknown recipient", func(t *testing.T) {
		uc := NewSendRequestUseCase(newFakeFriendRepo(), newFakeUserRepo(alice))

		_, err := uc.Execute(ctx, SendRequestInput{RequesterID: alice.ID, RecipientID: uuid.New()})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerror.ErrFriendUserNotFound))
	})
}

func TestRequestStateMachine(t *testing.T) {
	ctx := context.Background()
	alice := entity.NewUser("alice", "alice@example.com")
	bob := entity.NewUser("bob", "bob@example.com")

	// pending builds a repo holding one pending request from alice to bob.
	pending := func(t *testing.T) (*fakeFriendRepo, *entity.FriendRequest) {
		t.Helper()
		repo := newFakeFriendRepo()
		request := entity.NewFriendRequest(alice.ID, bob.ID)
		require.NoError(t, repo.Create(ctx, request))
		return repo, request
	}

	t.Run("recipient accepts a pending request", func(t *testing.T) {
		repo, request := pending(t)
		uc := NewAcceptRequestUseCase(repo)

		output, err := uc.Execute(ctx, AcceptRequestInput{RequestID: request.ID, UserID: bob.ID})

		require.NoError(t, err)
		assert.Equal(t, entity.FriendRequestStatusAccepted, output.Request.Status)
	})

	t.Run("recipient rejects a pending request", func(t *testing.T) {
		repo, request := pending(t)
		uc := NewRejectRequestUseCase(repo)

		output, err := uc.Execute(ctx, RejectRequestInput{RequestID: request.ID, UserID: bob.ID})

		require.NoError(t, err)
		assert.Equal(t, entity.FriendRequestStatusRejected, output.Request.Status)
	})

	t.Run("requester may not accept their own request", func(t *testing.T) {
		repo, request := pending(t)
		uc := NewAcceptRequestUseCase(repo)

		_, err := uc.Execute(ctx, AcceptRequestInput{RequestID: request.ID, UserID: alice.ID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerror.ErrNotRequestRecipient))
	})

	t.Run("accepting a rejected request is invalid", func(t *testing.T) {
		repo, request := pending(t)

		_, err := NewRejectRequestUseCase(repo).Execute(ctx, RejectRequestInput{RequestID: request.ID, UserID: bob.ID})
		require.NoError(t, err)

		_, err = NewAcceptRequestUseCase(repo).Execute(ctx, AcceptRequestInput{RequestID: request.ID, UserID: bob.ID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerror.ErrRequestAlreadyResolved))

		// The terminal state is untouched.
		stored, err := repo.FindByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.FriendRequestStatusRejected, stored.Status)
	})

	t.Run("re-accepting an accepted request is invalid", func(t *testing.T) {
		repo, request := pending(t)
		uc := NewAcceptRequestUseCase(repo)

		_, err := uc.Execute(ctx, AcceptRequestInput{RequestID: request.ID, UserID: bob.ID})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, AcceptRequestInput{RequestID: request.ID, UserID: bob.ID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerror.ErrRequestAlreadyResolved))
	})
}
