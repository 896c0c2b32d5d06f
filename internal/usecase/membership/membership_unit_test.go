package usecase_membership

import (
	"context"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
	repo_mocks "github.com/picparty/core/internal/usecase/membership/mocks/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseMembershipUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	repo    *repo_mocks.RoomRepository
	ctx     context.Context
}

const testPromptPoolSize = 32

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewRoomRepository(t)
	usecase := New(repo, testPromptPoolSize)

	return &resources{
		usecase: usecase,
		repo:    repo,
		ctx:     context.Background(),
	}
}

func validRoomCode() model.RoomCode {
	return model.RoomCode("ABC234")
}

func lobbyRoom(code model.RoomCode) model.Room {
	return model.Room{
		Code:         code,
		CurrentRound: 1,
		RoundLimit:   3,
		Joinable:     true,
	}
}

func (suite *UsecaseMembershipUnitSuite) TestCreateRoom(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		roundLimit    int
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name:       "Should create room with prompt order matching round limit",
			roundLimit: 5,
			setupMocks: func(r *resources) {
				r.repo.On("CreateRoom", r.ctx, mock.MatchedBy(func(room model.Room) bool {
					return len(room.PromptOrder) == 5 &&
						room.CurrentRound == 1 &&
						room.RoundLimit == 5 &&
						room.Joinable &&
						!room.GameStarted
				})).Return(nil).Once()
				r.repo.On("PutUser", r.ctx, mock.AnythingOfType("model.RoomCode"), mock.MatchedBy(func(user model.User) bool {
					return user.Name == "alice" && user.IsHost
				})).Return(nil).Once()
			},
			expectError: false,
		},
		{
			name:       "Should give up after repeated code conflicts",
			roundLimit: 3,
			setupMocks: func(r *resources) {
				r.repo.On("CreateRoom", r.ctx, mock.AnythingOfType("model.Room")).
					Return(store.ErrCodeConflict).Times(3)
			},
			expectError:   true,
			expectedError: ErrRoomsUnavailable,
		},
		{
			name:          "Should reject zero round limit",
			roundLimit:    0,
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: ErrBadRoundLimit,
		},
		{
			name:          "Should reject round limit above prompt pool",
			roundLimit:    testPromptPoolSize + 1,
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: ErrBadRoundLimit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			code, token, err := r.usecase.CreateRoom(r.ctx, "alice", tc.roundLimit)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Equal(t, model.EmptyRoomCode, code)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Len(t, string(code), 6)
				assert.NotEmpty(t, token)
			}
			r.repo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseMembershipUnitSuite) TestJoinRoom(t provider.T) {
	t.Parallel()

	fullRoomUsers := make([]model.User, model.MaxPlayers)
	for i := range fullRoomUsers {
		fullRoomUsers[i] = model.User{Name: string(rune('a' + i))}
	}

	testCases := []struct {
		name          string
		username      string
		setupMocks    func(r *resources, code model.RoomCode)
		expectError   bool
		expectedError error
	}{
		{
			name:     "Should join successfully",
			username: "bob",
			setupMocks: func(r *resources, code model.RoomCode) {
				r.repo.On("Room", r.ctx, code).Return(lobbyRoom(code), nil).Once()
				r.repo.On("Users", r.ctx, code).Return([]model.User{{Name: "alice", IsHost: true}}, nil).Once()
				r.repo.On("PutUser", r.ctx, code, model.User{Name: "bob"}).Return(nil).Once()
			},
			expectError: false,
		},
		{
			name:     "Should fail when room does not exist",
			username: "bob",
			setupMocks: func(r *resources, code model.RoomCode) {
				r.repo.On("Room", r.ctx, code).Return(model.Room{}, store.ErrRoomNotFound).Once()
			},
			expectError:   true,
			expectedError: store.ErrRoomNotFound,
		},
		{
			name:     "Should fail when room is full regardless of name novelty",
			username: "newcomer",
			setupMocks: func(r *resources, code model.RoomCode) {
				r.repo.On("Room", r.ctx, code).Return(lobbyRoom(code), nil).Once()
				r.repo.On("Users", r.ctx, code).Return(fullRoomUsers, nil).Once()
			},
			expectError:   true,
			expectedError: ErrRoomFull,
		},
		{
			name:     "Should fail when game already started",
			username: "bob",
			setupMocks: func(r *resources, code model.RoomCode) {
				room := lobbyRoom(code)
				room.Joinable = false
				room.GameStarted = true
				r.repo.On("Room", r.ctx, code).Return(room, nil).Once()
				r.repo.On("Users", r.ctx, code).Return([]model.User{{Name: "alice"}}, nil).Once()
			},
			expectError:   true,
			expectedError: ErrGameStarted,
		},
		{
			name:     "Should fail when username is taken",
			username: "alice",
			setupMocks: func(r *resources, code model.RoomCode) {
				r.repo.On("Room", r.ctx, code).Return(lobbyRoom(code), nil).Once()
				r.repo.On("Users", r.ctx, code).Return([]model.User{{Name: "alice", IsHost: true}}, nil).Once()
			},
			expectError:   true,
			expectedError: ErrUsernameTaken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			code := validRoomCode()
			tc.setupMocks(r, code)

			err := r.usecase.JoinRoom(r.ctx, code, tc.username)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			r.repo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseMembershipUnitSuite) TestLeaveRoom(t provider.T) {
	t.Parallel()

	t.Run("Should remove user and waiting marker", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("DeleteUser", r.ctx, code, "bob").Return(nil).Once()
		r.repo.On("RemoveWaiting", r.ctx, code, "bob").Return(nil).Once()

		err := r.usecase.LeaveRoom(r.ctx, code, "bob")

		assert.NoError(t, err)
		r.repo.AssertExpectations(t)
	})

	t.Run("Should be a no-op for an absent user", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("DeleteUser", r.ctx, code, "ghost").Return(nil).Once()
		r.repo.On("RemoveWaiting", r.ctx, code, "ghost").Return(nil).Once()

		err := r.usecase.LeaveRoom(r.ctx, code, "ghost")

		assert.NoError(t, err)
		r.repo.AssertExpectations(t)
	})
}

func (suite *UsecaseMembershipUnitSuite) TestIsHost(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		token       string
		expected    bool
		expectError bool
	}{
		{
			name:     "Should return true for the creator token",
			token:    "host-token",
			expected: true,
		},
		{
			name:     "Should return false for anyone else",
			token:    "other-token",
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			code := validRoomCode()
			room := lobbyRoom(code)
			room.HostToken = "host-token"
			r.repo.On("Room", r.ctx, code).Return(room, nil).Once()

			isHost, err := r.usecase.IsHost(r.ctx, code, tc.token)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, isHost)
			r.repo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseMembershipUnitSuite) TestDeleteRoom(t provider.T) {
	t.Parallel()

	t.Run("Should propagate not found", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("DeleteRoom", r.ctx, code).Return(store.ErrRoomNotFound).Once()

		err := r.usecase.DeleteRoom(r.ctx, code)

		assert.ErrorIs(t, err, store.ErrRoomNotFound)
		r.repo.AssertExpectations(t)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMembershipUnitSuite))
}
