package usecase_round

import (
	"context"
	"strings"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
	repo_mocks "github.com/picparty/core/internal/usecase/round/mocks/repository"
	resolver_mocks "github.com/picparty/core/internal/usecase/round/mocks/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseRoundUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	repo    *repo_mocks.RoomRepository
	assets  *resolver_mocks.AssetResolver
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewRoomRepository(t)
	assets := resolver_mocks.NewAssetResolver(t)
	usecase := New(repo, assets)

	return &resources{
		usecase: usecase,
		repo:    repo,
		assets:  assets,
		ctx:     context.Background(),
	}
}

func validRoomCode() model.RoomCode {
	return model.RoomCode("ABC234")
}

func activeRoom(code model.RoomCode) model.Room {
	return model.Room{
		Code:                code,
		PromptOrder:         []model.PromptID{7, 3, 11},
		CurrentRound:        1,
		RoundLimit:          3,
		GameStarted:         true,
		ExpectedPlayerCount: 3,
	}
}

func (suite *UsecaseRoundUnitSuite) TestStartGame(t provider.T) {
	t.Parallel()

	t.Run("Should close lobby and snapshot player count", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("Users", r.ctx, code).Return([]model.User{
			{Name: "alice", IsHost: true}, {Name: "bob"}, {Name: "carol"},
		}, nil).Once()
		r.repo.On("UpdateRoom", r.ctx, code, mock.MatchedBy(func(upd store.RoomUpdate) bool {
			return upd.Joinable != nil && !*upd.Joinable &&
				upd.GameStarted != nil && *upd.GameStarted &&
				upd.ExpectedPlayerCount != nil && *upd.ExpectedPlayerCount == 3
		})).Return(nil).Once()

		err := r.usecase.StartGame(r.ctx, code)

		assert.NoError(t, err)
		r.repo.AssertExpectations(t)
	})

	t.Run("Should fail when room does not exist", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("Users", r.ctx, code).Return(nil, store.ErrRoomNotFound).Once()

		err := r.usecase.StartGame(r.ctx, code)

		assert.ErrorIs(t, err, store.ErrRoomNotFound)
		r.repo.AssertExpectations(t)
	})
}

func (suite *UsecaseRoundUnitSuite) TestSubmitAnswer(t provider.T) {
	t.Parallel()

	t.Run("Should reject empty answer", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.usecase.SubmitAnswer(r.ctx, validRoomCode(), "alice", "")

		assert.ErrorIs(t, err, ErrEmptyAnswer)
	})

	t.Run("Should reject whitespace-only answer", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.usecase.SubmitAnswer(r.ctx, validRoomCode(), "alice", "   \t ")

		assert.ErrorIs(t, err, ErrEmptyAnswer)
	})

	t.Run("Should reject oversized answer", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.usecase.SubmitAnswer(r.ctx, validRoomCode(), "alice", strings.Repeat("x", MaxAnswerLen+1))

		assert.ErrorIs(t, err, ErrAnswerTooLong)
	})

	t.Run("Should record answer without completing the round", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("SetAnswer", r.ctx, code, "alice", "a dog on a surfboard").Return(nil).Once()
		r.repo.On("AddWaiting", r.ctx, code, "alice").Return(nil).Once()
		r.repo.On("Room", r.ctx, code).Return(activeRoom(code), nil).Once()
		r.repo.On("WaitingCount", r.ctx, code).Return(1, nil).Once()

		complete, err := r.usecase.SubmitAnswer(r.ctx, code, "alice", "a dog on a surfboard")

		assert.NoError(t, err)
		assert.False(t, complete)
		r.repo.AssertExpectations(t)
	})

	t.Run("Should open answers when the last player submits", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("SetAnswer", r.ctx, code, "carol", "a haunted fridge").Return(nil).Once()
		r.repo.On("AddWaiting", r.ctx, code, "carol").Return(nil).Once()
		r.repo.On("Room", r.ctx, code).Return(activeRoom(code), nil).Once()
		r.repo.On("WaitingCount", r.ctx, code).Return(3, nil).Once()
		r.repo.On("UpdateRoom", r.ctx, code, mock.MatchedBy(func(upd store.RoomUpdate) bool {
			return upd.AnswersOpen != nil && *upd.AnswersOpen
		})).Return(nil).Once()

		complete, err := r.usecase.SubmitAnswer(r.ctx, code, "carol", "a haunted fridge")

		assert.NoError(t, err)
		assert.True(t, complete)
		r.repo.AssertExpectations(t)
	})

	t.Run("Should fail for an unknown player", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("SetAnswer", r.ctx, code, "ghost", "boo").Return(store.ErrUserNotFound).Once()

		_, err := r.usecase.SubmitAnswer(r.ctx, code, "ghost", "boo")

		assert.ErrorIs(t, err, store.ErrUserNotFound)
		r.repo.AssertExpectations(t)
	})
}

func (suite *UsecaseRoundUnitSuite) TestAdvanceRound(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		incrementedTo    int
		roundLimit       int
		expectedComplete bool
	}{
		{
			name:             "Should report game in progress mid-sequence",
			incrementedTo:    2,
			roundLimit:       3,
			expectedComplete: false,
		},
		{
			name:             "Should report completion past the last round",
			incrementedTo:    4,
			roundLimit:       3,
			expectedComplete: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			code := validRoomCode()

			room := activeRoom(code)
			room.CurrentRound = tc.incrementedTo
			room.RoundLimit = tc.roundLimit
			r.repo.On("IncrementRound", r.ctx, code).Return(tc.incrementedTo, nil).Once()
			r.repo.On("Room", r.ctx, code).Return(room, nil).Once()

			round, complete, err := r.usecase.AdvanceRound(r.ctx, code)

			assert.NoError(t, err)
			assert.Equal(t, tc.incrementedTo, round)
			assert.Equal(t, tc.expectedComplete, complete)
			r.repo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoundUnitSuite) TestStartNewRound(t provider.T) {
	t.Parallel()

	t.Run("Should reset waiting list and round scores", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		room := activeRoom(code)
		room.CurrentRound = 2
		r.repo.On("Room", r.ctx, code).Return(room, nil).Once()
		r.repo.On("Users", r.ctx, code).Return([]model.User{{Name: "alice"}, {Name: "bob"}}, nil).Once()
		r.repo.On("UpdateRoom", r.ctx, code, mock.MatchedBy(func(upd store.RoomUpdate) bool {
			return upd.GameStarted != nil && *upd.GameStarted &&
				upd.AnswersOpen != nil && !*upd.AnswersOpen &&
				upd.ExpectedPlayerCount != nil && *upd.ExpectedPlayerCount == 2
		})).Return(nil).Once()
		r.repo.On("ClearWaiting", r.ctx, code).Return(nil).Once()
		r.repo.On("ResetRoundScores", r.ctx, code).Return(nil).Once()

		err := r.usecase.StartNewRound(r.ctx, code)

		assert.NoError(t, err)
		r.repo.AssertExpectations(t)
	})

	t.Run("Should refuse once the game is complete", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		room := activeRoom(code)
		room.CurrentRound = room.RoundLimit + 1
		r.repo.On("Room", r.ctx, code).Return(room, nil).Once()

		err := r.usecase.StartNewRound(r.ctx, code)

		assert.ErrorIs(t, err, ErrGameComplete)
		r.repo.AssertExpectations(t)
	})
}

func (suite *UsecaseRoundUnitSuite) TestToggleGame(t provider.T) {
	t.Parallel()

	t.Run("Should clear the display flag only", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("UpdateRoom", r.ctx, code, mock.MatchedBy(func(upd store.RoomUpdate) bool {
			return upd.GameStarted != nil && !*upd.GameStarted &&
				upd.Joinable == nil && upd.AnswersOpen == nil
		})).Return(nil).Once()

		err := r.usecase.ToggleGame(r.ctx, code)

		assert.NoError(t, err)
		r.repo.AssertExpectations(t)
	})
}

func (suite *UsecaseRoundUnitSuite) TestPromptAssets(t provider.T) {
	t.Parallel()

	t.Run("Should map a round onto its prompt order slot", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		order := []model.PromptID{7, 3, 11}

		r.assets.On("ResolveAsset", r.ctx, model.PromptID(3)).Return("https://cdn/prompt_3.jpg", nil).Once()

		url, err := r.usecase.PromptAssetFor(r.ctx, order, 2)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn/prompt_3.jpg", url)
		r.assets.AssertExpectations(t)
	})

	t.Run("Should guard rounds past the order length", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		order := []model.PromptID{7, 3, 11}

		_, err := r.usecase.PromptAssetFor(r.ctx, order, 4)

		assert.ErrorIs(t, err, ErrGameComplete)
	})

	t.Run("Should resolve the active round's prompt", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		room := activeRoom(code)
		room.CurrentRound = 3
		r.repo.On("Room", r.ctx, code).Return(room, nil).Once()
		r.assets.On("ResolveAsset", r.ctx, model.PromptID(11)).Return("https://cdn/prompt_11.jpg", nil).Once()

		url, err := r.usecase.CurrentPromptAsset(r.ctx, code)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn/prompt_11.jpg", url)
		r.repo.AssertExpectations(t)
		r.assets.AssertExpectations(t)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRoundUnitSuite))
}
