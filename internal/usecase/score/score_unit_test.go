package usecase_score

import (
	"context"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
	repo_mocks "github.com/picparty/core/internal/usecase/score/mocks/repository"
	"github.com/stretchr/testify/assert"
)

type UsecaseScoreUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	repo    *repo_mocks.ScoreRepository
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewScoreRepository(t)
	usecase := New(repo)

	return &resources{
		usecase: usecase,
		repo:    repo,
		ctx:     context.Background(),
	}
}

func validRoomCode() model.RoomCode {
	return model.RoomCode("ABC234")
}

func (suite *UsecaseScoreUnitSuite) TestAwardVote(t provider.T) {
	t.Parallel()

	t.Run("Should delegate the point to the store", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("AwardPoint", r.ctx, code, "bob").Return(nil).Once()

		err := r.usecase.AwardVote(r.ctx, code, "bob")

		assert.NoError(t, err)
		r.repo.AssertExpectations(t)
	})

	t.Run("Should surface a missing voter target", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("AwardPoint", r.ctx, code, "ghost").Return(store.ErrUserNotFound).Once()

		err := r.usecase.AwardVote(r.ctx, code, "ghost")

		assert.ErrorIs(t, err, store.ErrUserNotFound)
		r.repo.AssertExpectations(t)
	})
}

func (suite *UsecaseScoreUnitSuite) TestLeaderboard(t provider.T) {
	t.Parallel()

	t.Run("Should order players by overall score descending", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("Users", r.ctx, code).Return([]model.User{
			{Name: "alice", OverallScore: 2},
			{Name: "bob", OverallScore: 5},
			{Name: "carol", OverallScore: 3},
		}, nil).Once()

		entries, err := r.usecase.Leaderboard(r.ctx, code)

		assert.NoError(t, err)
		assert.Equal(t, []model.LeaderboardEntry{
			{Name: "bob", OverallScore: 5},
			{Name: "carol", OverallScore: 3},
			{Name: "alice", OverallScore: 2},
		}, entries)
		r.repo.AssertExpectations(t)
	})

	t.Run("Should keep store order for equal scores", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("Users", r.ctx, code).Return([]model.User{
			{Name: "alice", OverallScore: 1},
			{Name: "bob", OverallScore: 1},
		}, nil).Once()

		entries, err := r.usecase.Leaderboard(r.ctx, code)

		assert.NoError(t, err)
		assert.Equal(t, "alice", entries[0].Name)
		assert.Equal(t, "bob", entries[1].Name)
		r.repo.AssertExpectations(t)
	})

	t.Run("Should fail when room does not exist", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("Users", r.ctx, code).Return(nil, store.ErrRoomNotFound).Once()

		_, err := r.usecase.Leaderboard(r.ctx, code)

		assert.ErrorIs(t, err, store.ErrRoomNotFound)
		r.repo.AssertExpectations(t)
	})
}

func (suite *UsecaseScoreUnitSuite) TestRoundAnswers(t provider.T) {
	t.Parallel()

	t.Run("Should skip players who have not answered", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		code := validRoomCode()

		r.repo.On("Users", r.ctx, code).Return([]model.User{
			{Name: "alice", CurrentAnswer: "a cat in a spacesuit"},
			{Name: "bob"},
			{Name: "carol", CurrentAnswer: "laundry day on mars"},
		}, nil).Once()

		answers, err := r.usecase.RoundAnswers(r.ctx, code)

		assert.NoError(t, err)
		assert.Equal(t, []string{"a cat in a spacesuit", "laundry day on mars"}, answers)
		r.repo.AssertExpectations(t)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseScoreUnitSuite))
}
