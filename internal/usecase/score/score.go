package usecase_score

import (
	"context"
	"errors"
	"sort"

	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
)

var ErrStoreUnavailable = errors.New("store unavailable")

//go:generate mockery --name=ScoreRepository --output=./mocks/repository --filename=repository.go
type ScoreRepository interface {
	AwardPoint(ctx context.Context, code model.RoomCode, name string) error
	Users(ctx context.Context, code model.RoomCode) ([]model.User, error)
}

type Usecase struct {
	repo ScoreRepository
}

func New(repo ScoreRepository) *Usecase {
	return &Usecase{repo: repo}
}

// AwardVote adds one point to both the user's round and overall score.
// Each call is a distinct increment; concurrent votes are never lost
// because the bump happens store-side.
func (u *Usecase) AwardVote(ctx context.Context, code model.RoomCode, username string) error {
	if err := u.repo.AwardPoint(ctx, code, username); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return store.ErrUserNotFound
		}
		if errors.Is(err, store.ErrRoomNotFound) {
			return store.ErrRoomNotFound
		}
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Leaderboard lists users by overall score, highest first. Equal scores
// keep store order; the tie-break is not deterministic.
func (u *Usecase) Leaderboard(ctx context.Context, code model.RoomCode) ([]model.LeaderboardEntry, error) {
	users, err := u.repo.Users(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return nil, store.ErrRoomNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, model.LeaderboardEntry{
			Name:         user.Name,
			OverallScore: user.OverallScore,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OverallScore > entries[j].OverallScore
	})
	return entries, nil
}

// RoundAnswers returns the answers submitted for the active round. The
// display layer shuffles and anonymizes them for voting.
func (u *Usecase) RoundAnswers(ctx context.Context, code model.RoomCode) ([]string, error) {
	users, err := u.repo.Users(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return nil, store.ErrRoomNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	answers := make([]string, 0, len(users))
	for _, user := range users {
		if user.CurrentAnswer != "" {
			answers = append(answers, user.CurrentAnswer)
		}
	}
	return answers, nil
}
