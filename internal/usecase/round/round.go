package usecase_round

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrEmptyAnswer      = errors.New("empty answer")
	ErrAnswerTooLong    = errors.New("answer too long")
	ErrGameComplete     = errors.New("game complete")
)

// MaxAnswerLen mirrors the answer input cap on the client.
const MaxAnswerLen = 75

//go:generate mockery --name=RoomRepository --output=./mocks/repository --filename=repository.go
type RoomRepository interface {
	Room(ctx context.Context, code model.RoomCode) (model.Room, error)
	UpdateRoom(ctx context.Context, code model.RoomCode, upd store.RoomUpdate) error
	IncrementRound(ctx context.Context, code model.RoomCode) (int, error)
	Users(ctx context.Context, code model.RoomCode) ([]model.User, error)
	SetAnswer(ctx context.Context, code model.RoomCode, name, answer string) error
	ResetRoundScores(ctx context.Context, code model.RoomCode) error
	AddWaiting(ctx context.Context, code model.RoomCode, name string) error
	WaitingCount(ctx context.Context, code model.RoomCode) (int, error)
	ClearWaiting(ctx context.Context, code model.RoomCode) error
}

//go:generate mockery --name=AssetResolver --output=./mocks/resolver --filename=resolver.go
type AssetResolver interface {
	ResolveAsset(ctx context.Context, id model.PromptID) (string, error)
}

type Usecase struct {
	repo   RoomRepository
	assets AssetResolver
}

func New(repo RoomRepository, assets AssetResolver) *Usecase {
	return &Usecase{
		repo:   repo,
		assets: assets,
	}
}

// StartGame closes the lobby and opens round 1. The room size is
// snapshotted here; round completeness is measured against it.
func (u *Usecase) StartGame(ctx context.Context, code model.RoomCode) error {
	users, err := u.repo.Users(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return store.ErrRoomNotFound
		}
		return errors.Join(ErrStoreUnavailable, err)
	}

	expected := len(users)
	if err := u.repo.UpdateRoom(ctx, code, store.RoomUpdate{
		Joinable:            store.Bool(false),
		GameStarted:         store.Bool(true),
		AnswersOpen:         store.Bool(false),
		ExpectedPlayerCount: store.Int(expected),
	}); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// StartNewRound reopens answer collection for the round the counter
// already points at. The caller advances the counter first; once it has
// walked past the limit this refuses to run.
//
// Clearing the waiting list and resetting round scores are separate
// writes. A crash in between leaves partial state, accepted because one
// actor (the host flow) drives round transitions.
func (u *Usecase) StartNewRound(ctx context.Context, code model.RoomCode) error {
	room, err := u.repo.Room(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return store.ErrRoomNotFound
		}
		return errors.Join(ErrStoreUnavailable, err)
	}
	if room.GameComplete() {
		return ErrGameComplete
	}

	users, err := u.repo.Users(ctx, code)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	if err := u.repo.UpdateRoom(ctx, code, store.RoomUpdate{
		GameStarted:         store.Bool(true),
		AnswersOpen:         store.Bool(false),
		ExpectedPlayerCount: store.Int(len(users)),
	}); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if err := u.repo.ClearWaiting(ctx, code); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if err := u.repo.ResetRoundScores(ctx, code); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// SubmitAnswer records the user's answer for the active round and marks
// them in the waiting set. Returns true once every expected player has
// submitted; the flip of answersOpen rides on that last submission.
func (u *Usecase) SubmitAnswer(ctx context.Context, code model.RoomCode, username, answer string) (bool, error) {
	if strings.TrimSpace(answer) == "" {
		return false, ErrEmptyAnswer
	}
	if utf8.RuneCountInString(answer) > MaxAnswerLen {
		return false, ErrAnswerTooLong
	}

	if err := u.repo.SetAnswer(ctx, code, username, answer); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return false, store.ErrUserNotFound
		}
		return false, errors.Join(ErrStoreUnavailable, err)
	}
	if err := u.repo.AddWaiting(ctx, code, username); err != nil {
		return false, errors.Join(ErrStoreUnavailable, err)
	}

	complete, err := u.RoundComplete(ctx, code)
	if err != nil {
		return false, err
	}
	if complete {
		if err := u.repo.UpdateRoom(ctx, code, store.RoomUpdate{
			AnswersOpen: store.Bool(true),
		}); err != nil {
			return false, errors.Join(ErrStoreUnavailable, err)
		}
	}
	return complete, nil
}

// RoundComplete compares the waiting-set size against the player-count
// snapshot. Callers without a websocket poll this.
func (u *Usecase) RoundComplete(ctx context.Context, code model.RoomCode) (bool, error) {
	room, err := u.repo.Room(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return false, store.ErrRoomNotFound
		}
		return false, errors.Join(ErrStoreUnavailable, err)
	}

	count, err := u.repo.WaitingCount(ctx, code)
	if err != nil {
		return false, errors.Join(ErrStoreUnavailable, err)
	}
	return room.ExpectedPlayerCount > 0 && count >= room.ExpectedPlayerCount, nil
}

// AdvanceRound bumps the round counter by exactly one through the
// store's atomic increment and reports whether the game is now over.
// It never touches display flags; ToggleGame handles those separately.
func (u *Usecase) AdvanceRound(ctx context.Context, code model.RoomCode) (int, bool, error) {
	round, err := u.repo.IncrementRound(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return 0, false, store.ErrRoomNotFound
		}
		return 0, false, errors.Join(ErrStoreUnavailable, err)
	}

	room, err := u.repo.Room(ctx, code)
	if err != nil {
		return 0, false, errors.Join(ErrStoreUnavailable, err)
	}
	return round, round > room.RoundLimit, nil
}

// ToggleGame drops the round-in-progress flag without touching the
// round counter, decoupling "counter advanced" from "display refreshed".
func (u *Usecase) ToggleGame(ctx context.Context, code model.RoomCode) error {
	if err := u.repo.UpdateRoom(ctx, code, store.RoomUpdate{
		GameStarted: store.Bool(false),
	}); err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return store.ErrRoomNotFound
		}
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (u *Usecase) Round(ctx context.Context, code model.RoomCode) (int, error) {
	room, err := u.repo.Room(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return 0, store.ErrRoomNotFound
		}
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	return room.CurrentRound, nil
}

func (u *Usecase) PromptOrder(ctx context.Context, code model.RoomCode) ([]model.PromptID, error) {
	room, err := u.repo.Room(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return nil, store.ErrRoomNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return room.PromptOrder, nil
}

// PromptAssetFor maps a 1-indexed round onto the prompt order and
// resolves the image through the asset store.
func (u *Usecase) PromptAssetFor(ctx context.Context, order []model.PromptID, round int) (string, error) {
	if round < 1 || round > len(order) {
		return "", ErrGameComplete
	}
	url, err := u.assets.ResolveAsset(ctx, order[round-1])
	if err != nil {
		return "", errors.Join(ErrStoreUnavailable, err)
	}
	return url, nil
}

// CurrentPromptAsset resolves the image for the room's active round.
func (u *Usecase) CurrentPromptAsset(ctx context.Context, code model.RoomCode) (string, error) {
	room, err := u.repo.Room(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return "", store.ErrRoomNotFound
		}
		return "", errors.Join(ErrStoreUnavailable, err)
	}
	if room.GameComplete() {
		return "", ErrGameComplete
	}
	return u.PromptAssetFor(ctx, room.PromptOrder, room.CurrentRound)
}
