// Package store defines the contract every room-store driver implements:
// one Room document per code, a Users sub-collection keyed by name, and a
// Waiting sub-collection used purely as a completion-counting side table.
//
// Single-document mutations are atomic in every driver. Multi-document
// sequences (ResetRoundScores, ClearWaiting) are not atomic as a whole;
// callers own the resulting weak-consistency window.
package store

import (
	"context"
	"errors"

	"github.com/picparty/core/internal/model"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrUserNotFound = errors.New("user not found")
	ErrCodeConflict = errors.New("room code conflict")
)

// RoomUpdate is a partial update of Room flags. Nil fields are untouched.
type RoomUpdate struct {
	Joinable            *bool
	GameStarted         *bool
	AnswersOpen         *bool
	ExpectedPlayerCount *int
}

func Bool(v bool) *bool { return &v }
func Int(v int) *int    { return &v }

type Store interface {
	CreateRoom(ctx context.Context, room model.Room) error
	Room(ctx context.Context, code model.RoomCode) (model.Room, error)
	UpdateRoom(ctx context.Context, code model.RoomCode, upd RoomUpdate) error
	DeleteRoom(ctx context.Context, code model.RoomCode) error

	// IncrementRound bumps currentRound by exactly 1 using the driver's
	// atomic increment primitive and returns the new value.
	IncrementRound(ctx context.Context, code model.RoomCode) (int, error)

	PutUser(ctx context.Context, code model.RoomCode, user model.User) error
	User(ctx context.Context, code model.RoomCode, name string) (model.User, error)
	Users(ctx context.Context, code model.RoomCode) ([]model.User, error)
	DeleteUser(ctx context.Context, code model.RoomCode, name string) error

	SetAnswer(ctx context.Context, code model.RoomCode, name, answer string) error

	// AwardPoint atomically adds 1 to both roundScore and overallScore.
	AwardPoint(ctx context.Context, code model.RoomCode, name string) error
	ResetRoundScores(ctx context.Context, code model.RoomCode) error

	AddWaiting(ctx context.Context, code model.RoomCode, name string) error
	RemoveWaiting(ctx context.Context, code model.RoomCode, name string) error
	WaitingCount(ctx context.Context, code model.RoomCode) (int, error)
	ClearWaiting(ctx context.Context, code model.RoomCode) error
}
