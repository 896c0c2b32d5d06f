package usecase_membership

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrRoomsUnavailable = errors.New("no available room codes")
	ErrRoomFull         = errors.New("room is full")
	ErrGameStarted      = errors.New("game already started")
	ErrUsernameTaken    = errors.New("username taken")
	ErrBadRoundLimit    = errors.New("invalid round limit")
)

//go:generate mockery --name=RoomRepository --output=./mocks/repository --filename=repository.go
type RoomRepository interface {
	CreateRoom(ctx context.Context, room model.Room) error
	Room(ctx context.Context, code model.RoomCode) (model.Room, error)
	DeleteRoom(ctx context.Context, code model.RoomCode) error
	PutUser(ctx context.Context, code model.RoomCode, user model.User) error
	Users(ctx context.Context, code model.RoomCode) ([]model.User, error)
	DeleteUser(ctx context.Context, code model.RoomCode, name string) error
	RemoveWaiting(ctx context.Context, code model.RoomCode, name string) error
}

type Usecase struct {
	repo RoomRepository

	promptPoolSize int
}

func New(repo RoomRepository, promptPoolSize int) *Usecase {
	if promptPoolSize <= 0 {
		promptPoolSize = 32 /* default */
	}
	return &Usecase{
		repo:           repo,
		promptPoolSize: promptPoolSize,
	}
}

// CreateRoom books a fresh room and writes its creator as the host.
// The returned token must be presented by the client for host-only ops.
func (u *Usecase) CreateRoom(ctx context.Context, username string, roundLimit int) (model.RoomCode, string, error) {
	if roundLimit < 1 || roundLimit > u.promptPoolSize {
		return model.EmptyRoomCode, "", ErrBadRoundLimit
	}

	hostToken := uuid.New().String()

	code, err := u.createRoomLobby(ctx, hostToken, roundLimit)
	if err != nil {
		return model.EmptyRoomCode, "", err
	}

	if err := u.repo.PutUser(ctx, code, model.User{
		Name:   username,
		IsHost: true,
	}); err != nil {
		return model.EmptyRoomCode, "", errors.Join(ErrStoreUnavailable, err)
	}

	return code, hostToken, nil
}

// Assuming that codes can conflict.
// Retrying...
func (u *Usecase) createRoomLobby(ctx context.Context, hostToken string, roundLimit int) (model.RoomCode, error) {
	var retries = 3
	for retries > 0 {
		code := u.buildRoomCode()
		err := u.repo.CreateRoom(ctx, model.Room{
			Code:         code,
			HostToken:    hostToken,
			PromptOrder:  u.buildPromptOrder(roundLimit),
			CurrentRound: 1,
			RoundLimit:   roundLimit,
			Joinable:     true,
		})
		if err != nil {
			if errors.Is(err, store.ErrCodeConflict) {
				retries--
			} else {
				return model.EmptyRoomCode, errors.Join(ErrStoreUnavailable, err)
			}
		} else {
			return code, nil
		}
	}
	return model.EmptyRoomCode, ErrRoomsUnavailable
}

const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func (u *Usecase) buildRoomCode() model.RoomCode {
	const codeLen = 6
	var builder strings.Builder
	builder.Grow(codeLen)

	for i := 0; i < codeLen; i++ {
		builder.WriteByte(codeCharset[rand.Intn(len(codeCharset))])
	}

	return model.RoomCode(builder.String())
}

// buildPromptOrder draws roundLimit distinct prompt IDs from the pool.
// IDs are 1-based to match the asset store's keying.
func (u *Usecase) buildPromptOrder(roundLimit int) []model.PromptID {
	perm := rand.Perm(u.promptPoolSize)

	order := make([]model.PromptID, roundLimit)
	for i := range order {
		order[i] = model.PromptID(perm[i] + 1)
	}
	return order
}

// JoinRoom runs the admission checks in order: the room must exist, have
// a free seat, still be joinable, and not already hold the name. Each
// check is a separate read, so two racing joins with the same name can
// both pass; the second write wins.
func (u *Usecase) JoinRoom(ctx context.Context, code model.RoomCode, username string) error {
	room, err := u.repo.Room(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return store.ErrRoomNotFound
		}
		return errors.Join(ErrStoreUnavailable, err)
	}

	users, err := u.repo.Users(ctx, code)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if len(users) >= model.MaxPlayers {
		return ErrRoomFull
	}

	if !room.Joinable {
		return ErrGameStarted
	}

	for _, user := range users {
		if user.Name == username {
			return ErrUsernameTaken
		}
	}

	if err := u.repo.PutUser(ctx, code, model.User{Name: username}); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// LeaveRoom removes the user and any waiting marker. Removing an absent
// user is a no-op.
func (u *Usecase) LeaveRoom(ctx context.Context, code model.RoomCode, username string) error {
	if err := u.repo.DeleteUser(ctx, code, username); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if err := u.repo.RemoveWaiting(ctx, code, username); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (u *Usecase) Users(ctx context.Context, code model.RoomCode) ([]model.User, error) {
	users, err := u.repo.Users(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return nil, store.ErrRoomNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return users, nil
}

// IsHost reports whether the presented token belongs to the room's creator.
func (u *Usecase) IsHost(ctx context.Context, code model.RoomCode, token string) (bool, error) {
	room, err := u.repo.Room(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return false, store.ErrRoomNotFound
		}
		return false, errors.Join(ErrStoreUnavailable, err)
	}
	return room.HostToken == token, nil
}

// DeleteRoom drops the room and everything under it.
func (u *Usecase) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	if err := u.repo.DeleteRoom(ctx, code); err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return store.ErrRoomNotFound
		}
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
