package infra_memory_room

import (
	"context"
	"sync"

	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
)

// Driver is the in-process room store used by tests and local runs.
// A single mutex stands in for the document store's per-document
// atomicity; every method holds it for its whole critical section.
type Driver struct {
	mu    sync.Mutex
	rooms map[model.RoomCode]*roomDoc
}

type roomDoc struct {
	room    model.Room
	users   []*model.User // insertion order kept for listing
	waiting map[string]struct{}
}

func New() *Driver {
	return &Driver{rooms: make(map[model.RoomCode]*roomDoc)}
}

func (d *Driver) CreateRoom(ctx context.Context, room model.Room) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.rooms[room.Code]; ok {
		return store.ErrCodeConflict
	}
	d.rooms[room.Code] = &roomDoc{
		room:    room,
		waiting: make(map[string]struct{}),
	}
	return nil
}

func (d *Driver) Room(ctx context.Context, code model.RoomCode) (model.Room, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.rooms[code]
	if !ok {
		return model.Room{}, store.ErrRoomNotFound
	}
	return doc.room, nil
}

func (d *Driver) UpdateRoom(ctx context.Context, code model.RoomCode, upd store.RoomUpdate) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.rooms[code]
	if !ok {
		return store.ErrRoomNotFound
	}
	if upd.Joinable != nil {
		doc.room.Joinable = *upd.Joinable
	}
	if upd.GameStarted != nil {
		doc.room.GameStarted = *upd.GameStarted
	}
	if upd.AnswersOpen != nil {
		doc.room.AnswersOpen = *upd.AnswersOpen
	}
	if upd.ExpectedPlayerCount != nil {
		doc.room.ExpectedPlayerCount = *upd.ExpectedPlayerCount
	}
	return nil
}

func (d *Driver) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.rooms[code]; !ok {
		return store.ErrRoomNotFound
	}
	delete(d.rooms, code)
	return nil
}

func (d *Driver) IncrementRound(ctx context.Context, code model.RoomCode) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.rooms[code]
	if !ok {
		return 0, store.ErrRoomNotFound
	}
	doc.room.CurrentRound++
	return doc.room.CurrentRound, nil
}

func (d *Driver) PutUser(ctx context.Context, code model.RoomCode, user model.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.rooms[code]
	if !ok {
		return store.ErrRoomNotFound
	}
	for _, u := range doc.users {
		if u.Name == user.Name {
			*u = user
			return nil
		}
	}
	u := user
	doc.users = append(doc.users, &u)
	return nil
}

func (d *Driver) User(ctx context.Context, code model.RoomCode, name string) (model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, err := d.findUser(code, name)
	if err != nil {
		return model.User{}, err
	}
	return *u, nil
}

func (d *Driver) Users(ctx context.Context, code model.RoomCode) ([]model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.rooms[code]
	if !ok {
		return nil, store.ErrRoomNotFound
	}
	users := make([]model.User, 0, len(doc.users))
	for _, u := range doc.users {
		users = append(users, *u)
	}
	return users, nil
}

func (d *Driver) DeleteUser(ctx context.Context, code model.RoomCode, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.rooms[code]
	if !ok {
		return nil
	}
	for i, u := range doc.users {
		if u.Name == name {
			doc.users = append(doc.users[:i], doc.users[i+1:]...)
			break
		}
	}
	return nil
}

func (d *Driver) SetAnswer(ctx context.Context, code model.RoomCode, name, answer string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, err := d.findUser(code, name)
	if err != nil {
		return err
	}
	u.CurrentAnswer = answer
	return nil
}

func (d *Driver) AwardPoint(ctx context.Context, code model.RoomCode, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, err := d.findUser(code, name)
	if err != nil {
		return err
	}
	u.RoundScore++
	u.OverallScore++
	return nil
}

func (d *Driver) ResetRoundScores(ctx context.Context, code model.RoomCode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.rooms[code]
	if !ok {
		return store.ErrRoomNotFound
	}
	for _, u := range doc.users {
		u.RoundScore = 0
	}
	return nil
}

func (d *Driver) AddWaiting(ctx context.Context, code model.RoomCode, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.rooms[code]
	if !ok {
		return store.ErrRoomNotFound
	}
	doc.waiting[name] = struct{}{}
	return nil
}

func (d *Driver) RemoveWaiting(ctx context.Context, code model.RoomCode, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.rooms[code]
	if !ok {
		return nil
	}
	delete(doc.waiting, name)
	return nil
}

func (d *Driver) WaitingCount(ctx context.Context, code model.RoomCode) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.rooms[code]
	if !ok {
		return 0, store.ErrRoomNotFound
	}
	return len(doc.waiting), nil
}

func (d *Driver) ClearWaiting(ctx context.Context, code model.RoomCode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.rooms[code]
	if !ok {
		return store.ErrRoomNotFound
	}
	doc.waiting = make(map[string]struct{})
	return nil
}

func (d *Driver) findUser(code model.RoomCode, name string) (*model.User, error) {
	doc, ok := d.rooms[code]
	if !ok {
		return nil, store.ErrRoomNotFound
	}
	for _, u := range doc.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}
