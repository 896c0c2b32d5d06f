package infra_redis_room

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-redis/redis"
	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
)

// Driver keeps each room as a hash plus three satellite keys:
//
//	room:{code}          room document fields
//	room:{code}:users    set of member names
//	room:{code}:user:{n} per-user document fields
//	room:{code}:waiting  completion-counting side table
//
// Round and score bumps go through HINCRBY so concurrent callers never
// lose updates. Rooms carry no TTL; they live until an explicit delete.
type Driver struct {
	client *redis.Client
}

func New(client *redis.Client) *Driver {
	return &Driver{client: client}
}

const (
	fieldHostToken   = "host_token"
	fieldPromptOrder = "prompt_order"
	fieldRound       = "current_round"
	fieldRoundLimit  = "round_limit"
	fieldJoinable    = "joinable"
	fieldGameStarted = "game_started"
	fieldAnswersOpen = "answers_open"
	fieldExpected    = "expected_players"

	fieldIsHost       = "is_host"
	fieldRoundScore   = "round_score"
	fieldOverallScore = "overall_score"
	fieldAnswer       = "answer"
)

func roomKey(code model.RoomCode) string {
	return "room:" + string(code)
}

func usersKey(code model.RoomCode) string {
	return roomKey(code) + ":users"
}

func userKey(code model.RoomCode, name string) string {
	return roomKey(code) + ":user:" + name
}

func waitingKey(code model.RoomCode) string {
	return roomKey(code) + ":waiting"
}

func (d *Driver) CreateRoom(ctx context.Context, room model.Room) error {
	// HSETNX on the limit field is the create-if-absent guard; the loser
	// of a code race sees the field already set.
	created, err := d.client.HSetNX(roomKey(room.Code), fieldRoundLimit, room.RoundLimit).Result()
	if err != nil {
		return err
	}
	if !created {
		return store.ErrCodeConflict
	}

	return d.client.HMSet(roomKey(room.Code), map[string]interface{}{
		fieldHostToken:   room.HostToken,
		fieldPromptOrder: encodePromptOrder(room.PromptOrder),
		fieldRound:       room.CurrentRound,
		fieldJoinable:    strconv.FormatBool(room.Joinable),
		fieldGameStarted: strconv.FormatBool(room.GameStarted),
		fieldAnswersOpen: strconv.FormatBool(room.AnswersOpen),
		fieldExpected:    room.ExpectedPlayerCount,
	}).Err()
}

func (d *Driver) Room(ctx context.Context, code model.RoomCode) (model.Room, error) {
	fields, err := d.client.HGetAll(roomKey(code)).Result()
	if err != nil {
		return model.Room{}, err
	}
	if len(fields) == 0 {
		return model.Room{}, store.ErrRoomNotFound
	}

	room := model.Room{
		Code:        code,
		HostToken:   fields[fieldHostToken],
		PromptOrder: decodePromptOrder(fields[fieldPromptOrder]),
	}
	room.CurrentRound, _ = strconv.Atoi(fields[fieldRound])
	room.RoundLimit, _ = strconv.Atoi(fields[fieldRoundLimit])
	room.Joinable, _ = strconv.ParseBool(fields[fieldJoinable])
	room.GameStarted, _ = strconv.ParseBool(fields[fieldGameStarted])
	room.AnswersOpen, _ = strconv.ParseBool(fields[fieldAnswersOpen])
	room.ExpectedPlayerCount, _ = strconv.Atoi(fields[fieldExpected])
	return room, nil
}

func (d *Driver) UpdateRoom(ctx context.Context, code model.RoomCode, upd store.RoomUpdate) error {
	if err := d.roomMustExist(code); err != nil {
		return err
	}

	fields := make(map[string]interface{}, 4)
	if upd.Joinable != nil {
		fields[fieldJoinable] = strconv.FormatBool(*upd.Joinable)
	}
	if upd.GameStarted != nil {
		fields[fieldGameStarted] = strconv.FormatBool(*upd.GameStarted)
	}
	if upd.AnswersOpen != nil {
		fields[fieldAnswersOpen] = strconv.FormatBool(*upd.AnswersOpen)
	}
	if upd.ExpectedPlayerCount != nil {
		fields[fieldExpected] = *upd.ExpectedPlayerCount
	}
	if len(fields) == 0 {
		return nil
	}
	return d.client.HMSet(roomKey(code), fields).Err()
}

func (d *Driver) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	names, err := d.client.SMembers(usersKey(code)).Result()
	if err != nil {
		return err
	}

	keys := []string{roomKey(code), usersKey(code), waitingKey(code)}
	for _, name := range names {
		keys = append(keys, userKey(code, name))
	}
	return d.client.Del(keys...).Err()
}

func (d *Driver) IncrementRound(ctx context.Context, code model.RoomCode) (int, error) {
	if err := d.roomMustExist(code); err != nil {
		return 0, err
	}
	round, err := d.client.HIncrBy(roomKey(code), fieldRound, 1).Result()
	if err != nil {
		return 0, err
	}
	return int(round), nil
}

func (d *Driver) PutUser(ctx context.Context, code model.RoomCode, user model.User) error {
	if err := d.roomMustExist(code); err != nil {
		return err
	}

	if err := d.client.HMSet(userKey(code, user.Name), map[string]interface{}{
		fieldIsHost:       strconv.FormatBool(user.IsHost),
		fieldRoundScore:   user.RoundScore,
		fieldOverallScore: user.OverallScore,
		fieldAnswer:       user.CurrentAnswer,
	}).Err(); err != nil {
		return err
	}
	return d.client.SAdd(usersKey(code), user.Name).Err()
}

func (d *Driver) User(ctx context.Context, code model.RoomCode, name string) (model.User, error) {
	fields, err := d.client.HGetAll(userKey(code, name)).Result()
	if err != nil {
		return model.User{}, err
	}
	if len(fields) == 0 {
		return model.User{}, store.ErrUserNotFound
	}

	user := model.User{
		Name:          name,
		CurrentAnswer: fields[fieldAnswer],
	}
	user.IsHost, _ = strconv.ParseBool(fields[fieldIsHost])
	user.RoundScore, _ = strconv.Atoi(fields[fieldRoundScore])
	user.OverallScore, _ = strconv.Atoi(fields[fieldOverallScore])
	return user, nil
}

func (d *Driver) Users(ctx context.Context, code model.RoomCode) ([]model.User, error) {
	if err := d.roomMustExist(code); err != nil {
		return nil, err
	}

	names, err := d.client.SMembers(usersKey(code)).Result()
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(names))
	for _, name := range names {
		user, err := d.User(ctx, code, name)
		if err == store.ErrUserNotFound {
			// Concurrent leave between SMEMBERS and HGETALL.
			continue
		}
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (d *Driver) DeleteUser(ctx context.Context, code model.RoomCode, name string) error {
	if err := d.client.SRem(usersKey(code), name).Err(); err != nil {
		return err
	}
	return d.client.Del(userKey(code, name)).Err()
}

func (d *Driver) SetAnswer(ctx context.Context, code model.RoomCode, name, answer string) error {
	if err := d.userMustExist(code, name); err != nil {
		return err
	}
	return d.client.HSet(userKey(code, name), fieldAnswer, answer).Err()
}

func (d *Driver) AwardPoint(ctx context.Context, code model.RoomCode, name string) error {
	if err := d.userMustExist(code, name); err != nil {
		return err
	}

	pipe := d.client.TxPipeline()
	pipe.HIncrBy(userKey(code, name), fieldRoundScore, 1)
	pipe.HIncrBy(userKey(code, name), fieldOverallScore, 1)
	_, err := pipe.Exec()
	return err
}

func (d *Driver) ResetRoundScores(ctx context.Context, code model.RoomCode) error {
	names, err := d.client.SMembers(usersKey(code)).Result()
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := d.client.HSet(userKey(code, name), fieldRoundScore, 0).Err(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) AddWaiting(ctx context.Context, code model.RoomCode, name string) error {
	return d.client.SAdd(waitingKey(code), name).Err()
}

func (d *Driver) RemoveWaiting(ctx context.Context, code model.RoomCode, name string) error {
	return d.client.SRem(waitingKey(code), name).Err()
}

func (d *Driver) WaitingCount(ctx context.Context, code model.RoomCode) (int, error) {
	count, err := d.client.SCard(waitingKey(code)).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (d *Driver) ClearWaiting(ctx context.Context, code model.RoomCode) error {
	return d.client.Del(waitingKey(code)).Err()
}

func (d *Driver) roomMustExist(code model.RoomCode) error {
	exists, err := d.client.Exists(roomKey(code)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return store.ErrRoomNotFound
	}
	return nil
}

func (d *Driver) userMustExist(code model.RoomCode, name string) error {
	exists, err := d.client.Exists(userKey(code, name)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

func encodePromptOrder(order []model.PromptID) string {
	parts := make([]string, 0, len(order))
	for _, id := range order {
		parts = append(parts, strconv.Itoa(int(id)))
	}
	return strings.Join(parts, ",")
}

func decodePromptOrder(raw string) []model.PromptID {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	order := make([]model.PromptID, 0, len(parts))
	for _, p := range parts {
		id, _ := strconv.Atoi(p)
		order = append(order, model.PromptID(id))
	}
	return order
}
