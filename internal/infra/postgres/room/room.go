package infra_postgres_room

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type roomDTO struct {
	Code            string `db:"code"`
	HostToken       string `db:"host_token"`
	PromptOrder     string `db:"prompt_order"`
	CurrentRound    int    `db:"current_round"`
	RoundLimit      int    `db:"round_limit"`
	Joinable        bool   `db:"joinable"`
	GameStarted     bool   `db:"game_started"`
	AnswersOpen     bool   `db:"answers_open"`
	ExpectedPlayers int    `db:"expected_players"`
}

type userDTO struct {
	Name          string `db:"name"`
	IsHost        bool   `db:"is_host"`
	RoundScore    int    `db:"round_score"`
	OverallScore  int    `db:"overall_score"`
	CurrentAnswer string `db:"current_answer"`
}

func (d *Driver) CreateRoom(ctx context.Context, room model.Room) error {
	dto := roomDTO{
		Code:            string(room.Code),
		HostToken:       room.HostToken,
		PromptOrder:     encodePromptOrder(room.PromptOrder),
		CurrentRound:    room.CurrentRound,
		RoundLimit:      room.RoundLimit,
		Joinable:        room.Joinable,
		GameStarted:     room.GameStarted,
		AnswersOpen:     room.AnswersOpen,
		ExpectedPlayers: room.ExpectedPlayerCount,
	}

	query := `
		INSERT INTO rooms (code, host_token, prompt_order, current_round, round_limit,
			joinable, game_started, answers_open, expected_players)
		VALUES (:code, :host_token, :prompt_order, :current_round, :round_limit,
			:joinable, :game_started, :answers_open, :expected_players)
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return store.ErrCodeConflict
		}
		return err
	}
	return nil
}

func (d *Driver) Room(ctx context.Context, code model.RoomCode) (model.Room, error) {
	var dto roomDTO

	query := `
        SELECT code, host_token, prompt_order, current_round, round_limit,
			joinable, game_started, answers_open, expected_players
        FROM rooms
        WHERE code = $1
    `

	err := d.db.GetContext(ctx, &dto, query, string(code))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Room{}, store.ErrRoomNotFound
		}
		return model.Room{}, err
	}

	return model.Room{
		Code:                model.RoomCode(dto.Code),
		HostToken:           dto.HostToken,
		PromptOrder:         decodePromptOrder(dto.PromptOrder),
		CurrentRound:        dto.CurrentRound,
		RoundLimit:          dto.RoundLimit,
		Joinable:            dto.Joinable,
		GameStarted:         dto.GameStarted,
		AnswersOpen:         dto.AnswersOpen,
		ExpectedPlayerCount: dto.ExpectedPlayers,
	}, nil
}

func (d *Driver) UpdateRoom(ctx context.Context, code model.RoomCode, upd store.RoomUpdate) error {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)

	if upd.Joinable != nil {
		args = append(args, *upd.Joinable)
		sets = append(sets, "joinable = $"+strconv.Itoa(len(args)))
	}
	if upd.GameStarted != nil {
		args = append(args, *upd.GameStarted)
		sets = append(sets, "game_started = $"+strconv.Itoa(len(args)))
	}
	if upd.AnswersOpen != nil {
		args = append(args, *upd.AnswersOpen)
		sets = append(sets, "answers_open = $"+strconv.Itoa(len(args)))
	}
	if upd.ExpectedPlayerCount != nil {
		args = append(args, *upd.ExpectedPlayerCount)
		sets = append(sets, "expected_players = $"+strconv.Itoa(len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, string(code))
	query := "UPDATE rooms SET " + strings.Join(sets, ", ") +
		" WHERE code = $" + strconv.Itoa(len(args))

	result, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return mustAffect(result, store.ErrRoomNotFound)
}

func (d *Driver) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	// users and waiting rows go with the room via ON DELETE CASCADE
	query := `
        DELETE FROM rooms
        WHERE code = $1
    `

	result, err := d.db.ExecContext(ctx, query, string(code))
	if err != nil {
		return err
	}
	return mustAffect(result, store.ErrRoomNotFound)
}

func (d *Driver) IncrementRound(ctx context.Context, code model.RoomCode) (int, error) {
	var round int

	query := `
		UPDATE rooms
		SET current_round = current_round + 1
		WHERE code = $1
		RETURNING current_round
	`

	err := d.db.QueryRowContext(ctx, query, string(code)).Scan(&round)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, store.ErrRoomNotFound
		}
		return 0, err
	}
	return round, nil
}

func (d *Driver) PutUser(ctx context.Context, code model.RoomCode, user model.User) error {
	query := `
		INSERT INTO users (room_code, name, is_host, round_score, overall_score, current_answer)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (room_code, name)
		DO UPDATE SET is_host = $3, round_score = $4, overall_score = $5, current_answer = $6
	`

	_, err := d.db.ExecContext(ctx, query, string(code), user.Name,
		user.IsHost, user.RoundScore, user.OverallScore, user.CurrentAnswer)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return store.ErrRoomNotFound
		}
		return err
	}
	return nil
}

func (d *Driver) User(ctx context.Context, code model.RoomCode, name string) (model.User, error) {
	var dto userDTO

	query := `
        SELECT name, is_host, round_score, overall_score, current_answer
        FROM users
        WHERE room_code = $1 AND name = $2
    `

	err := d.db.GetContext(ctx, &dto, query, string(code), name)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, store.ErrUserNotFound
		}
		return model.User{}, err
	}
	return dto.toModel(), nil
}

func (d *Driver) Users(ctx context.Context, code model.RoomCode) ([]model.User, error) {
	if err := d.roomMustExist(ctx, code); err != nil {
		return nil, err
	}

	var dtos []userDTO

	query := `
        SELECT name, is_host, round_score, overall_score, current_answer
        FROM users
        WHERE room_code = $1
		ORDER BY joined_at
    `

	err := d.db.SelectContext(ctx, &dtos, query, string(code))
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(dtos))
	for _, dto := range dtos {
		users = append(users, dto.toModel())
	}
	return users, nil
}

func (d *Driver) DeleteUser(ctx context.Context, code model.RoomCode, name string) error {
	query := `
        DELETE FROM users
        WHERE room_code = $1 AND name = $2
    `

	_, err := d.db.ExecContext(ctx, query, string(code), name)
	return err
}

func (d *Driver) SetAnswer(ctx context.Context, code model.RoomCode, name, answer string) error {
	query := `
        UPDATE users
        SET current_answer = $1
        WHERE room_code = $2 AND name = $3
    `

	result, err := d.db.ExecContext(ctx, query, answer, string(code), name)
	if err != nil {
		return err
	}
	return mustAffect(result, store.ErrUserNotFound)
}

func (d *Driver) AwardPoint(ctx context.Context, code model.RoomCode, name string) error {
	query := `
		UPDATE users
		SET round_score = round_score + 1,
			overall_score = overall_score + 1
		WHERE room_code = $1 AND name = $2
	`

	result, err := d.db.ExecContext(ctx, query, string(code), name)
	if err != nil {
		return err
	}
	return mustAffect(result, store.ErrUserNotFound)
}

func (d *Driver) ResetRoundScores(ctx context.Context, code model.RoomCode) error {
	query := `
		UPDATE users
		SET round_score = 0
		WHERE room_code = $1
	`

	_, err := d.db.ExecContext(ctx, query, string(code))
	return err
}

func (d *Driver) AddWaiting(ctx context.Context, code model.RoomCode, name string) error {
	query := `
		INSERT INTO waiting (room_code, name)
		VALUES ($1, $2)
		ON CONFLICT (room_code, name) DO NOTHING
	`

	_, err := d.db.ExecContext(ctx, query, string(code), name)
	return err
}

func (d *Driver) RemoveWaiting(ctx context.Context, code model.RoomCode, name string) error {
	query := `
        DELETE FROM waiting
        WHERE room_code = $1 AND name = $2
    `

	_, err := d.db.ExecContext(ctx, query, string(code), name)
	return err
}

func (d *Driver) WaitingCount(ctx context.Context, code model.RoomCode) (int, error) {
	var count int

	query := `
        SELECT COUNT(*)
        FROM waiting
        WHERE room_code = $1
    `

	err := d.db.GetContext(ctx, &count, query, string(code))
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (d *Driver) ClearWaiting(ctx context.Context, code model.RoomCode) error {
	query := `
        DELETE FROM waiting
        WHERE room_code = $1
    `

	_, err := d.db.ExecContext(ctx, query, string(code))
	return err
}

func (d *Driver) roomMustExist(ctx context.Context, code model.RoomCode) error {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM rooms WHERE code = $1)`

	if err := d.db.GetContext(ctx, &exists, query, string(code)); err != nil {
		return err
	}
	if !exists {
		return store.ErrRoomNotFound
	}
	return nil
}

func mustAffect(result sql.Result, missing error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return missing
	}
	return nil
}

func (dto userDTO) toModel() model.User {
	return model.User{
		Name:          dto.Name,
		IsHost:        dto.IsHost,
		RoundScore:    dto.RoundScore,
		OverallScore:  dto.OverallScore,
		CurrentAnswer: dto.CurrentAnswer,
	}
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
