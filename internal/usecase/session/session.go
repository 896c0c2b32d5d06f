// Package usecase_session is the single entry point the display layer
// talks to. It composes membership, round and scoring and maps every
// failure onto a user-displayable {title, message} pair.
package usecase_session

import (
	"context"

	"github.com/picparty/core/internal/model"
	usecase_membership "github.com/picparty/core/internal/usecase/membership"
	usecase_round "github.com/picparty/core/internal/usecase/round"
	usecase_score "github.com/picparty/core/internal/usecase/score"
)

type Facade struct {
	Membership *usecase_membership.Usecase
	Rounds     *usecase_round.Usecase
	Scores     *usecase_score.Usecase
}

func New(
	membership *usecase_membership.Usecase,
	rounds *usecase_round.Usecase,
	scores *usecase_score.Usecase,
) *Facade {
	return &Facade{
		Membership: membership,
		Rounds:     rounds,
		Scores:     scores,
	}
}

type CreatedRoom struct {
	Code      model.RoomCode
	HostToken string
}

func (f *Facade) CreateRoom(ctx context.Context, username string, roundLimit int) (CreatedRoom, error) {
	code, token, err := f.Membership.CreateRoom(ctx, username, roundLimit)
	if err != nil {
		return CreatedRoom{}, err
	}
	return CreatedRoom{Code: code, HostToken: token}, nil
}

func (f *Facade) JoinRoom(ctx context.Context, code model.RoomCode, username string) error {
	return f.Membership.JoinRoom(ctx, code, username)
}

func (f *Facade) LeaveRoom(ctx context.Context, code model.RoomCode, username string) error {
	return f.Membership.LeaveRoom(ctx, code, username)
}

func (f *Facade) Users(ctx context.Context, code model.RoomCode) ([]model.User, error) {
	return f.Membership.Users(ctx, code)
}

func (f *Facade) IsHost(ctx context.Context, code model.RoomCode, token string) (bool, error) {
	return f.Membership.IsHost(ctx, code, token)
}

func (f *Facade) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	return f.Membership.DeleteRoom(ctx, code)
}

func (f *Facade) StartGame(ctx context.Context, code model.RoomCode) error {
	return f.Rounds.StartGame(ctx, code)
}

func (f *Facade) SubmitAnswer(ctx context.Context, code model.RoomCode, username, answer string) (bool, error) {
	return f.Rounds.SubmitAnswer(ctx, code, username, answer)
}

// AdvanceRoundAndRefresh runs a full round transition in the required
// order: bump the counter, then refresh the display flag. When the bump
// walks past the last round it stops there and reports game completion
// without starting another round.
func (f *Facade) AdvanceRoundAndRefresh(ctx context.Context, code model.RoomCode) (int, bool, error) {
	round, complete, err := f.Rounds.AdvanceRound(ctx, code)
	if err != nil {
		return 0, false, err
	}
	if complete {
		if err := f.Rounds.ToggleGame(ctx, code); err != nil {
			return 0, false, err
		}
		return round, true, nil
	}
	if err := f.Rounds.StartNewRound(ctx, code); err != nil {
		return 0, false, err
	}
	return round, false, nil
}

func (f *Facade) StartNewRound(ctx context.Context, code model.RoomCode) error {
	return f.Rounds.StartNewRound(ctx, code)
}

func (f *Facade) ToggleGame(ctx context.Context, code model.RoomCode) error {
	return f.Rounds.ToggleGame(ctx, code)
}

func (f *Facade) Round(ctx context.Context, code model.RoomCode) (int, error) {
	return f.Rounds.Round(ctx, code)
}

func (f *Facade) RoundComplete(ctx context.Context, code model.RoomCode) (bool, error) {
	return f.Rounds.RoundComplete(ctx, code)
}

func (f *Facade) PromptOrder(ctx context.Context, code model.RoomCode) ([]model.PromptID, error) {
	return f.Rounds.PromptOrder(ctx, code)
}

func (f *Facade) CurrentPromptAsset(ctx context.Context, code model.RoomCode) (string, error) {
	return f.Rounds.CurrentPromptAsset(ctx, code)
}

func (f *Facade) AwardVote(ctx context.Context, code model.RoomCode, username string) error {
	return f.Scores.AwardVote(ctx, code, username)
}

func (f *Facade) Leaderboard(ctx context.Context, code model.RoomCode) ([]model.LeaderboardEntry, error) {
	return f.Scores.Leaderboard(ctx, code)
}

func (f *Facade) RoundAnswers(ctx context.Context, code model.RoomCode) ([]string, error) {
	return f.Scores.RoundAnswers(ctx, code)
}
