package usecase_session

import (
	"errors"

	"github.com/picparty/core/internal/store"
	usecase_membership "github.com/picparty/core/internal/usecase/membership"
	usecase_round "github.com/picparty/core/internal/usecase/round"
)

// Failure is the user-displayable shape every error surfaces as.
type Failure struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Describe maps an error from any facade operation onto its Failure.
// Anything unrecognized is a store-level failure; the core never
// retries those, a caller that wants retries owns them.
func Describe(err error) Failure {
	switch {
	case errors.Is(err, store.ErrRoomNotFound):
		return Failure{
			Title:   "Room not found",
			Message: "No room exists with that code. Check the code and try again.",
		}
	case errors.Is(err, usecase_membership.ErrRoomFull):
		return Failure{
			Title:   "Room full",
			Message: "This room already has 8 players.",
		}
	case errors.Is(err, usecase_membership.ErrGameStarted):
		return Failure{
			Title:   "Game already started",
			Message: "This game is underway and cannot be joined.",
		}
	case errors.Is(err, usecase_membership.ErrUsernameTaken):
		return Failure{
			Title:   "Username taken",
			Message: "Someone in this room already has that name.",
		}
	case errors.Is(err, usecase_membership.ErrBadRoundLimit):
		return Failure{
			Title:   "Invalid round count",
			Message: "Pick a round count between 1 and the prompt pool size.",
		}
	case errors.Is(err, usecase_membership.ErrRoomsUnavailable):
		return Failure{
			Title:   "No rooms available",
			Message: "Could not find a free room code. Try again.",
		}
	case errors.Is(err, usecase_round.ErrEmptyAnswer):
		return Failure{
			Title:   "Empty answer",
			Message: "Please enter an answer",
		}
	case errors.Is(err, usecase_round.ErrAnswerTooLong):
		return Failure{
			Title:   "Answer too long",
			Message: "Answers are limited to 75 characters.",
		}
	case errors.Is(err, usecase_round.ErrGameComplete):
		return Failure{
			Title:   "Game complete",
			Message: "All rounds have been played.",
		}
	case errors.Is(err, store.ErrUserNotFound):
		return Failure{
			Title:   "Player not found",
			Message: "That player is not in this room.",
		}
	default:
		return Failure{
			Title:   "Store unavailable",
			Message: "The game store did not respond. Try again in a moment.",
		}
	}
}
