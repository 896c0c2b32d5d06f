package http_game

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/picparty/core/internal/delivery/http/common"
	ws_room "github.com/picparty/core/internal/delivery/ws/room"
	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
	usecase_round "github.com/picparty/core/internal/usecase/round"
	usecase_session "github.com/picparty/core/internal/usecase/session"
)

type Controller struct {
	facade *usecase_session.Facade
	hub    *ws_room.Hub
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(facade *usecase_session.Facade, hub *ws_room.Hub, opts ...ControllerOption) *Controller {
	c := &Controller{
		facade: facade,
		hub:    hub,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	room := router.Group("/rooms/:room_code")
	room.POST("/game", c.startGame)
	room.POST("/game/toggle", c.toggleGame)
	room.GET("/round", c.round)
	room.POST("/round/advance", c.advanceRound)
	room.GET("/prompt", c.prompt)
	room.POST("/answers", c.submitAnswer)
	room.GET("/answers", c.answers)
	room.POST("/votes", c.vote)
	room.GET("/leaderboard", c.leaderboard)
}

// StartGame closes the lobby and opens round 1
// @Summary Start game
// @Tags Game
// @Param room_code path string true "Room code"
// @Success 200 "Game started"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /rooms/{room_code}/game [post]
func (c *Controller) startGame(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	if err := c.facade.StartGame(ctx, code); err != nil {
		c.logger.Error("failed to start game", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}

	c.hub.NotifyRoundStarted(code, 1)
	ctx.Status(http.StatusOK)
}

// ToggleGame drops the round-in-progress flag
// @Summary Toggle game display flag
// @Tags Game
// @Param room_code path string true "Room code"
// @Success 200 "Flag cleared"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /rooms/{room_code}/game/toggle [post]
func (c *Controller) toggleGame(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	if err := c.facade.ToggleGame(ctx, code); err != nil {
		c.logger.Error("failed to toggle game", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}
	ctx.Status(http.StatusOK)
}

type RoundResponse struct {
	Round         int  `json:"round"`
	RoundComplete bool `json:"round_complete"`
}

// Round reports the current round and its completeness
// @Summary Current round
// @Tags Game
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {object} RoundResponse
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /rooms/{room_code}/round [get]
func (c *Controller) round(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	round, err := c.facade.Round(ctx, code)
	if err != nil {
		c.logger.Error("failed to get round", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}

	complete, err := c.facade.RoundComplete(ctx, code)
	if err != nil {
		c.logger.Error("failed to get round completeness", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}

	ctx.JSON(http.StatusOK, RoundResponse{
		Round:         round,
		RoundComplete: complete,
	})
}

type AdvanceRoundResponse struct {
	Round        int  `json:"round"`
	GameComplete bool `json:"game_complete"`
}

// AdvanceRound bumps the round counter and runs the transition
// @Summary Advance round
// @Description Atomically increments the round; starts the next round or reports game completion
// @Tags Game
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {object} AdvanceRoundResponse
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /rooms/{room_code}/round/advance [post]
func (c *Controller) advanceRound(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	round, gameComplete, err := c.facade.AdvanceRoundAndRefresh(ctx, code)
	if err != nil {
		c.logger.Error("failed to advance round", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}

	if gameComplete {
		c.hub.NotifyGameComplete(code)
	} else {
		c.hub.NotifyRoundStarted(code, round)
	}

	ctx.JSON(http.StatusOK, AdvanceRoundResponse{
		Round:        round,
		GameComplete: gameComplete,
	})
}

type PromptResponse struct {
	URL string `json:"url"`
}

// Prompt resolves the current round's prompt image
// @Summary Prompt image URL
// @Tags Game
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {object} PromptResponse
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 410 {object} http_common.ErrorResponse "Game complete"
// @Router /rooms/{room_code}/prompt [get]
func (c *Controller) prompt(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	url, err := c.facade.CurrentPromptAsset(ctx, code)
	if err != nil {
		c.logger.Error("failed to resolve prompt", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}
	ctx.JSON(http.StatusOK, PromptResponse{URL: url})
}

type SubmitAnswerRequest struct {
	Username string `json:"username" binding:"required"`
	Answer   string `json:"answer"`
}

type SubmitAnswerResponse struct {
	RoundComplete bool `json:"round_complete"`
}

// SubmitAnswer records a player's answer for the active round
// @Summary Submit answer
// @Tags Game
// @Accept json
// @Produce json
// @Param room_code path string true "Room code"
// @Param request body SubmitAnswerRequest true "Player name and answer text"
// @Success 201 {object} SubmitAnswerResponse
// @Failure 400 {object} http_common.ErrorResponse "Empty or oversized answer"
// @Failure 404 {object} http_common.ErrorResponse "Room or player not found"
// @Router /rooms/{room_code}/answers [post]
func (c *Controller) submitAnswer(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Title:   "Invalid request",
			Message: "username is required",
		})
		return
	}

	roundComplete, err := c.facade.SubmitAnswer(ctx, code, req.Username, req.Answer)
	if err != nil {
		c.logger.Error("failed to submit answer", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}

	if roundComplete {
		c.hub.NotifyRoundComplete(code)
	}

	ctx.JSON(http.StatusCreated, SubmitAnswerResponse{
		RoundComplete: roundComplete,
	})
}

type AnswersResponse struct {
	Answers []string `json:"answers"`
}

// Answers lists the answers submitted for the active round
// @Summary Round answers
// @Tags Game
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {object} AnswersResponse
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /rooms/{room_code}/answers [get]
func (c *Controller) answers(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	answers, err := c.facade.RoundAnswers(ctx, code)
	if err != nil {
		c.logger.Error("failed to get answers", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}
	ctx.JSON(http.StatusOK, AnswersResponse{Answers: answers})
}

type VoteRequest struct {
	Username string `json:"username" binding:"required"`
}

// Vote awards one point to a player
// @Summary Award vote
// @Description Adds one point to the player's round and overall score
// @Tags Game
// @Accept json
// @Param room_code path string true "Room code"
// @Param request body VoteRequest true "Player receiving the point"
// @Success 200 "Vote counted"
// @Failure 404 {object} http_common.ErrorResponse "Room or player not found"
// @Router /rooms/{room_code}/votes [post]
func (c *Controller) vote(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	var req VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Title:   "Invalid request",
			Message: "username is required",
		})
		return
	}

	if err := c.facade.AwardVote(ctx, code, req.Username); err != nil {
		c.logger.Error("failed to award vote", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}
	ctx.Status(http.StatusOK)
}

type LeaderboardEntryDTO struct {
	Name         string `json:"name"`
	OverallScore int    `json:"overall_score"`
}

// Leaderboard ranks players by overall score
// @Summary Leaderboard
// @Tags Game
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {array} LeaderboardEntryDTO
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /rooms/{room_code}/leaderboard [get]
func (c *Controller) leaderboard(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	entries, err := c.facade.Leaderboard(ctx, code)
	if err != nil {
		c.logger.Error("failed to get leaderboard", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}

	dtos := make([]LeaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, LeaderboardEntryDTO{
			Name:         entry.Name,
			OverallScore: entry.OverallScore,
		})
	}
	ctx.JSON(http.StatusOK, dtos)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrRoomNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase_round.ErrEmptyAnswer),
		errors.Is(err, usecase_round.ErrAnswerTooLong):
		return http.StatusBadRequest
	case errors.Is(err, usecase_round.ErrGameComplete):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}
