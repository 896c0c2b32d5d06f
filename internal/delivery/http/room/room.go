package http_room

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/picparty/core/internal/delivery/http/common"
	ws_room "github.com/picparty/core/internal/delivery/ws/room"
	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
	usecase_membership "github.com/picparty/core/internal/usecase/membership"
	usecase_session "github.com/picparty/core/internal/usecase/session"
)

type Controller struct {
	facade *usecase_session.Facade
	hub    *ws_room.Hub
	logger *slog.Logger
}

func New(facade *usecase_session.Facade, hub *ws_room.Hub) *Controller {
	return &Controller{
		facade: facade,
		hub:    hub,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.POST("", c.create)
		rooms.DELETE("/:room_code", c.delete)
		rooms.GET("/:room_code/players", c.players)
		rooms.POST("/:room_code/players", c.join)
		rooms.DELETE("/:room_code/players/:username", c.leave)
	}
}

type CreateRoomRequest struct {
	Username   string `json:"username" binding:"required"`
	RoundLimit int    `json:"round_limit" binding:"required"`
}

type CreateRoomResponse struct {
	RoomCode string `json:"room_code"`
}

// Create books a room and returns its code
// @Summary Create room
// @Description Creates a room, writes the creator as host
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest true "Creator name and round count"
// @Success 201 {object} CreateRoomResponse "Room created"
// @Header 201 {string} X-User-Token "Host token"
// @Failure 400 {object} http_common.ErrorResponse "Invalid round count"
// @Failure 500 {object} http_common.ErrorResponse "Store unavailable"
// @Router /rooms [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Title:   "Invalid request",
			Message: "username and round_limit are required",
		})
		return
	}

	created, err := c.facade.CreateRoom(ctx, req.Username, req.RoundLimit)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}

	ctx.Header("X-User-Token", created.HostToken)
	ctx.JSON(http.StatusCreated, CreateRoomResponse{
		RoomCode: string(created.Code),
	})
}

type JoinRoomRequest struct {
	Username string `json:"username" binding:"required"`
}

// Join adds a player to a room
// @Summary Join room
// @Description Admits a player if the room exists, has a seat, is joinable and the name is free
// @Tags Rooms
// @Accept json
// @Param room_code path string true "Room code"
// @Param request body JoinRoomRequest true "Player name"
// @Success 201 "Player joined"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 409 {object} http_common.ErrorResponse "Full, started or name taken"
// @Router /rooms/{room_code}/players [post]
func (c *Controller) join(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	var req JoinRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Title:   "Invalid request",
			Message: "username is required",
		})
		return
	}

	if err := c.facade.JoinRoom(ctx, code, req.Username); err != nil {
		c.logger.Error("failed to join room", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}

	c.hub.NotifyLobbyUpdate(code)
	ctx.Status(http.StatusCreated)
}

// Leave removes a player from a room
// @Summary Leave room
// @Description Drops the player and any waiting marker; absent players are a no-op
// @Tags Rooms
// @Param room_code path string true "Room code"
// @Param username path string true "Player name"
// @Success 204 "Player removed"
// @Router /rooms/{room_code}/players/{username} [delete]
func (c *Controller) leave(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))
	username := ctx.Param("username")

	if err := c.facade.LeaveRoom(ctx, code, username); err != nil {
		c.logger.Error("failed to leave room", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}

	c.hub.NotifyLobbyUpdate(code)
	ctx.Status(http.StatusNoContent)
}

type PlayerDTO struct {
	Name         string `json:"name"`
	IsHost       bool   `json:"is_host"`
	RoundScore   int    `json:"round_score"`
	OverallScore int    `json:"overall_score"`
}

// Players lists the room's players
// @Summary List players
// @Tags Rooms
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {array} PlayerDTO
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /rooms/{room_code}/players [get]
func (c *Controller) players(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	users, err := c.facade.Users(ctx, code)
	if err != nil {
		c.logger.Error("failed to list players", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}

	players := make([]PlayerDTO, 0, len(users))
	for _, user := range users {
		players = append(players, PlayerDTO{
			Name:         user.Name,
			IsHost:       user.IsHost,
			RoundScore:   user.RoundScore,
			OverallScore: user.OverallScore,
		})
	}
	ctx.JSON(http.StatusOK, players)
}

// Delete ends the game and removes the room
// @Summary Delete room
// @Tags Rooms
// @Param room_code path string true "Room code"
// @Success 204 "Room deleted"
// @Failure 401 {object} http_common.ErrorResponse "Not the host"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Security UserToken
// @Router /rooms/{room_code} [delete]
func (c *Controller) delete(ctx *gin.Context) {
	code := model.RoomCode(ctx.Param("room_code"))

	userToken := ctx.GetHeader("X-User-Token")
	if userToken == "" {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Title:   "Unauthorized",
			Message: "X-User-Token not found",
		})
		return
	}

	isHost, err := c.facade.IsHost(ctx, code, userToken)
	if err != nil {
		c.logger.Error("failed to delete room", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}
	if !isHost {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Title:   "Unauthorized",
			Message: "Only the host can end the game.",
		})
		return
	}

	if err := c.facade.DeleteRoom(ctx, code); err != nil {
		c.logger.Error("failed to delete room", slog.String("error", err.Error()))
		ctx.JSON(statusFor(err), http_common.FromFailure(usecase_session.Describe(err)))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrRoomNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase_membership.ErrRoomFull),
		errors.Is(err, usecase_membership.ErrGameStarted),
		errors.Is(err, usecase_membership.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, usecase_membership.ErrBadRoundLimit):
		return http.StatusBadRequest
	case errors.Is(err, usecase_membership.ErrRoomsUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
