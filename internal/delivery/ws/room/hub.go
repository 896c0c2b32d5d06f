package ws_room

import (
	"context"
	"log/slog"
	"sync"

	"github.com/picparty/core/internal/model"
	usecase_session "github.com/picparty/core/internal/usecase/session"
)

const (
	EventLobbyUpdate   = "LOBBY_UPDATE"
	EventRoundStarted  = "ROUND_STARTED"
	EventRoundComplete = "ROUND_COMPLETE"
	EventGameComplete  = "GAME_COMPLETE"
	EventError         = "ERROR"
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type roomEvent struct {
	roomCode model.RoomCode
	event    Event
}

// Hub pushes room events to connected clients so they need not poll.
// The polling endpoints stay authoritative; missing an event only costs
// a client one poll interval.
type Hub struct {
	facade     *usecase_session.Facade
	logger     *slog.Logger
	clients    map[*Client]bool
	rooms      map[model.RoomCode]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan roomEvent
	mu         sync.RWMutex
}

func NewHub(facade *usecase_session.Facade) *Hub {
	return &Hub{
		facade:     facade,
		logger:     slog.Default(),
		clients:    make(map[*Client]bool),
		rooms:      make(map[model.RoomCode]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomEvent),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case roomEvent := <-h.broadcast:
			h.broadcastToRoom(roomEvent.roomCode, roomEvent.event)
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	if _, exists := h.rooms[client.roomCode]; !exists {
		h.rooms[client.roomCode] = make(map[*Client]bool)
	}
	h.rooms[client.roomCode][client] = true

	h.logger.Info("client registered",
		"username", client.username,
		"room", client.roomCode)

	go h.broadcastPlayerCount(client.roomCode)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		if roomClients, exists := h.rooms[client.roomCode]; exists {
			delete(roomClients, client)
			if len(roomClients) == 0 {
				delete(h.rooms, client.roomCode)
			}
		}
	}

	h.logger.Info("client unregistered",
		"username", client.username,
		"room", client.roomCode)
}

func (h *Hub) broadcastPlayerCount(roomCode model.RoomCode) {
	users, err := h.facade.Users(context.Background(), roomCode)
	if err != nil {
		h.logger.Error("failed to get players", "error", err, "room", roomCode)
		return
	}

	h.broadcastToRoom(roomCode, Event{
		Type: EventLobbyUpdate,
		Payload: map[string]interface{}{
			"player_count": len(users),
		},
	})
}

func (h *Hub) broadcastToRoom(roomCode model.RoomCode, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if roomClients, exists := h.rooms[roomCode]; exists {
		for client := range roomClients {
			select {
			case client.send <- event:
			default:
				close(client.send)
				delete(h.rooms[roomCode], client)
			}
		}
	}
}

func (h *Hub) NotifyLobbyUpdate(roomCode model.RoomCode) {
	go h.broadcastPlayerCount(roomCode)
}

func (h *Hub) NotifyRoundStarted(roomCode model.RoomCode, round int) {
	h.broadcast <- roomEvent{
		roomCode: roomCode,
		event: Event{
			Type: EventRoundStarted,
			Payload: map[string]interface{}{
				"room_code": roomCode,
				"round":     round,
			},
		},
	}
}

func (h *Hub) NotifyRoundComplete(roomCode model.RoomCode) {
	h.broadcast <- roomEvent{
		roomCode: roomCode,
		event: Event{
			Type: EventRoundComplete,
			Payload: map[string]interface{}{
				"room_code": roomCode,
				"message":   "All players have answered",
			},
		},
	}

	h.logger.Info("round complete notification sent", "room", roomCode)
}

func (h *Hub) NotifyGameComplete(roomCode model.RoomCode) {
	h.broadcast <- roomEvent{
		roomCode: roomCode,
		event: Event{
			Type: EventGameComplete,
			Payload: map[string]interface{}{
				"room_code": roomCode,
			},
		},
	}

	h.logger.Info("game complete notification sent", "room", roomCode)
}
