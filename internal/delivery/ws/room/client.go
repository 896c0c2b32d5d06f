package ws_room

import (
	"github.com/gorilla/websocket"
	"github.com/picparty/core/internal/model"
)

type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan Event
	username string
	roomCode model.RoomCode
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		// Clients never send application messages; reading only
		// detects the close.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			break
		}
	}
}
