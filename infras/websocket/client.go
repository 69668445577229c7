package websocket

import (
	"encoding/json"
	"errors"
	"time"

	gorillawebsocket "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 << 10
)

// Conn is the part of *websocket.Conn the pumps use.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// ReadPump decodes inbound envelopes and passes them to onMessage until the
// connection fails. Malformed frames are ignored. The client is unregistered
// on return.
func (c *Client) ReadPump(hub *Hub, onMessage func(*Client, Envelope)) {
	defer func() {
		hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if gorillawebsocket.IsUnexpectedCloseError(err, gorillawebsocket.CloseGoingAway, gorillawebsocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("client", c.ID).Msg("websocket read failed")
			}

			return
		}

		var env Envelope
		if err = json.Unmarshal(raw, &env); err != nil || env.Event == "" {
			continue
		}

		onMessage(c, env)
	}
}

// WritePump drains Send to the connection and keeps it alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.Send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				_ = c.conn.WriteMessage(gorillawebsocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(gorillawebsocket.TextMessage, frame); err != nil {
				if !errors.Is(err, gorillawebsocket.ErrCloseSent) {
					log.Warn().Err(err).Str("client", c.ID).Msg("websocket write failed")
				}

				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := c.conn.WriteMessage(gorillawebsocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
