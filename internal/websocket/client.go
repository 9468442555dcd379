// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package websocket

import (
	"net/http"
	"slices"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/learnqueue/internal/logging"
	"github.com/tomtom215/learnqueue/internal/metrics"
)

const (
	writeWait    = 10 * time.Second
	idleTimeout  = 60 * time.Second
	pingInterval = idleTimeout * 9 / 10
	maxFrameSize = 64 << 10
	sendBuffer   = 256
)

// clientIDCounter orders clients for deterministic fan-out.
var clientIDCounter atomic.Uint64

// Client is one dashboard tab subscribed to live events.
type Client struct {
	id   uint64
	hub  *Hub
	conn *websocket.Conn

	// send is owned by the hub, which closes it on unregister.
	send chan Message
}

// ServeWS upgrades the request and attaches the connection to hub. The two
// pumps own the connection from then on.
func ServeWS(hub *Hub, upgrader *websocket.Upgrader, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		metrics.WSErrors.WithLabelValues("upgrade").Inc()
		logging.Ctx(r.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &Client{
		id:   clientIDCounter.Add(1),
		hub:  hub,
		conn: conn,
		send: make(chan Message, sendBuffer),
	}
	hub.Register <- c
	go c.transmit()
	go c.receive()
}

// receive answers ping messages and watches for the peer going away. Any
// other inbound message is ignored.
func (c *Client) receive() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxFrameSize)
	extend := func(string) error { return c.conn.SetReadDeadline(time.Now().Add(idleTimeout)) }
	if err := extend(""); err != nil {
		return
	}
	c.conn.SetPongHandler(extend)

	for {
		var in Message
		err := c.conn.ReadJSON(&in)
		switch {
		case websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure):
			metrics.WSErrors.WithLabelValues("unexpected_close").Inc()
			logging.Warn().Err(err).Uint64("client", c.id).Msg("websocket closed unexpectedly")
			return
		case err != nil:
			return
		case in.Type == MessageTypePing:
			select {
			case c.send <- Message{Type: MessageTypePong}:
			default:
			}
		}
	}
}

// transmit is the only writer on the connection.
func (c *Client) transmit() {
	keepalive := time.NewTicker(pingInterval)
	defer func() {
		keepalive.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, open := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !open {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				metrics.WSErrors.WithLabelValues("write").Inc()
				logging.Warn().Err(err).Uint64("client", c.id).Str("type", msg.Type).Msg("websocket write failed")
				return
			}
		case <-keepalive.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Upgrader accepts requests without an Origin header, and otherwise only the
// listed origins. An empty list or a "*" entry accepts everything.
func Upgrader(allowedOrigins []string) *websocket.Upgrader {
	anyOrigin := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return anyOrigin || origin == "" || slices.Contains(allowedOrigins, origin)
		},
	}
}
