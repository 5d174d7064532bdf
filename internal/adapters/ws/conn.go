// Package ws wires newly upgraded WebSocket connections to the signaling
// core: identity derivation on open, frame dispatch, and cleanup on close.
package ws

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const writeWait = 5 * time.Second

var (
	ErrBackpressure = errors.New("backpressure")
	ErrClosed       = errors.New("connection closed")
)

// Conn is a transport endpoint. Outbound frames go through a buffered send
// channel drained by a single write pump; the liveness flag is shared with
// the heartbeat sweep and the pong callback.
type Conn struct {
	ws    *websocket.Conn
	send  chan []byte
	alive atomic.Bool

	mu     sync.RWMutex
	closed bool
}

func newConn(ws *websocket.Conn, buffer int) *Conn {
	return &Conn{
		ws:   ws,
		send: make(chan []byte, buffer),
	}
}

// TrySend queues a frame without blocking. Slow or closed connections lose
// frames; the protocol is best-effort.
func (c *Conn) TrySend(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}
	select {
	case c.send <- data:
		return nil
	default:
		return ErrBackpressure
	}
}

// Close is idempotent and safe to call from any goroutine.
func (c *Conn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.ws.Close()
	c.mu.Unlock()
}

func (c *Conn) Read() ([]byte, error) {
	_, data, err := c.ws.ReadMessage()
	return data, err
}

// Alive, MarkPending, Ping and Terminate implement signaling.Probed.
// WriteControl is safe concurrently with the write pump.
func (c *Conn) Alive() bool  { return c.alive.Load() }
func (c *Conn) MarkPending() { c.alive.Store(false) }
func (c *Conn) markAlive()   { c.alive.Store(true) }
func (c *Conn) Terminate()   { c.Close() }

func (c *Conn) Ping() error {
	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// writePump drains the send channel to the network. It owns all data
// writes on the socket.
func (c *Conn) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Debug().Err(err).Str("module", "ws").Msg("writePump set deadline")
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Debug().Err(err).Str("module", "ws").Msg("writePump write error")
				return
			}
		}
	}
}
