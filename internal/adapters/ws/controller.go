package ws

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dropwire/dropwire/internal/config"
	"github.com/dropwire/dropwire/internal/identity"
	"github.com/dropwire/dropwire/internal/signaling"
)

// Controller coordinates one connection's lifecycle: identity on open,
// registration, frame dispatch in arrival order, and synchronous room
// cleanup on close.
type Controller struct {
	cfg      *config.Config
	registry *signaling.Registry
	router   *signaling.Router
	monitor  *signaling.Monitor
	upgrader websocket.Upgrader
}

func NewController(cfg *config.Config, registry *signaling.Registry, router *signaling.Router, monitor *signaling.Monitor) *Controller {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}

	return &Controller{
		cfg:      cfg,
		registry: registry,
		router:   router,
		monitor:  monitor,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if allowed[origin] {
					return true
				}
				log.Warn().Str("module", "ws").Str("origin", origin).Msg("blocked connection from origin")
				return false
			},
		},
	}
}

// HandleSignal upgrades the request and registers the peer. The
// reconnection cookie is minted here when absent so it rides the upgrade
// response; it is a correlation handle, not a credential.
func (ctl *Controller) HandleSignal(ctx context.Context, c *gin.Context) {
	token, _ := c.Cookie(ctl.cfg.CookieName)
	var respHeader http.Header
	if token == "" {
		token = uuid.NewString()
		respHeader = http.Header{}
		respHeader.Add("Set-Cookie", fmt.Sprintf("%s=%s; SameSite=None; Secure", ctl.cfg.CookieName, token))
	}

	ident := identity.Derive(identity.Metadata{
		Token:           token,
		RoomCode:        c.Query("room"),
		LastDisplayName: c.Query("lastDisplayName"),
		ForwardedFor:    c.GetHeader("X-Forwarded-For"),
		RemoteAddr:      c.Request.RemoteAddr,
		UserAgent:       c.Request.UserAgent(),
		RequestURI:      c.Request.URL.RequestURI(),
	})

	sock, err := ctl.upgrader.Upgrade(c.Writer, c.Request, respHeader)
	if err != nil {
		// Upgrade already wrote the response (403 on origin rejection).
		log.Warn().Err(err).Str("module", "ws").Msg("upgrade failed")
		return
	}

	conn := newConn(sock, ctl.cfg.SendBuffer)
	sock.SetReadLimit(ctl.cfg.ReadLimit)
	conn.markAlive()
	sock.SetPongHandler(func(string) error {
		conn.markAlive()
		return nil
	})

	peer := signaling.NewPeer(ident, conn)
	log.Info().Str("module", "ws").Str("peer", string(peer.ID)).Str("room", string(peer.Room)).Msg("connection open")

	connCtx, cancel := context.WithCancel(ctx)
	go conn.writePump(connCtx)

	ctl.monitor.Track(conn)
	ctl.registry.Join(peer)
	peer.Welcome()

	go ctl.readPump(connCtx, cancel, peer, conn)
}

// readPump feeds inbound frames to the router one at a time. The deferred
// cleanup removes the peer from its room before the pump exits, so no
// other peer can route to a dead handle.
func (ctl *Controller) readPump(ctx context.Context, cancel context.CancelFunc, peer *signaling.Peer, conn *Conn) {
	defer func() {
		ctl.registry.Leave(peer)
		ctl.monitor.Untrack(conn)
		cancel()
		conn.Close()
		log.Info().Str("module", "ws").Str("peer", string(peer.ID)).Msg("connection closed")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
			data, err := conn.Read()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Debug().Err(err).Str("module", "ws").Str("peer", string(peer.ID)).Msg("read error")
				}
				return
			}
			ctl.router.Route(peer, data)
		}
	}
}
