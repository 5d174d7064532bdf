package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dropwire/dropwire/internal/adapters/ws"
	"github.com/dropwire/dropwire/internal/config"
)

// corsHeaders echoes allow-listed origins back with credentials enabled so
// the browser sends the reconnection cookie on the upgrade request.
func corsHeaders(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, ctl *ws.Controller) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())
	r.Use(corsHeaders(cfg.AllowedOrigins))

	// liveness endpoint for infrastructure probes, not part of the protocol
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// the trailing path segment carries the direct-transport marker
	// (/server/webrtc vs /server/fallback)
	r.GET("/server/*transport", func(c *gin.Context) {
		ctl.HandleSignal(ctx, c)
	})

	log.Info().Str("module", "adapters.http").Msg("router setup")
	return r
}
