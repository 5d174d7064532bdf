package signaling

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dropwire/dropwire/internal/domain"
)

// Router parses inbound frames and dispatches them. The relay never
// inspects payload bodies beyond the routing fields; malformed or
// unroutable frames are dropped without a reply.
type Router struct {
	registry *Registry
}

func NewRouter(registry *Registry) *Router {
	return &Router{registry: registry}
}

// Route handles one inbound frame from sender. Frames from one peer arrive
// in order on a single read loop, so no extra serialization happens here.
func (rt *Router) Route(sender *Peer, frame []byte) {
	var msg map[string]any
	if err := json.Unmarshal(frame, &msg); err != nil || msg == nil {
		log.Debug().Str("module", "router").Str("peer", string(sender.ID)).Msg("discarded malformed frame")
		return
	}

	if t, _ := msg["type"].(string); t == TypeDisconnect {
		rt.registry.Leave(sender)
		return
	}

	// Addressed frames short-circuit rename handling even when they also
	// carry a displayName.
	if to, _ := msg["to"].(string); to != "" && rt.registry.HasRoom(sender.Room) {
		recipient, ok := rt.registry.Lookup(sender.Room, domain.PeerID(to))
		if !ok {
			log.Debug().Str("module", "router").Str("peer", string(sender.ID)).Str("to", to).Msg("recipient not in room")
			return
		}
		delete(msg, "to")
		msg["sender"] = string(sender.ID)
		recipient.send(msg)
		return
	}

	if name, _ := msg["displayName"].(string); name != "" {
		rt.registry.RenameBroadcast(sender, name)
	}
}
