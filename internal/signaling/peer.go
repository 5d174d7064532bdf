// Package signaling holds the room registry, message routing and the
// liveness sweep for the relay.
package signaling

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dropwire/dropwire/internal/domain"
	"github.com/dropwire/dropwire/internal/identity"
)

// Sender is the write side of a peer's transport. Sends are fire-and-forget
// and must never block; a send to a failed connection is simply dropped.
type Sender interface {
	TrySend(data []byte) error
}

// Peer is one live connection's session state. The connection handle is
// exclusively owned here and never disclosed to other peers.
type Peer struct {
	ID           domain.PeerID
	Room         domain.GroupKey
	Device       domain.DeviceInfo // DisplayName mutated only under the registry lock
	RTCSupported bool

	conn Sender
}

func NewPeer(id identity.Identity, conn Sender) *Peer {
	return &Peer{
		ID:           id.ID,
		Room:         id.Room,
		Device:       id.Device,
		RTCSupported: id.RTCSupported,
		conn:         conn,
	}
}

// Info returns the subset of state safe to disclose to room mates.
func (p *Peer) Info() domain.PublicInfo {
	return domain.PublicInfo{
		ID:           p.ID,
		Name:         p.Device,
		Room:         p.Room,
		RTCSupported: p.RTCSupported,
	}
}

// Welcome sends the peer its own resolved identity. Called once after the
// peer has been registered.
func (p *Peer) Welcome() {
	p.send(welcomeMessage{
		Type: TypeDisplayName,
		Message: welcomePayload{
			DisplayName: p.Device.DisplayName,
			DeviceName:  p.Device.DeviceName,
			Room:        p.Room,
		},
	})
}

// send marshals and hands the message to the transport. Failures are logged
// and dropped; the protocol is best-effort by design.
func (p *Peer) send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signaling").Str("peer", string(p.ID)).Msg("marshal outbound message")
		return
	}
	if err := p.conn.TrySend(data); err != nil {
		log.Warn().Err(err).Str("module", "signaling").Str("peer", string(p.ID)).Msg("dropped outbound message")
	}
}
