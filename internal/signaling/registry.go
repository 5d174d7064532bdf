package signaling

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dropwire/dropwire/internal/domain"
)

// Registry owns the mapping from grouping key to the peers currently in
// that room. A room exists iff it has at least one member; the last leave
// deletes it synchronously. Membership mutation and the member-set read
// used to build a broadcast are atomic under one mutex; payloads are small
// and handling is brief, so a single lock domain is enough.
type Registry struct {
	mu    sync.Mutex
	rooms map[domain.GroupKey]map[domain.PeerID]*Peer
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[domain.GroupKey]map[domain.PeerID]*Peer)}
}

// Join inserts the peer into its room, creating the room if absent. Every
// existing member is told about the newcomer, then the newcomer gets the
// current member list plus its own resolved identity. Both sends complete
// before Join returns.
func (r *Registry) Join(p *Peer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := r.rooms[p.Room]
	if room == nil {
		room = make(map[domain.PeerID]*Peer)
		r.rooms[p.Room] = room
	}

	others := make([]domain.PublicInfo, 0, len(room))
	for id, other := range room {
		if id == p.ID {
			continue
		}
		other.send(peerMessage{Type: TypePeerJoined, Peer: p.Info()})
		others = append(others, other.Info())
	}

	p.send(peersMessage{Type: TypePeers, Peers: others, CurrentPeerInfo: p.Device})

	room[p.ID] = p
	log.Info().Str("module", "registry").Str("peer", string(p.ID)).Str("room", string(p.Room)).Int("members", len(room)).Msg("peer joined")
}

// Leave removes the peer from its room and tells the remaining members.
// A no-op for unregistered peers, so close paths may call it freely.
func (r *Registry) Leave(p *Peer) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	room := r.rooms[p.Room]
	if _, ok := room[p.ID]; !ok {
		return
	}
	delete(room, p.ID)

	if len(room) == 0 {
		delete(r.rooms, p.Room)
		log.Info().Str("module", "registry").Str("room", string(p.Room)).Msg("room deleted")
		return
	}
	for _, other := range room {
		other.send(peerLeftMessage{Type: TypePeerLeft, PeerID: p.ID})
	}
	log.Info().Str("module", "registry").Str("peer", string(p.ID)).Str("room", string(p.Room)).Msg("peer left")
}

// Lookup resolves a peer within one room. Cross-room addressing is
// impossible by construction.
func (r *Registry) Lookup(room domain.GroupKey, id domain.PeerID) (*Peer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rooms[room][id]
	return p, ok
}

// HasRoom reports whether any peer is registered under the grouping key.
func (r *Registry) HasRoom(room domain.GroupKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms[room]) > 0
}

// RenameBroadcast updates the peer's display name and announces the new
// public info to every other member of its room.
func (r *Registry) RenameBroadcast(p *Peer, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.Device.DisplayName = name
	for id, other := range r.rooms[p.Room] {
		if id == p.ID {
			continue
		}
		other.send(peerMessage{Type: TypePeerModifyName, Peer: p.Info()})
	}
	log.Debug().Str("module", "registry").Str("peer", string(p.ID)).Str("name", name).Msg("display name changed")
}
