package signaling

import "github.com/dropwire/dropwire/internal/domain"

// Outbound message types. Inbound frames carry at most a "type", a "to"
// target and a "displayName"; everything else is relayed opaquely.
const (
	TypeDisplayName    = "display-name"
	TypePeers          = "peers"
	TypePeerJoined     = "peer-joined"
	TypePeerLeft       = "peer-left"
	TypePeerModifyName = "peer-modify-name"
	TypeDisconnect     = "disconnect"
)

// welcomeMessage confirms the peer's own resolved identity right after
// registration.
type welcomeMessage struct {
	Type    string         `json:"type"`
	Message welcomePayload `json:"message"`
}

type welcomePayload struct {
	DisplayName string          `json:"displayName"`
	DeviceName  string          `json:"deviceName"`
	Room        domain.GroupKey `json:"room"`
}

// peersMessage answers a joining peer with every other current member.
type peersMessage struct {
	Type            string              `json:"type"`
	Peers           []domain.PublicInfo `json:"peers"`
	CurrentPeerInfo domain.DeviceInfo   `json:"currentPeerInfo"`
}

// peerMessage announces one peer to the rest of its room (join, rename).
type peerMessage struct {
	Type string            `json:"type"`
	Peer domain.PublicInfo `json:"peer"`
}

type peerLeftMessage struct {
	Type   string        `json:"type"`
	PeerID domain.PeerID `json:"peerId"`
}
