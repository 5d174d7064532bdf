// Package domain contains entity without logic, just meta-data
package domain

type (
	// PeerID identifies one live connection. It persists across reconnects
	// via the reconnection cookie. It is a correlation handle, not a
	// credential: anyone who knows it can impersonate the peer.
	PeerID string

	// GroupKey is a discovery scope. Peers sharing a key can see and
	// address each other; cross-key routing is impossible by construction.
	GroupKey string
)

// DeviceInfo describes the client as reported by its user agent.
// DisplayName is the only field that may change after creation.
type DeviceInfo struct {
	OS          string `json:"os"`
	Model       string `json:"model"`
	Browser     string `json:"browser"`
	Type        string `json:"type"`
	DeviceName  string `json:"deviceName"`
	DisplayName string `json:"displayName"`
}

// PublicInfo is the subset of a peer's state safe to disclose to room
// mates. It never carries the transport handle.
type PublicInfo struct {
	ID           PeerID     `json:"id"`
	Name         DeviceInfo `json:"name"`
	Room         GroupKey   `json:"room"`
	RTCSupported bool       `json:"rtcSupported"`
}
