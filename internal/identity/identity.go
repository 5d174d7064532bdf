// Package identity derives a peer's id, grouping key and device descriptor
// from connection-time metadata.
package identity

import (
	"net"
	"strings"

	"github.com/google/uuid"
	"github.com/mileusna/useragent"

	"github.com/dropwire/dropwire/internal/domain"
	"github.com/dropwire/dropwire/internal/names"
)

const (
	roomCodeLen   = 6
	unknownDevice = "Unknown Device"
	rtcMarker     = "webrtc"
)

// Metadata carries everything identity derivation reads from the
// connection-establishment request. Query parameters arrive URL-decoded.
type Metadata struct {
	Token           string // reconnection token from the cookie, empty on first contact
	RoomCode        string // raw "room" query parameter
	LastDisplayName string // "lastDisplayName" query parameter
	ForwardedFor    string // X-Forwarded-For header
	RemoteAddr      string // transport peer address, host:port
	UserAgent       string
	RequestURI      string // checked for the direct-transport marker
}

// Identity is the resolved session identity for one connection.
type Identity struct {
	ID           domain.PeerID
	Room         domain.GroupKey
	Device       domain.DeviceInfo
	RTCSupported bool
}

// Derive resolves the peer identity. The id is reused from the token when
// present, else freshly minted; the grouping key is recomputed on every
// connection, so a reconnecting peer may land in a different room under
// the same id.
func Derive(md Metadata) Identity {
	id := domain.PeerID(md.Token)
	if id == "" {
		id = domain.PeerID(uuid.NewString())
	}

	return Identity{
		ID:           id,
		Room:         groupKey(md),
		Device:       deviceInfo(md, id),
		RTCSupported: strings.Contains(md.RequestURI, rtcMarker),
	}
}

// groupKey prefers a well-formed room code; otherwise the caller's apparent
// network address, so peers behind the same NAT discover each other.
func groupKey(md Metadata) domain.GroupKey {
	if code := digitsOnly(md.RoomCode); len(code) == roomCodeLen {
		return domain.GroupKey(code)
	}

	addr := md.RemoteAddr
	if md.ForwardedFor != "" {
		addr = strings.TrimSpace(strings.SplitN(md.ForwardedFor, ",", 2)[0])
	} else if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	// collapse loopback spellings so local clients share one room
	if addr == "::1" || addr == "::ffff:127.0.0.1" {
		addr = "127.0.0.1"
	}
	return domain.GroupKey(addr)
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

func deviceInfo(md Metadata, id domain.PeerID) domain.DeviceInfo {
	ua := useragent.Parse(md.UserAgent)

	osName := strings.Replace(ua.OS, "Mac OS", "Mac", 1)
	deviceName := ""
	if osName != "" {
		deviceName = osName + " "
	}
	if ua.Device != "" {
		deviceName += ua.Device
	} else {
		deviceName += ua.Name
	}
	if strings.TrimSpace(deviceName) == "" {
		deviceName = unknownDevice
	}

	displayName := md.LastDisplayName
	if displayName == "" {
		displayName = names.Generate(names.Hash(string(id)))
	}

	return domain.DeviceInfo{
		OS:          ua.OS,
		Model:       ua.Device,
		Browser:     ua.Name,
		Type:        deviceType(ua),
		DeviceName:  strings.TrimSpace(deviceName),
		DisplayName: displayName,
	}
}

func deviceType(ua useragent.UserAgent) string {
	switch {
	case ua.Mobile:
		return "mobile"
	case ua.Tablet:
		return "tablet"
	case ua.Desktop:
		return "desktop"
	default:
		return ""
	}
}
