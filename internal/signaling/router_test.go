package signaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteAddressedDelivery(t *testing.T) {
	reg := NewRegistry()
	rt := NewRouter(reg)
	a, _ := newTestPeer("peer-a", "room-1")
	b, connB := newTestPeer("peer-b", "room-1")
	reg.Join(a)
	reg.Join(b)
	connB.reset()

	rt.Route(a, []byte(`{"to":"peer-b","type":"offer","sdp":{"foo":1}}`))

	msg := lastMessage(t, connB)
	assert.Equal(t, "peer-a", msg["sender"])
	assert.Equal(t, "offer", msg["type"])
	assert.Equal(t, map[string]any{"foo": float64(1)}, msg["sdp"], "payload body relayed verbatim")
	assert.NotContains(t, msg, "to")
}

func TestRouteUnknownRecipientDropped(t *testing.T) {
	reg := NewRegistry()
	rt := NewRouter(reg)
	a, connA := newTestPeer("peer-a", "room-1")
	b, connB := newTestPeer("peer-b", "room-1")
	reg.Join(a)
	reg.Join(b)
	connA.reset()
	connB.reset()

	rt.Route(a, []byte(`{"to":"peer-x","type":"offer"}`))

	assert.Empty(t, connA.messages(t), "no error is surfaced to the sender")
	assert.Empty(t, connB.messages(t))
}

func TestRouteDisconnect(t *testing.T) {
	reg := NewRegistry()
	rt := NewRouter(reg)
	a, _ := newTestPeer("peer-a", "room-1")
	b, connB := newTestPeer("peer-b", "room-1")
	reg.Join(a)
	reg.Join(b)
	connB.reset()

	rt.Route(a, []byte(`{"type":"disconnect"}`))

	_, ok := reg.Lookup("room-1", "peer-a")
	assert.False(t, ok)
	msg := lastMessage(t, connB)
	assert.Equal(t, TypePeerLeft, msg["type"])
}

func TestRouteRename(t *testing.T) {
	reg := NewRegistry()
	rt := NewRouter(reg)
	a, _ := newTestPeer("peer-a", "room-1")
	b, connB := newTestPeer("peer-b", "room-1")
	reg.Join(a)
	reg.Join(b)
	connB.reset()

	rt.Route(a, []byte(`{"displayName":"Pinus Hening"}`))

	assert.Equal(t, "Pinus Hening", a.Device.DisplayName)
	msg := lastMessage(t, connB)
	assert.Equal(t, TypePeerModifyName, msg["type"])
}

func TestRouteAddressedShortCircuitsRename(t *testing.T) {
	reg := NewRegistry()
	rt := NewRouter(reg)
	a, _ := newTestPeer("peer-a", "room-1")
	b, connB := newTestPeer("peer-b", "room-1")
	reg.Join(a)
	reg.Join(b)
	connB.reset()

	rt.Route(a, []byte(`{"to":"peer-b","displayName":"Hijack"}`))

	assert.NotEqual(t, "Hijack", a.Device.DisplayName,
		"addressed frames must never double as renames")
	require.Len(t, connB.messages(t), 1)
	assert.Equal(t, "peer-a", connB.messages(t)[0]["sender"])
}

func TestRouteMalformedFrameIgnored(t *testing.T) {
	reg := NewRegistry()
	rt := NewRouter(reg)
	a, _ := newTestPeer("peer-a", "room-1")
	b, connB := newTestPeer("peer-b", "room-1")
	reg.Join(a)
	reg.Join(b)
	connB.reset()

	for _, frame := range [][]byte{
		[]byte(`{not json`),
		[]byte(``),
		[]byte(`null`),
		[]byte(`"just a string"`),
		[]byte(`[1,2,3]`),
	} {
		assert.NotPanics(t, func() { rt.Route(a, frame) })
	}

	assert.Empty(t, connB.messages(t), "malformed input causes no state change and no delivery")
	_, ok := reg.Lookup("room-1", "peer-a")
	assert.True(t, ok)
}
