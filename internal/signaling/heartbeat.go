package signaling

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Probed is the transport surface the liveness sweep needs. Alive reports
// whether a liveness response arrived since the last sweep; MarkPending
// clears the flag before a new probe; Terminate forcibly closes the
// connection, which triggers the normal leave cleanup.
type Probed interface {
	Alive() bool
	MarkPending()
	Ping() error
	Terminate()
}

// Monitor sweeps every tracked connection on a fixed interval. A connection
// still pending from the previous sweep is terminated, so an unresponsive
// peer lives at most two intervals past its last response. The sweep only
// touches liveness flags and the tracked set, never room state, so it is
// never serialized behind a slow broadcast.
type Monitor struct {
	interval time.Duration

	mu    sync.Mutex
	conns map[Probed]struct{}
}

func NewMonitor(interval time.Duration) *Monitor {
	return &Monitor{
		interval: interval,
		conns:    make(map[Probed]struct{}),
	}
}

func (m *Monitor) Track(c Probed) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c] = struct{}{}
}

func (m *Monitor) Untrack(c Probed) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, c)
}

// Run sweeps until the context is canceled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Sweep runs one liveness pass over the tracked set.
func (m *Monitor) Sweep() {
	m.mu.Lock()
	conns := make([]Probed, 0, len(m.conns))
	for c := range m.conns {
		conns = append(conns, c)
	}
	m.mu.Unlock()

	for _, c := range conns {
		if !c.Alive() {
			log.Info().Str("module", "heartbeat").Msg("terminating dead connection")
			c.Terminate()
			continue
		}
		c.MarkPending()
		if err := c.Ping(); err != nil {
			log.Debug().Err(err).Str("module", "heartbeat").Msg("probe failed")
		}
	}
}
