// Package state provides thread-safe state management for the frontend.
package state

import (
	"sync"
	"time"

	"github.com/flazor/galactic-compass/internal/snapshot"
)

// Config holds configuration for the state manager.
type Config struct {
	// MaxHistory caps the resultant-magnitude history ring.
	MaxHistory int

	// RefreshInterval is how often the frontend recomputes.
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxHistory:      120, // two minutes at one recompute per second
		RefreshInterval: time.Second,
	}
}

// Manager holds the latest computed snapshot and a short history of
// resultant magnitudes, safe for concurrent readers and one writer.
type Manager struct {
	mu sync.RWMutex

	current     *snapshot.Snapshot
	lastCompute time.Time
	lastError   error

	history    []float64
	maxHistory int

	refreshInterval time.Duration
}

// View is an immutable copy of the manager's state for rendering.
type View struct {
	Data        *snapshot.Snapshot
	LastCompute time.Time
	LastError   error
	History     []float64
}

// NewManager creates a state manager.
func NewManager(cfg Config) *Manager {
	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = 120
	}
	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &Manager{
		maxHistory:      maxHistory,
		refreshInterval: interval,
	}
}

// RefreshInterval returns the configured recompute interval.
func (m *Manager) RefreshInterval() time.Duration {
	return m.refreshInterval
}

// Update records a new snapshot or a compute error. A nil snapshot keeps
// the previous data so the frontend can keep rendering stale values with
// the error flagged alongside.
func (m *Manager) Update(s *snapshot.Snapshot, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCompute = time.Now()
	m.lastError = err
	if s == nil {
		return
	}
	m.current = s

	mag := 0.0
	if s.Resultant != nil {
		mag = s.Resultant.MagnitudeKmS
	}
	m.history = append(m.history, mag)
	if len(m.history) > m.maxHistory {
		m.history = m.history[len(m.history)-m.maxHistory:]
	}
}

// View returns a copy of the current state. The snapshot pointer is
// shared but snapshots are never mutated after creation.
func (m *Manager) View() View {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hist := make([]float64, len(m.history))
	copy(hist, m.history)
	return View{
		Data:        m.current,
		LastCompute: m.lastCompute,
		LastError:   m.lastError,
		History:     hist,
	}
}
