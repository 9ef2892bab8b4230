package arena

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Ticker is anything advanced once per simulation tick.
type Ticker interface {
	Tick()
}

// TickManager drives registered tickers at a fixed interval on a single
// goroutine, in registration order.
type TickManager struct {
	interval time.Duration

	mu      sync.Mutex
	names   []string
	tickers map[string]Ticker

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewTickManager creates a tick manager with the given interval.
func NewTickManager(interval time.Duration) *TickManager {
	return &TickManager{
		interval: interval,
		tickers:  make(map[string]Ticker),
		stopCh:   make(chan struct{}),
	}
}

// Register adds t under name, replacing a ticker with the same name.
func (m *TickManager) Register(name string, t Ticker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tickers[name]; !ok {
		m.names = append(m.names, name)
	}
	m.tickers[name] = t
	slog.Debug("ticker registered", "name", name)
}

// Unregister removes the ticker registered under name.
func (m *TickManager) Unregister(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tickers[name]; !ok {
		return
	}
	delete(m.tickers, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
	slog.Debug("ticker unregistered", "name", name)
}

// Count returns the number of registered tickers.
func (m *TickManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

// Start runs the tick loop (blocks until context is canceled or Stop).
func (m *TickManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	slog.Info("tick manager started", "interval", m.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("tick manager stopping")
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("tick manager stopped")
			return nil

		case <-ticker.C:
			m.tickAll()
		}
	}
}

// Stop stops the tick loop. Safe to call more than once.
func (m *TickManager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// tickAll ticks every registered ticker and warns when the step overruns.
func (m *TickManager) tickAll() {
	m.mu.Lock()
	tickers := make([]Ticker, 0, len(m.names))
	for _, n := range m.names {
		tickers = append(tickers, m.tickers[n])
	}
	m.mu.Unlock()

	start := time.Now()
	for _, t := range tickers {
		t.Tick()
	}
	if took := time.Since(start); took > m.interval {
		slog.Warn("tick overran interval", "took", took, "interval", m.interval)
	}
}
