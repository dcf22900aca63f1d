package store

import (
	"sync"
	"time"

	"stockpulse/internal/model"
)

// Memory holds the latest published stock list. Writers replace the
// whole list at once; readers get a snapshot. That single-writer,
// whole-list-replace pattern is the entire concurrency story here.
type Memory struct {
	mu         sync.RWMutex
	stocks     []model.Stock
	lastUpdate time.Time
}

func NewMemory() *Memory {
	return &Memory{}
}

// Replace swaps in a new list and stamps the update time.
func (m *Memory) Replace(stocks []model.Stock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stocks = stocks
	m.lastUpdate = time.Now()
}

// Snapshot returns the current list and when it was last replaced. The
// returned slice must not be mutated by callers.
func (m *Memory) Snapshot() ([]model.Stock, time.Time) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stocks, m.lastUpdate
}
