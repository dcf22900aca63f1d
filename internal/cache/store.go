package cache

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"stockpulse/internal/model"
)

// Store is a durable, expiring key-value store for per-stock summary
// records. Every mutation is written through to the backing JSON file
// synchronously; disk failures are logged and the store degrades to
// in-memory-only operation. The Store is not safe for concurrent
// mutation — the collector loop is its single caller.
type Store struct {
	path    string
	ttl     time.Duration
	entries map[string]storedEntry

	hits   int
	misses int

	now func() time.Time
}

// Open loads the backing file at path, keeping only entries younger than
// ttl. It never fails: a missing or corrupt file yields an empty cache.
func Open(path string, ttl time.Duration) *Store {
	s := &Store{
		path:    path,
		ttl:     ttl,
		entries: make(map[string]storedEntry),
		now:     time.Now,
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("cache load failed", "path", s.path, "error", err)
		}
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("cache file is not valid JSON, starting empty", "path", s.path, "error", err)
		return
	}

	now := s.now()
	for name, rawEntry := range raw {
		var e storedEntry
		if err := e.UnmarshalJSON(rawEntry); err != nil {
			slog.Warn("dropping unreadable cache entry", "stock", name, "error", err)
			continue
		}
		if now.Sub(e.StoredAt) < s.ttl {
			s.entries[name] = e
		}
	}
	slog.Info("cache loaded", "path", s.path, "entries", len(s.entries))
}

// Get returns the live record for name. Expired entries are removed on
// lookup (lazy eviction) without rewriting the backing file.
func (s *Store) Get(name string) (model.SummaryRecord, bool) {
	e, ok := s.entries[name]
	if !ok {
		s.misses++
		return model.SummaryRecord{}, false
	}
	if s.now().Sub(e.StoredAt) >= s.ttl {
		delete(s.entries, name)
		s.misses++
		return model.SummaryRecord{}, false
	}
	s.hits++
	return e.Record, true
}

// Set overwrites the entry for name with a fresh timestamp and persists
// the whole store. A failed save leaves the in-memory entry in place.
func (s *Store) Set(name string, record model.SummaryRecord) {
	if record.Sources == nil {
		record.Sources = []model.Headline{}
	}
	s.entries[name] = storedEntry{Record: record, StoredAt: s.now()}
	if err := s.save(); err != nil {
		slog.Warn("cache save failed, keeping entry in memory", "stock", name, "error", err)
	}
}

// Cleanup removes every entry at or past its ttl and persists only if
// something was removed.
func (s *Store) Cleanup() {
	now := s.now()
	var expired []string
	for name, e := range s.entries {
		if now.Sub(e.StoredAt) >= s.ttl {
			expired = append(expired, name)
		}
	}
	for _, name := range expired {
		delete(s.entries, name)
	}
	if len(expired) == 0 {
		return
	}
	slog.Info("evicted expired cache entries", "count", len(expired))
	if err := s.save(); err != nil {
		slog.Warn("cache save failed after cleanup", "error", err)
	}
}

// Save persists the current live set. Used for the best-effort save on
// shutdown; routine persistence happens inside Set and Cleanup.
func (s *Store) Save() {
	if err := s.save(); err != nil {
		slog.Warn("cache save failed", "error", err)
	}
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Len reports the number of entries currently held, live or not.
func (s *Store) Len() int {
	return len(s.entries)
}

// Stats reports the hit rate with one decimal place.
func (s *Store) Stats() string {
	total := s.hits + s.misses
	rate := 0.0
	if total > 0 {
		rate = float64(s.hits) / float64(total) * 100
	}
	return fmt.Sprintf("%.1f%% (hits:%d, misses:%d)", rate, s.hits, s.misses)
}
