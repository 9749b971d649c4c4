package store

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process implementation of ProgressRepo and EventRepo.
// It backs sessions when no database is configured and in tests.
type Memory struct {
	mu     sync.RWMutex
	levels map[string]int
	crowns map[string]int
	events []SessionRecord
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		levels: map[string]int{},
		crowns: map[string]int{},
	}
}

func (m *Memory) Level(_ context.Context, app string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.levels[app], nil
}

func (m *Memory) SetLevel(_ context.Context, app string, level int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[app] = level
	return nil
}

func (m *Memory) CrownCount(_ context.Context, ledger string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.crowns[ledger], nil
}

func (m *Memory) AddCrowns(_ context.Context, ledger string, n int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.crowns[ledger] += n
	return m.crowns[ledger], nil
}

func (m *Memory) Levels(context.Context) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyMap(m.levels), nil
}

func (m *Memory) Crowns(context.Context) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyMap(m.crowns), nil
}

func (m *Memory) Reset(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels = map[string]int{}
	m.crowns = map[string]int{}
	m.events = nil
	return nil
}

func (m *Memory) AppendSessionEvent(_ context.Context, data SessionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, SessionRecord{
		SessionEventData: data,
		Sequence:         int64(len(m.events) + 1),
		Timestamp:        time.Now(),
	})
	return nil
}

func (m *Memory) RecentSessions(_ context.Context, opts QueryOpts) ([]SessionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []SessionRecord
	for i := len(m.events) - 1; i >= 0; i-- {
		if opts.App != "" && m.events[i].App != opts.App {
			continue
		}
		out = append(out, m.events[i])
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func copyMap(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

var (
	_ ProgressRepo = (*Memory)(nil)
	_ EventRepo    = (*Memory)(nil)
)
