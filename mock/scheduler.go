package mock

import (
	"context"
	"sort"
	"time"

	"github.com/unkn0wn-root/paystore"
)

func (m *MockDB) InsertConfig(ctx context.Context, entry *paystore.ConfigEntry) (*paystore.ConfigEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.configs[entry.Key]; ok {
		return nil, duplicate("insert config")
	}
	out := copyOf(entry)
	m.configs[out.Key] = out
	return copyOf(out), nil
}

func (m *MockDB) FindConfigByKey(ctx context.Context, key string) (*paystore.ConfigEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.configs[key]
	if !ok {
		return nil, notFound("find config")
	}
	return copyOf(e), nil
}

func (m *MockDB) UpdateConfigByKey(ctx context.Context, entry *paystore.ConfigEntry) (*paystore.ConfigEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.configs[entry.Key]; !ok {
		return nil, notFound("update config")
	}
	out := copyOf(entry)
	m.configs[out.Key] = out
	return copyOf(out), nil
}

func (m *MockDB) DeleteConfigByKey(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.configs[key]; !ok {
		return notFound("delete config")
	}
	delete(m.configs, key)
	return nil
}

func (m *MockDB) InsertEvent(ctx context.Context, event *paystore.Event) (*paystore.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := copyOf(event)
	out.EventID = orNewID(out.EventID)
	out.CreatedAt = now()
	m.events = append(m.events, out)
	return copyOf(out), nil
}

// ListEventsByMerchant returns newest first.
func (m *MockDB) ListEventsByMerchant(ctx context.Context, merchantID string, limit int) ([]*paystore.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*paystore.Event
	for i := len(m.events) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		if m.events[i].MerchantID == merchantID {
			out = append(out, copyOf(m.events[i]))
		}
	}
	return out, nil
}

func (m *MockDB) InsertProcess(ctx context.Context, process *paystore.ProcessTracker) (*paystore.ProcessTracker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := copyOf(process)
	out.ProcessID = orNewID(out.ProcessID)
	if _, ok := m.processes[out.ProcessID]; ok {
		return nil, duplicate("insert process")
	}
	if out.Status == "" {
		out.Status = paystore.ProcessNew
	}
	out.CreatedAt = now()
	out.UpdatedAt = out.CreatedAt
	m.processes[out.ProcessID] = out
	return copyOf(out), nil
}

func (m *MockDB) FindProcessByID(ctx context.Context, processID string) (*paystore.ProcessTracker, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.processes[processID]
	if !ok {
		return nil, notFound("find process")
	}
	return copyOf(p), nil
}

func (m *MockDB) UpdateProcessStatus(ctx context.Context, processID string, status paystore.ProcessStatus) (*paystore.ProcessTracker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.processes[processID]
	if !ok {
		return nil, notFound("update process status")
	}
	p.Status = status
	p.UpdatedAt = now()
	return copyOf(p), nil
}

func (m *MockDB) FindProcessesDueBefore(ctx context.Context, t time.Time, limit int) ([]*paystore.ProcessTracker, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var due []*paystore.ProcessTracker
	for _, p := range m.processes {
		claimable := p.Status == paystore.ProcessNew || p.Status == paystore.ProcessPending
		if claimable && !p.ScheduleTime.After(t) {
			due = append(due, copyOf(p))
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ScheduleTime.Before(due[j].ScheduleTime) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (m *MockDB) InsertReverseLookup(ctx context.Context, lookup *paystore.ReverseLookup) (*paystore.ReverseLookup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reverseLookups[lookup.LookupID]; ok {
		return nil, duplicate("insert reverse lookup")
	}
	out := copyOf(lookup)
	m.reverseLookups[out.LookupID] = out
	return copyOf(out), nil
}

func (m *MockDB) GetReverseLookup(ctx context.Context, lookupID string) (*paystore.ReverseLookup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.reverseLookups[lookupID]
	if !ok {
		return nil, notFound("get reverse lookup")
	}
	return copyOf(l), nil
}
