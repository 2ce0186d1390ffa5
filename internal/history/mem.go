package history

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/kmj8843/mdrowser/pkg/api"
)

type memStore struct {
	mu    sync.RWMutex
	byURL map[string]api.Visit
}

// OpenMem returns an in-memory store. Nothing persists across runs.
func OpenMem() Store {
	return &memStore{byURL: make(map[string]api.Visit)}
}

func (m *memStore) Record(ctx context.Context, v api.Visit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.byURL[v.URL]; ok {
		v.Count = prev.Count + 1
	} else {
		v.Count = 1
	}
	m.byURL[v.URL] = v
	return nil
}

func (m *memStore) List(ctx context.Context, limit int) ([]api.Visit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]api.Visit, 0, len(m.byURL))
	for _, v := range m.byURL {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FetchedAt.After(out[j].FetchedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) Search(ctx context.Context, q string, limit int) ([]api.Visit, error) {
	all, err := m.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(q)
	out := make([]api.Visit, 0, len(all))
	for _, v := range all {
		if strings.Contains(strings.ToLower(v.URL), q) || strings.Contains(strings.ToLower(v.Title), q) {
			out = append(out, v)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) Get(ctx context.Context, url string) (api.Visit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.byURL[url]
	if !ok {
		return api.Visit{}, ErrNotFound
	}
	return v, nil
}

func (m *memStore) Clear(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.byURL))
	m.byURL = make(map[string]api.Visit)
	return n, nil
}

func (m *memStore) Close() error { return nil }
