package job

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore 内存版 Store：单测与本地 dry-run 使用，语义与 Repo 保持一致
// （归属校验、乐观并发、读写都是快照）。
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{jobs: make(map[string]*Job)}
}

func (m *MemoryStore) Create(_ context.Context, j *Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := j.Clone()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.UpdatedAt = c.CreatedAt
	m.jobs[c.ID] = c

	j.CreatedAt = c.CreatedAt
	j.UpdatedAt = c.UpdatedAt
	return nil
}

func (m *MemoryStore) GetForTower(_ context.Context, id, towerID string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	j, ok := m.jobs[id]
	if !ok || j.TowerID != towerID {
		return nil, ErrNotFound
	}
	return j.Clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, j *Job, expectedVersion int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.jobs[j.ID]
	if !ok {
		return ErrConcurrentModification
	}
	if cur.Version != expectedVersion {
		return ErrConcurrentModification
	}

	c := j.Clone()
	c.Version = expectedVersion + 1
	c.CreatedAt = cur.CreatedAt
	c.UpdatedAt = time.Now()
	m.jobs[c.ID] = c

	j.Version = c.Version
	j.UpdatedAt = c.UpdatedAt
	return nil
}

func (m *MemoryStore) List(_ context.Context, towerID string, f ListFilter) ([]Job, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]*Job, 0)
	for _, j := range m.jobs {
		if j.TowerID != towerID {
			continue
		}
		if f.Status != "" && j.Status != f.Status {
			continue
		}
		if f.Priority != "" && j.Priority != f.Priority {
			continue
		}
		matched = append(matched, j)
	}
	sort.Slice(matched, func(a, b int) bool {
		return matched[a].CreatedAt.After(matched[b].CreatedAt)
	})

	total := int64(len(matched))

	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(matched) {
		offset = len(matched)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]Job, 0, end-offset)
	for _, j := range matched[offset:end] {
		out = append(out, *j.Clone())
	}
	return out, total, nil
}

func (m *MemoryStore) CountByStatus(_ context.Context, towerID string) (map[Status]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[Status]int64)
	for _, j := range m.jobs {
		if j.TowerID == towerID {
			out[j.Status]++
		}
	}
	return out, nil
}

func (m *MemoryStore) CountByPriority(_ context.Context, towerID string, p Priority) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, j := range m.jobs {
		if j.TowerID == towerID && j.Priority == p {
			n++
		}
	}
	return n, nil
}
