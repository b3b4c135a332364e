package store

import (
	"context"
	"sync"
	"time"

	"thumbsvc/internal/job"
)

type memoryRecord struct {
	job       job.Job
	expiresAt time.Time // zero means no expiry
}

// Memory is an in-process Store guarded by a single mutex. Suitable for tests
// and single-node runs without redis.
type Memory struct {
	mu   sync.RWMutex
	jobs map[string]memoryRecord
	ttl  time.Duration
}

// NewMemory returns an empty in-memory store. A zero ttl disables expiry.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		jobs: make(map[string]memoryRecord),
		ttl:  ttl,
	}
}

func (m *Memory) Put(_ context.Context, j job.Job) error {
	rec := memoryRecord{job: j}
	if m.ttl > 0 {
		rec.expiresAt = time.Now().Add(m.ttl)
	}

	m.mu.Lock()
	m.jobs[j.ID] = rec
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (job.Job, error) {
	m.mu.RLock()
	rec, ok := m.jobs[id]
	m.mu.RUnlock()

	if !ok || rec.expired() {
		return job.Job{}, ErrNotFound
	}
	return rec.job, nil
}

func (m *Memory) List(_ context.Context) ([]job.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	jobs := make([]job.Job, 0, len(m.jobs))
	for _, rec := range m.jobs {
		if rec.expired() {
			continue
		}
		jobs = append(jobs, rec.job)
	}
	return jobs, nil
}

func (r memoryRecord) expired() bool {
	return !r.expiresAt.IsZero() && time.Now().After(r.expiresAt)
}
