package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"fxba/domain"
)

// HistoryRepositoryMemory keeps the most recent records in memory.
type HistoryRepositoryMemory struct {
	mu       sync.RWMutex
	data     []domain.HistoryRecord
	capacity int
	now      func() time.Time
}

// NewHistoryRepositoryMemory creates a repository that drops the oldest
// record once capacity is reached. capacity <= 0 means unbounded.
func NewHistoryRepositoryMemory(capacity int) *HistoryRepositoryMemory {
	return &HistoryRepositoryMemory{
		data:     []domain.HistoryRecord{},
		capacity: capacity,
		now:      time.Now,
	}
}

func (r *HistoryRepositoryMemory) Save(record domain.HistoryRecord) (domain.HistoryRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if r.capacity > 0 && len(r.data) > r.capacity {
		r.data = append([]domain.HistoryRecord(nil), r.data[len(r.data)-r.capacity:]...)
	}
	return record, nil
}

func (r *HistoryRepositoryMemory) List(limit int) ([]domain.HistoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.data)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.HistoryRecord, 0, n)
	for i := len(r.data) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
