package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jmehdipour/jobs-api/internal/model"
)

var ErrJobNotFound = errors.New("job not found")

// JobsRepository defines storage methods for job records.
type JobsRepository interface {
	List(ctx context.Context) ([]model.Job, error)
	GetByID(ctx context.Context, id int64) (model.Job, error)
	Insert(ctx context.Context, name string, salary float64) (model.Job, error)
}

// MemoryJobsRepository keeps jobs in process memory; contents are lost on restart.
type MemoryJobsRepository struct {
	mu     sync.Mutex
	byID   map[int64]model.Job
	order  []int64
	nextID int64
}

// NewMemoryJobsRepository constructs an empty store whose first id is 1.
func NewMemoryJobsRepository() *MemoryJobsRepository {
	return &MemoryJobsRepository{
		byID:   make(map[int64]model.Job),
		nextID: 1,
	}
}

var _ JobsRepository = (*MemoryJobsRepository)(nil)

func (r *MemoryJobsRepository) List(_ context.Context) ([]model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Job, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MemoryJobsRepository) GetByID(_ context.Context, id int64) (model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.byID[id]
	if !ok {
		return model.Job{}, fmt.Errorf("job %d: %w", id, ErrJobNotFound)
	}
	return j, nil
}

// Insert assigns the next id; ids are never reused.
func (r *MemoryJobsRepository) Insert(_ context.Context, name string, salary float64) (model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j := model.Job{ID: r.nextID, Name: name, Salary: salary}
	r.nextID++

	r.byID[j.ID] = j
	r.order = append(r.order, j.ID)
	return j, nil
}
