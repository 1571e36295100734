package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"todoboard/internal/domain"

	"github.com/jackc/pgx/v5"
)

// MemoryTodoRepo is an in-memory TodoRepo with the same contract as the
// Postgres implementation. It backs the handler, client and controller
// tests, where spinning up a database would buy nothing.
type MemoryTodoRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Todo
}

func NewMemoryTodoRepo() *MemoryTodoRepo {
	return &MemoryTodoRepo{nextID: 1, rows: map[int64]domain.Todo{}}
}

func (r *MemoryTodoRepo) Create(_ context.Context, t domain.Todo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = now
	t.UpdatedAt = now
	r.rows[t.ID] = t
	return t, nil
}

func (r *MemoryTodoRepo) GetByID(_ context.Context, id int64) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.rows[id]
	if !ok {
		return domain.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *MemoryTodoRepo) List(_ context.Context) ([]domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]domain.Todo, 0, len(r.rows))
	for _, t := range r.rows {
		list = append(list, t)
	}
	// Newest first; id breaks created_at ties so fast successive creates
	// still list deterministically.
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *MemoryTodoRepo) Update(_ context.Context, id int64, row domain.Todo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[id]
	if !ok {
		return domain.Todo{}, pgx.ErrNoRows
	}
	existing.Title = row.Title
	existing.Description = row.Description
	existing.Completed = row.Completed
	existing.StartDate = row.StartDate
	existing.Deadline = row.Deadline
	existing.UpdatedAt = time.Now().UTC()
	r.rows[id] = existing
	return existing, nil
}

func (r *MemoryTodoRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}
