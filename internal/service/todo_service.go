package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"todoboard/internal/cache"
	"todoboard/internal/domain"
	"todoboard/internal/repo"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound   = errors.New("todo not found")
	ErrEmptyTitle = errors.New("title is required")
)

// TodoPatch carries a partial update. Nil pointers leave the field
// unchanged; the Set* flags let a date or description be cleared
// explicitly (key present with a null value).
type TodoPatch struct {
	Title          *string
	Description    *string
	SetDescription bool
	Completed      *bool
	StartDate      *time.Time
	SetStartDate   bool
	Deadline       *time.Time
	SetDeadline    bool
}

type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

func (s *TodoService) Create(ctx context.Context, title string, desc *string, startDate, deadline *time.Time) (domain.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Todo{}, ErrEmptyTitle
	}
	if desc != nil {
		trimmed := strings.TrimSpace(*desc)
		if trimmed == "" {
			// An empty description is stored as NULL, not "".
			desc = nil
		} else {
			desc = &trimmed
		}
	}

	t, err := s.repo.Create(ctx, domain.Todo{
		Title:       title,
		Description: desc,
		StartDate:   startDate,
		Deadline:    deadline,
	})
	if err != nil {
		return domain.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			if err := s.cache.SetList(ctx, list); err != nil {
				log.Warn().Err(err).Msg("todo list cache write failed")
			}
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]domain.Todo), nil
	}
	return s.repo.List(ctx)
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (domain.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Todo{}, ErrNotFound
		}
		return domain.Todo{}, err
	}
	return t, nil
}

// Update applies only the fields present in the patch, keeps the title
// non-empty invariant, and refreshes updated_at through the repo.
func (s *TodoService) Update(ctx context.Context, id int64, patch TodoPatch) (domain.Todo, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Todo{}, ErrNotFound
		}
		return domain.Todo{}, err
	}

	row := existing
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return domain.Todo{}, ErrEmptyTitle
		}
		row.Title = title
	}
	if patch.SetDescription {
		row.Description = patch.Description
		if row.Description != nil {
			trimmed := strings.TrimSpace(*row.Description)
			if trimmed == "" {
				row.Description = nil
			} else {
				row.Description = &trimmed
			}
		}
	}
	if patch.Completed != nil {
		row.Completed = *patch.Completed
	}
	if patch.SetStartDate {
		row.StartDate = patch.StartDate
	}
	if patch.SetDeadline {
		row.Deadline = patch.Deadline
	}

	t, err := s.repo.Update(ctx, id, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Todo{}, ErrNotFound
		}
		return domain.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Warn().Err(err).Msg("todo cache invalidation failed")
		}
	}
}
