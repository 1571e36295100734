package repo

import (
	"context"

	"todoboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo is the storage contract for todos. Missing rows surface as
// pgx.ErrNoRows regardless of the backing store; the service layer maps
// that to its own NotFound error.
type TodoRepo interface {
	Create(ctx context.Context, t domain.Todo) (domain.Todo, error)
	GetByID(ctx context.Context, id int64) (domain.Todo, error)
	List(ctx context.Context) ([]domain.Todo, error)
	Update(ctx context.Context, id int64, row domain.Todo) (domain.Todo, error)
	Delete(ctx context.Context, id int64) error
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	query := `
		INSERT INTO todos (title, description, start_date, deadline)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, completed, start_date, deadline, created_at, updated_at`
	var out domain.Todo
	err := r.db.QueryRow(ctx, query, t.Title, t.Description, t.StartDate, t.Deadline).Scan(
		&out.ID, &out.Title, &out.Description, &out.Completed, &out.StartDate, &out.Deadline,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id int64) (domain.Todo, error) {
	query := `
		SELECT id, title, description, completed, start_date, deadline, created_at, updated_at
		FROM todos WHERE id = $1`
	var t domain.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.StartDate, &t.Deadline,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context) ([]domain.Todo, error) {
	query := `
		SELECT id, title, description, completed, start_date, deadline, created_at, updated_at
		FROM todos ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Todo
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.StartDate,
			&t.Deadline, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update replaces every mutable column with the given merged row and
// refreshes updated_at. The service layer is responsible for merging the
// partial patch against the existing record first.
func (r *PGTodoRepo) Update(ctx context.Context, id int64, row domain.Todo) (domain.Todo, error) {
	query := `
		UPDATE todos
		SET title = $2, description = $3, completed = $4, start_date = $5, deadline = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, completed, start_date, deadline, created_at, updated_at`
	var t domain.Todo
	err := r.db.QueryRow(ctx, query, id, row.Title, row.Description, row.Completed, row.StartDate, row.Deadline).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.StartDate, &t.Deadline,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
