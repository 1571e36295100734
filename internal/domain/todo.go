package domain

import "time"

// Todo is the persisted task record. It does not depend on Gin, Postgres
// or Redis; the dto package owns the wire representation.
type Todo struct {
	ID          int64
	Title       string
	Description *string
	Completed   bool
	StartDate   *time.Time
	Deadline    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
