package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"todoboard/internal/domain"
)

// Date parses a date field from JSON as either date-only ("2006-01-02")
// or an RFC3339 timestamp. Date-only is stored as start of that day in UTC.
// A JSON null or empty string means "no date".
type Date struct{ t *time.Time }

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	t, err := parseDate(strings.TrimSpace(*raw))
	if err != nil {
		return err
	}
	d.t = &t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t)
}

// Ptr returns *time.Time for use in service/domain.
func (d Date) Ptr() *time.Time { return d.t }

// DateFromString parses a form value ("" means no date) into a Date.
func DateFromString(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: &t}, nil
}

func parseDate(s string) (time.Time, error) {
	layouts := []string{
		"2006-01-02", // date only
		time.RFC3339, // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			// Date-only input has no time component; use start of day UTC.
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("use date (YYYY-MM-DD) or RFC3339 datetime")
}

// OptionalDate is a Date that remembers whether the key was present at all,
// so PUT bodies can distinguish "leave unchanged" from "clear the date".
type OptionalDate struct {
	Set bool
	Date
}

func (o *OptionalDate) UnmarshalJSON(data []byte) error {
	o.Set = true
	return o.Date.UnmarshalJSON(data)
}

func (o OptionalDate) IsZero() bool { return !o.Set }

// OptionalString distinguishes an absent key from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

func (o OptionalString) MarshalJSON() ([]byte, error) { return json.Marshal(o.Value) }

func (o OptionalString) IsZero() bool { return !o.Set }

// StringOf marks a string field for replacement in an update request.
func StringOf(s string) OptionalString { return OptionalString{Set: true, Value: &s} }

// NullString marks a string field for clearing in an update request.
func NullString() OptionalString { return OptionalString{Set: true} }

type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartDate   Date    `json:"startDate"`
	Deadline    Date    `json:"deadline"`
}

// UpdateTodoRequest carries a partial update: nil / unset fields are left
// unchanged, set-to-null fields are cleared.
type UpdateTodoRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description OptionalString `json:"description,omitzero"`
	Completed   *bool          `json:"completed,omitempty"`
	StartDate   OptionalDate   `json:"startDate,omitzero"`
	Deadline    OptionalDate   `json:"deadline,omitzero"`
}

type TodoResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	StartDate   *time.Time `json:"startDate"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// FromDomain converts a domain Todo to its wire representation.
func FromDomain(t domain.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		StartDate:   t.StartDate,
		Deadline:    t.Deadline,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromDomainList converts a list, never returning nil so the JSON stays
// an array even when there are no todos.
func FromDomainList(list []domain.Todo) []TodoResponse {
	out := make([]TodoResponse, len(list))
	for i := range list {
		out[i] = FromDomain(list[i])
	}
	return out
}
