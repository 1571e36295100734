package utils

import (
	"math"
	"strings"
	"time"

	"todoboard/internal/dto"
)

// FormatDate renders a timestamp for display, e.g. "19 Feb 2026".
// Returns "" for a missing date.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2 Jan 2006")
}

// ExtractDatePart returns the YYYY-MM-DD prefix of an ISO timestamp
// string, e.g. for pre-filling a date input. Stable under repeated
// application; "" stays "".
func ExtractDatePart(iso string) string {
	if iso == "" {
		return ""
	}
	if i := strings.IndexByte(iso, 'T'); i >= 0 {
		return iso[:i]
	}
	return iso
}

// IsValidDate reports whether s parses as a date. Empty is valid since
// every date field is optional.
func IsValidDate(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, err := dto.DateFromString(s)
	return err == nil
}

// FilterByCompleted returns the todos whose completed flag matches.
func FilterByCompleted(todos []dto.TodoResponse, completed bool) []dto.TodoResponse {
	out := []dto.TodoResponse{}
	for _, t := range todos {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}

// Stats is the aggregate summary over the current collection.
type Stats struct {
	Total     int
	Completed int
	Active    int
	Progress  int
}

// ComputeStats derives counts and the completion percentage. Progress is
// 0 when the collection is empty, never a division fault.
func ComputeStats(todos []dto.TodoResponse) Stats {
	s := Stats{Total: len(todos)}
	for _, t := range todos {
		if t.Completed {
			s.Completed++
		}
	}
	s.Active = s.Total - s.Completed
	if s.Total > 0 {
		s.Progress = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}
