// Package validate builds the per-field error maps returned with 422
// responses. Checks run before any storage mutation.
package validate

import (
	"fmt"
	"net/mail"
	"time"
)

type Errors map[string][]string

func (e Errors) Add(field, format string, args ...any) {
	e[field] = append(e[field], fmt.Sprintf(format, args...))
}

func (e Errors) Any() bool {
	return len(e) > 0
}

func Required(e Errors, field, value string) {
	if value == "" {
		e.Add(field, "the %s field is required", field)
	}
}

func Email(e Errors, field, value string) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		e.Add(field, "the %s must be a valid email address", field)
	}
}

func MaxLen(e Errors, field, value string, max int) {
	if len(value) > max {
		e.Add(field, "the %s may not be greater than %d characters", field, max)
	}
}

func OneOf(e Errors, field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, "the selected %s is invalid", field)
}

func IntBetween(e Errors, field string, value, min, max int) {
	if value < min || value > max {
		e.Add(field, "the %s must be between %d and %d", field, min, max)
	}
}

func MinAmount(e Errors, field string, value, min float64) {
	if value < min {
		e.Add(field, "the %s must be at least %g", field, min)
	}
}

// Date checks YYYY-MM-DD format and, when afterToday is set, that the
// date falls strictly after today.
func Date(e Errors, field, value string, afterToday bool) {
	if value == "" {
		return
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		e.Add(field, "the %s is not a valid date", field)
		return
	}
	if afterToday {
		today := time.Now().Format("2006-01-02")
		if d.Format("2006-01-02") <= today {
			e.Add(field, "the %s must be a date after today", field)
		}
	}
}

// TimeOfDay checks HH:MM 24-hour format.
func TimeOfDay(e Errors, field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse("15:04", value); err != nil {
		e.Add(field, "the %s does not match the format H:i", field)
	}
}
