package task

import (
	"testing"
	"time"
)

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name     string
		current  time.Time
		recur    Recurrence
		expected time.Time
	}{
		{
			name:     "weekly adds seven days",
			current:  time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			recur:    RecurrenceWeekly,
			expected: time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monthly adds one month",
			current:  time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			recur:    RecurrenceMonthly,
			expected: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "quarterly adds three months",
			current:  time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			recur:    RecurrenceQuarterly,
			expected: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monthly from jan 31 normalizes into march",
			current:  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			recur:    RecurrenceMonthly,
			expected: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "quarterly from nov 30 normalizes into march",
			current:  time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			recur:    RecurrenceQuarterly,
			expected: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "none returns the input",
			current:  time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			recur:    RecurrenceNone,
			expected: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "time of day is preserved",
			current:  time.Date(2024, 5, 15, 17, 30, 0, 0, time.UTC),
			recur:    RecurrenceWeekly,
			expected: time.Date(2024, 5, 22, 17, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDueDate(tt.current, tt.recur)
			if !got.Equal(tt.expected) {
				t.Errorf("NextDueDate(%v, %s) = %v, want %v", tt.current, tt.recur, got, tt.expected)
			}
		})
	}
}
