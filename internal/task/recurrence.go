package task

import "time"

// NextDueDate computes the due date of the successor instance spawned when a
// recurring task completes. Month arithmetic follows time.Time.AddDate
// normalization: a day past the end of the target month rolls into the next
// one, e.g. 2024-11-30 + 3 months lands on 2025-03-02 because 2025-02-30
// does not exist. Callers never pass RecurrenceNone; the lifecycle engine
// excludes it before invoking this.
func NextDueDate(current time.Time, r Recurrence) time.Time {
	switch r {
	case RecurrenceWeekly:
		return current.AddDate(0, 0, 7)
	case RecurrenceMonthly:
		return current.AddDate(0, 1, 0)
	case RecurrenceQuarterly:
		return current.AddDate(0, 3, 0)
	default:
		return current
	}
}
