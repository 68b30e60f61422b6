package lifecycle

import "time"

// ============================================================
// Membership lifecycle — status classification & reminders
// ============================================================

// Status represents a membership's lifecycle status
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusExpiring Status = "EXPIRING"
	StatusExpired  Status = "EXPIRED"
)

// ReminderKind identifies one of the five reminder offsets
type ReminderKind string

const (
	KindReminder5D ReminderKind = "REMINDER_5D" // 5 days before due
	KindReminder2D ReminderKind = "REMINDER_2D" // 2 days before due
	KindDueToday   ReminderKind = "DUE_TODAY"   // due today
	KindRecovery3D ReminderKind = "RECOVERY_3D" // 3 days overdue
	KindRecovery7D ReminderKind = "RECOVERY_7D" // 7 days overdue
)

// reminderOffsets maps each kind to its day offset from the due date.
// Each kind fires on exact day-equality, never a range.
var reminderOffsets = []struct {
	Days int
	Kind ReminderKind
}{
	{-5, KindReminder5D},
	{-2, KindReminder2D},
	{0, KindDueToday},
	{3, KindRecovery3D},
	{7, KindRecovery7D},
}

// Midnight truncates t to midnight in its own location.
// All day comparisons in this package operate on midnight-normalized dates.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Classify returns the lifecycle status of a membership given its next due
// date and "today". A membership becomes EXPIRING 2 days before the due date
// and stays EXPIRING through the due date itself, then EXPIRED after.
func Classify(nextDueDate, today time.Time) Status {
	due := Midnight(nextDueDate)
	now := Midnight(today)
	expiringThreshold := due.AddDate(0, 0, -2)

	switch {
	case now.Before(expiringThreshold):
		return StatusActive
	case now.Equal(expiringThreshold) || !now.After(due):
		return StatusExpiring
	case due.Before(now):
		return StatusExpired
	}

	return StatusActive
}

// ScheduleReminders returns the reminder kinds that fire today for the given
// due date. Kinds are evaluated independently; under normal operation the
// offsets are disjoint so at most one fires per day.
func ScheduleReminders(nextDueDate, today time.Time) []ReminderKind {
	due := Midnight(nextDueDate)
	now := Midnight(today)

	var fired []ReminderKind
	for _, o := range reminderOffsets {
		if now.Equal(due.AddDate(0, 0, o.Days)) {
			fired = append(fired, o.Kind)
		}
	}
	return fired
}
