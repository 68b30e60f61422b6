package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	due := date(2025, 6, 10)

	tests := []struct {
		name  string
		today time.Time
		want  Status
	}{
		{"well before due", date(2025, 6, 1), StatusActive},
		{"3 days before due", date(2025, 6, 7), StatusActive},
		{"exactly 2 days before due", date(2025, 6, 8), StatusExpiring},
		{"1 day before due", date(2025, 6, 9), StatusExpiring},
		{"due date itself", date(2025, 6, 10), StatusExpiring},
		{"1 day after due", date(2025, 6, 11), StatusExpired},
		{"long after due", date(2025, 9, 1), StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(due, tt.today))
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	due := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	today := time.Date(2025, 6, 10, 0, 1, 0, 0, time.UTC)

	// Both sides normalize to midnight, so a late-evening due date is
	// still "due today" from an early-morning run.
	assert.Equal(t, StatusExpiring, Classify(due, today))
}

func TestScheduleReminders_ExactOffsets(t *testing.T) {
	due := date(2025, 6, 10)

	tests := []struct {
		name  string
		today time.Time
		want  []ReminderKind
	}{
		{"5 days before", date(2025, 6, 5), []ReminderKind{KindReminder5D}},
		{"2 days before", date(2025, 6, 8), []ReminderKind{KindReminder2D}},
		{"due today", date(2025, 6, 10), []ReminderKind{KindDueToday}},
		{"3 days overdue", date(2025, 6, 13), []ReminderKind{KindRecovery3D}},
		{"7 days overdue", date(2025, 6, 17), []ReminderKind{KindRecovery7D}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScheduleReminders(due, tt.today))
		})
	}
}

func TestScheduleReminders_NonMatchingDaysFireNothing(t *testing.T) {
	due := date(2025, 6, 10)

	// Days adjacent to every offset, plus far-out days. None should fire:
	// each kind triggers on exact day-equality only, never a range.
	for _, today := range []time.Time{
		date(2025, 6, 4),  // 6 days before
		date(2025, 6, 6),  // 4 days before
		date(2025, 6, 7),  // 3 days before
		date(2025, 6, 9),  // 1 day before
		date(2025, 6, 11), // 1 day overdue
		date(2025, 6, 12), // 2 days overdue
		date(2025, 6, 14), // 4 days overdue
		date(2025, 6, 16), // 6 days overdue
		date(2025, 6, 18), // 8 days overdue
		date(2025, 7, 10), // a month overdue
	} {
		assert.Empty(t, ScheduleReminders(due, today), "expected no reminder on %s", today.Format("2006-01-02"))
	}
}

func TestScheduleReminders_MonthBoundary(t *testing.T) {
	// Due on the 2nd: the 5-day reminder lands in the previous month
	due := date(2025, 7, 2)
	assert.Equal(t, []ReminderKind{KindReminder5D}, ScheduleReminders(due, date(2025, 6, 27)))

	// Due on the 28th: the 7-day recovery lands in the next month
	due = date(2025, 6, 28)
	assert.Equal(t, []ReminderKind{KindRecovery7D}, ScheduleReminders(due, date(2025, 7, 5)))
}

func TestMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	assert.NoError(t, err)

	ts := time.Date(2025, 6, 10, 18, 45, 12, 999, loc)
	got := Midnight(ts)

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestBuildMessage_AllKindsHaveContent(t *testing.T) {
	mc := MessageContext{
		MemberName: "Ravi",
		TenantName: "Iron Temple Gym",
		Currency:   "₹",
		Amount:     1500,
		DueDate:    "10 Jun 2025",
	}

	for _, kind := range []ReminderKind{KindReminder5D, KindReminder2D, KindDueToday, KindRecovery3D, KindRecovery7D} {
		msg := BuildMessage(kind, mc)
		assert.NotEmpty(t, msg.Title, "kind %s", kind)
		assert.Contains(t, msg.Body, "Ravi", "kind %s", kind)
		assert.Contains(t, msg.Body, "Iron Temple Gym", "kind %s", kind)
	}
}

func TestBuildMessage_DueTodayMentionsAmount(t *testing.T) {
	msg := BuildMessage(KindDueToday, MessageContext{
		MemberName: "Ravi",
		TenantName: "Iron Temple Gym",
		Currency:   "₹",
		Amount:     1500,
	})
	assert.Contains(t, msg.Body, "₹1500.00")
}
