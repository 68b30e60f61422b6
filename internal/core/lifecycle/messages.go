package lifecycle

import "fmt"

// Message is the rendered content of a reminder notification
type Message struct {
	Title string
	Body  string
}

// MessageContext carries the display fields interpolated into reminder bodies
type MessageContext struct {
	MemberName string
	TenantName string
	Currency   string
	Amount     float64
	DueDate    string // formatted, e.g. "02 Jan 2006"
}

// BuildMessage renders the notification content for a fired reminder kind
func BuildMessage(kind ReminderKind, mc MessageContext) Message {
	switch kind {
	case KindReminder5D:
		return Message{
			Title: "Membership renewal reminder",
			Body: fmt.Sprintf("Hi %s, your membership at %s is due on %s (%s%.2f). Renew early to keep your streak going!",
				mc.MemberName, mc.TenantName, mc.DueDate, mc.Currency, mc.Amount),
		}
	case KindReminder2D:
		return Message{
			Title: "Membership expiring soon",
			Body: fmt.Sprintf("Hi %s, your membership at %s expires in 2 days, on %s. Renew now to avoid interruption.",
				mc.MemberName, mc.TenantName, mc.DueDate),
		}
	case KindDueToday:
		return Message{
			Title: "Membership due today",
			Body: fmt.Sprintf("Hi %s, your membership at %s is due today (%s%.2f). Please renew at the front desk or online.",
				mc.MemberName, mc.TenantName, mc.Currency, mc.Amount),
		}
	case KindRecovery3D:
		return Message{
			Title: "We miss you!",
			Body: fmt.Sprintf("Hi %s, your membership at %s expired on %s. Come back - renew today and pick up where you left off.",
				mc.MemberName, mc.TenantName, mc.DueDate),
		}
	case KindRecovery7D:
		return Message{
			Title: "Your spot is still here",
			Body: fmt.Sprintf("Hi %s, it's been a week since your membership at %s expired. Renew now and get back on track!",
				mc.MemberName, mc.TenantName),
		}
	}

	return Message{
		Title: "Membership update",
		Body:  fmt.Sprintf("Hi %s, there is an update on your membership at %s.", mc.MemberName, mc.TenantName),
	}
}
