// Package status maps backend order statuses to display labels, colors, and
// the transitions the fulfillment flow allows. The backend is the source of
// truth for every order's status; this package only describes it.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is an order lifecycle state as reported by the backend.
type Status string

const (
	Created           Status = "created"
	Pending           Status = "pending"
	Paid              Status = "paid"
	Shipped           Status = "shipped"
	PartiallyReturned Status = "partially_returned"
	Returned          Status = "returned"
	Canceled          Status = "canceled"
)

// AllStatuses returns every known status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Created,
		Pending,
		Paid,
		Shipped,
		PartiallyReturned,
		Returned,
		Canceled,
	}
}

// Parse normalizes a backend status string. Unknown values are an error for
// callers that need to branch; rendering helpers below never need Parse and
// degrade gracefully instead.
func Parse(s string) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllStatuses() {
		if normalized == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Label returns the display label for a status. The storefront is a Russian
// marketplace, so labels follow the product language; unknown statuses fall
// back to the raw value.
func Label(s Status) string {
	switch s {
	case Created:
		return "Создан"
	case Pending:
		return "Ожидает оплаты"
	case Paid:
		return "Оплачен"
	case Shipped:
		return "Отправлен"
	case PartiallyReturned:
		return "Частичный возврат"
	case Returned:
		return "Возврат"
	case Canceled:
		return "Отменён"
	default:
		return string(s)
	}
}

// Color returns the badge color for a status.
func Color(s Status) lipgloss.Color {
	switch s {
	case Created:
		return lipgloss.Color("241") // gray, nothing happened yet
	case Pending:
		return lipgloss.Color("214") // orange, waiting on payment
	case Paid:
		return lipgloss.Color("42") // green
	case Shipped:
		return lipgloss.Color("86") // cyan, in transit
	case PartiallyReturned:
		return lipgloss.Color("183") // light purple
	case Returned:
		return lipgloss.Color("141") // purple
	case Canceled:
		return lipgloss.Color("196") // red
	default:
		return lipgloss.Color("241")
	}
}

var badgeStyle = lipgloss.NewStyle().Bold(true)

// Badge renders the status label styled in its color. Unknown statuses get
// the muted default so a new backend status never breaks the order list.
func Badge(s Status) string {
	return badgeStyle.Foreground(Color(s)).Render(Label(s))
}

// IsTerminal reports whether no further transitions are expected.
func IsTerminal(s Status) bool {
	return s == Returned || s == Canceled
}
