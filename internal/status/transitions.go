package status

// Transition is one edge of the order lifecycle.
type Transition struct {
	From Status
	To   Status
}

// AllTransitions returns the valid status transitions.
// This mirrors the backend's order lifecycle exactly; the client never
// initiates a transition, it only explains them.
func AllTransitions() []Transition {
	return []Transition{
		// From created
		{From: Created, To: Pending},
		{From: Created, To: Canceled},

		// From pending
		{From: Pending, To: Paid},
		{From: Pending, To: Canceled},

		// From paid
		{From: Paid, To: Shipped},
		{From: Paid, To: Canceled},

		// From shipped
		{From: Shipped, To: Returned},
		{From: Shipped, To: PartiallyReturned},

		// From partially_returned
		{From: PartiallyReturned, To: Returned},
	}
}

// CanTransition reports whether the backend allows moving from one status
// to another.
func CanTransition(from, to Status) bool {
	for _, t := range AllTransitions() {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

// TransitionName returns a human-readable name for the transition.
func TransitionName(from, to Status) string {
	switch {
	case from == Created && to == Pending:
		return "checkout"
	case from == Pending && to == Paid:
		return "payment"
	case from == Paid && to == Shipped:
		return "shipment"
	case from == Shipped && to == PartiallyReturned:
		return "partial return"
	case to == Returned:
		return "return"
	case to == Canceled:
		return "cancellation"
	default:
		return string(from) + " → " + string(to)
	}
}

// TransitionsFrom returns all statuses reachable from the given one.
func TransitionsFrom(s Status) []Status {
	var targets []Status
	for _, t := range AllTransitions() {
		if t.From == s {
			targets = append(targets, t.To)
		}
	}
	return targets
}

// TransitionsTo returns all statuses that can lead to the given one.
func TransitionsTo(s Status) []Status {
	var sources []Status
	for _, t := range AllTransitions() {
		if t.To == s {
			sources = append(sources, t.From)
		}
	}
	return sources
}
