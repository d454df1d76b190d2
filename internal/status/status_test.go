package status

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Status
		wantErr bool
	}{
		{"created", "created", Created, false},
		{"pending", "pending", Pending, false},
		{"paid", "paid", Paid, false},
		{"shipped", "shipped", Shipped, false},
		{"partially returned", "partially_returned", PartiallyReturned, false},
		{"returned", "returned", Returned, false},
		{"canceled", "canceled", Canceled, false},
		{"uppercase", "PAID", Paid, false},
		{"padded", "  shipped  ", Shipped, false},
		{"unknown", "fulfilled", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) should fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{Created, "Создан"},
		{Pending, "Ожидает оплаты"},
		{Paid, "Оплачен"},
		{Shipped, "Отправлен"},
		{PartiallyReturned, "Частичный возврат"},
		{Returned, "Возврат"},
		{Canceled, "Отменён"},
		{Status("mystery"), "mystery"},
	}

	for _, tt := range tests {
		if got := Label(tt.s); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestColor(t *testing.T) {
	// Every known status has a color assigned; unknown falls back to muted.
	seen := make(map[string][]Status)
	for _, s := range AllStatuses() {
		c := string(Color(s))
		if c == "" {
			t.Errorf("Color(%q) is empty", s)
		}
		seen[c] = append(seen[c], s)
	}
	for c, statuses := range seen {
		if len(statuses) > 1 {
			t.Errorf("color %q is shared by %v", c, statuses)
		}
	}

	if got := Color(Status("mystery")); got != Color(Created) {
		t.Errorf("unknown status color = %q, want the muted default", got)
	}
}

func TestBadge(t *testing.T) {
	if got := Badge(Paid); !strings.Contains(got, "Оплачен") {
		t.Errorf("Badge(Paid) = %q, should contain the label", got)
	}
	if got := Badge(Status("mystery")); !strings.Contains(got, "mystery") {
		t.Errorf("Badge of unknown status = %q, should contain the raw value", got)
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		s    Status
		want bool
	}{
		{Created, false},
		{Pending, false},
		{Paid, false},
		{Shipped, false},
		{PartiallyReturned, false},
		{Returned, true},
		{Canceled, true},
	}

	for _, tt := range tests {
		if got := IsTerminal(tt.s); got != tt.want {
			t.Errorf("IsTerminal(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestAllStatusesOrder(t *testing.T) {
	all := AllStatuses()
	if len(all) != 7 {
		t.Fatalf("AllStatuses returned %d statuses, want 7", len(all))
	}
	if all[0] != Created {
		t.Errorf("first status = %q, want %q", all[0], Created)
	}
	if all[len(all)-1] != Canceled {
		t.Errorf("last status = %q, want %q", all[len(all)-1], Canceled)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"checkout", Created, Pending, true},
		{"payment", Pending, Paid, true},
		{"shipment", Paid, Shipped, true},
		{"return", Shipped, Returned, true},
		{"partial return", Shipped, PartiallyReturned, true},
		{"rest of partial return", PartiallyReturned, Returned, true},
		{"cancel before payment", Pending, Canceled, true},
		{"cancel paid order", Paid, Canceled, true},
		{"cancel created", Created, Canceled, true},
		{"no unshipping", Shipped, Paid, false},
		{"no unpaying", Paid, Pending, false},
		{"returned is terminal", Returned, Shipped, false},
		{"canceled is terminal", Canceled, Pending, false},
		{"no skipping payment", Created, Shipped, false},
		{"no cancel after shipment", Shipped, Canceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTransitionName(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want string
	}{
		{Created, Pending, "checkout"},
		{Pending, Paid, "payment"},
		{Paid, Shipped, "shipment"},
		{Shipped, Returned, "return"},
		{Shipped, PartiallyReturned, "partial return"},
		{PartiallyReturned, Returned, "return"},
		{Pending, Canceled, "cancellation"},
		{Paid, Canceled, "cancellation"},
	}

	for _, tt := range tests {
		if got := TransitionName(tt.from, tt.to); got != tt.want {
			t.Errorf("TransitionName(%q, %q) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTransitionsFrom(t *testing.T) {
	tests := []struct {
		from Status
		want int
	}{
		{Created, 2},
		{Pending, 2},
		{Paid, 2},
		{Shipped, 2},
		{PartiallyReturned, 1},
		{Returned, 0},
		{Canceled, 0},
	}

	for _, tt := range tests {
		if got := TransitionsFrom(tt.from); len(got) != tt.want {
			t.Errorf("TransitionsFrom(%q) has %d targets, want %d", tt.from, len(got), tt.want)
		}
	}
}

func TestTransitionsTo(t *testing.T) {
	sources := TransitionsTo(Returned)
	if len(sources) != 2 {
		t.Fatalf("TransitionsTo(Returned) has %d sources, want 2", len(sources))
	}
	found := map[Status]bool{}
	for _, s := range sources {
		found[s] = true
	}
	if !found[Shipped] || !found[PartiallyReturned] {
		t.Errorf("TransitionsTo(Returned) = %v, want shipped and partially_returned", sources)
	}
}

func TestEveryTransitionUsesKnownStatuses(t *testing.T) {
	known := make(map[Status]bool)
	for _, s := range AllStatuses() {
		known[s] = true
	}

	for _, tr := range AllTransitions() {
		if !known[tr.From] {
			t.Errorf("transition from unknown status %q", tr.From)
		}
		if !known[tr.To] {
			t.Errorf("transition to unknown status %q", tr.To)
		}
	}
}
