package storefront

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/polkashop/polka/internal/api"
	"github.com/polkashop/polka/internal/money"
	"github.com/polkashop/polka/internal/status"
)

// ordersState is the purchase history list with a detail pane for the
// order under the cursor.
type ordersState struct {
	orders []api.Order
	cursor int
	scroll int
}

func (s *ordersState) setOrders(orders []api.Order) {
	s.orders = orders
	s.cursor = 0
	s.scroll = 0
}

func (s *ordersState) ensureVisible(visible int) {
	if s.cursor < s.scroll {
		s.scroll = s.cursor
	} else if s.cursor >= s.scroll+visible {
		s.scroll = s.cursor - visible + 1
	}
	maxScroll := max(0, len(s.orders)-visible)
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
}

func (m Model) updateOrders(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	o := &m.orders
	switch keyMsg.String() {
	case "up", "k":
		if o.cursor > 0 {
			o.cursor--
			o.ensureVisible(m.ordersVisible())
		}
	case "down", "j":
		if o.cursor < len(o.orders)-1 {
			o.cursor++
			o.ensureVisible(m.ordersVisible())
		}
	case "g", "home":
		o.cursor, o.scroll = 0, 0
	case "G", "end":
		if len(o.orders) > 0 {
			o.cursor = len(o.orders) - 1
			o.ensureVisible(m.ordersVisible())
		}
	}
	return m, nil
}

func (m Model) ordersVisible() int {
	visible := m.height - 16
	if visible < 3 {
		visible = 3
	}
	if visible > 8 {
		visible = 8
	}
	return visible
}

func (m Model) renderOrders() string {
	o := m.orders
	if len(o.orders) == 0 {
		return subtleStyle.Render(m.loc.T("orders_empty"))
	}

	var b strings.Builder
	visible := m.ordersVisible()
	start := o.scroll
	if start > len(o.orders)-1 {
		start = max(0, len(o.orders)-visible)
	}
	end := min(start+visible, len(o.orders))
	for i := start; i < end; i++ {
		b.WriteString(m.renderOrderRow(o.orders[i], i == o.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderOrderDetail(o.orders[min(o.cursor, len(o.orders)-1)]))
	return b.String()
}

func (m Model) renderOrderRow(o api.Order, selected bool) string {
	total := money.Format(o.TotalAmount, orderCurrency(o), m.moneyTag)
	date := o.Date.Format("02.01.2006")
	if selected {
		plain := fmt.Sprintf("> %s  %s  %d  %s  %s",
			o.Number, date, len(o.Items), total, status.Label(orderStatus(o)))
		return highlightRow(plain, m.width-2)
	}
	return fmt.Sprintf("  %s  %s  %s  %s  %s",
		o.Number,
		timestampStyle.Render(date),
		subtleStyle.Render(fmt.Sprintf("%d", len(o.Items))),
		priceStyle.Render(total),
		status.Badge(orderStatus(o)),
	)
}

func (m Model) renderOrderDetail(o api.Order) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(m.loc.T("order_items")))
	b.WriteString("\n")
	for _, item := range o.Items {
		name := ansi.Truncate(item.Name, 40, "…")
		size := ""
		if item.Size != "" {
			size = subtleStyle.Render(" " + item.Size)
		}
		b.WriteString(fmt.Sprintf("  %s%s  %s\n",
			name, size, priceStyle.Render(money.Format(item.Price, orderCurrency(o), m.moneyTag))))
	}

	b.WriteString("\n")
	b.WriteString(sectionTitleStyle.Render(m.loc.T("order_delivery")))
	b.WriteString("\n")
	if o.DeliveryFullName != "" {
		b.WriteString("  " + o.DeliveryFullName + "\n")
	}
	address := joinNonEmpty(", ", o.DeliveryCity, o.DeliveryAddress, o.DeliveryPostalCode)
	if address != "" {
		b.WriteString("  " + subtleStyle.Render(address) + "\n")
	}
	if terms := m.deliveryTerms(o); terms != "" {
		b.WriteString("  " + subtleStyle.Render(terms) + "\n")
	}
	if o.TrackingNumber != "" {
		b.WriteString("  " + m.loc.TData("orders_tracking", map[string]any{"Number": o.TrackingNumber}) + "\n")
		if o.TrackingLink != "" {
			b.WriteString("  " + timestampStyle.Render(o.TrackingLink) + "\n")
		}
	}

	return detailBoxStyle.Width(m.width - 4).Render(strings.TrimRight(b.String(), "\n"))
}

// deliveryTerms summarizes the shipping snapshot of the first item that
// carries one. Cost and estimate are per item on the wire but uniform
// per order in practice.
func (m Model) deliveryTerms(o api.Order) string {
	for _, item := range o.Items {
		if item.Delivery.EstimatedTime == "" && item.Delivery.Cost == 0 {
			continue
		}
		parts := make([]string, 0, 2)
		if item.Delivery.Cost != 0 {
			parts = append(parts, money.Format(item.Delivery.Cost, orderCurrency(o), m.moneyTag))
		}
		if item.Delivery.EstimatedTime != "" {
			parts = append(parts, item.Delivery.EstimatedTime)
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func orderCurrency(o api.Order) string {
	if o.Currency != "" {
		return o.Currency
	}
	return "RUB"
}

// orderStatus degrades to a raw-label status when the backend sends a
// value the client does not know.
func orderStatus(o api.Order) status.Status {
	st, err := status.Parse(o.Status)
	if err != nil {
		return status.Status(o.Status)
	}
	return st
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
