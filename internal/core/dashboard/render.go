package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"dashboard-service/internal/domain"
)

// Render builds the dashboard view of a session for its current filters.
func Render(s *Session, loc *time.Location) domain.Dashboard {
	rows := s.Filtered(loc)
	summary := Summarize(rows)

	return domain.Dashboard{
		Summary: summary,
		Labels:  summaryLabels(summary),
		Sub1:    buildTable(rows, domain.KeySub1, s.Filters),
		Sub2:    buildTable(rows, domain.KeySub2, s.Filters),
		Sub3:    buildTable(rows, domain.KeySub3, s.Filters),
		Channel: buildTable(rows, domain.KeyChannel, s.Filters),
		Filters: s.Filters,
		Options: Options(s.Data),
	}
}

func summaryLabels(s domain.Summary) domain.SummaryLabels {
	if s.TotalOrders == 0 {
		return domain.SummaryLabels{
			TotalOrders:     "0",
			OrdersDetail:    MsgNoRows,
			TotalSales:      FormatCurrency(0),
			AvgTicket:       "Ticket médio: " + FormatCurrency(0),
			TotalCommission: FormatCurrency(0),
			AvgCommission:   "Comissão média por pedido: " + FormatCurrency(0),
			AvgRate:         "-",
			Period:          "Período: -",
		}
	}

	period := "Período: -"
	if s.PeriodStart != nil && s.PeriodEnd != nil {
		period = fmt.Sprintf("Período: %s a %s", FormatDateBR(*s.PeriodStart), FormatDateBR(*s.PeriodEnd))
	}
	return domain.SummaryLabels{
		TotalOrders:     strconv.Itoa(s.TotalOrders),
		OrdersDetail:    fmt.Sprintf("%d pedido(s) com comissão registrada no filtro.", s.CommissionOrders),
		TotalSales:      FormatCurrency(s.TotalSales),
		AvgTicket:       "Ticket médio: " + FormatCurrency(s.AvgTicket),
		TotalCommission: FormatCurrency(s.CommissionTotal),
		AvgCommission:   "Comissão média por pedido: " + FormatCurrency(s.AvgCommission),
		AvgRate:         FormatPercent(s.AvgRate),
		Period:          period,
	}
}

func buildTable(rows []domain.Row, field domain.KeyField, filters domain.FilterState) domain.Table {
	groups := AggregateByKey(rows, field)
	if len(groups) == 0 {
		return domain.Table{Key: field, Groups: []domain.Group{}, Empty: true, EmptyMessage: MsgNoCommission}
	}
	for i := range groups {
		g := &groups[i]
		g.Active = isActive(field, g.Key, filters)
		g.CommissionLabel = FormatCurrency(g.Commission)
		g.AvgRateLabel = FormatPercent(g.AvgRate)
		if field == domain.KeyChannel {
			g.SalesLabel = FormatCurrency(g.Sales)
		}
	}
	return domain.Table{Key: field, Groups: groups}
}

func isActive(field domain.KeyField, key string, f domain.FilterState) bool {
	switch field {
	case domain.KeySub1:
		return f.SubID == key
	case domain.KeyChannel:
		return f.Channel == key
	case domain.KeySub2:
		return f.ClickedSub2 != nil && *f.ClickedSub2 == key
	case domain.KeySub3:
		return f.ClickedSub3 != nil && *f.ClickedSub3 == key
	}
	return false
}
