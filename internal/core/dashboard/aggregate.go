package dashboard

import (
	"sort"

	"dashboard-service/internal/domain"

	"github.com/shopspring/decimal"
)

type groupAcc struct {
	key        string
	orders     int
	commission decimal.Decimal
	sales      decimal.Decimal
	rates      []float64
}

// AggregateByKey groups the commission rows by the given field and orders the groups by
// commission total, highest first. Groups with equal totals keep their first-occurrence order.
// Rows without a positive commission are ignored.
func AggregateByKey(rows []domain.Row, field domain.KeyField) []domain.Group {
	index := make(map[string]*groupAcc)
	var order []*groupAcc

	for _, r := range rows {
		if !r.HasCommission() {
			continue
		}
		key := r.Key(field)
		acc, ok := index[key]
		if !ok {
			acc = &groupAcc{key: key}
			index[key] = acc
			order = append(order, acc)
		}
		acc.orders++
		acc.commission = acc.commission.Add(decimal.NewFromFloat(r.CommissionNet))
		acc.sales = acc.sales.Add(decimal.NewFromFloat(r.OrderValue))
		if r.Rate != nil {
			acc.rates = append(acc.rates, *r.Rate)
		}
	}

	groups := make([]domain.Group, 0, len(order))
	for _, acc := range order {
		groups = append(groups, domain.Group{
			Key:        acc.key,
			Orders:     acc.orders,
			Commission: acc.commission.InexactFloat64(),
			Sales:      acc.sales.InexactFloat64(),
			AvgRate:    mean(acc.rates),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Commission > groups[j].Commission
	})
	return groups
}

// Summarize computes the headline statistics of a filtered row set.
// Order count, sales and ticket use every row; commission and rate figures use only
// rows with a positive commission. An empty set yields zero values and nil rate and period.
func Summarize(rows []domain.Row) domain.Summary {
	var (
		s          domain.Summary
		sales      decimal.Decimal
		commission decimal.Decimal
		rates      []float64
	)

	for _, r := range rows {
		s.TotalOrders++
		sales = sales.Add(decimal.NewFromFloat(r.OrderValue))

		if r.OrderDate != nil {
			if s.PeriodStart == nil || r.OrderDate.Before(*s.PeriodStart) {
				s.PeriodStart = r.OrderDate
			}
			if s.PeriodEnd == nil || r.OrderDate.After(*s.PeriodEnd) {
				s.PeriodEnd = r.OrderDate
			}
		}

		if !r.HasCommission() {
			continue
		}
		s.CommissionOrders++
		commission = commission.Add(decimal.NewFromFloat(r.CommissionNet))
		if r.Rate != nil {
			rates = append(rates, *r.Rate)
		}
	}

	s.TotalSales = sales.InexactFloat64()
	s.CommissionTotal = commission.InexactFloat64()
	if s.TotalOrders > 0 {
		s.AvgTicket = sales.Div(decimal.NewFromInt(int64(s.TotalOrders))).InexactFloat64()
	}
	if s.CommissionOrders > 0 {
		s.AvgCommission = commission.Div(decimal.NewFromInt(int64(s.CommissionOrders))).InexactFloat64()
	}
	s.AvgRate = mean(rates)
	return s
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	m := sum.Div(decimal.NewFromInt(int64(len(values)))).InexactFloat64()
	return &m
}
