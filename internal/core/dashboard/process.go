package dashboard

import (
	"strings"
	"time"

	"dashboard-service/internal/domain"
)

// ProcessRows maps raw records to canonical rows and tracks the order date range of the whole set.
func ProcessRows(records []domain.RawRecord, loc *time.Location) domain.Processed {
	out := domain.Processed{Rows: make([]domain.Row, 0, len(records))}

	for _, rec := range records {
		row := domain.Row{
			OrderDate:     ParseOrderDate(rec[domain.ColOrderTime], loc),
			OrderValue:    ParseBrazilianNumber(rec[domain.ColOrderValue]),
			CommissionNet: ParseBrazilianNumber(rec[domain.ColCommission]),
			Rate:          ParsePercent(rec[domain.ColRate]),
			Sub1:          orPlaceholder(rec[domain.ColSub1]),
			Sub2:          orPlaceholder(rec[domain.ColSub2]),
			Sub3:          orPlaceholder(rec[domain.ColSub3]),
			Channel:       orPlaceholder(rec[domain.ColChannel]),
			Raw:           rec,
		}

		if d := row.OrderDate; d != nil {
			if out.MinDate == nil || d.Before(*out.MinDate) {
				out.MinDate = d
			}
			if out.MaxDate == nil || d.After(*out.MaxDate) {
				out.MaxDate = d
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func orPlaceholder(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return domain.Placeholder
	}
	return v
}
