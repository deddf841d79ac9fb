package dashboard

import (
	"sort"
	"time"

	"dashboard-service/internal/domain"
)

// FilterRows returns the rows passing every active filter, in input order.
// The input slice is never modified.
func FilterRows(rows []domain.Row, state domain.FilterState, loc *time.Location) []domain.Row {
	if loc == nil {
		loc = time.Local
	}

	var from, to *time.Time
	if state.DateFrom != nil {
		y, m, d := state.DateFrom.Date()
		t := time.Date(y, m, d, 0, 0, 0, 0, loc)
		from = &t
	}
	if state.DateTo != nil {
		y, m, d := state.DateTo.Date()
		t := time.Date(y, m, d, 23, 59, 59, 0, loc)
		to = &t
	}

	out := make([]domain.Row, 0, len(rows))
	for _, r := range rows {
		if from != nil && (r.OrderDate == nil || r.OrderDate.Before(*from)) {
			continue
		}
		if to != nil && (r.OrderDate == nil || r.OrderDate.After(*to)) {
			continue
		}
		if isSet(state.Channel) && r.Channel != state.Channel {
			continue
		}
		if isSet(state.SubID) && r.Sub1 != state.SubID {
			continue
		}
		if state.ClickedSub2 != nil && r.Sub2 != *state.ClickedSub2 {
			continue
		}
		if state.ClickedSub3 != nil && r.Sub3 != *state.ClickedSub3 {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Options lists the values offered by the channel and sub-id dropdowns, plus the global date range.
func Options(p domain.Processed) domain.FilterOptions {
	opts := domain.FilterOptions{
		Channels: distinctSorted(p.Rows, domain.KeyChannel),
		SubIDs:   distinctSorted(p.Rows, domain.KeySub1),
	}
	if p.MinDate != nil && p.MaxDate != nil {
		opts.MinDate = FormatDateISO(*p.MinDate)
		opts.MaxDate = FormatDateISO(*p.MaxDate)
	}
	return opts
}

func isSet(v string) bool {
	return v != "" && v != domain.AllOption
}

func distinctSorted(rows []domain.Row, field domain.KeyField) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, r := range rows {
		k := r.Key(field)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	sort.Strings(values)
	return values
}
