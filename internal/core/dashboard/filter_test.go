package dashboard

import (
	"testing"
	"time"

	"dashboard-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func dates(rows []domain.Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.OrderDate == nil {
			out = append(out, "nil")
			continue
		}
		out = append(out, r.OrderDate.Format("2006-01-02 15:04:05"))
	}
	return out
}

func TestFilterRows_DateBounds(t *testing.T) {
	at := func(d, h, m, s int) *time.Time {
		v := time.Date(2024, 3, d, h, m, s, 0, brt)
		return &v
	}
	rows := []domain.Row{
		{OrderDate: at(1, 23, 59, 59)},
		{OrderDate: at(2, 0, 0, 0)},
		{OrderDate: at(3, 23, 59, 59)},
		{OrderDate: at(4, 0, 0, 0)},
		{OrderDate: nil},
	}

	tests := []struct {
		name  string
		state domain.FilterState
		want  []string
	}{
		{
			name:  "no date filter keeps rows without date",
			state: domain.FilterState{},
			want:  dates(rows),
		},
		{
			name:  "inclusive whole days",
			state: domain.FilterState{DateFrom: day(2024, 3, 2), DateTo: day(2024, 3, 3)},
			want:  []string{"2024-03-02 00:00:00", "2024-03-03 23:59:59"},
		},
		{
			name:  "only lower bound",
			state: domain.FilterState{DateFrom: day(2024, 3, 3)},
			want:  []string{"2024-03-03 23:59:59", "2024-03-04 00:00:00"},
		},
		{
			name:  "only upper bound",
			state: domain.FilterState{DateTo: day(2024, 3, 1)},
			want:  []string{"2024-03-01 23:59:59"},
		},
		{
			name: "time of day in the bound is ignored",
			state: domain.FilterState{
				DateFrom: ptr(time.Date(2024, 3, 2, 18, 30, 0, 0, brt)),
				DateTo:   ptr(time.Date(2024, 3, 2, 1, 0, 0, 0, brt)),
			},
			want: []string{"2024-03-02 00:00:00"},
		},
		{
			name:  "empty range",
			state: domain.FilterState{DateFrom: day(2024, 3, 4), DateTo: day(2024, 3, 1)},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dates(FilterRows(rows, tt.state, brt)))
		})
	}
}

func TestFilterRows_Categorical(t *testing.T) {
	rows := sampleProcessed(t).Rows

	tests := []struct {
		name  string
		state domain.FilterState
		want  int
	}{
		{"all option", domain.FilterState{Channel: domain.AllOption, SubID: domain.AllOption}, 4},
		{"channel", domain.FilterState{Channel: "Facebook"}, 2},
		{"sub id", domain.FilterState{SubID: "camp1"}, 2},
		{"placeholder sub id", domain.FilterState{SubID: domain.Placeholder}, 1},
		{"channel and sub id", domain.FilterState{Channel: "Facebook", SubID: "camp1"}, 1},
		{"clicked sub2", domain.FilterState{ClickedSub2: ptr("ad1")}, 2},
		{"clicked sub3 placeholder", domain.FilterState{ClickedSub3: ptr(domain.Placeholder)}, 2},
		{"clicked sub2 and sub3", domain.FilterState{ClickedSub2: ptr("ad1"), ClickedSub3: ptr("y")}, 1},
		{"unknown channel", domain.FilterState{Channel: "TikTok"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FilterRows(rows, tt.state, brt), tt.want)
		})
	}
}

func TestFilterRows_DoesNotTouchInput(t *testing.T) {
	rows := sampleProcessed(t).Rows
	before := append([]domain.Row(nil), rows...)

	out := FilterRows(rows, domain.FilterState{Channel: "Instagram"}, brt)
	assert.Len(t, out, 2)
	assert.Equal(t, before, rows)

	out = FilterRows(rows, domain.FilterState{}, brt)
	out[0].Sub1 = "changed"
	assert.Equal(t, "camp1", rows[0].Sub1)
}

func TestOptions(t *testing.T) {
	opts := Options(sampleProcessed(t))

	assert.Equal(t, []string{"Facebook", "Instagram"}, opts.Channels)
	assert.Equal(t, []string{"camp1", "camp2", domain.Placeholder}, opts.SubIDs)
	assert.Equal(t, "2024-03-01", opts.MinDate)
	assert.Equal(t, "2024-03-03", opts.MaxDate)

	empty := Options(domain.Processed{})
	assert.Empty(t, empty.Channels)
	assert.Empty(t, empty.MinDate)
}

func TestFilterRows_CommutativeAndIdempotent(t *testing.T) {
	rows := sampleProcessed(t).Rows
	byDate := domain.FilterState{DateFrom: day(2024, 3, 2)}
	byChannel := domain.FilterState{Channel: "Facebook"}
	both := domain.FilterState{DateFrom: day(2024, 3, 2), Channel: "Facebook"}

	dateThenChannel := FilterRows(FilterRows(rows, byDate, brt), byChannel, brt)
	channelThenDate := FilterRows(FilterRows(rows, byChannel, brt), byDate, brt)
	assert.Equal(t, dateThenChannel, channelThenDate)
	assert.Equal(t, dateThenChannel, FilterRows(rows, both, brt))
	assert.Equal(t, FilterRows(rows, both, brt), FilterRows(rows, both, brt))
}
