// package domain/models.go
package domain

import "time"

// Placeholder replaces empty sub-id and channel values.
const Placeholder = "—"

// AllOption is the dropdown value meaning "no channel/sub-id restriction".
const AllOption = "__all"

// Column names of the affiliate orders export.
const (
	ColOrderTime  = "Horário do pedido"
	ColOrderValue = "Valor de Compra(R$)"
	ColCommission = "Comissão líquida do afiliado(R$)"
	ColRate       = "Taxa de contrato do afiliado"
	ColSub1       = "Sub_id1"
	ColSub2       = "Sub_id2"
	ColSub3       = "Sub_id3"
	ColChannel    = "Canal"
)

// RequiredColumns lists every header an upload must carry, in display order.
var RequiredColumns = []string{
	ColOrderTime,
	ColOrderValue,
	ColCommission,
	ColRate,
	ColSub1,
	ColSub2,
	ColSub3,
	ColChannel,
}

// RawRecord maps a header name to the raw cell text of one data line.
type RawRecord map[string]string

// ParsedCSV is the output of the tokenizer: the header row and one RawRecord per data line.
type ParsedCSV struct {
	Headers []string
	Data    []RawRecord
}

// Row is the canonical, typed form of a RawRecord.
//
// OrderDate is nil when the timestamp could not be read and Rate is nil when no
// contract rate was recorded. A nil Rate is never the same as a 0% rate.
// Sub1, Sub2, Sub3 and Channel hold Placeholder instead of an empty string.
type Row struct {
	OrderDate     *time.Time `json:"order_date"`
	OrderValue    float64    `json:"order_value"`
	CommissionNet float64    `json:"commission_net"`
	Rate          *float64   `json:"rate"`
	Sub1          string     `json:"sub1"`
	Sub2          string     `json:"sub2"`
	Sub3          string     `json:"sub3"`
	Channel       string     `json:"channel"`
	Raw           RawRecord  `json:"-"`
}

// HasCommission reports whether the row carries a registered (strictly positive) commission.
func (r Row) HasCommission() bool {
	return r.CommissionNet > 0
}

// Processed holds the canonical rows of one file and the date range over all of them.
type Processed struct {
	Rows    []Row
	MinDate *time.Time
	MaxDate *time.Time
}

// KeyField names the row field a table is grouped by.
type KeyField string

// Grouping keys.
const (
	KeySub1    KeyField = "sub1"
	KeySub2    KeyField = "sub2"
	KeySub3    KeyField = "sub3"
	KeyChannel KeyField = "channel"
)

// Valid reports whether k is one of the known grouping keys.
func (k KeyField) Valid() bool {
	switch k {
	case KeySub1, KeySub2, KeySub3, KeyChannel:
		return true
	}
	return false
}

// Key returns the value of the given field for the row.
func (r Row) Key(field KeyField) string {
	var v string
	switch field {
	case KeySub1:
		v = r.Sub1
	case KeySub2:
		v = r.Sub2
	case KeySub3:
		v = r.Sub3
	case KeyChannel:
		v = r.Channel
	}
	if v == "" {
		return Placeholder
	}
	return v
}

// FilterState is the set of active dashboard filters.
//
// DateFrom and DateTo are calendar days (only year, month and day are used);
// nil means unbounded. Channel and SubID use "" or AllOption for "all".
// ClickedSub2 and ClickedSub3 are the toggles set by clicking a table row.
type FilterState struct {
	DateFrom    *time.Time `json:"date_from"`
	DateTo      *time.Time `json:"date_to"`
	Channel     string     `json:"channel"`
	SubID       string     `json:"sub_id"`
	ClickedSub2 *string    `json:"clicked_sub2"`
	ClickedSub3 *string    `json:"clicked_sub3"`
}

// Group is one line of a grouped table.
type Group struct {
	Key        string   `json:"key"`
	Orders     int      `json:"orders"`
	Commission float64  `json:"commission"`
	Sales      float64  `json:"sales"`
	AvgRate    *float64 `json:"avg_rate"`
	Active     bool     `json:"active"`

	CommissionLabel string `json:"commission_label"`
	SalesLabel      string `json:"sales_label"`
	AvgRateLabel    string `json:"avg_rate_label"`
}

// Summary holds the headline statistics of a filtered row set.
type Summary struct {
	TotalOrders      int        `json:"total_orders"`
	TotalSales       float64    `json:"total_sales"`
	AvgTicket        float64    `json:"avg_ticket"`
	CommissionOrders int        `json:"commission_orders"`
	CommissionTotal  float64    `json:"commission_total"`
	AvgCommission    float64    `json:"avg_commission"`
	AvgRate          *float64   `json:"avg_rate"`
	PeriodStart      *time.Time `json:"period_start"`
	PeriodEnd        *time.Time `json:"period_end"`
}

// SummaryLabels are the pt-BR strings displayed on the summary cards.
type SummaryLabels struct {
	TotalOrders     string `json:"total_orders"`
	OrdersDetail    string `json:"orders_detail"`
	TotalSales      string `json:"total_sales"`
	AvgTicket       string `json:"avg_ticket"`
	TotalCommission string `json:"total_commission"`
	AvgCommission   string `json:"avg_commission"`
	AvgRate         string `json:"avg_rate"`
	Period          string `json:"period"`
}

// Table is a rendered grouped table; Empty is set when no commission row passed the filters.
type Table struct {
	Key          KeyField `json:"key"`
	Groups       []Group  `json:"groups"`
	Empty        bool     `json:"empty"`
	EmptyMessage string   `json:"empty_message,omitempty"`
}

// FilterOptions feeds the filter controls.
type FilterOptions struct {
	Channels []string `json:"channels"`
	SubIDs   []string `json:"sub_ids"`
	MinDate  string   `json:"min_date"`
	MaxDate  string   `json:"max_date"`
}

// Dashboard is the complete view model of one render.
type Dashboard struct {
	Summary Summary       `json:"summary"`
	Labels  SummaryLabels `json:"labels"`
	Sub1    Table         `json:"sub1"`
	Sub2    Table         `json:"sub2"`
	Sub3    Table         `json:"sub3"`
	Channel Table         `json:"channel"`
	Filters FilterState   `json:"filters"`
	Options FilterOptions `json:"options"`
}
