package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrazilianNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"1.234.567,8", 1234567.8},
		{"R$\u00a010,00", 10},
		{"12,5", 12.5},
		{"-5,5", -5.5},
		{"1234.56", 1234.56},
		{"1.234", 1.234},
		{"12abc", 12},
		{" 10 ", 10},
		{"", 0},
		{"abc", 0},
		{"R$", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseBrazilianNumber(tt.in), 1e-9)
		})
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"12,5%", ptr(12.5)},
		{" 10% ", ptr(10.0)},
		{"7.5", ptr(7.5)},
		{"0%", ptr(0.0)},
		{"1.000,5%", ptr(1000.5)},
		{"", nil},
		{"   ", nil},
		{"%", nil},
		{"n/a", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParsePercent(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestParseOrderDate(t *testing.T) {
	tests := []struct {
		in   string
		want *time.Time
	}{
		{"2024-03-15 14:22:10", ptr(time.Date(2024, 3, 15, 14, 22, 10, 0, brt))},
		{"2024-03-15T14:22:10", ptr(time.Date(2024, 3, 15, 14, 22, 10, 0, brt))},
		{"2024-03-15 14:22", ptr(time.Date(2024, 3, 15, 14, 22, 0, 0, brt))},
		{"2024-03-15 14:22:10.5", ptr(time.Date(2024, 3, 15, 14, 22, 10, 500_000_000, brt))},
		{"2024-03-15", ptr(time.Date(2024, 3, 15, 0, 0, 0, 0, brt))},
		{"  2024-03-15  ", ptr(time.Date(2024, 3, 15, 0, 0, 0, 0, brt))},
		{"2024-03-15T14:22:10Z", ptr(time.Date(2024, 3, 15, 14, 22, 10, 0, time.UTC))},
		{"", nil},
		{"15/03/2024", nil},
		{"15/03/2024 10:00", nil},
		{"ontem", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseOrderDate(tt.in, brt)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %s, got %s", tt.want, got)
		})
	}
}
