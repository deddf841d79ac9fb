package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// nbsp separates the currency symbol from the amount, as pt-BR currency formatting does.
const nbsp = "\u00a0"

// FormatCurrency renders a BRL amount with pt-BR grouping and two decimals: "R$ 1.234,56".
func FormatCurrency(val float64) string {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return "-"
	}
	sign, abs := splitSign(val)
	return sign + "R$" + nbsp + formatTwoDecimalsComma(abs)
}

// FormatPercent renders a rate as "12,50%", or "-" when no rate is available.
func FormatPercent(val *float64) string {
	if val == nil || math.IsNaN(*val) || math.IsInf(*val, 0) {
		return "-"
	}
	sign, abs := splitSign(*val)
	return sign + formatTwoDecimalsComma(abs) + "%"
}

// FormatDateISO renders the calendar day used by date inputs: "2024-03-15".
func FormatDateISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateBR renders the day/month/year label: "15/03/2024".
func FormatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}

var maxPrinted = decimal.NewFromInt(math.MaxInt64)

// splitSign rounds to cents and drops the sign of values that round to zero.
func splitSign(val float64) (string, decimal.Decimal) {
	d := decimal.NewFromFloat(val).Round(2)
	if d.IsNegative() {
		return "-", d.Neg()
	}
	return "", d.Abs()
}

// formatTwoDecimalsComma formats a non-negative cent amount with "." grouping and "," decimals.
func formatTwoDecimalsComma(d decimal.Decimal) string {
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return groupThousands(whole) + fmt.Sprintf(",%02d", cents)
}

func groupThousands(whole decimal.Decimal) string {
	if whole.LessThanOrEqual(maxPrinted) {
		p := message.NewPrinter(language.BrazilianPortuguese)
		return p.Sprintf("%d", whole.IntPart())
	}
	digits := whole.String()
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}
