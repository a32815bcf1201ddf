package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/globalway/tracking-service/internal/core/domain"
)

// currencySymbols is the fixed symbol table for display formatting. Unknown
// currency codes fall back to the USD symbol.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CNY": "¥",
}

// AmountOf coerces a loosely typed monetary value to a float64. Upstream
// sources deliver these fields as JSON numbers, BSON numerics, or numeric
// strings, and omit them freely; anything absent or unparsable contributes
// exactly 0, never NaN and never an error.
func AmountOf(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// FormatAmount renders a monetary value as "<symbol><amount>" with two
// decimals, e.g. "$45.50". Absent or unparsable amounts format as zero in
// the target currency. An empty or unknown currency code uses "$".
func FormatAmount(amount any, currency string) string {
	symbol, ok := currencySymbols[strings.ToUpper(strings.TrimSpace(currency))]
	if !ok {
		symbol = currencySymbols["USD"]
	}
	return fmt.Sprintf("%s%.2f", symbol, AmountOf(amount))
}

// PaymentTotal sums the five monetary fields of a payment block, each
// independently coerced via AmountOf. A nil payment totals 0.
func PaymentTotal(p *domain.PaymentInfo) float64 {
	if p == nil {
		return 0
	}
	return AmountOf(p.Shipping) +
		AmountOf(p.Insurance) +
		AmountOf(p.CustomsDuties) +
		AmountOf(p.Taxes) +
		AmountOf(p.AdditionalFees)
}
