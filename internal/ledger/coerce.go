package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceMonto turns free-text numeric input (UI entry fields) into a decimal.
// Empty or malformed input coerces to zero: the engine's contract is to
// never reject coercible numeric input. Comma decimal separators are
// accepted because the operator types them.
func CoerceMonto(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
