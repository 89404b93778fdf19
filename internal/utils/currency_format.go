package utils

import (
	"github.com/shopspring/decimal"
)

// AbsentCell is rendered wherever a value is absent or its rate is unavailable.
const AbsentCell = "-"

// TableCellPrecision is the number of decimals shown in the historical table.
const TableCellPrecision = 2

// FormatCell renders a table cell: fixed two decimals, or AbsentCell when v is nil.
// Example: 12.3456 returns "12.35", 5 returns "5.00"
func FormatCell(v *float64) string {
	if v == nil {
		return AbsentCell
	}
	return FormatWithPrecision(decimal.NewFromFloat(*v), TableCellPrecision)
}

// FormatWithPrecision formats an amount with exactly the given number of decimals.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
