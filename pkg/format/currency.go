// Package format renders currency amounts for table and summary output.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", math.Abs(amount))
	dot := strings.IndexByte(formatted, '.')
	intPart, decPart := formatted[:dot], formatted[dot+1:]

	if len(intPart) > 3 {
		var builder strings.Builder
		for i := 0; i < len(intPart); i++ {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteByte(intPart[i])
		}
		intPart = builder.String()
	}

	if amount < 0 {
		return "-$" + intPart + "." + decPart
	}
	return "$" + intPart + "." + decPart
}
