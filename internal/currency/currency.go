package currency

import "fmt"

// Code is the only currency this storefront charges in.
const Code = "usd"

// Format renders an amount of integer cents as a display string.
// Amounts are kept in minor units end to end; division happens only here,
// at the presentation boundary.
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
