package helpers

import (
	"fmt"
	"math"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", RoundMoney(amount))
}

// FormatBRL renders an amount as "R$ 1.234,56".
func FormatBRL(amount float64) string {
	cents := int64(math.Round(amount * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, formatThousand(cents/100), cents%100)
}

// RoundMoney rounds to the currency minor unit. Callers round once, at
// display or submission time.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// SameAmount compares two amounts at minor-unit precision.
func SameAmount(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}

func formatThousand(n int64) string {
	s := fmt.Sprintf("%d", n)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	return string(out)
}
