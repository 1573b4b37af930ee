package shop

import (
	"math"
	"strings"
)

// WeekHours maps a day label to an [open, close] pair of fractional 24-hour
// clock values (19.5 = 7:30pm). A close hour smaller than the open hour
// denotes wraparound past midnight. Entries with the wrong shape are
// ignored rather than rejected, since hours arrive from loosely-validated
// catalog data.
type WeekHours map[string][]float64

// canonical day order for labels; keys are matched case-insensitively by
// their first three letters so "mon", "Mon" and "monday" all line up.
var dayOrder = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

const lateCloseHour = 21.0

func validPair(pair []float64) bool {
	return len(pair) == 2 && !math.IsNaN(pair[0]) && !math.IsNaN(pair[1])
}

// openLate reports whether a day's span reaches past 9pm, counting
// wraparound spans as late by definition.
func openLate(pair []float64) bool {
	open, close := pair[0], pair[1]
	if close < open {
		return true
	}
	return close >= lateCloseHour
}

// OpenLateDaysLabel renders the late-opening days as a short phrase such as
// "Fri & Sat", in canonical week order. Returns "" when no day qualifies.
func (h WeekHours) OpenLateDaysLabel() string {
	var days []string
	for _, day := range dayOrder {
		for key, pair := range h {
			k := strings.ToLower(key)
			if len(k) >= 3 && k[:3] == day && validPair(pair) && openLate(pair) {
				days = append(days, strings.ToUpper(day[:1])+day[1:])
				break
			}
		}
	}
	switch len(days) {
	case 0:
		return ""
	case 1:
		return days[0]
	default:
		return strings.Join(days[:len(days)-1], ", ") + " & " + days[len(days)-1]
	}
}
