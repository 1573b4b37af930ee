package scoring

import (
	"math"

	"coffee-concierge/models/shop"
)

// Attribute normalizers. Each maps a raw attribute value onto a [0,1]
// strength, or nil when the value is absent. NaN inputs count as absent.
// Normalizers never substitute defaults; that is the caller's job.

const (
	seatingFullCapacity = 40.0
	dairyFreeMilkMax    = 3.0
	nearbyCountCap      = 5.0

	earlyWindowEndHour  = 7.5
	lateWindowStartHour = 19.0
)

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func clamp01(x float64) float64 {
	return Clamp(x, 0.0, 1.0)
}

// floatValue unwraps an optional float, treating NaN the same as absence.
func floatValue(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) {
		return 0, false
	}
	return *v, true
}

func present(v float64) *float64 {
	return &v
}

// Norm0to5 scales a 0..5 rating linearly onto [0,1].
func Norm0to5(v *float64) *float64 {
	x, ok := floatValue(v)
	if !ok {
		return nil
	}
	return present(clamp01(x / 5.0))
}

// NormBool maps true to 1.0 and false to 0.0.
func NormBool(v *bool) *float64 {
	if v == nil {
		return nil
	}
	if *v {
		return present(1.0)
	}
	return present(0.0)
}

// NormSeating scales a seat count against a 40-seat "full capacity" ceiling.
func NormSeating(count *float64) *float64 {
	x, ok := floatValue(count)
	if !ok {
		return nil
	}
	return present(clamp01(x / seatingFullCapacity))
}

// NormPriceIndex inverts a 1(cheap)..4(expensive) price index into
// budget-friendliness: lower price yields higher strength.
func NormPriceIndex(pi *float64) *float64 {
	x, ok := floatValue(pi)
	if !ok {
		return nil
	}
	return present(clamp01(1.0 - (x-1.0)/3.0))
}

// NormNoiseInverse rewards quieter shops: 1 - Norm0to5(noise).
func NormNoiseInverse(noise *float64) *float64 {
	n := Norm0to5(noise)
	if n == nil {
		return nil
	}
	return present(clamp01(1.0 - *n))
}

// NormMidNoiseBonus peaks at a medium noise level and falls off toward both
// silence and loudness, for vibes that want ambient buzz but not too much.
func NormMidNoiseBonus(noise *float64) *float64 {
	n := Norm0to5(noise)
	if n == nil {
		return nil
	}
	return present(clamp01(1.0 - math.Abs(*n-0.5)*2.0))
}

// NormDairyFreeMilks scales a 0..3 alternative-milk count onto [0,1].
func NormDairyFreeMilks(count *float64) *float64 {
	x, ok := floatValue(count)
	if !ok {
		return nil
	}
	return present(clamp01(x / dairyFreeMilkMax))
}

// NormNearbyCount scales a nearby-POI count onto [0,1]; 5+ items saturate.
func NormNearbyCount(count float64) float64 {
	if math.IsNaN(count) {
		count = 0
	}
	return clamp01(count / nearbyCountCap)
}

// daySpans walks a weekly hours map and hands each valid [open, close] pair
// to fn along with its open-span in hours. Close before open means the span
// wraps past midnight. Malformed entries are skipped, never fatal.
func daySpans(h shop.WeekHours, fn func(open, close, span float64)) (total float64) {
	for _, pair := range h {
		if len(pair) != 2 {
			continue
		}
		open, close := pair[0], pair[1]
		if math.IsNaN(open) || math.IsNaN(close) {
			continue
		}
		span := close - open
		if close < open {
			span = 24.0 - open + close
		}
		if span < 0 {
			span = 0
		}
		total += span
		fn(open, close, span)
	}
	return total
}

// NormHoursEarly returns the fraction of the weekly open-span that falls
// before 7:30am, or nil when the hours map is empty or unusable.
func NormHoursEarly(h shop.WeekHours) *float64 {
	if len(h) == 0 {
		return nil
	}
	var early float64
	total := daySpans(h, func(open, _, span float64) {
		if open < earlyWindowEndHour {
			early += math.Min(earlyWindowEndHour-open, span)
		}
	})
	if total <= 0 {
		return nil
	}
	return present(clamp01(early / total))
}

// NormHoursLate returns the fraction of the weekly open-span that falls
// after 7pm, or nil when the hours map is empty or unusable.
func NormHoursLate(h shop.WeekHours) *float64 {
	if len(h) == 0 {
		return nil
	}
	var late float64
	total := daySpans(h, func(open, close, _ float64) {
		if close < open {
			// Wraps past midnight: everything from 7pm (or opening, if
			// later) through close the next morning counts as late.
			late += 24.0 - math.Max(open, lateWindowStartHour) + close
			return
		}
		if close > lateWindowStartHour {
			late += math.Max(close-math.Max(open, lateWindowStartHour), 0)
		}
	})
	if total <= 0 {
		return nil
	}
	return present(clamp01(late / total))
}
