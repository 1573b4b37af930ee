package scoring

import (
	"math"
	"testing"

	"coffee-concierge/models/shop"
)

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func TestNorm0to5_ScalesAndClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0.0, 0.0},
		{"Midpoint", 2.5, 0.5},
		{"Full", 5.0, 1.0},
		{"AboveRange", 7.0, 1.0},
		{"BelowRange", -1.0, 0.0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Norm0to5(fptr(test.in))
			if got == nil {
				t.Fatalf("Expected a value, got nil")
			}
			if *got != test.want {
				t.Errorf("Expected %v, got %v", test.want, *got)
			}
		})
	}
}

func TestNormalizers_AbsentInputs(t *testing.T) {
	if Norm0to5(nil) != nil {
		t.Errorf("Expected nil for nil input")
	}
	if Norm0to5(fptr(math.NaN())) != nil {
		t.Errorf("Expected nil for NaN input")
	}
	if NormBool(nil) != nil {
		t.Errorf("Expected nil for nil bool")
	}
	if NormSeating(fptr(math.NaN())) != nil {
		t.Errorf("Expected nil for NaN seating")
	}
	if NormNoiseInverse(nil) != nil {
		t.Errorf("Expected nil for nil noise")
	}
	if NormDairyFreeMilks(nil) != nil {
		t.Errorf("Expected nil for nil milk count")
	}
}

func TestNormNoiseInverse_ComplementsNorm(t *testing.T) {
	// A quiet shop scores high, a loud one low, and the two normalizations
	// always sum to 1 for in-range values.
	for _, noise := range []float64{0.0, 1.5, 2.5, 4.0, 5.0} {
		inv := NormNoiseInverse(fptr(noise))
		norm := Norm0to5(fptr(noise))
		if inv == nil || norm == nil {
			t.Fatalf("Expected values for noise=%v", noise)
		}
		if math.Abs(*inv+*norm-1.0) > 1e-9 {
			t.Errorf("noise=%v: inverse %v + norm %v != 1", noise, *inv, *norm)
		}
	}
}

func TestNormMidNoiseBonus_PeaksAtMedium(t *testing.T) {
	mid := NormMidNoiseBonus(fptr(2.5))
	quiet := NormMidNoiseBonus(fptr(0.0))
	loud := NormMidNoiseBonus(fptr(5.0))

	if *mid != 1.0 {
		t.Errorf("Expected peak 1.0 at medium noise, got %v", *mid)
	}
	if *quiet != 0.0 || *loud != 0.0 {
		t.Errorf("Expected 0 at both extremes, got %v and %v", *quiet, *loud)
	}
}

func TestNormSeating_FullCapacityCeiling(t *testing.T) {
	if got := *NormSeating(fptr(20)); got != 0.5 {
		t.Errorf("Expected 0.5 for 20 seats, got %v", got)
	}
	if got := *NormSeating(fptr(40)); got != 1.0 {
		t.Errorf("Expected 1.0 for 40 seats, got %v", got)
	}
	if got := *NormSeating(fptr(120)); got != 1.0 {
		t.Errorf("Expected saturation at 1.0 for 120 seats, got %v", got)
	}
}

func TestNormPriceIndex_InvertsPrice(t *testing.T) {
	if got := *NormPriceIndex(fptr(1)); got != 1.0 {
		t.Errorf("Expected cheapest to score 1.0, got %v", got)
	}
	if got := *NormPriceIndex(fptr(4)); got != 0.0 {
		t.Errorf("Expected most expensive to score 0.0, got %v", got)
	}
	cheap := *NormPriceIndex(fptr(2))
	pricey := *NormPriceIndex(fptr(3))
	if cheap <= pricey {
		t.Errorf("Expected cheaper to score higher: %v vs %v", cheap, pricey)
	}
}

func TestNormDairyFreeMilks_Scales(t *testing.T) {
	if got := *NormDairyFreeMilks(fptr(0)); got != 0.0 {
		t.Errorf("Expected 0.0 for no milks, got %v", got)
	}
	if got := *NormDairyFreeMilks(fptr(3)); got != 1.0 {
		t.Errorf("Expected 1.0 for three milks, got %v", got)
	}
	if got := *NormDairyFreeMilks(fptr(2)); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("Expected 2/3 for two milks, got %v", got)
	}
}

func TestNormNearbyCount_Saturates(t *testing.T) {
	if got := NormNearbyCount(0); got != 0.0 {
		t.Errorf("Expected 0.0 for no POIs, got %v", got)
	}
	if got := NormNearbyCount(5); got != 1.0 {
		t.Errorf("Expected 1.0 at five POIs, got %v", got)
	}
	if got := NormNearbyCount(12); got != 1.0 {
		t.Errorf("Expected saturation above five POIs, got %v", got)
	}
	if got := NormNearbyCount(math.NaN()); got != 0.0 {
		t.Errorf("Expected NaN count to read as zero, got %v", got)
	}
}

func TestNormHours_EmptyAndMalformed(t *testing.T) {
	if NormHoursEarly(nil) != nil {
		t.Errorf("Expected nil for missing hours")
	}
	if NormHoursLate(shop.WeekHours{}) != nil {
		t.Errorf("Expected nil for empty hours")
	}

	// Malformed entries are skipped, not fatal.
	h := shop.WeekHours{"mon": {7.0}, "tue": {math.NaN(), 20.0}}
	if NormHoursLate(h) != nil {
		t.Errorf("Expected nil when no usable spans remain")
	}
}

func TestNormHoursEarly_Fraction(t *testing.T) {
	// Open 6am-2pm daily: 1.5h of the 8h span falls before 7:30am.
	h := shop.WeekHours{
		"mon": {6.0, 14.0},
		"tue": {6.0, 14.0},
	}
	got := NormHoursEarly(h)
	if got == nil {
		t.Fatalf("Expected a value")
	}
	want := 1.5 / 8.0
	if math.Abs(*got-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, *got)
	}
}

func TestNormHoursLate_Fraction(t *testing.T) {
	// Open 9am-10pm: 3h of 13h falls after 7pm.
	h := shop.WeekHours{"fri": {9.0, 22.0}}
	got := NormHoursLate(h)
	if got == nil {
		t.Fatalf("Expected a value")
	}
	want := 3.0 / 13.0
	if math.Abs(*got-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, *got)
	}
}

func TestNormHoursLate_WrapsPastMidnight(t *testing.T) {
	// Open 8pm-2am: span is 6h and all of it is after 7pm.
	h := shop.WeekHours{"sat": {20.0, 2.0}}
	got := NormHoursLate(h)
	if got == nil {
		t.Fatalf("Expected a value")
	}
	if *got != 1.0 {
		t.Errorf("Expected full late fraction for a past-midnight span, got %v", *got)
	}
}
