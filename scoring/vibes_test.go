package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"coffee-concierge/models/shop"
)

// richWorkShop has every Work-Friendly attribute at its ceiling.
func richWorkShop() *shop.Shop {
	return &shop.Shop{
		Name:             "Full House",
		WifiScore:        fptr(5.0),
		OutletsScore:     fptr(5.0),
		NoiseScore:       fptr(0.0),
		SeatingCount:     fptr(40),
		RestroomAccess:   bptr(true),
		CleanlinessScore: fptr(5.0),
		ParkingScore:     fptr(5.0),
		Hours:            shop.WeekHours{"mon": {19.0, 23.0}},
	}
}

func TestWorkFriendly_RichShopScoresHigh(t *testing.T) {
	results := ComputeAllVibes(richWorkShop(), nil, nil)
	wf := results[VibeWorkFriendly]

	if wf.Score < 95.0 {
		t.Errorf("Expected a near-perfect score, got %v", wf.Score)
	}
	if wf.Coverage != 1.0 {
		t.Errorf("Expected full coverage, got %v", wf.Coverage)
	}
	if wf.Confidence != ConfidenceHigh {
		t.Errorf("Expected High confidence, got %v", wf.Confidence)
	}
}

func TestWorkFriendly_WifiOnlyShop(t *testing.T) {
	s := &shop.Shop{Name: "Sparse", WifiScore: fptr(4.0)}
	wf := ComputeAllVibes(s, nil, nil)[VibeWorkFriendly]

	// Only the 0.22-weight attribute is known.
	if math.Abs(wf.Coverage-0.22) > 1e-9 {
		t.Errorf("Expected coverage 0.22, got %v", wf.Coverage)
	}
	if wf.Confidence != ConfidenceLow {
		t.Errorf("Expected Low confidence, got %v", wf.Confidence)
	}
	// strength 0.8 with the low-coverage correction: 80 * 0.922
	if wf.Score != 73.8 {
		t.Errorf("Expected score 73.8, got %v", wf.Score)
	}
}

func TestDietaryFriendly_AllZeroIsExactlyZero(t *testing.T) {
	s := &shop.Shop{
		Name:                        "No Options",
		GlutenFree:                  bptr(false),
		DairyFreeMilks:              fptr(0),
		NutFree:                     bptr(false),
		IngredientTransparencyScore: fptr(0.0),
		CleanlinessScore:            fptr(0.0),
	}
	df := ComputeAllVibes(s, nil, nil)[VibeDietaryFriendly]

	// A known-bad shop scores a true zero, not a softened one.
	assert.Equal(t, 0.0, df.Score)
	assert.Equal(t, 1.0, df.Coverage)
	assert.Equal(t, ConfidenceHigh, df.Confidence)
	assert.Empty(t, df.Drivers)
}

func TestComputeAllVibes_Idempotent(t *testing.T) {
	s := richWorkShop()
	walk, parks := 4, 2

	first := ComputeAllVibes(s, &walk, &parks)
	second := ComputeAllVibes(s, &walk, &parks)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results on repeat scoring")
	}
}

func TestComputeAllVibes_ProximityOnlyMovesTwoVibes(t *testing.T) {
	s := richWorkShop()
	s.DessertScore = fptr(4.0)
	s.SpaceScore = fptr(4.0)

	walk, parks := 5, 3
	without := ComputeAllVibes(s, nil, nil)
	with := ComputeAllVibes(s, &walk, &parks)

	for _, v := range AllVibes() {
		switch v {
		case VibeDateNight, VibeFamilyFriendly:
			if reflect.DeepEqual(without[v], with[v]) {
				t.Errorf("Expected %s to react to proximity data", v)
			}
		default:
			if !reflect.DeepEqual(without[v], with[v]) {
				t.Errorf("Expected %s to ignore proximity data", v)
			}
		}
	}
}

func TestWorkFriendly_DriversCappedAtThree(t *testing.T) {
	// The rich shop trips four driver thresholds; only three survive.
	wf := ComputeAllVibes(richWorkShop(), nil, nil)[VibeWorkFriendly]
	if len(wf.Drivers) != 3 {
		t.Errorf("Expected 3 drivers, got %d: %v", len(wf.Drivers), wf.Drivers)
	}
}

func TestDriverPhrases_UseDisplayDefaultsForAbsentData(t *testing.T) {
	// A shop with no noise data still gets no "lower noise" driver since
	// the display default 0.5 sits below the 0.6 threshold, but an
	// explicitly quiet shop does.
	unknown := &shop.Shop{Name: "Quiet?", WifiScore: fptr(5.0)}
	quiet := &shop.Shop{Name: "Quiet!", WifiScore: fptr(5.0), NoiseScore: fptr(0.5)}

	d1 := ComputeAllVibes(unknown, nil, nil)[VibeWorkFriendly].Drivers
	d2 := ComputeAllVibes(quiet, nil, nil)[VibeWorkFriendly].Drivers

	assert.NotContains(t, d1, "lower noise")
	assert.Contains(t, d2, "lower noise")
}

func TestGrabAndGo_SpeedComposite(t *testing.T) {
	s := &shop.Shop{
		MobileOrder:     bptr(true),
		HasDriveThrough: bptr(true),
		PeakBusyPenalty: fptr(1.0),
	}
	// 0.4 + 0.3 + 0.3 - 0.2
	if got := speedComposite(s); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Expected 0.8, got %v", got)
	}

	// No convenience data at all: baseline minus the default peak penalty.
	bare := &shop.Shop{}
	if got := speedComposite(bare); math.Abs(got-0.36) > 1e-9 {
		t.Errorf("Expected 0.36, got %v", got)
	}
}

func TestDateNight_AmbienceAbsentWithoutSubAttributes(t *testing.T) {
	if got := ambienceComposite(&shop.Shop{}); got != nil {
		t.Errorf("Expected nil ambience with no sub-attributes, got %v", *got)
	}

	withLight := &shop.Shop{LightingScore: fptr(4.0)}
	if got := ambienceComposite(withLight); got == nil {
		t.Errorf("Expected ambience once any sub-attribute is known")
	}
}

func TestAesthetic_FallbackChain(t *testing.T) {
	// Natural light and decor fall back to the aesthetic score, so an
	// aesthetic-only shop still covers those rubric slots.
	s := &shop.Shop{AestheticScore: fptr(4.5)}
	res := ComputeAllVibes(s, nil, nil)[VibeAesthetic]

	// aesthetic 0.40 + light 0.20 + decor 0.10 of the 1.00 mass
	if math.Abs(res.Coverage-0.70) > 1e-9 {
		t.Errorf("Expected coverage 0.70 via fallbacks, got %v", res.Coverage)
	}
}

func TestParseVibe(t *testing.T) {
	v, ok := ParseVibe("Work-Friendly")
	if !ok || v != VibeWorkFriendly {
		t.Errorf("Expected Work-Friendly to parse, got %v %v", v, ok)
	}
	if _, ok := ParseVibe("Party"); ok {
		t.Errorf("Expected unknown name to fail")
	}
}

func TestConfidenceBands(t *testing.T) {
	tests := []struct {
		coverage float64
		want     Confidence
	}{
		{1.0, ConfidenceHigh},
		{0.8, ConfidenceHigh},
		{0.79, ConfidenceMedium},
		{0.5, ConfidenceMedium},
		{0.49, ConfidenceLow},
		{0.0, ConfidenceLow},
	}
	for _, test := range tests {
		if got := confidenceBand(test.coverage); got != test.want {
			t.Errorf("coverage %v: expected %v, got %v", test.coverage, test.want, got)
		}
	}
}
