package scoring

import (
	"math"

	"coffee-concierge/models/shop"
)

// Vibe identifies one of the seven fixed scoring profiles.
type Vibe string

const (
	VibeWorkFriendly    Vibe = "Work-Friendly"
	VibeAesthetic       Vibe = "Aesthetic"
	VibeGrabAndGo       Vibe = "Grab-and-Go"
	VibeDateNight       Vibe = "Date-Night"
	VibeDietaryFriendly Vibe = "Dietary-Friendly"
	VibeStudySpot       Vibe = "Study-Spot"
	VibeFamilyFriendly  Vibe = "Family-Friendly"
)

// AllVibes returns the seven profiles in canonical display order.
func AllVibes() []Vibe {
	return []Vibe{
		VibeWorkFriendly,
		VibeAesthetic,
		VibeGrabAndGo,
		VibeDateNight,
		VibeDietaryFriendly,
		VibeStudySpot,
		VibeFamilyFriendly,
	}
}

// ParseVibe matches a vibe name, reporting whether it is one of the seven.
func ParseVibe(name string) (Vibe, bool) {
	for _, v := range AllVibes() {
		if string(v) == name {
			return v, true
		}
	}
	return "", false
}

// Confidence bands a result's coverage into a coarse reliability label.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// VibeResult is the immutable outcome of scoring one shop against one vibe.
type VibeResult struct {
	Score      float64    `json:"score"`    // 0..100, one decimal
	Coverage   float64    `json:"coverage"` // fraction of declared weight mass present
	Confidence Confidence `json:"confidence"`
	Drivers    []string   `json:"drivers"` // up to 3 standout phrases
}

const (
	// Low-coverage shops are gently penalized rather than zeroed: the
	// multiplier floors at 0.9 when nothing is known.
	coverageCorrectionBase = 0.9
	coverageCorrectionSpan = 0.1

	confidenceHighCoverage   = 0.8
	confidenceMediumCoverage = 0.5

	maxDrivers = 3
)

// Display fallback defaults, used only for driver-phrase thresholds and
// what-if strength tables. The combine step always sees the true normalized
// value or absence.
const (
	defaultWifi         = 0.6
	defaultOutlets      = 0.5
	defaultNoiseInverse = 0.5
	defaultSeating      = 0.4
	defaultRestroom     = 0.5
	defaultHours        = 0.4
	defaultCleanliness  = 0.6
	defaultParking      = 0.5
	defaultAesthetic    = 0.5
	defaultNaturalLight = 0.5
	defaultLatteArt     = 0.4
	defaultDecor        = 0.5
	defaultDessert      = 0.5
	defaultBudget       = 0.5
	defaultTransparency = 0.6
	defaultMidNoise     = 0.5
	defaultSpace        = 0.5
	defaultKidsSnacks   = 0.5
)

// Grab-and-Go speed composite constants: baseline 0.4, each convenience
// feature adds up to 0.3, peak congestion subtracts up to 0.2.
const (
	speedBase          = 0.4
	speedMobileBonus   = 0.3
	speedDriveBonus    = 0.3
	speedPeakPenalty   = 0.2
	defaultPeakPenalty = 0.2
)

// Date-Night ambience sub-weights.
const (
	ambienceLightingWeight = 0.35
	ambienceComfortWeight  = 0.35
	ambienceMidNoiseWeight = 0.30
)

// scoreInput carries one shop plus its location-derived proximity norms.
type scoreInput struct {
	shop  *shop.Shop
	walk  *float64
	parks *float64
}

// orDefault resolves a display strength: the true value when present,
// the documented fallback otherwise.
func orDefault(v *float64, fallback float64) float64 {
	if x, ok := floatValue(v); ok {
		return x
	}
	return fallback
}

// firstFloat returns the first usable value in a fallback chain.
func firstFloat(vs ...*float64) *float64 {
	for _, v := range vs {
		if _, ok := floatValue(v); ok {
			return v
		}
	}
	return nil
}

func roundScore(x float64) float64 {
	return math.Round(x*10) / 10
}

func confidenceBand(coverage float64) Confidence {
	switch {
	case coverage >= confidenceHighCoverage:
		return ConfidenceHigh
	case coverage >= confidenceMediumCoverage:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// finish applies the coverage-confidence correction and rounds to one
// decimal on the 0..100 scale.
func finish(strength, coverage float64, drivers []string) VibeResult {
	score := roundScore(100 * strength * (coverageCorrectionBase + coverageCorrectionSpan*coverage))
	if len(drivers) > maxDrivers {
		drivers = drivers[:maxDrivers]
	}
	return VibeResult{
		Score:      score,
		Coverage:   coverage,
		Confidence: confidenceBand(coverage),
		Drivers:    drivers,
	}
}

func workFriendly(in scoreInput) VibeResult {
	s := in.shop
	wifi := Norm0to5(s.WifiScore)
	outlets := Norm0to5(s.OutletsScore)
	noiseInv := NormNoiseInverse(s.NoiseScore)
	seating := NormSeating(s.SeatingCount)
	restroom := NormBool(s.RestroomAccess)
	late := NormHoursLate(s.Hours)
	clean := Norm0to5(s.CleanlinessScore)
	parking := Norm0to5(s.ParkingScore)

	strength, coverage := Combine([]WeightedAttribute{
		{wifi, 0.22}, {outlets, 0.18}, {noiseInv, 0.15}, {seating, 0.12},
		{restroom, 0.10}, {late, 0.10}, {clean, 0.08}, {parking, 0.05},
	})

	var drivers []string
	if orDefault(wifi, defaultWifi) >= 0.7 {
		drivers = append(drivers, "reliable Wi-Fi")
	}
	if orDefault(outlets, defaultOutlets) >= 0.6 {
		drivers = append(drivers, "many outlets")
	}
	if orDefault(noiseInv, defaultNoiseInverse) >= 0.6 {
		drivers = append(drivers, "lower noise")
	}
	if orDefault(late, defaultHours) >= 0.5 {
		drivers = append(drivers, "open late")
	}
	return finish(strength, coverage, drivers)
}

func aesthetic(in scoreInput) VibeResult {
	s := in.shop
	aest := Norm0to5(s.AestheticScore)
	light := Norm0to5(firstFloat(s.NaturalLightScore, s.AestheticScore))
	latte := Norm0to5(s.LatteArtScore)
	clean := Norm0to5(s.CleanlinessScore)
	decor := Norm0to5(firstFloat(s.UniqueDecorScore, s.AestheticScore))
	dessert := Norm0to5(s.DessertScore)

	strength, coverage := Combine([]WeightedAttribute{
		{aest, 0.40}, {light, 0.20}, {latte, 0.15},
		{clean, 0.10}, {decor, 0.10}, {dessert, 0.05},
	})

	var drivers []string
	if orDefault(aest, defaultAesthetic) >= 0.7 {
		drivers = append(drivers, "design-forward space")
	}
	if orDefault(light, defaultNaturalLight) >= 0.65 {
		drivers = append(drivers, "great natural light")
	}
	if orDefault(latte, defaultLatteArt) >= 0.6 {
		drivers = append(drivers, "latte art")
	}
	return finish(strength, coverage, drivers)
}

// speedComposite blends the convenience features into a single service-speed
// strength. It is always present: the baseline stands in for shops with no
// convenience data, and an unspecified peak penalty defaults to 0.2.
func speedComposite(s *shop.Shop) float64 {
	mobile := orDefault(NormBool(s.MobileOrder), 0.0)
	drive := orDefault(NormBool(s.HasDriveThrough), 0.0)
	peak := clamp01(orDefault(s.PeakBusyPenalty, defaultPeakPenalty))
	return clamp01(speedBase + speedMobileBonus*mobile + speedDriveBonus*drive - speedPeakPenalty*peak)
}

func grabAndGo(in scoreInput) VibeResult {
	s := in.shop
	speed := present(speedComposite(s))
	parking := Norm0to5(s.ParkingScore)
	early := NormHoursEarly(s.Hours)
	mobile := NormBool(s.MobileOrder)
	drive := NormBool(s.HasDriveThrough)

	strength, coverage := Combine([]WeightedAttribute{
		{speed, 0.35}, {parking, 0.25}, {early, 0.15},
		{mobile, 0.15}, {drive, 0.10},
	})

	var drivers []string
	if orDefault(drive, 0.0) >= 0.9 {
		drivers = append(drivers, "drive-through")
	}
	if orDefault(mobile, 0.0) >= 0.9 {
		drivers = append(drivers, "mobile order")
	}
	if orDefault(early, defaultHours) >= 0.6 {
		drivers = append(drivers, "opens early")
	}
	return finish(strength, coverage, drivers)
}

// ambienceComposite blends lighting, seating comfort and the mid-noise bonus
// into one strength, absent when none of the three is known.
func ambienceComposite(s *shop.Shop) *float64 {
	strength, coverage := Combine([]WeightedAttribute{
		{Norm0to5(firstFloat(s.LightingScore, s.AestheticScore)), ambienceLightingWeight},
		{Norm0to5(firstFloat(s.SeatingComfortScore, s.AestheticScore)), ambienceComfortWeight},
		{NormMidNoiseBonus(s.NoiseScore), ambienceMidNoiseWeight},
	})
	if coverage <= 0 {
		return nil
	}
	return present(strength)
}

func dateNight(in scoreInput) VibeResult {
	s := in.shop
	amb := ambienceComposite(s)
	dessert := Norm0to5(s.DessertScore)
	late := NormHoursLate(s.Hours)
	aest := Norm0to5(s.AestheticScore)
	walk := firstFloat(in.walk, s.NearbyWalkablesNorm)
	clean := Norm0to5(s.CleanlinessScore)

	strength, coverage := Combine([]WeightedAttribute{
		{amb, 0.25}, {dessert, 0.20}, {late, 0.18},
		{aest, 0.15}, {walk, 0.12}, {clean, 0.10},
	})

	var drivers []string
	if amb != nil && *amb >= 0.65 {
		drivers = append(drivers, "cozy ambience")
	}
	if orDefault(dessert, defaultDessert) >= 0.65 {
		drivers = append(drivers, "good desserts")
	}
	if orDefault(late, defaultHours) >= 0.6 {
		drivers = append(drivers, "open late")
	}
	return finish(strength, coverage, drivers)
}

func dietaryFriendly(in scoreInput) VibeResult {
	s := in.shop
	gf := NormBool(s.GlutenFree)
	df := NormDairyFreeMilks(s.DairyFreeMilks)
	nut := NormBool(s.NutFree)
	label := Norm0to5(s.IngredientTransparencyScore)
	clean := Norm0to5(s.CleanlinessScore)

	strength, coverage := Combine([]WeightedAttribute{
		{gf, 0.40}, {df, 0.28}, {nut, 0.12}, {label, 0.10}, {clean, 0.10},
	})

	var drivers []string
	if orDefault(gf, 0.0) >= 0.9 {
		drivers = append(drivers, "gluten-free options")
	}
	if orDefault(df, 0.0) >= 0.67 {
		drivers = append(drivers, "dairy-free milks")
	}
	if orDefault(nut, 0.0) >= 0.9 {
		drivers = append(drivers, "nut-free choices")
	}
	return finish(strength, coverage, drivers)
}

func studySpot(in scoreInput) VibeResult {
	s := in.shop
	outlets := Norm0to5(s.OutletsScore)
	seating := NormSeating(s.SeatingCount)
	wifi := Norm0to5(s.WifiScore)
	budget := NormPriceIndex(s.PriceIndex)
	late := NormHoursLate(s.Hours)
	noiseInv := NormNoiseInverse(s.NoiseScore)

	strength, coverage := Combine([]WeightedAttribute{
		{outlets, 0.28}, {seating, 0.22}, {wifi, 0.18},
		{budget, 0.12}, {late, 0.10}, {noiseInv, 0.10},
	})

	var drivers []string
	if orDefault(outlets, defaultOutlets) >= 0.6 {
		drivers = append(drivers, "outlets available")
	}
	if orDefault(seating, defaultSeating) >= 0.6 {
		drivers = append(drivers, "ample seating")
	}
	if orDefault(budget, defaultBudget) >= 0.6 {
		drivers = append(drivers, "budget-friendly")
	}
	return finish(strength, coverage, drivers)
}

func familyFriendly(in scoreInput) VibeResult {
	s := in.shop
	space := Norm0to5(firstFloat(s.SpaceScore, s.SeatingComfortScore))
	restroom := NormBool(s.RestroomAccess)
	parking := Norm0to5(s.ParkingScore)
	noiseTol := NormMidNoiseBonus(s.NoiseScore)
	kids := Norm0to5(firstFloat(s.KidsSnacksScore, s.DessertScore))
	parks := firstFloat(in.parks, s.NearbyParksNorm)

	strength, coverage := Combine([]WeightedAttribute{
		{space, 0.30}, {restroom, 0.20}, {parking, 0.18},
		{noiseTol, 0.15}, {kids, 0.10}, {parks, 0.07},
	})

	var drivers []string
	if orDefault(space, defaultSpace) >= 0.6 {
		drivers = append(drivers, "roomy layout")
	}
	if orDefault(restroom, defaultRestroom) >= 0.9 {
		drivers = append(drivers, "restroom access")
	}
	if parks != nil && *parks >= 0.6 {
		drivers = append(drivers, "park nearby")
	}
	return finish(strength, coverage, drivers)
}

// ComputeAllVibes scores one shop against all seven vibes. Optional nearby
// counts are normalized with the saturating /5 rule; the resulting proximity
// norms feed only the Date-Night and Family-Friendly profiles. Pure and
// side-effect free: calling it twice with identical inputs yields identical
// results, which the what-if layer relies on.
func ComputeAllVibes(s *shop.Shop, nearbyWalkablesCount, nearbyParksCount *int) map[Vibe]VibeResult {
	var walk, parks *float64
	if nearbyWalkablesCount != nil {
		walk = present(NormNearbyCount(float64(*nearbyWalkablesCount)))
	}
	if nearbyParksCount != nil {
		parks = present(NormNearbyCount(float64(*nearbyParksCount)))
	}
	in := scoreInput{shop: s, walk: walk, parks: parks}

	return map[Vibe]VibeResult{
		VibeWorkFriendly:    workFriendly(in),
		VibeAesthetic:       aesthetic(in),
		VibeGrabAndGo:       grabAndGo(in),
		VibeDateNight:       dateNight(in),
		VibeDietaryFriendly: dietaryFriendly(in),
		VibeStudySpot:       studySpot(in),
		VibeFamilyFriendly:  familyFriendly(in),
	}
}
