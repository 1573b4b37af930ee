package scoring

import "coffee-concierge/models/shop"

// Explainability layer: per-attribute display strengths aligned to the
// rubric labels, contribution tables, and what-if simulation. This is the
// orchestrator and combiner invoked on perturbed inputs, not a separate
// scoring algorithm — the numbers here always agree with ComputeAllVibes.

// AttributeStrengths returns the display strength of every rubric attribute
// for one vibe, keyed by the rubric's labels. Absent attributes resolve to
// their documented fallback defaults so the explainability tables always
// have a value to show; proximity norms without a fallback render as 0.
func AttributeStrengths(v Vibe, s *shop.Shop, walkNorm, parksNorm *float64) map[string]float64 {
	out := map[string]float64{}
	switch v {
	case VibeWorkFriendly:
		out["Wi-Fi quality"] = orDefault(Norm0to5(s.WifiScore), defaultWifi)
		out["Outlets availability"] = orDefault(Norm0to5(s.OutletsScore), defaultOutlets)
		out["Lower noise"] = orDefault(NormNoiseInverse(s.NoiseScore), defaultNoiseInverse)
		out["Seating capacity"] = orDefault(NormSeating(s.SeatingCount), defaultSeating)
		out["Restroom access"] = orDefault(NormBool(s.RestroomAccess), defaultRestroom)
		out["Open late"] = orDefault(NormHoursLate(s.Hours), defaultHours)
		out["Cleanliness"] = orDefault(Norm0to5(s.CleanlinessScore), defaultCleanliness)
		out["Parking"] = orDefault(Norm0to5(s.ParkingScore), defaultParking)
	case VibeAesthetic:
		out["Aesthetic score"] = orDefault(Norm0to5(s.AestheticScore), defaultAesthetic)
		out["Natural light"] = orDefault(Norm0to5(firstFloat(s.NaturalLightScore, s.AestheticScore)), defaultNaturalLight)
		out["Latte art / presentation"] = orDefault(Norm0to5(s.LatteArtScore), defaultLatteArt)
		out["Cleanliness"] = orDefault(Norm0to5(s.CleanlinessScore), defaultCleanliness)
		out["Unique decor"] = orDefault(Norm0to5(firstFloat(s.UniqueDecorScore, s.AestheticScore)), defaultDecor)
		out["Desserts"] = orDefault(Norm0to5(s.DessertScore), defaultDessert)
	case VibeGrabAndGo:
		out["Speed (mobile/drive-thru/peak)"] = speedComposite(s)
		out["Parking"] = orDefault(Norm0to5(s.ParkingScore), defaultParking)
		out["Opens early"] = orDefault(NormHoursEarly(s.Hours), defaultHours)
		out["Mobile order"] = orDefault(NormBool(s.MobileOrder), 0.0)
		out["Drive-through"] = orDefault(NormBool(s.HasDriveThrough), 0.0)
	case VibeDateNight:
		light := orDefault(Norm0to5(firstFloat(s.LightingScore, s.AestheticScore)), defaultAesthetic)
		comfort := orDefault(Norm0to5(firstFloat(s.SeatingComfortScore, s.AestheticScore)), defaultAesthetic)
		mid := orDefault(NormMidNoiseBonus(s.NoiseScore), defaultMidNoise)
		out["Ambience (lighting/comfort/mid-noise)"] = clamp01(light*ambienceLightingWeight + comfort*ambienceComfortWeight + mid*ambienceMidNoiseWeight)
		out["Desserts"] = orDefault(Norm0to5(s.DessertScore), defaultDessert)
		out["Open late"] = orDefault(NormHoursLate(s.Hours), defaultHours)
		out["Aesthetic score"] = orDefault(Norm0to5(s.AestheticScore), defaultAesthetic)
		out["Walkable things nearby"] = orDefault(firstFloat(walkNorm, s.NearbyWalkablesNorm), 0.0)
		out["Cleanliness"] = orDefault(Norm0to5(s.CleanlinessScore), defaultCleanliness)
	case VibeDietaryFriendly:
		out["Gluten-free options"] = orDefault(NormBool(s.GlutenFree), 0.0)
		out["Dairy-free milks"] = orDefault(NormDairyFreeMilks(s.DairyFreeMilks), 0.0)
		out["Nut-free choices"] = orDefault(NormBool(s.NutFree), 0.0)
		out["Ingredient transparency"] = orDefault(Norm0to5(s.IngredientTransparencyScore), defaultTransparency)
		out["Cleanliness"] = orDefault(Norm0to5(s.CleanlinessScore), defaultCleanliness)
	case VibeStudySpot:
		out["Outlets availability"] = orDefault(Norm0to5(s.OutletsScore), defaultOutlets)
		out["Seating capacity"] = orDefault(NormSeating(s.SeatingCount), defaultSeating)
		out["Wi-Fi quality"] = orDefault(Norm0to5(s.WifiScore), defaultWifi)
		out["Budget-friendliness"] = orDefault(NormPriceIndex(s.PriceIndex), defaultBudget)
		out["Open late"] = orDefault(NormHoursLate(s.Hours), defaultHours)
		out["Lower noise"] = orDefault(NormNoiseInverse(s.NoiseScore), defaultNoiseInverse)
	case VibeFamilyFriendly:
		out["Roomy layout / space"] = orDefault(Norm0to5(firstFloat(s.SpaceScore, s.SeatingComfortScore)), defaultSpace)
		out["Restroom access"] = orDefault(NormBool(s.RestroomAccess), defaultRestroom)
		out["Parking"] = orDefault(Norm0to5(s.ParkingScore), defaultParking)
		out["Mid-noise tolerance"] = orDefault(NormMidNoiseBonus(s.NoiseScore), defaultMidNoise)
		out["Kids snacks / treats"] = orDefault(Norm0to5(firstFloat(s.KidsSnacksScore, s.DessertScore)), defaultKidsSnacks)
		out["Park nearby"] = orDefault(firstFloat(parksNorm, s.NearbyParksNorm), 0.0)
	}
	for k, val := range out {
		out[k] = clamp01(val)
	}
	return out
}

// Contribution is one row of a vibe's strength-times-weight table.
type Contribution struct {
	Attribute    string  `json:"attribute"`
	Weight       float64 `json:"weight"`
	Strength     float64 `json:"strength"`
	Contribution float64 `json:"contribution"` // weight x strength, in score points
}

// Contributions lists each rubric attribute's weighted contribution to a
// vibe in declaration order.
func Contributions(v Vibe, s *shop.Shop, walkNorm, parksNorm *float64) []Contribution {
	strengths := AttributeStrengths(v, s, walkNorm, parksNorm)
	entries := Rubric(v)
	out := make([]Contribution, 0, len(entries))
	for _, e := range entries {
		strength := strengths[e.Attribute]
		out = append(out, Contribution{
			Attribute:    e.Attribute,
			Weight:       e.Weight,
			Strength:     strength,
			Contribution: roundScore(e.Weight * strength * 100),
		})
	}
	return out
}

// DeltaContribution reports how much one attribute's change moved a vibe's
// score between the baseline and simulated shop.
type DeltaContribution struct {
	Attribute         string  `json:"attribute"`
	Weight            float64 `json:"weight"`
	BaseStrength      float64 `json:"base_strength"`
	NewStrength       float64 `json:"new_strength"`
	DeltaContribution float64 `json:"delta_contribution"` // score points
}

// WhatIfResult is the outcome of simulating attribute changes on one vibe.
type WhatIfResult struct {
	Vibe           Vibe                `json:"vibe"`
	BaselineScore  float64             `json:"baseline_score"`
	SimulatedScore float64             `json:"simulated_score"`
	Delta          float64             `json:"delta"`
	Contributions  []DeltaContribution `json:"contributions"`
}

// WhatIf recomputes one vibe under perturbed shop attributes and reports the
// per-attribute delta contributions. Proximity counts are held constant:
// a simulated shop does not move. Scoring is the same pure ComputeAllVibes
// call run twice, so attributes outside the perturbation leave every other
// vibe untouched.
func WhatIf(v Vibe, base, modified *shop.Shop, nearbyWalkablesCount, nearbyParksCount *int) WhatIfResult {
	baseResults := ComputeAllVibes(base, nearbyWalkablesCount, nearbyParksCount)
	modResults := ComputeAllVibes(modified, nearbyWalkablesCount, nearbyParksCount)

	var walkNorm, parksNorm *float64
	if nearbyWalkablesCount != nil {
		walkNorm = present(NormNearbyCount(float64(*nearbyWalkablesCount)))
	}
	if nearbyParksCount != nil {
		parksNorm = present(NormNearbyCount(float64(*nearbyParksCount)))
	}

	baseStrengths := AttributeStrengths(v, base, walkNorm, parksNorm)
	modStrengths := AttributeStrengths(v, modified, walkNorm, parksNorm)

	entries := Rubric(v)
	deltas := make([]DeltaContribution, 0, len(entries))
	for _, e := range entries {
		bs, ns := baseStrengths[e.Attribute], modStrengths[e.Attribute]
		deltas = append(deltas, DeltaContribution{
			Attribute:         e.Attribute,
			Weight:            e.Weight,
			BaseStrength:      bs,
			NewStrength:       ns,
			DeltaContribution: roundScore((ns - bs) * e.Weight * 100),
		})
	}

	baseScore := baseResults[v].Score
	modScore := modResults[v].Score
	return WhatIfResult{
		Vibe:           v,
		BaselineScore:  baseScore,
		SimulatedScore: modScore,
		Delta:          roundScore(modScore - baseScore),
		Contributions:  deltas,
	}
}
