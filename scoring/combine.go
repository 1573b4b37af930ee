package scoring

// WeightedAttribute pairs a normalized strength with its rubric weight.
// A nil Strength marks an absent attribute; Weight is a fixed non-negative
// constant from the vibe's rubric.
type WeightedAttribute struct {
	Strength *float64
	Weight   float64
}

// Combine blends weighted strengths into a single [0,1] strength plus a
// coverage fraction. The denominator of coverage is the rubric's full
// declared weight mass, so absent attributes reduce coverage without
// dragging down the blend of whatever is known. A degenerate rubric (zero
// declared weight) or a fully-absent attribute set yields (0, 0) rather
// than a divide-by-zero fault.
func Combine(parts []WeightedAttribute) (strength, coverage float64) {
	var totalWeight, presentWeight, weightedSum float64
	for _, p := range parts {
		if p.Weight <= 0 {
			continue
		}
		totalWeight += p.Weight
		if v, ok := floatValue(p.Strength); ok {
			presentWeight += p.Weight
			weightedSum += v * p.Weight
		}
	}
	if totalWeight <= 0 || presentWeight <= 0 {
		return 0.0, 0.0
	}
	coverage = clamp01(presentWeight / totalWeight)
	strength = clamp01(weightedSum / presentWeight)
	return strength, coverage
}
