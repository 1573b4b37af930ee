package scoring

import (
	"math"
	"testing"
)

func TestRubrics_WeightsSumToOne(t *testing.T) {
	for _, v := range AllVibes() {
		entries := Rubric(v)
		if len(entries) == 0 {
			t.Fatalf("No rubric for vibe %s", v)
		}
		var sum float64
		for _, e := range entries {
			if e.Weight <= 0 {
				t.Errorf("%s / %s: non-positive weight %v", v, e.Attribute, e.Weight)
			}
			sum += e.Weight
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("%s: weights sum to %v, expected 1.0", v, sum)
		}
	}
}

func TestRubric_ReturnsCopy(t *testing.T) {
	first := Rubric(VibeWorkFriendly)
	first[0].Weight = 99.0

	second := Rubric(VibeWorkFriendly)
	if second[0].Weight == 99.0 {
		t.Errorf("Expected Rubric to return an isolated copy")
	}
}

func TestAllRubrics_CoversEveryVibe(t *testing.T) {
	all := AllRubrics()
	if len(all) != len(AllVibes()) {
		t.Fatalf("Expected %d rubrics, got %d", len(AllVibes()), len(all))
	}
	for _, v := range AllVibes() {
		if _, ok := all[v]; !ok {
			t.Errorf("Missing rubric for %s", v)
		}
	}
}

func TestAttributeStrengths_MatchRubricLabels(t *testing.T) {
	// Every rubric label must have a strength entry, otherwise the
	// contribution tables would silently show zeros.
	s := richWorkShop()
	for _, v := range AllVibes() {
		strengths := AttributeStrengths(v, s, nil, nil)
		for _, e := range Rubric(v) {
			if _, ok := strengths[e.Attribute]; !ok {
				t.Errorf("%s: no strength for rubric label %q", v, e.Attribute)
			}
		}
	}
}
