package scoring

// RubricEntry is one attribute row of a vibe's fixed weight table.
type RubricEntry struct {
	Attribute string  `json:"attribute"`
	Weight    float64 `json:"weight"`
}

// rubrics mirror the weight constants inside the scorers, keyed by the
// human-readable attribute labels used for explainability output. They are
// process-wide constant configuration: declared weights per vibe sum to 1.0
// and are never mutated at runtime.
var rubrics = map[Vibe][]RubricEntry{
	VibeWorkFriendly: {
		{"Wi-Fi quality", 0.22},
		{"Outlets availability", 0.18},
		{"Lower noise", 0.15},
		{"Seating capacity", 0.12},
		{"Restroom access", 0.10},
		{"Open late", 0.10},
		{"Cleanliness", 0.08},
		{"Parking", 0.05},
	},
	VibeAesthetic: {
		{"Aesthetic score", 0.40},
		{"Natural light", 0.20},
		{"Latte art / presentation", 0.15},
		{"Cleanliness", 0.10},
		{"Unique decor", 0.10},
		{"Desserts", 0.05},
	},
	VibeGrabAndGo: {
		{"Speed (mobile/drive-thru/peak)", 0.35},
		{"Parking", 0.25},
		{"Opens early", 0.15},
		{"Mobile order", 0.15},
		{"Drive-through", 0.10},
	},
	VibeDateNight: {
		{"Ambience (lighting/comfort/mid-noise)", 0.25},
		{"Desserts", 0.20},
		{"Open late", 0.18},
		{"Aesthetic score", 0.15},
		{"Walkable things nearby", 0.12},
		{"Cleanliness", 0.10},
	},
	VibeDietaryFriendly: {
		{"Gluten-free options", 0.40},
		{"Dairy-free milks", 0.28},
		{"Nut-free choices", 0.12},
		{"Ingredient transparency", 0.10},
		{"Cleanliness", 0.10},
	},
	VibeStudySpot: {
		{"Outlets availability", 0.28},
		{"Seating capacity", 0.22},
		{"Wi-Fi quality", 0.18},
		{"Budget-friendliness", 0.12},
		{"Open late", 0.10},
		{"Lower noise", 0.10},
	},
	VibeFamilyFriendly: {
		{"Roomy layout / space", 0.30},
		{"Restroom access", 0.20},
		{"Parking", 0.18},
		{"Mid-noise tolerance", 0.15},
		{"Kids snacks / treats", 0.10},
		{"Park nearby", 0.07},
	},
}

// Rubric returns a vibe's attribute weight table in declaration order.
// The slice is a copy; callers cannot mutate the underlying configuration.
func Rubric(v Vibe) []RubricEntry {
	entries, ok := rubrics[v]
	if !ok {
		return nil
	}
	out := make([]RubricEntry, len(entries))
	copy(out, entries)
	return out
}

// AllRubrics returns every vibe's weight table keyed by vibe name.
func AllRubrics() map[Vibe][]RubricEntry {
	out := make(map[Vibe][]RubricEntry, len(rubrics))
	for v := range rubrics {
		out[v] = Rubric(v)
	}
	return out
}
