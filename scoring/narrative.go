package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// RankedVibe pairs a vibe with its result for ordered output.
type RankedVibe struct {
	Vibe   Vibe       `json:"vibe"`
	Result VibeResult `json:"result"`
}

// BestVibes ranks the scored vibes by score descending, truncated to topK.
// Ties break lexicographically by vibe name so the ordering is
// deterministic regardless of map iteration order.
func BestVibes(results map[Vibe]VibeResult, topK int) []RankedVibe {
	ranked := make([]RankedVibe, 0, len(results))
	for v, r := range results {
		ranked = append(ranked, RankedVibe{Vibe: v, Result: r})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Result.Score != ranked[j].Result.Score {
			return ranked[i].Result.Score > ranked[j].Result.Score
		}
		return ranked[i].Vibe < ranked[j].Vibe
	})
	if topK >= 0 && topK < len(ranked) {
		ranked = ranked[:topK]
	}
	return ranked
}

// NarrativeOneLiner renders a short explanation for a shop's strongest vibe:
// the winning vibe with its driver phrases, optional walk-time context for
// the closest points of interest, an "open late" mention when the hours say
// so and no driver already does, and a trailing confidence statement.
func NarrativeOneLiner(shopName string, results map[Vibe]VibeResult, walkTimeMin *int, poiNames []string, lateDaysLabel string) string {
	top := BestVibes(results, 1)
	if len(top) == 0 {
		return ""
	}
	vibe, vr := top[0].Vibe, top[0].Result

	drivers := "solid fundamentals"
	if len(vr.Drivers) > 0 {
		drivers = strings.Join(vr.Drivers, ", ")
	}

	bits := []string{fmt.Sprintf("**%s** is strong for **%s** thanks to %s.", shopName, vibe, drivers)}

	if walkTimeMin != nil && len(poiNames) > 0 {
		names := poiNames
		if len(names) > 2 {
			names = names[:2]
		}
		bits = append(bits, fmt.Sprintf("It's about a %d-min walk to %s.", *walkTimeMin, strings.Join(names, " and ")))
	}

	if lateDaysLabel != "" && !hasDriver(vr.Drivers, "open late") {
		bits = append(bits, fmt.Sprintf("Open late %s.", lateDaysLabel))
	}

	bits = append(bits, fmt.Sprintf("Data confidence: %s.", vr.Confidence))
	return strings.Join(bits, " ")
}

func hasDriver(drivers []string, phrase string) bool {
	for _, d := range drivers {
		if d == phrase {
			return true
		}
	}
	return false
}
