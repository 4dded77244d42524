package scheduling

import "sort"

// rankByDifficulty scores each class by scheduling hardness (spec.md §4.2)
// and returns them in stable descending-score order, ties broken by
// ascending ClassID for determinism (source ordering is non-deterministic
// on ties; this spec mandates determinism).
func rankByDifficulty(classes []Class, prefs map[int][]Preference) []Class {
	type scored struct {
		class Class
		score float64
	}

	scores := make([]scored, len(classes))
	for i, c := range classes {
		scores[i] = scored{class: c, score: difficultyScore(c, prefs[c.ClassID])}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].class.ClassID < scores[j].class.ClassID
	})

	ranked := make([]Class, len(scores))
	for i, s := range scores {
		ranked[i] = s.class
	}
	return ranked
}

func difficultyScore(c Class, prefs []Preference) float64 {
	score := 10 * float64(c.DurationSlots)

	roomPrefs := countPrefs(prefs, PrefRoom)
	if roomPrefs > 0 {
		score += 50 / float64(roomPrefs)
	} else {
		score -= 20
	}

	dayPrefs := countPrefs(prefs, PrefDay)
	if dayPrefs > 0 {
		score += 30 / float64(dayPrefs)
	} else {
		score -= 15
	}

	timePrefs := countPrefs(prefs, PrefTime)
	score += 5 * float64(timePrefs)

	return score
}

func countPrefs(prefs []Preference, kind PrefKind) int {
	count := 0
	for _, p := range prefs {
		if p.Kind == kind {
			count++
		}
	}
	return count
}
