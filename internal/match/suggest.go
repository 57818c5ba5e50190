package match

// MinSimilarity is the lowest normalized similarity Suggest accepts.
const MinSimilarity = 0.6

// Suggest returns the candidate closest to name after normalization, if
// any scores at least MinSimilarity. Ties keep the earliest candidate.
func Suggest(name string, candidates []string) (string, bool) {
	norm := Normalize(name)

	best, bestScore := "", 0.0

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(norm, Normalize(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}

// Hint formats a "did you mean" suffix for name, or returns "".
func Hint(name string, candidates []string) string {
	if s, ok := Suggest(name, candidates); ok {
		return "; did you mean " + `"` + s + `"?`
	}

	return ""
}
