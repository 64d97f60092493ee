package vocab

import "strings"

// suggestionThreshold is the minimum similarity for a canonical name to be
// offered as a "did you mean" hint.
const suggestionThreshold = 0.7

// levenshteinDistance calculates the minimum number of single-character edits
// (insertions, deletions, or substitutions) required to change one string into another.
func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Only two rows of the matrix are needed at a time
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// similarity returns a case-insensitive score between 0.0 (completely
// different) and 1.0 (identical).
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshteinDistance(a, b))/float64(maxLen)
}

// closest returns the candidate most similar to target, or "" if none
// reaches the threshold. Ties go to the earlier candidate.
func closest(target string, candidates []string, threshold float64) string {
	var best string
	var bestScore float64
	for _, c := range candidates {
		if s := similarity(target, c); s > bestScore {
			best, bestScore = c, s
		}
	}
	if bestScore >= threshold {
		return best
	}
	return ""
}
