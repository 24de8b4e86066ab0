package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaMismatch is returned when the input is missing columns the
// analysis requires.
var ErrSchemaMismatch = errors.New("schema mismatch")

// suggestionThreshold is the minimum normalized similarity for a header to be
// offered as a "did you mean" candidate.
const suggestionThreshold = 0.6

// MissingColumn describes one required column absent from the input, with the
// closest available header (if any is similar enough).
type MissingColumn struct {
	Column     string
	Suggestion string
}

// CheckRequired verifies that every required column is present in the input
// header set. On failure it returns ErrSchemaMismatch wrapped with the missing
// column names and, where one exists, the closest-matching available header.
func CheckRequired(available []string) error {
	missing := FindMissing(available, RequiredColumns)
	if len(missing) == 0 {
		return nil
	}

	parts := make([]string, len(missing))
	for i, mc := range missing {
		if mc.Suggestion != "" {
			parts[i] = fmt.Sprintf("%s (did you mean %q?)", mc.Column, mc.Suggestion)
		} else {
			parts[i] = mc.Column
		}
	}
	return fmt.Errorf("%w: missing columns: %s", ErrSchemaMismatch, strings.Join(parts, ", "))
}

// FindMissing returns the required columns not present in available, each with
// its best fuzzy suggestion. Matching is exact on the normalized header
// (lowercased, whitespace/underscores/hyphens stripped); suggestions use
// normalized Levenshtein similarity.
func FindMissing(available, required []string) []MissingColumn {
	present := make(map[string]bool, len(available))
	for _, h := range available {
		present[normalizeHeader(h)] = true
	}

	var missing []MissingColumn
	for _, col := range required {
		if present[normalizeHeader(col)] {
			continue
		}

		best := ""
		bestScore := 0.0
		for _, h := range available {
			score := similarity(normalizeHeader(col), normalizeHeader(h))
			if score > bestScore {
				bestScore = score
				best = h
			}
		}
		if bestScore < suggestionThreshold {
			best = ""
		}
		missing = append(missing, MissingColumn{Column: col, Suggestion: best})
	}
	return missing
}

// normalizeHeader lowercases a header string and strips whitespace,
// underscores, and hyphens.
func normalizeHeader(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// similarity computes a normalized similarity score between two strings.
// Returns a value between 0.0 (completely different) and 1.0 (identical).
// Formula: 1.0 - (levenshteinDistance(a, b) / max(len(a), len(b)))
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	aLen := len([]rune(a))
	bLen := len([]rune(b))

	maxLen := aLen
	if bLen > maxLen {
		maxLen = bLen
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := levenshteinDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// levenshteinDistance computes the Levenshtein edit distance between two
// strings: the minimum number of single-character insertions, deletions, or
// substitutions required to transform a into b.
func levenshteinDistance(a, b string) int {
	aRunes := []rune(a)
	bRunes := []rune(b)
	aLen := len(aRunes)
	bLen := len(bRunes)

	if aLen == 0 {
		return bLen
	}
	if bLen == 0 {
		return aLen
	}

	// Two rows instead of a full matrix for O(min(m,n)) space.
	if aLen > bLen {
		aRunes, bRunes = bRunes, aRunes
		aLen, bLen = bLen, aLen
	}

	prevRow := make([]int, aLen+1)
	currRow := make([]int, aLen+1)

	for i := 0; i <= aLen; i++ {
		prevRow[i] = i
	}

	for j := 1; j <= bLen; j++ {
		currRow[0] = j
		for i := 1; i <= aLen; i++ {
			cost := 1
			if aRunes[i-1] == bRunes[j-1] {
				cost = 0
			}

			deletion := prevRow[i] + 1
			insertion := currRow[i-1] + 1
			substitution := prevRow[i-1] + cost

			currRow[i] = min3(deletion, insertion, substitution)
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[aLen]
}

// min3 returns the minimum of three integers.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
