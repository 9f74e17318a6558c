package resolve

import "strings"

// Similarity scores how close two team names are on a 0-1 scale. It
// takes the better of Levenshtein ratio and character-trigram Jaccard:
// the former handles typos and truncations, the latter word reordering
// ("Tide Crimson" vs "Crimson Tide").
func Similarity(a, b string) float64 {
	if strings.EqualFold(a, b) {
		return 1.0
	}
	return max(levenshteinRatio(a, b), trigramJaccard(a, b))
}

// levenshteinRatio converts edit distance to a similarity ratio (0-1).
func levenshteinRatio(s1, s2 string) float64 {
	s1 = strings.ToLower(s1)
	s2 = strings.ToLower(s2)
	maxLen := float64(max(len(s1), len(s2)))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(s1, s2))/maxLen
}

func levenshtein(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	len1, len2 := len(r1), len(r2)

	row := make([]int, len2+1)
	for i := 0; i <= len2; i++ {
		row[i] = i
	}

	for i := 1; i <= len1; i++ {
		prev := i
		for j := 1; j <= len2; j++ {
			val := row[j]
			if r1[i-1] == r2[j-1] {
				val = row[j-1]
			} else {
				val = min(min(row[j-1]+1, prev+1), row[j]+1)
			}
			row[j-1] = prev
			prev = val
		}
		row[len2] = prev
	}
	return row[len2]
}

// trigramJaccard calculates Jaccard similarity of character 3-grams.
func trigramJaccard(s1, s2 string) float64 {
	set1 := ngramSet(s1, 3)
	set2 := ngramSet(s2, 3)

	intersection := 0
	for g := range set1 {
		if set2[g] {
			intersection++
		}
	}

	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func ngramSet(s string, n int) map[string]bool {
	s = strings.ToLower(s)
	set := make(map[string]bool)
	if len(s) < n {
		if s != "" {
			set[s] = true
		}
		return set
	}
	for i := 0; i <= len(s)-n; i++ {
		set[s[i:i+n]] = true
	}
	return set
}
