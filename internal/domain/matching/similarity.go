package matching

// similarChars counts the characters two strings share, using the recursive
// longest-common-substring partitioning of Ratcliff/Obershelp. The scoring
// must stay byte-for-byte compatible with the percentages historical matches
// were accepted under, which is why this is implemented here rather than
// swapped for an edit-distance metric.
func similarChars(a, b string) int {
	posA, posB, max := longestCommonSubstring(a, b)
	if max == 0 {
		return 0
	}
	sum := max
	sum += similarChars(a[:posA], b[:posB])
	sum += similarChars(a[posA+max:], b[posB+max:])
	return sum
}

func longestCommonSubstring(a, b string) (posA, posB, max int) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			if k > max {
				posA, posB, max = i, j, k
			}
		}
	}
	return posA, posB, max
}

// SimilarityPercent returns the percentage of characters the two strings
// share, in [0, 100].
func SimilarityPercent(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	sim := similarChars(a, b)
	return float64(sim*2) * 100 / float64(len(a)+len(b))
}
