package parser

// nearestKey scans a registry for the key closest to name and returns
// it when the edit distance is at most 2, preferring the smaller
// distance and breaking ties lexicographically so suggestions are
// deterministic. Returns "" when nothing is close enough.
func nearestKey[V any](table map[string]V, name string) string {
	if name == "" {
		return ""
	}
	const maxDist = 2
	best := ""
	bestDist := maxDist + 1
	for key := range table {
		if key == name {
			continue
		}
		if d := len(key) - len(name); d > maxDist || d < -maxDist {
			continue
		}
		d := editDistance(name, key)
		if d < bestDist || (d == bestDist && (best == "" || key < best)) {
			best, bestDist = key, d
		}
	}
	if bestDist > maxDist {
		return ""
	}
	return best
}

// editDistance is the Levenshtein distance over bytes. Registry keys
// are ASCII, so byte positions and characters coincide.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
