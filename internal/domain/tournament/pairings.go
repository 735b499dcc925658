package tournament

// Pairings counts how many times two players have shared a pod.
type Pairings map[[2]string]int

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func (p Pairings) Count(a, b string) int {
	return p[pairKey(a, b)]
}

// Record adds one meeting for every pair inside members.
func (p Pairings) Record(members []string) {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			p[pairKey(members[i], members[j])]++
		}
	}
}

// Against sums the meetings of candidate with each of members.
func (p Pairings) Against(candidate string, members []string) int {
	total := 0
	for _, m := range members {
		total += p.Count(candidate, m)
	}
	return total
}
