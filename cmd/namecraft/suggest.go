package main

// commandNames are the suggestion candidates for mistyped commands.
var commandNames = []string{
	"classify", "case", "tokens", "increment", "decrement",
	"digits", "value", "rename", "mcp", "version", "help",
}

// suggestCommand returns the closest known command within edit distance
// 2 of input, or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDistance {
			best = name
			bestDistance = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
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
