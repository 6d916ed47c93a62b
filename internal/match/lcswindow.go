// Package match implements the string primitives behind fuzzy headword
// lookup: orthographic normalization, a windowed longest-common-subsequence
// measure, and the similarity scores built on top of it.
package match

// windowState is one cell of the LCSWindow dynamic-programming grid: the
// best common-subsequence length for a pair of prefixes, plus the tightest
// span [begin, end) of first-string runes known to realize it.
// end-begin >= length holds in every cell.
type windowState struct {
	length int
	begin  int
	end    int
}

// window is the span width in runes, zero exactly when length is zero.
func (ws windowState) window() int { return ws.end - ws.begin }

// LCSWindow returns the length of a longest common subsequence of s1 and s2
// together with the width of the narrowest span of s1 found to contain one.
//
// The span is measured in s1 alone: swapping the arguments leaves the length
// unchanged but generally changes the window. Ties at every step prefer the
// tighter span, so a headword holding the query's letters close together
// reports a smaller window than one that scatters them. Both results are
// rune counts; either string empty yields (0, 0).
func LCSWindow(s1, s2 string) (length, window int) {
	r1 := []rune(s1)
	r2 := []rune(s2)
	n, m := len(r1), len(r2)
	if n == 0 || m == 0 {
		return 0, 0
	}

	// grid[i][j] covers the prefixes r1[:i] and r2[:j]. Row and column zero
	// stay zero-valued: an empty prefix has no subsequence and no span.
	grid := make([][]windowState, n+1)
	for i := range grid {
		grid[i] = make([]windowState, m+1)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			above := grid[i-1][j] // r1 shortened by one
			left := grid[i][j-1]  // r2 shortened by one

			if r1[i-1] != r2[j-1] {
				// Carry the longer subsequence forward; on equal lengths the
				// tighter span wins, and above keeps exact ties.
				switch {
				case left.length > above.length:
					grid[i][j] = left
				case above.length > left.length:
					grid[i][j] = above
				case left.window() < above.window():
					grid[i][j] = left
				default:
					grid[i][j] = above
				}
				continue
			}

			// Matching runes extend the diagonal. A first match opens a
			// fresh span at i-1; later matches keep the span's origin and
			// push its end to the current position.
			diag := grid[i-1][j-1]
			cand := windowState{length: diag.length + 1, begin: diag.begin, end: i}
			if diag.length == 0 {
				cand.begin = i - 1
			}

			// A neighbor can tie the candidate's length but never exceed it.
			// It replaces the candidate only with a strictly tighter span.
			// When both neighbors tie, they are resolved against each other
			// first, above keeping ties, and the survivor faces the candidate.
			aboveTies := above.length == cand.length
			leftTies := left.length == cand.length
			switch {
			case aboveTies && leftTies:
				neighbor := above
				if left.window() < above.window() {
					neighbor = left
				}
				if neighbor.window() < cand.window() {
					cand = neighbor
				}
			case aboveTies:
				if above.window() < cand.window() {
					cand = above
				}
			case leftTies:
				if left.window() < cand.window() {
					cand = left
				}
			}
			grid[i][j] = cand
		}
	}

	final := grid[n][m]
	return final.length, final.window()
}
