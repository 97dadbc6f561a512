package chain

import "github.com/chewxy/math32"

// Viterbi writes the best-scoring labeling of items under w into pred and
// returns its score. len(pred) must equal len(items). Ties break towards the
// lower label id, so an all-zero weight vector labels everything 0.
func (m *Model) Viterbi(w []float32, items [][]Attr, pred []int) float32 {
	t := len(items)
	if t == 0 {
		return 0
	}
	l := m.Labels.Len()

	dp := make([][]float32, t)
	back := make([][]int, t)
	for i := range dp {
		dp[i] = make([]float32, l)
		back[i] = make([]int, l)
	}

	for y := 0; y < l; y++ {
		dp[0][y] = m.state(w, items[0], y)
	}

	for i := 1; i < t; i++ {
		for y := 0; y < l; y++ {
			emit := m.state(w, items[i], y)
			best := math32.Inf(-1)
			bestPrev := 0
			for p := 0; p < l; p++ {
				s := dp[i-1][p] + w[m.TransFeature(p, y)] + emit
				if s > best {
					best = s
					bestPrev = p
				}
			}
			dp[i][y] = best
			back[i][y] = bestPrev
		}
	}

	bestScore := math32.Inf(-1)
	bestY := 0
	for y := 0; y < l; y++ {
		if dp[t-1][y] > bestScore {
			bestScore = dp[t-1][y]
			bestY = y
		}
	}
	pred[t-1] = bestY
	for i := t - 1; i > 0; i-- {
		bestY = back[i][bestY]
		pred[i-1] = bestY
	}
	return bestScore
}

// state scores one position under label y.
func (m *Model) state(w []float32, item []Attr, y int) float32 {
	var s float32
	for _, a := range item {
		s += w[m.StateFeature(a.ID, y)] * a.Value
	}
	return s
}
