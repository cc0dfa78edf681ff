package markov

// SelectionProbabilities returns, aligned with Choices(), the probability that
// Choose picks each alternative when the generator is uniform on [0,1).
//
// With total W > 0 the threshold floor(r*W) is uniform over 0..W-1, and
// threshold t selects the last choice whose weight is <= t, falling back to
// the first choice when none qualifies. Among equal weights only the last
// can win. Returns nil when the Link is empty or W <= 0, where the threshold
// is not uniform over a non-empty range.
// Complexity: O(k).
func (l *Link[T]) SelectionProbabilities() []float64 {
	k := len(l.list)
	if k == 0 || l.total <= 0 {
		return nil
	}
	w := l.total
	clamp := func(x int64) int64 {
		switch {
		case x < 0:
			return 0
		case x > w:
			return w
		}
		return x
	}

	probs := make([]float64, k)
	// Thresholds below the lightest weight fall back to the first choice.
	probs[0] = float64(clamp(l.list[0].Weight)) / float64(w)
	for i := 0; i < k; i++ {
		lo := clamp(l.list[i].Weight)
		hi := w
		if i+1 < k {
			hi = clamp(l.list[i+1].Weight)
		}
		if hi > lo {
			probs[i] += float64(hi-lo) / float64(w)
		}
	}

	return probs
}
