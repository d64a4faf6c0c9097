package question

import "math"

// NextSuccessRate folds one more scored answer into a running success
// percentage. The stored rate is treated as the share of correct answers
// over timesUsed trials; the denominator stays timesUsed because selection,
// not answering, advances the counter. ok is false when timesUsed is 0.
func NextSuccessRate(rate float64, timesUsed int, correct bool) (next float64, ok bool) {
	if timesUsed <= 0 {
		return rate, false
	}

	successes := rate / 100 * float64(timesUsed)
	if correct {
		successes++
	}

	next = successes / float64(timesUsed) * 100
	next = math.Round(next*100) / 100

	if next > 100 {
		next = 100
	}
	if next < 0 {
		next = 0
	}
	return next, true
}
