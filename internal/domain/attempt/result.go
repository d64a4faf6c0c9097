package attempt

// PassThreshold is the minimum percentage that counts as a pass.
const PassThreshold = 60.0

// Result is the outcome of scoring an attempt's answers.
type Result struct {
	CorrectAnswers int
	TotalQuestions int // answers scored, not questions presented
	Percentage     float64
	Passed         bool
	TimeSpent      int
}

// Score tallies a set of answers. With no answers the percentage is 0.
func Score(answers []Answer) Result {
	r := Result{TotalQuestions: len(answers)}
	for _, a := range answers {
		if a.IsCorrect {
			r.CorrectAnswers++
		}
		r.TimeSpent += a.TimeSpent
	}
	if r.TotalQuestions > 0 {
		r.Percentage = float64(r.CorrectAnswers*100) / float64(r.TotalQuestions)
	}
	r.Passed = r.Percentage >= PassThreshold
	return r
}
