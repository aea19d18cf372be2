package model

type Label string

const (
	LabelAI    Label = "AI"
	LabelHuman Label = "Human"
)

// Result is the raw output of a classifier before it is formatted for clients.
// ProbAI + ProbHuman is expected to be close to 1; producers are responsible for that.
type Result struct {
	Label      Label
	ProbAI     float64
	ProbHuman  float64
	Confidence *float64
}

type VideoResult struct {
	Result
	FramesSampled int
}

// NewResult builds a Result from the AI probability of a binary classifier.
func NewResult(probAI, probHuman float64) Result {
	label := LabelHuman
	conf := probHuman
	if probAI >= probHuman {
		label = LabelAI
		conf = probAI
	}
	return Result{
		Label:      label,
		ProbAI:     probAI,
		ProbHuman:  probHuman,
		Confidence: &conf,
	}
}
