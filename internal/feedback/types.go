package feedback

import "time"

// Score bounds for the four rating dimensions.
const (
	MinScore = 1
	MaxScore = 5
)

// Scores is one reviewer's assessment of a report execution.
type Scores struct {
	Relevance         int    `json:"relevance"`
	Completeness      int    `json:"completeness"`
	Reliability       int    `json:"reliability"`
	Understandability int    `json:"understandability"`
	Comments          string `json:"comments,omitempty"`
}

// Valid reports whether every rating dimension is within bounds.
func (s Scores) Valid() bool {
	for _, v := range []int{s.Relevance, s.Completeness, s.Reliability, s.Understandability} {
		if v < MinScore || v > MaxScore {
			return false
		}
	}
	return true
}

type SubmitInput struct {
	ExecutionID string
	Scores      Scores
}

type GetInput struct {
	ExecutionID string
}

type SubmitOutput struct {
	ID          string
	ExecutionID string
	LoggedAt    time.Time
}

type FeedbackOutput struct {
	ID          string
	Username    string
	ExecutionID string
	Scores      Scores
	Query       string
	Category    string
	LoggedAt    time.Time
}

type ListExecutionIDsOutput struct {
	ExecutionIDs []string
}
