package quiz

import "math"

type Classification string

const (
	ClassCorrect   Classification = "correct"
	ClassIncorrect Classification = "incorrect"
	ClassSkipped   Classification = "skipped"
)

const NoAnswerText = "No answer"

// Result summarizes a submitted session. Correct and Incorrect only count
// answered questions; Skipped and Unanswered split the rest, so the four
// counts always add up to Total.
type Result struct {
	Total      int        `json:"total"`
	Correct    int        `json:"correct"`
	Incorrect  int        `json:"incorrect"`
	Skipped    int        `json:"skipped"`
	Unanswered int        `json:"unanswered"`
	Percentage int        `json:"percentage"`
	Feedback   []Feedback `json:"feedback"`
}

// Feedback is the per-question detail shown after submission.
type Feedback struct {
	Number         int            `json:"number"`
	Question       string         `json:"question"`
	Answered       bool           `json:"answered"`
	UserAnswer     string         `json:"user_answer"`
	CorrectAnswer  string         `json:"correct_answer"`
	Note           string         `json:"note,omitempty"`
	Classification Classification `json:"classification"`
}

// Score computes the result of a submitted session.
func Score(s *Session) (Result, error) {
	if !s.finished {
		return Result{}, ErrNotFinished
	}

	result := Result{
		Total:    len(s.questions),
		Feedback: make([]Feedback, 0, len(s.questions)),
	}

	for idx, question := range s.questions {
		item := Feedback{
			Number:        idx + 1,
			Question:      question.Text,
			UserAnswer:    NoAnswerText,
			CorrectAnswer: question.OptionText(question.Correct),
			Note:          question.Note,
		}

		answer, answered := s.Answer(idx)
		switch {
		case answered && answer == question.Correct:
			result.Correct++
			item.Classification = ClassCorrect
		case answered:
			result.Incorrect++
			item.Classification = ClassIncorrect
		case s.IsSkipped(idx):
			result.Skipped++
			item.Classification = ClassSkipped
		default:
			// Left behind without an answer or a skip.
			result.Unanswered++
			item.Classification = ClassIncorrect
		}

		if answered {
			item.Answered = true
			item.UserAnswer = question.OptionText(answer)
		}
		result.Feedback = append(result.Feedback, item)
	}

	result.Percentage = Percentage(result.Correct, result.Total)
	return result, nil
}

// Percentage rounds correct/total*100 to the nearest integer, ties away from
// zero. A zero total yields 0.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(total)))
}

// Counts are the running tallies shown while the quiz is in progress.
type Counts struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
	Skipped   int `json:"skipped"`
}

// LiveCounts tallies the answers recorded so far. It may be called at any
// point of the session.
func LiveCounts(s *Session) Counts {
	counts := Counts{Skipped: s.SkippedCount()}
	for idx, question := range s.questions {
		answer, ok := s.Answer(idx)
		if !ok {
			continue
		}
		if answer == question.Correct {
			counts.Correct++
		} else {
			counts.Incorrect++
		}
	}
	return counts
}
