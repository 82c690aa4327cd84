package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

const noAnswer = -1

// Session is one attempt at a sampled question sequence. It is not safe for
// concurrent use: intents are applied one at a time by a single owner.
//
// Invariants:
//   - 0 <= current < len(questions)
//   - answers[i] is noAnswer or a valid option index of questions[i]
//   - skipped only holds indexes whose answer is noAnswer
//   - once finished, every mutating call fails with ErrFinished
type Session struct {
	ID string

	questions []Question
	current   int
	answers   []int
	skipped   map[int]struct{}
	finished  bool
}

// Start samples up to maxCount questions from bank and opens a session over
// them.
func Start(bank Bank, maxCount int, sampler Sampler) (*Session, error) {
	if len(bank) == 0 {
		return nil, ErrEmptyBank
	}
	if sampler == nil {
		sampler = NewRandomSampler(nil)
	}
	return NewSession(sampler.Sample(bank, maxCount))
}

// NewSession opens a session over questions in the given order.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}

	active := make([]Question, len(questions))
	copy(active, questions)

	answers := make([]int, len(active))
	for idx := range answers {
		answers[idx] = noAnswer
	}

	return &Session{
		ID:        uuid.NewString(),
		questions: active,
		answers:   answers,
		skipped:   make(map[int]struct{}),
	}, nil
}

func (s *Session) Len() int {
	return len(s.questions)
}

func (s *Session) CurrentIndex() int {
	return s.current
}

func (s *Session) Current() Question {
	return s.questions[s.current]
}

// Question returns the active question at index.
func (s *Session) Question(index int) (Question, bool) {
	if index < 0 || index >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[index], true
}

// Questions returns a copy of the active sequence.
func (s *Session) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Answer returns the recorded option for index and whether one exists.
func (s *Session) Answer(index int) (int, bool) {
	if index < 0 || index >= len(s.answers) || s.answers[index] == noAnswer {
		return noAnswer, false
	}
	return s.answers[index], true
}

func (s *Session) IsSkipped(index int) bool {
	_, ok := s.skipped[index]
	return ok
}

// SkippedCount is the number of distinct questions that were skipped and are
// still unanswered. Answering a skipped question lowers it.
func (s *Session) SkippedCount() int {
	return len(s.skipped)
}

func (s *Session) Finished() bool {
	return s.finished
}

func (s *Session) IsFirst() bool {
	return s.current == 0
}

func (s *Session) IsLast() bool {
	return s.current == len(s.questions)-1
}

// RecordAnswer stores optionIndex as the answer to the question at index,
// replacing any earlier answer, and clears a pending skip on it.
func (s *Session) RecordAnswer(index, optionIndex int) error {
	if s.finished {
		return ErrFinished
	}
	if index < 0 || index >= len(s.questions) {
		return fmt.Errorf("%w: question index %d out of range [0,%d)", ErrInvalidOption, index, len(s.questions))
	}
	if !s.questions[index].HasOption(optionIndex) {
		return fmt.Errorf("%w: option %d out of range [0,%d) for question %d",
			ErrInvalidOption, optionIndex, len(s.questions[index].Options), index+1)
	}

	s.answers[index] = optionIndex
	delete(s.skipped, index)
	return nil
}

func (s *Session) GoToPrevious() error {
	if s.finished {
		return ErrFinished
	}
	if s.current == 0 {
		return fmt.Errorf("%w: already at the first question", ErrAtBoundary)
	}
	s.current--
	return nil
}

// GoToNext advances one question. On the last question it submits the
// session instead. Navigation is free: an unanswered question may be left
// behind and is scored as "No answer".
func (s *Session) GoToNext() error {
	if s.finished {
		return ErrFinished
	}
	if s.IsLast() {
		return s.Finish()
	}
	s.current++
	return nil
}

// Skip marks the current question as skipped when it has no answer and
// advances. The last question cannot be skipped; it has to be submitted.
func (s *Session) Skip() error {
	if s.finished {
		return ErrFinished
	}
	if s.IsLast() {
		return fmt.Errorf("%w: the last question cannot be skipped", ErrAtBoundary)
	}
	if s.answers[s.current] == noAnswer {
		s.skipped[s.current] = struct{}{}
	}
	s.current++
	return nil
}

func (s *Session) Finish() error {
	if s.finished {
		return ErrFinished
	}
	s.finished = true
	return nil
}
