package quiz

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

const minOptions = 2

// Question is one multiple-choice record of a bank. Correct indexes Options.
type Question struct {
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
	Correct int      `json:"correct" yaml:"correct"`
	Note    string   `json:"note,omitempty" yaml:"note,omitempty"`
}

// Bank is the ordered, read-only collection a quiz is sampled from.
type Bank []Question

// Document is the on-the-wire shape of a question bank.
type Document struct {
	Questions []Question `json:"questions" yaml:"questions"`
}

// Validate checks the record invariants: non-empty text, at least two
// options and a correct index inside the options.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidQuestion)
	}
	if len(q.Options) < minOptions {
		return fmt.Errorf("%w: %q has %d options, need at least %d", ErrInvalidQuestion, q.Text, len(q.Options), minOptions)
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("%w: %q correct index %d out of range [0,%d)", ErrInvalidQuestion, q.Text, q.Correct, len(q.Options))
	}
	return nil
}

// HasOption reports whether optionIndex addresses one of the options.
func (q Question) HasOption(optionIndex int) bool {
	return optionIndex >= 0 && optionIndex < len(q.Options)
}

// OptionText returns the label at index, or "" when index is out of range.
func (q Question) OptionText(index int) string {
	if !q.HasOption(index) {
		return ""
	}
	return q.Options[index]
}

// NewBank validates every question and assigns a content-derived ID to the
// ones that arrive without one.
func NewBank(questions []Question) (Bank, error) {
	bank := make(Bank, 0, len(questions))
	for idx, question := range questions {
		if err := question.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", idx+1, err)
		}
		if question.ID == "" {
			question.ID = MakeQuestionID(question)
		}
		bank = append(bank, question)
	}
	return bank, nil
}

// MakeQuestionID hashes the text and the ordered option labels, so the same
// question with reordered options gets a different ID.
func MakeQuestionID(question Question) string {
	var keyBuilder strings.Builder
	keyBuilder.WriteString(question.Text)
	for _, option := range question.Options {
		keyBuilder.WriteString("|")
		keyBuilder.WriteString(option)
	}

	hash := sha1.Sum([]byte(keyBuilder.String()))
	return "q_" + hex.EncodeToString(hash[:6])
}

// OptionLetter maps 0 to "A", 1 to "B" and so on.
func OptionLetter(index int) string {
	if index < 0 || index >= 26 {
		return "?"
	}
	return string(rune('A' + index))
}

// ParseOptionLetter is the inverse of OptionLetter. It accepts one letter in
// either case surrounded by optional whitespace and returns -1 otherwise.
func ParseOptionLetter(answer string) int {
	letter := strings.ToUpper(strings.TrimSpace(answer))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return -1
	}
	return int(letter[0] - 'A')
}
