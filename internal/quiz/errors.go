package quiz

import "errors"

var (
	ErrLoadFailure      = errors.New("question bank load failed")
	ErrInvalidQuestion  = errors.New("invalid question")
	ErrEmptyBank        = errors.New("question bank is empty")
	ErrEmptyQuestionSet = errors.New("quiz has no questions")
	ErrInvalidOption    = errors.New("invalid option")
	ErrAtBoundary       = errors.New("no question in that direction")
	ErrFinished         = errors.New("quiz already submitted")
	ErrNotFinished      = errors.New("quiz not submitted yet")
	ErrUnknownIntent    = errors.New("unknown intent")
)
