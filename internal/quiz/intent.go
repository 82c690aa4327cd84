package quiz

import "fmt"

type IntentKind int

const (
	SelectOption IntentKind = iota + 1
	GoNext
	GoPrevious
	Skip
	Submit
)

func (k IntentKind) String() string {
	switch k {
	case SelectOption:
		return "select_option"
	case GoNext:
		return "go_next"
	case GoPrevious:
		return "go_previous"
	case Skip:
		return "skip"
	case Submit:
		return "submit"
	default:
		return fmt.Sprintf("intent(%d)", int(k))
	}
}

// Intent is one discrete user action. Option is only read for SelectOption
// and always refers to the current question.
type Intent struct {
	Kind   IntentKind
	Option int
}

func Select(option int) Intent {
	return Intent{Kind: SelectOption, Option: option}
}

// Dispatch applies intent to the session. A rejected intent leaves the
// session unchanged.
func (s *Session) Dispatch(intent Intent) error {
	switch intent.Kind {
	case SelectOption:
		return s.RecordAnswer(s.current, intent.Option)
	case GoNext:
		return s.GoToNext()
	case GoPrevious:
		return s.GoToPrevious()
	case Skip:
		return s.Skip()
	case Submit:
		return s.Finish()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownIntent, intent.Kind)
	}
}
