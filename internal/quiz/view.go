package quiz

const (
	LabelNext   = "Next"
	LabelSubmit = "Submit"
)

// View is everything a presentation surface needs to draw the current
// question and its controls.
type View struct {
	SessionID    string   `json:"session_id"`
	Number       int      `json:"number"`
	Total        int      `json:"total"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	Selected     int      `json:"selected"`
	HasSelection bool     `json:"has_selection"`
	CanPrevious  bool     `json:"can_previous"`
	CanSkip      bool     `json:"can_skip"`
	ForwardLabel string   `json:"forward_label"`
	Counts       Counts   `json:"counts"`
	Finished     bool     `json:"finished"`
}

// CurrentView snapshots the session for rendering. Selected is -1 when the
// current question has no answer.
func CurrentView(s *Session) View {
	question := s.Current()
	selected, hasSelection := s.Answer(s.current)

	options := make([]string, len(question.Options))
	copy(options, question.Options)

	forward := LabelNext
	if s.IsLast() {
		forward = LabelSubmit
	}

	return View{
		SessionID:    s.ID,
		Number:       s.current + 1,
		Total:        len(s.questions),
		Text:         question.Text,
		Options:      options,
		Selected:     selected,
		HasSelection: hasSelection,
		CanPrevious:  !s.finished && !s.IsFirst(),
		CanSkip:      !s.finished && !s.IsLast(),
		ForwardLabel: forward,
		Counts:       LiveCounts(s),
		Finished:     s.finished,
	}
}
