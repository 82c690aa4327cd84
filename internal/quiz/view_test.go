package quiz

import "testing"

func TestCurrentViewControls(t *testing.T) {
	session := newTestSession(t, 0, 1, 0)

	view := CurrentView(session)
	if view.Number != 1 || view.Total != 3 {
		t.Fatalf("unexpected position: %d of %d", view.Number, view.Total)
	}
	if view.CanPrevious || !view.CanSkip || view.ForwardLabel != LabelNext {
		t.Fatalf("unexpected controls on first question: %+v", view)
	}
	if view.HasSelection || view.Selected != -1 {
		t.Fatalf("expected no selection, got %+v", view)
	}
	if view.SessionID != session.ID {
		t.Fatalf("view session id = %q, want %q", view.SessionID, session.ID)
	}

	if err := session.GoToNext(); err != nil {
		t.Fatalf("GoToNext failed: %v", err)
	}
	view = CurrentView(session)
	if !view.CanPrevious || !view.CanSkip || view.ForwardLabel != LabelNext {
		t.Fatalf("unexpected controls on middle question: %+v", view)
	}

	if err := session.GoToNext(); err != nil {
		t.Fatalf("GoToNext failed: %v", err)
	}
	view = CurrentView(session)
	if !view.CanPrevious || view.CanSkip || view.ForwardLabel != LabelSubmit {
		t.Fatalf("unexpected controls on last question: %+v", view)
	}
}

func TestCurrentViewShowsSelectionOnReturn(t *testing.T) {
	session := newTestSession(t, 0, 1)

	if err := session.Dispatch(Select(1)); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := session.GoToNext(); err != nil {
		t.Fatalf("GoToNext failed: %v", err)
	}
	if err := session.GoToPrevious(); err != nil {
		t.Fatalf("GoToPrevious failed: %v", err)
	}

	view := CurrentView(session)
	if !view.HasSelection || view.Selected != 1 {
		t.Fatalf("expected option 1 selected, got %+v", view)
	}
	if view.Counts.Incorrect != 1 {
		t.Fatalf("expected live incorrect count 1, got %+v", view.Counts)
	}
}

func TestCurrentViewAfterFinishDisablesControls(t *testing.T) {
	session := newTestSession(t, 0, 1)
	if err := session.GoToNext(); err != nil {
		t.Fatalf("GoToNext failed: %v", err)
	}
	if err := session.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	view := CurrentView(session)
	if view.CanPrevious || view.CanSkip || !view.Finished {
		t.Fatalf("expected disabled controls after finish: %+v", view)
	}
}
