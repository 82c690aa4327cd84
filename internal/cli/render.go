package cli

import (
	"fmt"
	"io"
	"strings"

	"quiz-session/internal/quiz"
)

func render(out io.Writer, view quiz.View) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Question %d of %d\n", view.Number, view.Total)
	fmt.Fprintf(out, "%s\n\n", view.Text)

	for idx, option := range view.Options {
		marker := " "
		if view.HasSelection && view.Selected == idx {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s. %s\n", marker, quiz.OptionLetter(idx), option)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Correct: %d  Incorrect: %d  Skipped: %d\n",
		view.Counts.Correct, view.Counts.Incorrect, view.Counts.Skipped)

	controls := make([]string, 0, 3)
	if view.CanPrevious {
		controls = append(controls, "[prev]")
	}
	if view.CanSkip {
		controls = append(controls, "[skip]")
	}
	controls = append(controls, "["+strings.ToLower(view.ForwardLabel)+"]")
	fmt.Fprintln(out, strings.Join(controls, " "))
}

func printResult(out io.Writer, result quiz.Result) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "You got %d out of %d correct (%d%%).\n", result.Correct, result.Total, result.Percentage)
	fmt.Fprintf(out, "Incorrect: %d  Skipped: %d  Unanswered: %d\n", result.Incorrect, result.Skipped, result.Unanswered)

	for _, item := range result.Feedback {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Q%d [%s]: %s\n", item.Number, item.Classification, item.Question)
		fmt.Fprintf(out, "  Your answer: %s\n", item.UserAnswer)
		if item.Classification != quiz.ClassCorrect {
			fmt.Fprintf(out, "  Correct answer: %s\n", item.CorrectAnswer)
		}
		if item.Note != "" {
			fmt.Fprintf(out, "  Note: %s\n", item.Note)
		}
	}
}
