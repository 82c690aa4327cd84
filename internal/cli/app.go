package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"quiz-session/internal/quiz"
)

type Config struct {
	MaxQuestions int
	Sampler      quiz.Sampler
	Log          logrus.FieldLogger
}

// Run plays one quiz over questions: it samples the session, reads one
// command per line from in and renders to out until the quiz is submitted,
// the user quits, or in is exhausted.
func Run(ctx context.Context, in io.Reader, out io.Writer, questions quiz.Bank, cfg Config) error {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	session, err := quiz.Start(questions, cfg.MaxQuestions, cfg.Sampler)
	if err != nil {
		log.WithError(err).Error("quiz cannot start")
		return err
	}
	log = log.WithField("session_id", session.ID)
	log.WithFields(logrus.Fields{
		"bank_size": len(questions),
		"questions": session.Len(),
	}).Info("quiz started")

	lines := readLines(ctx, in)
	printHelp(out)
	render(out, quiz.CurrentView(session))

	for {
		fmt.Fprint(out, "\n> ")

		var read lineResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nQuiz interrupted.")
			log.Info("quiz interrupted")
			return ctx.Err()
		case read = <-lines:
		}

		line, err := read.line, read.err
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(line) != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out, "\nQuiz abandoned.")
				log.Info("input closed before submission")
				return nil
			}
			return err
		}

		cmd, intent, parseErr := parseCommand(line)
		if parseErr != nil {
			fmt.Fprintln(out, parseErr.Error())
			continue
		}

		switch cmd {
		case cmdNone:
			continue
		case cmdHelp:
			printHelp(out)
			continue
		case cmdQuit:
			fmt.Fprintln(out, "Quiz abandoned.")
			log.Info("quiz abandoned by user")
			return nil
		}

		if err := session.Dispatch(intent); err != nil {
			log.WithError(err).WithField("intent", intent.Kind.String()).Debug("intent rejected")
			fmt.Fprintln(out, describeError(err, intent.Kind, session))
			continue
		}
		log.WithFields(logrus.Fields{
			"intent":   intent.Kind.String(),
			"position": session.CurrentIndex() + 1,
		}).Debug("intent applied")

		if session.Finished() {
			result, err := quiz.Score(session)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"correct":    result.Correct,
				"incorrect":  result.Incorrect,
				"skipped":    result.Skipped,
				"unanswered": result.Unanswered,
				"percentage": result.Percentage,
			}).Info("quiz submitted")
			printResult(out, result)
			return nil
		}

		render(out, quiz.CurrentView(session))
	}
}

type command int

const (
	cmdNone command = iota
	cmdIntent
	cmdHelp
	cmdQuit
)

// parseCommand maps an input line to an intent. A single letter selects an
// option of the current question; words drive navigation.
func parseCommand(line string) (command, quiz.Intent, error) {
	word := strings.ToLower(strings.TrimSpace(line))
	switch word {
	case "":
		return cmdNone, quiz.Intent{}, nil
	case "help", "?":
		return cmdHelp, quiz.Intent{}, nil
	case "quit", "exit":
		return cmdQuit, quiz.Intent{}, nil
	case "next", ">":
		return cmdIntent, quiz.Intent{Kind: quiz.GoNext}, nil
	case "prev", "previous", "back", "<":
		return cmdIntent, quiz.Intent{Kind: quiz.GoPrevious}, nil
	case "skip":
		return cmdIntent, quiz.Intent{Kind: quiz.Skip}, nil
	case "submit", "finish":
		return cmdIntent, quiz.Intent{Kind: quiz.Submit}, nil
	}

	if option := quiz.ParseOptionLetter(word); option >= 0 {
		return cmdIntent, quiz.Select(option), nil
	}
	return cmdNone, quiz.Intent{}, fmt.Errorf("unknown command %q. type 'help' for usage.", strings.TrimSpace(line))
}

func describeError(err error, kind quiz.IntentKind, session *quiz.Session) string {
	switch {
	case errors.Is(err, quiz.ErrInvalidOption):
		last := len(session.Current().Options) - 1
		return fmt.Sprintf("Invalid option. Please enter a letter A-%s.", quiz.OptionLetter(last))
	case errors.Is(err, quiz.ErrAtBoundary) && kind == quiz.GoPrevious:
		return "Already at the first question."
	case errors.Is(err, quiz.ErrAtBoundary) && kind == quiz.Skip:
		return "The last question cannot be skipped. Use 'submit' to finish."
	case errors.Is(err, quiz.ErrFinished):
		return "The quiz has already been submitted."
	default:
		return "error: " + err.Error()
	}
}

type lineResult struct {
	line string
	err  error
}

// readLines feeds input lines to the returned channel until a read fails or
// ctx is done, so a pending read never holds up cancellation.
func readLines(ctx context.Context, in io.Reader) <-chan lineResult {
	lines := make(chan lineResult)
	go func() {
		reader := bufio.NewReader(in)
		for {
			line, err := reader.ReadString('\n')
			select {
			case lines <- lineResult{line: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  A, B, C ...   choose an option")
	fmt.Fprintln(out, "  next          go to the next question (submits on the last one)")
	fmt.Fprintln(out, "  prev          go back one question")
	fmt.Fprintln(out, "  skip          skip this question")
	fmt.Fprintln(out, "  submit        finish the quiz now")
	fmt.Fprintln(out, "  help")
	fmt.Fprintln(out, "  quit")
}
