package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"quiz-session/internal/bank"
	"quiz-session/internal/cli"
	"quiz-session/internal/config"
	"quiz-session/internal/quiz"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to $QUIZ_CONFIG)")
	bankRef := flag.String("bank", "", "question bank: file path, http(s) URL, sqlite://path or opentdb://?amount=N")
	maxQuestions := flag.Int("max", 0, "maximum number of questions per quiz")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if *bankRef != "" {
		cfg.BankSource = *bankRef
	}
	if *maxQuestions > 0 {
		cfg.MaxQuestions = *maxQuestions
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Diagnostics go to stderr so they never interleave with the quiz.
	logger := config.NewLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	source, err := bank.Open(cfg.BankSource, bank.Options{Timeout: cfg.HTTPTimeout})
	if err != nil {
		logger.WithError(err).Error("question bank unavailable")
		os.Exit(1)
	}
	questions, err := bank.Load(ctx, source, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not load the question bank. Please try again later.")
		os.Exit(1)
	}

	err = cli.Run(ctx, os.Stdin, os.Stdout, questions, cli.Config{
		MaxQuestions: cfg.MaxQuestions,
		Log:          logger,
	})
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, quiz.ErrEmptyBank), errors.Is(err, quiz.ErrEmptyQuestionSet):
		fmt.Fprintln(os.Stderr, "The question bank has no questions.")
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
