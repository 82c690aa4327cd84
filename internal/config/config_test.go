package config

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"quiz-session/internal/quiz"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"QUIZ_CONFIG", "QUIZ_BANK", "QUIZ_DB", "ADDR", "LOG_LEVEL", "LOG_FORMAT", "QUIZ_MAX_QUESTIONS", "QUIZ_HTTP_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, Defaults())
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "quiz.yaml")
	content := "bank: bank.yaml\nmax_questions: 5\nhttp_timeout: 2s\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("QUIZ_BANK", "http://127.0.0.1:8081/questions")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BankSource != "http://127.0.0.1:8081/questions" {
		t.Fatalf("env should override file, got bank %q", cfg.BankSource)
	}
	if cfg.MaxQuestions != 5 || cfg.HTTPTimeout != 2*time.Second || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "quiz.yaml")
	if err := os.WriteFile(path, []byte("max_questions: 9\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("QUIZ_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxQuestions != 9 {
		t.Fatalf("max questions = %d, want 9", cfg.MaxQuestions)
	}
}

func TestLoadMaxQuestionsFallsBackWhenInvalid(t *testing.T) {
	for _, value := range []string{"0", "-3", "many", " 12 "} {
		clearEnv(t)
		t.Setenv("QUIZ_MAX_QUESTIONS", value)

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		want := DefaultMaxQuestions
		if value == " 12 " {
			want = 12
		}
		if cfg.MaxQuestions != want {
			t.Fatalf("QUIZ_MAX_QUESTIONS=%q gave %d, want %d", value, cfg.MaxQuestions, want)
		}
	}
}

func TestLoadFileNegativeMaxUsesDefault(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "quiz.yaml")
	if err := os.WriteFile(path, []byte("max_questions: -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxQuestions != DefaultMaxQuestions {
		t.Fatalf("max questions = %d, want default", cfg.MaxQuestions)
	}
}

func TestLoadBadFile(t *testing.T) {
	clearEnv(t)

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := Load(missing); !errors.Is(err, quiz.ErrLoadFailure) {
		t.Fatalf("Load(missing) error = %v, want ErrLoadFailure", err)
	}

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(broken, []byte("max_questions: [1, 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(broken); !errors.Is(err, quiz.ErrLoadFailure) {
		t.Fatalf("Load(broken) error = %v, want ErrLoadFailure", err)
	}
}

func TestNewLoggerLevelAndFormat(t *testing.T) {
	var out bytes.Buffer
	logger := newLogger(&out, "warn", "json")

	if logger.GetLevel() != logrus.WarnLevel {
		t.Fatalf("level = %s, want warn", logger.GetLevel())
	}
	logger.Info("hidden")
	logger.WithField("session_id", "s1").Warn("shown")

	text := out.String()
	if strings.Contains(text, "hidden") {
		t.Fatalf("info line should be filtered: %s", text)
	}
	if !strings.Contains(text, `"session_id":"s1"`) {
		t.Fatalf("expected json field in output: %s", text)
	}

	if newLogger(&out, "loud", "text").GetLevel() != logrus.InfoLevel {
		t.Fatalf("unknown level should fall back to info")
	}
}

func TestWithContext(t *testing.T) {
	var out bytes.Buffer
	entry := newLogger(&out, "info", "text").WithField("request_id", "r1")

	ctx := ContextWithLogger(context.Background(), entry)
	if WithContext(ctx) != entry {
		t.Fatalf("expected stored entry")
	}
	if WithContext(context.Background()) == nil {
		t.Fatalf("expected fallback entry")
	}
}
