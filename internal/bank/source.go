package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.yaml.in/yaml/v3"

	"quiz-session/internal/opentdb"
	"quiz-session/internal/quiz"
)

const (
	schemeSQLite  = "sqlite://"
	schemeOpenTDB = "opentdb://"
)

// Source is a one-shot provider of a validated question bank.
type Source interface {
	Load(ctx context.Context) (quiz.Bank, error)
	String() string
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type Options struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Open picks a source from ref:
//
//	http(s)://host/questions   bank document served over HTTP
//	sqlite://path/to/quiz.db   bank imported into sqlite
//	opentdb://?amount=20&difficulty=easy&category=9
//	                           live questions from OpenTriviaDB
//	anything else              local .json, .yaml or .yml file
func Open(ref string, opts Options) (Source, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: no question bank configured", quiz.ErrLoadFailure)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return NewHTTPSource(ref, httpClient), nil
	case strings.HasPrefix(ref, schemeSQLite):
		return &sqliteSource{path: strings.TrimPrefix(ref, schemeSQLite)}, nil
	case strings.HasPrefix(ref, schemeOpenTDB):
		query, err := parseOpenTDBRef(ref)
		if err != nil {
			return nil, err
		}
		return NewOpenTDBSource(opentdb.NewClient(httpClient), query, nil), nil
	default:
		return NewFileSource(ref), nil
	}
}

// Load runs src once and logs the outcome. Failures are returned wrapped in
// quiz.ErrLoadFailure; nothing is retried.
func Load(ctx context.Context, src Source, log logrus.FieldLogger) (quiz.Bank, error) {
	started := time.Now()
	entry := log.WithField("source", src.String())

	questions, err := src.Load(ctx)
	if err != nil {
		if !errors.Is(err, quiz.ErrLoadFailure) {
			err = fmt.Errorf("%w: %v", quiz.ErrLoadFailure, err)
		}
		entry.WithError(err).Error("question bank load failed")
		return nil, err
	}

	entry.WithFields(logrus.Fields{
		"questions":   len(questions),
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("question bank loaded")
	return questions, nil
}

// rawQuestion keeps required fields as pointers so a missing field can be
// told apart from a zero value.
type rawQuestion struct {
	ID      string   `json:"id" yaml:"id"`
	Text    *string  `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
	Correct *int     `json:"correct" yaml:"correct"`
	Note    string   `json:"note" yaml:"note"`
}

type rawDocument struct {
	Questions *[]rawQuestion `json:"questions" yaml:"questions"`
}

// Decode parses a bank document and validates every question.
func Decode(data []byte, format Format) (quiz.Bank, error) {
	var doc rawDocument
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %v", quiz.ErrLoadFailure, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", quiz.ErrLoadFailure, err)
		}
	}

	if doc.Questions == nil {
		return nil, fmt.Errorf("%w: missing \"questions\" list", quiz.ErrLoadFailure)
	}

	questions := make([]quiz.Question, 0, len(*doc.Questions))
	for idx, raw := range *doc.Questions {
		if raw.Text == nil {
			return nil, fmt.Errorf("%w: question %d: missing \"text\"", quiz.ErrLoadFailure, idx+1)
		}
		if raw.Correct == nil {
			return nil, fmt.Errorf("%w: question %d: missing \"correct\"", quiz.ErrLoadFailure, idx+1)
		}
		questions = append(questions, quiz.Question{
			ID:      raw.ID,
			Text:    *raw.Text,
			Options: raw.Options,
			Correct: *raw.Correct,
			Note:    raw.Note,
		})
	}

	bank, err := quiz.NewBank(questions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", quiz.ErrLoadFailure, err)
	}
	return bank, nil
}

// Encode writes bank in the document shape Decode reads.
func Encode(bank quiz.Bank, format Format) ([]byte, error) {
	doc := quiz.Document{Questions: bank}
	if doc.Questions == nil {
		doc.Questions = quiz.Bank{}
	}
	if format == FormatYAML {
		return yaml.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// FormatForPath guesses the document format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
