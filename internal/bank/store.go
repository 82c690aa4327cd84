package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"quiz-session/internal/quiz"
)

// Store keeps one question bank in sqlite. Questions are kept in import
// order; ReplaceBank swaps the whole bank in one transaction.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = "quiz.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &Store{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS questions (
			question_id TEXT PRIMARY KEY,
			position INTEGER NOT NULL UNIQUE,
			prompt TEXT NOT NULL,
			options_json TEXT NOT NULL,
			correct_index INTEGER NOT NULL,
			option_count INTEGER NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL,
			imported_at_unix INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_position ON questions(position);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceBank validates bank and stores it in place of the current one.
// source records where the questions came from.
func (s *Store) ReplaceBank(ctx context.Context, bank quiz.Bank, source string) error {
	validated, err := quiz.NewBank(bank)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return err
	}

	importedAt := time.Now().UTC().UnixNano()
	for idx, question := range validated {
		optionsJSON, err := json.Marshal(question.Options)
		if err != nil {
			return err
		}

		// A repeated question ID keeps its first occurrence.
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO questions (question_id, position, prompt, options_json, correct_index, option_count, note, source, imported_at_unix)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(question_id) DO NOTHING`,
			question.ID,
			idx,
			question.Text,
			string(optionsJSON),
			question.Correct,
			len(question.Options),
			question.Note,
			source,
			importedAt,
		)
		if err != nil {
			return fmt.Errorf("insert question %d: %w", idx+1, err)
		}
	}

	return tx.Commit()
}

// Bank returns the stored questions in import order.
func (s *Store) Bank(ctx context.Context) (quiz.Bank, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT question_id, prompt, options_json, correct_index, note
		 FROM questions
		 ORDER BY position ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]quiz.Question, 0)
	for rows.Next() {
		var (
			question    quiz.Question
			optionsJSON string
		)
		if err := rows.Scan(&question.ID, &question.Text, &optionsJSON, &question.Correct, &question.Note); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(optionsJSON), &question.Options); err != nil {
			return nil, fmt.Errorf("question %s: %w", question.ID, err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quiz.NewBank(questions)
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	return count, err
}

// sqliteSource opens the store for a single load.
type sqliteSource struct {
	path string
}

func (s *sqliteSource) Load(ctx context.Context) (quiz.Bank, error) {
	store, err := NewStore(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", quiz.ErrLoadFailure, s.path, err)
	}
	defer store.Close()

	questions, err := store.Bank(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", quiz.ErrLoadFailure, err)
	}
	return questions, nil
}

func (s *sqliteSource) String() string {
	return schemeSQLite + s.path
}
