package bank

import (
	"context"
	"fmt"
	"html"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
	"time"

	"quiz-session/internal/opentdb"
	"quiz-session/internal/quiz"
)

type triviaFetcher interface {
	Trivia(ctx context.Context, query opentdb.Query) ([]opentdb.Trivia, error)
}

// OpenTDBSource turns a live OpenTriviaDB batch into a bank.
type OpenTDBSource struct {
	client triviaFetcher
	query  opentdb.Query
	rng    *rand.Rand
}

func NewOpenTDBSource(client triviaFetcher, query opentdb.Query, rng *rand.Rand) *OpenTDBSource {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &OpenTDBSource{client: client, query: query, rng: rng}
}

func (o *OpenTDBSource) Load(ctx context.Context) (quiz.Bank, error) {
	raw, err := o.client.Trivia(ctx, o.query)
	if err != nil {
		return nil, err
	}

	questions := make([]quiz.Question, 0, len(raw))
	for _, item := range raw {
		questions = append(questions, buildQuestion(item, o.rng))
	}
	return quiz.NewBank(questions)
}

func (o *OpenTDBSource) String() string {
	values := url.Values{}
	if o.query.Amount > 0 {
		values.Set("amount", strconv.Itoa(o.query.Amount))
	}
	if o.query.Category > 0 {
		values.Set("category", strconv.Itoa(o.query.Category))
	}
	if o.query.Difficulty != "" {
		values.Set("difficulty", o.query.Difficulty)
	}
	if len(values) == 0 {
		return schemeOpenTDB
	}
	return schemeOpenTDB + "?" + values.Encode()
}

// parseOpenTDBRef reads amount, category and difficulty from an
// opentdb://?... reference.
func parseOpenTDBRef(ref string) (opentdb.Query, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return opentdb.Query{}, fmt.Errorf("%w: %v", quiz.ErrLoadFailure, err)
	}

	var query opentdb.Query
	params := parsed.Query()
	for key, target := range map[string]*int{"amount": &query.Amount, "category": &query.Category} {
		raw := params.Get(key)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return opentdb.Query{}, fmt.Errorf("%w: opentdb %s %q is not an integer", quiz.ErrLoadFailure, key, raw)
		}
		*target = value
	}

	switch difficulty := strings.ToLower(params.Get("difficulty")); difficulty {
	case "", "easy", "medium", "hard":
		query.Difficulty = difficulty
	default:
		return opentdb.Query{}, fmt.Errorf("%w: opentdb difficulty %q is not easy, medium or hard", quiz.ErrLoadFailure, difficulty)
	}
	return query, nil
}

// buildQuestion unescapes the HTML entities OpenTriviaDB sends and shuffles
// the correct answer in among the incorrect ones.
func buildQuestion(raw opentdb.Trivia, rng *rand.Rand) quiz.Question {
	type choice struct {
		text      string
		isCorrect bool
	}

	choices := make([]choice, 0, len(raw.IncorrectAnswers)+1)
	for _, incorrect := range raw.IncorrectAnswers {
		choices = append(choices, choice{text: html.UnescapeString(incorrect)})
	}
	choices = append(choices, choice{
		text:      html.UnescapeString(raw.CorrectAnswer),
		isCorrect: true,
	})

	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	options := make([]string, len(choices))
	correctIndex := -1
	for idx, candidate := range choices {
		options[idx] = candidate.text
		if candidate.isCorrect {
			correctIndex = idx
		}
	}

	question := quiz.Question{
		Text:    html.UnescapeString(raw.Question),
		Options: options,
		Correct: correctIndex,
	}
	if raw.Category != "" {
		question.Note = html.UnescapeString(raw.Category)
		if raw.Difficulty != "" {
			question.Note += " (" + raw.Difficulty + ")"
		}
	}
	return question
}
