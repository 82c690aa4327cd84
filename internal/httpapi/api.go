package httpapi

import (
	"context"

	"github.com/sirupsen/logrus"

	"quiz-session/internal/quiz"
)

// BankProvider returns the bank to publish. bank.Store satisfies it.
type BankProvider interface {
	Bank(ctx context.Context) (quiz.Bank, error)
}

// StaticBank serves a bank that was loaded once at startup.
type StaticBank quiz.Bank

func (s StaticBank) Bank(context.Context) (quiz.Bank, error) {
	return quiz.Bank(s), nil
}

type API struct {
	bank BankProvider
	log  logrus.FieldLogger
}

func NewAPI(bank BankProvider, log logrus.FieldLogger) *API {
	if bank == nil {
		bank = StaticBank(nil)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &API{
		bank: bank,
		log:  log,
	}
}
