package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

func NewRouter(bank BankProvider, log logrus.FieldLogger) http.Handler {
	api := NewAPI(bank, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(api.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", api.HandleHealth)
	r.Get("/questions", api.HandleQuestions)
	r.Get("/questions/{question_id}", api.HandleQuestion)

	return r
}
