package httpapi

import (
	"net/http"
	"strings"

	"quiz-session/internal/bank"
	"quiz-session/internal/config"
)

// HandleQuestions publishes the bank in the document shape the quiz client
// loads. ?format=yaml or a YAML Accept header switches the encoding.
func (a *API) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	questions, err := a.bank.Bank(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to read question bank")
		writeServiceError(w, err)
		return
	}

	format := bank.FormatJSON
	if wantsYAML(r) {
		format = bank.FormatYAML
	}

	payload, err := bank.Encode(questions, format)
	if err != nil {
		log.WithError(err).Error("failed to encode question bank")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
		return
	}

	contentType := "application/json"
	if format == bank.FormatYAML {
		contentType = "application/yaml"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	questions, err := a.bank.Bank(r.Context())
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("health check could not read bank")
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	status := "ok"
	if len(questions) == 0 {
		status = "empty"
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: status, QuestionCount: len(questions)})
}

func (a *API) HandleQuestion(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(routeParam(r, "question_id"))

	questions, err := a.bank.Bank(r.Context())
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("failed to read question bank")
		writeServiceError(w, err)
		return
	}

	for _, question := range questions {
		if question.ID == id {
			writeJSON(w, http.StatusOK, question)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "question not found"})
}

func wantsYAML(r *http.Request) bool {
	if strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("format")), "yaml") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "yaml") && !strings.Contains(r.Header.Get("Accept"), "json")
}
