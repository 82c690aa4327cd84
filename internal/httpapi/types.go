package httpapi

type healthResponse struct {
	Status        string `json:"status"`
	QuestionCount int    `json:"question_count"`
}

type errorResponse struct {
	Error string `json:"error"`
}
