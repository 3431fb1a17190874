package practicum

// Homework is one entry in the API's homeworks list: a submission and its
// current review status.
type Homework struct {
	ID              int64  `json:"id,omitempty"`
	Name            string `json:"homework_name"`
	Status          string `json:"status"`
	ReviewerComment string `json:"reviewer_comment,omitempty"`
	DateUpdated     string `json:"date_updated,omitempty"`
	LessonName      string `json:"lesson_name,omitempty"`
}

// StatusesResponse is the body of a successful homework_statuses call.
// Homeworks is nil when the key was absent from the answer.
type StatusesResponse struct {
	Homeworks   []Homework `json:"homeworks"`
	CurrentDate int64      `json:"current_date"`
}

// apiErrorBody mirrors the shape the API uses for non-200 answers.
type apiErrorBody struct {
	Error struct {
		Error string `json:"error"`
	} `json:"error"`
}
