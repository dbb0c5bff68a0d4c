package models

// Problem describes the default shape of a stored problem document. Stored
// files are opaque JSON and may carry any fields the annotation front-end
// chooses to send; this struct only defines the shell returned when no file
// exists yet for a requested ID.
type Problem struct {
	ID            int      `json:"id"`
	Annotation    string   `json:"annotation"`
	Source        string   `json:"source"`
	ProblemTextCN string   `json:"problem_text_cn"`
	ProblemTextEN string   `json:"problem_text_en"`
	ProblemImg    []string `json:"problem_img"`
}

// DefaultProblem returns the empty shell served for an ID that has no stored
// file. It is never persisted.
func DefaultProblem(id int) Problem {
	return Problem{
		ID:         id,
		ProblemImg: []string{},
	}
}
