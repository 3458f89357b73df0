package model

const (
	SubmissionStatusOK     = "OK"
	SubmissionStatusFailed = "FAILED"
)

// Submission is one journal row: a single attempt to push a book into the
// external store. The journal is an audit trail, it is never consulted to
// deduplicate or retry.
type Submission struct {
	ID          string `json:"id"`
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Source      string `json:"source"` // "lookup", "manual" or "batch"
	Status      string `json:"status"`
	PageID      string `json:"page_id,omitempty"`
	ErrorKind   string `json:"error_kind,omitempty"`
	CreatedTime string `json:"created_time"`
}

type FindSubmission struct {
	ISBN   *string
	Status *string
	Limit  *int
}
