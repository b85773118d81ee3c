package structs

const (
	queryLimitDefault = 500
	queryLimitMax     = 5000
)

type Query struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`

	// Filters
	JobIDs   []string  `json:"job_ids,omitempty"`
	Statuses []Status  `json:"statuses,omitempty"`
	Outcomes []Outcome `json:"outcomes,omitempty"`
}

func (q *Query) Sanitize() {
	if q.Limit <= 0 {
		q.Limit = queryLimitDefault
	}
	if q.Limit > queryLimitMax {
		q.Limit = queryLimitMax
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.JobIDs == nil || len(q.JobIDs) == 0 {
		q.JobIDs = nil
	}
	if q.Statuses == nil || len(q.Statuses) == 0 {
		q.Statuses = nil
	}
	if q.Outcomes == nil || len(q.Outcomes) == 0 {
		q.Outcomes = nil
	}
}
