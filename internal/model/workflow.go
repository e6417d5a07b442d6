package model

// Workflow carries the two workflow fields the board renders: the ID to
// match runs against and the name for the row summary.
type Workflow struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type WorkflowsResponse struct {
	TotalCount int        `json:"total_count"`
	Workflows  []Workflow `json:"workflows"`
}
