package jobs

// JobRecord is one posting returned by the aggregation service.
type JobRecord struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	URL        string   `json:"url"`
	Skills     []string `json:"skills"`
	PostedDate string   `json:"postedDate"`
	Source     string   `json:"source"`
}

// SearchResult is the body of GET /jobs/skills/{skills}.
// Count is the service's total and may exceed len(Jobs).
type SearchResult struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Jobs    []JobRecord `json:"jobs"`
	Error   string      `json:"error,omitempty"`
}

// SkillCatalog lists every skill known to the service.
type SkillCatalog []string

type catalogResponse struct {
	Success bool     `json:"success"`
	Skills  []string `json:"skills"`
}
