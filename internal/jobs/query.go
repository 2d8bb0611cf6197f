package jobs

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is used when the caller passes a non-positive limit.
	DefaultLimit = 20

	searchPath  = "/jobs/skills/"
	catalogPath = "/skills"
	delimiter   = ","
)

// BuildQuery returns the request path and query parameters for a skills search.
//
// Each skill is escaped as a single path segment before joining, so a skill
// containing the delimiter (or '/', '?') cannot be split by the service.
// The path therefore always holds exactly len(skills)-1 literal commas.
// skills must be non-empty; callers enforce that.
func BuildQuery(skills []string, limit int) (string, url.Values) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	escaped := make([]string, len(skills))
	for i, s := range skills {
		escaped[i] = url.PathEscape(s)
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	return searchPath + strings.Join(escaped, delimiter), params
}

// Target composes the full search URL against base.
func Target(base string, skills []string, limit int) string {
	path, params := BuildQuery(skills, limit)
	return strings.TrimRight(base, "/") + path + "?" + params.Encode()
}
