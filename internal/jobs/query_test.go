package jobs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	cases := []struct {
		name     string
		skills   []string
		limit    int
		wantPath string
		wantLim  string
	}{
		{"single", []string{"Python"}, 20, "/jobs/skills/Python", "20"},
		{"ordered", []string{"JavaScript", "React", "Node.js"}, 5, "/jobs/skills/JavaScript,React,Node.js", "5"},
		{"default limit", []string{"Go"}, 0, "/jobs/skills/Go", "20"},
		{"negative limit", []string{"Go"}, -1, "/jobs/skills/Go", "20"},
		{"escaped", []string{"C#", "Data Science", "a/b"}, 1, "/jobs/skills/C%23,Data%20Science,a%2Fb", "1"},
		{"delimiter in skill", []string{"a,b", "c"}, 3, "/jobs/skills/a%2Cb,c", "3"},
		{"duplicates kept", []string{"Go", "Go"}, 2, "/jobs/skills/Go,Go", "2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path, params := BuildQuery(c.skills, c.limit)
			assert.Equal(t, c.wantPath, path)
			require.Len(t, params, 1)
			assert.Equal(t, c.wantLim, params.Get("limit"))
		})
	}
}

func TestBuildQuery_DelimiterCount(t *testing.T) {
	sets := [][]string{
		{"Rust"},
		{"Python", "SQL"},
		{"a,b", "c,d", "e"},
		{"", "x", ""},
		{"Kubernetes", "Docker", "AWS", "Terraform", "Go", "gRPC"},
	}
	for _, s := range sets {
		path, _ := BuildQuery(s, 10)
		segment := strings.TrimPrefix(path, searchPath)
		assert.Equal(t, len(s)-1, strings.Count(segment, delimiter), "skills %q", s)
	}
}

func TestBuildQuery_Idempotent(t *testing.T) {
	skills := []string{"Go", "C++", "PostgreSQL"}
	p1, q1 := BuildQuery(skills, 7)
	p2, q2 := BuildQuery(skills, 7)
	assert.Equal(t, p1, p2)
	assert.Equal(t, q1, q2)
	assert.Equal(t, []string{"Go", "C++", "PostgreSQL"}, skills, "input mutated")
}

func TestTarget(t *testing.T) {
	got := Target("http://localhost:3000/api/", []string{"Go", "SQL"}, 20)
	assert.Equal(t, "http://localhost:3000/api/jobs/skills/Go,SQL?limit=20", got)
}
