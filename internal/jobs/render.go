package jobs

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	maxSkillsShown = 5
	separatorWidth = 60
	ellipsis       = "..."
)

var printer = message.NewPrinter(language.English)

// Render writes result as human-readable text. A failed result produces a
// single error line and nothing else.
func Render(w io.Writer, result SearchResult, requested []string) {
	if !result.Success {
		msg := strings.TrimSpace(result.Error)
		if msg == "" {
			msg = "unknown error"
		}
		fmt.Fprintf(w, "  ✗  Error: %s\n", msg)
		return
	}

	printer.Fprintf(w, "Found %d jobs matching skills: %s\n", result.Count, strings.Join(requested, ", "))
	fmt.Fprintln(w, strings.Repeat("=", separatorWidth))
	for _, j := range result.Jobs {
		renderJob(w, j)
	}
}

func renderJob(w io.Writer, j JobRecord) {
	fmt.Fprintf(w, "● %s\n", j.Title)

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "  Company:\t%s\n", j.Company)
	fmt.Fprintf(tw, "  Location:\t%s\n", j.Location)
	fmt.Fprintf(tw, "  URL:\t%s\n", j.URL)
	fmt.Fprintf(tw, "  Skills:\t%s\n", SkillsLine(j.Skills))
	fmt.Fprintf(tw, "  Posted:\t%s\n", j.PostedDate)
	fmt.Fprintf(tw, "  Source:\t%s\n", j.Source)
	_ = tw.Flush()

	fmt.Fprintln(w, strings.Repeat("-", separatorWidth))
}

// SkillsLine joins at most the first five skills, appending "..." only when
// more were dropped.
func SkillsLine(skills []string) string {
	if len(skills) <= maxSkillsShown {
		return strings.Join(skills, ", ")
	}
	return strings.Join(skills[:maxSkillsShown], ", ") + ellipsis
}
