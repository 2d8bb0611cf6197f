package jobs

import (
	"context"
	"fmt"
	"io"

	"github.com/kamusis/jobskill-cli/internal/logging"
)

const catalogPreview = 20

// CatalogSource is anything that can list the service's skills.
type CatalogSource interface {
	Skills(ctx context.Context) (SkillCatalog, error)
}

// FetchCatalog returns the skill catalog, or an empty one on any failure.
// Error detail is only logged at debug level.
func FetchCatalog(ctx context.Context, src CatalogSource) SkillCatalog {
	skills, err := src.Skills(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug("skill catalog unavailable", "err", err)
		return nil
	}
	return skills
}

// RenderGuidance prints usage, up to 20 catalog entries and an example invocation.
func RenderGuidance(w io.Writer, program string, catalog SkillCatalog) {
	fmt.Fprintf(w, "Usage: %s <skill1> [skill2] [skill3] ...\n", program)
	fmt.Fprintln(w, "\nAvailable skills:")

	if len(catalog) == 0 {
		fmt.Fprintln(w, "  (Could not fetch skills - make sure the server is running)")
	} else {
		shown := catalog
		if len(shown) > catalogPreview {
			shown = shown[:catalogPreview]
		}
		for i, s := range shown {
			fmt.Fprintf(w, "  %2d. %s\n", i+1, s)
		}
		if extra := len(catalog) - catalogPreview; extra > 0 {
			printer.Fprintf(w, "     ... and %d more\n", extra)
		}
	}

	fmt.Fprintf(w, "\nExample: %s JavaScript React Node.js\n", program)
}
