package cli

import (
	"fmt"
	"io"

	"github.com/foreverhost/dbengine/internal/clpctl"
	"github.com/foreverhost/dbengine/internal/workflows"
)

// printReport writes one line per operation followed by a summary
func printReport(w io.Writer, report *workflows.Report) {
	for _, res := range report.Results {
		status := "SUCCESS"
		switch {
		case res.Skipped:
			status = "SKIPPED"
		case !res.OK:
			status = "FAILED"
		}

		fmt.Fprintf(w, "%s %s... %s\n", res.Operation, clpctl.DatabaseName(res.GDPSID), status)
	}

	fmt.Fprintf(w, "\n%d succeeded, %d failed, %d skipped\n", report.Succeeded(), report.Failed(), report.Skipped())
}
