package usecase

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
)

// PrintSummary renders the outcome counts of a run.
func PrintSummary(w io.Writer, summary *model.RunSummary) {
	if summary == nil {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Outcome", "Projects"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, outcome := range types.ScanOutcomes {
		table.Append([]string{outcome.String(), strconv.Itoa(summary.Outcomes[outcome])})
	}
	table.SetFooter([]string{"processed", strconv.Itoa(summary.Processed)})
	table.Render()

	status := "completed"
	if summary.Stopped {
		status = "stopped"
	}
	fmt.Fprintf(w, "run %s %s: checkpoint %d/%d (started at %d)\n",
		summary.RunID, status, summary.Checkpoint, summary.Total, summary.Start)
}
