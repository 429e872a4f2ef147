package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printReport(cmd *cobra.Command, report *domain.MergeReport) {
	cmd.Printf("Animations: %d\n", report.AnimationsAdded)
	cmd.Printf("Channels:   %d matched, %d skipped\n", report.ChannelsMatched, report.ChannelsSkipped)
	if names := report.UnmatchedNames(); len(names) > 0 {
		cmd.Printf("Unmatched:  %s\n", strings.Join(names, ", "))
	}
}
