package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent merges",
	Long:  `List saved merges, newest first. History is recorded when history.enabled is true.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of entries (0 = all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	model, err := requireModel()
	if err != nil {
		return err
	}

	records, err := model.History(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("history failed: %w", err)
	}

	if historyJSON {
		return printJSON(cmd, records)
	}

	if len(records) == 0 {
		cmd.Println("No merges recorded.")
		return nil
	}
	for i := range records {
		r := &records[i]
		cmd.Printf("%s  %s\n", r.CreatedAt.Local().Format(time.DateTime), r.ID)
		cmd.Printf("  avatar:    %s\n", r.Avatar)
		cmd.Printf("  animation: %s\n", r.Animation)
		if r.OutputPath != "" {
			cmd.Printf("  output:    %s (%d bytes)\n", r.OutputPath, r.ByteLength)
		}
		cmd.Printf("  channels:  %d matched, %d skipped\n", r.ChannelsMatched, r.ChannelsSkipped)
	}
	return nil
}
