package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

var repackOutput string

var repackCmd = &cobra.Command{
	Use:   "repack [ref]",
	Short: "Repack an asset as a single-buffer GLB",
	Long: `Load a glTF or GLB asset and write it back as a GLB with one binary buffer.

Without a ref, the default catalog animation is repacked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepack,
}

func init() {
	repackCmd.Flags().StringVarP(&repackOutput, "output", "o", "", "output file (required)")
	_ = repackCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(repackCmd)
}

func runRepack(cmd *cobra.Command, args []string) error {
	model, err := requireModel()
	if err != nil {
		return err
	}

	var ref domain.AssetRef
	if len(args) > 0 {
		ref = domain.ParseRef(args[0])
	}

	data, err := model.AnimationBuffer(cmd.Context(), ref)
	if err != nil {
		return fmt.Errorf("repack failed (%s): %w", domain.ErrorKind(err), err)
	}
	if err := os.WriteFile(repackOutput, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", repackOutput, err)
	}

	cmd.Printf("Wrote: %s (%d bytes)\n", repackOutput, len(data))
	return nil
}
