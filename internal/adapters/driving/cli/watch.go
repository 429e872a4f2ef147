package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/adapters/driving/watch"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

var watchAnimation string

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Animate avatars dropped into a directory",
	Long: `Watch a directory and animate every GLB avatar written to it.

Each avatar.glb is merged with the animation (or a catalog pick) and written
next to it as avatar.animated.glb. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchAnimation, "animation", "", "animation GLB (URL or path), default from catalog")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	model, err := requireModel()
	if err != nil {
		return err
	}

	var opts []watch.Option
	if ref := domain.ParseRef(watchAnimation); !ref.IsZero() {
		opts = append(opts, watch.WithAnimation(ref))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := watch.New(args[0], model, opts...).Watch(ctx)
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	for result := range results {
		if result.Err != nil {
			cmd.Printf("  %s: %s\n", result.Input, domain.ErrorKind(result.Err))
			continue
		}
		cmd.Printf("  %s -> %s\n", result.Input, result.Output)
		if names := result.Report.UnmatchedNames(); len(names) > 0 {
			cmd.Printf("    %d unmatched joints\n", len(names))
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Stopped.")
	return nil
}
