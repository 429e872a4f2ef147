package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

var (
	animateAvatar    string
	animateAnimation string
	animateOutput    string
	animateSave      bool
	animateJSON      bool
)

var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Retarget an animation onto an avatar",
	Long: `Retarget an animation clip onto a skinned avatar and write the merged GLB.

Avatar and animation may each be an http(s) URL or a local path. Without
--animation a clip is chosen from the configured catalog.

Use -o to write the result to a file, or --save to store it in the output
directory and record it in the merge history. With neither, --save is implied.

Examples:
  glbanim animate --avatar me.glb -o me-dancing.glb
  glbanim animate --avatar https://example.com/me.glb --animation walk.glb --save`,
	Args: cobra.NoArgs,
	RunE: runAnimate,
}

func init() {
	animateCmd.Flags().StringVar(&animateAvatar, "avatar", "", "avatar GLB (URL or path)")
	animateCmd.Flags().StringVar(&animateAnimation, "animation", "", "animation GLB (URL or path), default from catalog")
	animateCmd.Flags().StringVarP(&animateOutput, "output", "o", "", "write the merged GLB to this file")
	animateCmd.Flags().BoolVar(&animateSave, "save", false, "save to the output directory and record history")
	animateCmd.Flags().BoolVar(&animateJSON, "json", false, "output the merge report as JSON")
	_ = animateCmd.MarkFlagRequired("avatar")
	rootCmd.AddCommand(animateCmd)
}

func runAnimate(cmd *cobra.Command, _ []string) error {
	model, err := requireModel()
	if err != nil {
		return err
	}

	req := domain.MergeRequest{
		Avatar:    domain.ParseRef(animateAvatar),
		Animation: domain.ParseRef(animateAnimation),
	}
	if req.Avatar.IsZero() {
		return errors.New("--avatar must not be empty")
	}

	save := animateSave || animateOutput == ""
	var result *domain.MergeResult
	if save {
		result, err = model.Save(cmd.Context(), req)
	} else {
		result, err = model.Merge(cmd.Context(), req)
	}
	if err != nil {
		return fmt.Errorf("animate failed (%s): %w", domain.ErrorKind(err), err)
	}

	if animateOutput != "" {
		if err := os.WriteFile(animateOutput, result.Data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", animateOutput, err)
		}
	}

	if animateJSON {
		return printJSON(cmd, result.Report)
	}

	cmd.Printf("Animation: %s\n", result.Animation)
	if animateOutput != "" {
		cmd.Printf("Wrote: %s (%d bytes)\n", animateOutput, len(result.Data))
	}
	if result.Path != "" {
		cmd.Printf("Saved: %s\n", result.Path)
	}
	printReport(cmd, &result.Report)
	return nil
}
