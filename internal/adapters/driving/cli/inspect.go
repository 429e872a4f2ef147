package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [ref]",
	Short: "Describe the structure of a glTF asset",
	Long:  `Load a GLB or glTF asset (URL or path) and print its skin joints, animations and array sizes.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	model, err := requireModel()
	if err != nil {
		return err
	}

	summary, err := model.Inspect(cmd.Context(), domain.ParseRef(args[0]))
	if err != nil {
		return fmt.Errorf("inspect failed (%s): %w", domain.ErrorKind(err), err)
	}

	if inspectJSON {
		return printJSON(cmd, summary)
	}

	cmd.Printf("Container:    %s\n", summary.Container)
	for _, c := range summary.Chunks {
		cmd.Printf("  chunk %-4s  %d bytes\n", c.Type, c.Length)
	}
	cmd.Printf("Version:      %s\n", summary.Version)
	if summary.Generator != "" {
		cmd.Printf("Generator:    %s\n", summary.Generator)
	}
	cmd.Printf("Size:         %d bytes\n", summary.ByteLength)
	cmd.Printf("Nodes:        %d\n", summary.Nodes)
	cmd.Printf("Meshes:       %d\n", summary.Meshes)
	cmd.Printf("Skins:        %d\n", summary.Skins)
	cmd.Printf("Accessors:    %d\n", summary.Accessors)
	cmd.Printf("Buffer views: %d\n", summary.BufferViews)
	cmd.Printf("Buffers:      %d\n", summary.Buffers)
	if len(summary.Joints) > 0 {
		cmd.Printf("Joints:       %s\n", strings.Join(summary.Joints, ", "))
	}
	if len(summary.Animations) > 0 {
		cmd.Println("Animations:")
		for _, a := range summary.Animations {
			cmd.Printf("  %s (%d channels, %d samplers)\n", a.Name, a.Channels, a.Samplers)
		}
	}
	return nil
}
