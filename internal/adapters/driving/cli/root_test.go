package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	assetfile "github.com/RishabhSaini619/brc-gear-animator-glb/internal/adapters/driven/storage/file"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/adapters/driven/storage/memory"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/services"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/glb"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/retarget"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/scene"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/scene/scenetest"
)

// testEnv holds the files and stores behind setupTestServices.
type testEnv struct {
	dir       string
	outDir    string
	avatar    string
	animation string
	unskinned string
	history   *memory.HistoryStore
}

// setupTestServices wires real services over temp files and in-memory stores.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	env := &testEnv{
		dir:       dir,
		outDir:    filepath.Join(dir, "out"),
		avatar:    filepath.Join(dir, "avatar.glb"),
		animation: filepath.Join(dir, "walk.glb"),
		unskinned: filepath.Join(dir, "prop.glb"),
		history:   memory.NewHistoryStore(),
	}

	writeGLB(t, env.avatar, scene.New(scenetest.Avatar("mixamorig:Hips", "mixamorig:Spine", "mixamorig:Head")))
	writeGLB(t, env.animation, scene.New(scenetest.Animation("walk", "Hips", "Spine", "Head", "Tail")))
	writeGLB(t, env.unskinned, scene.New(scenetest.Unskinned()))

	assets, err := assetfile.NewAssetStore(env.outDir)
	require.NoError(t, err)

	settings := services.NewSettingsService(memory.NewConfigStore())
	catalog := domain.NewAnimationCatalog(
		domain.SourcesFromURIs([]string{env.animation}),
		domain.FixedSelector{Index: 0},
	)
	model := services.NewModelService(
		retarget.NewProcessor(domain.NewJointNameNormalizer(nil)),
		nil,
		assets,
		catalog,
		services.WithHistory(env.history),
	)

	SetServices(&Services{Model: model, Settings: settings})
	t.Cleanup(func() { SetServices(nil) })
	return env
}

func writeGLB(t *testing.T, path string, doc *scene.Document) {
	t.Helper()
	data, err := glb.Write(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// executeCommand runs the root command with fresh flag state and returns its output.
func executeCommand(args ...string) (string, error) {
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func readGLB(t *testing.T, path string) (*scene.Document, error) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return glb.Read(data)
}
