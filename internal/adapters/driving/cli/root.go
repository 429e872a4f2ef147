package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driving"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services holds the driving ports the commands run against.
type Services struct {
	Model    driving.ModelService
	Settings driving.SettingsService

	// Close releases resources held by the services. Optional.
	Close func() error
}

// Bootstrap builds the services for a config directory.
// An empty configDir selects the default location.
type Bootstrap func(configDir string) (*Services, error)

var (
	modelService    driving.ModelService
	settingsService driving.SettingsService
	closeServices   func() error
	bootstrap       Bootstrap
)

var (
	verbose   bool
	configDir string
)

// skipBootstrap marks commands that run without services.
const skipBootstrap = "skip-bootstrap"

var rootCmd = &cobra.Command{
	Use:   "glbanim",
	Short: "Retarget animations onto glTF avatars",
	Long: `glbanim copies animation clips onto skinned glTF/GLB avatars.

Joints are matched by name after stripping rig prefixes such as "mixamorig:",
so clips authored for one rig play on any avatar with the same skeleton
naming. Channels whose joint has no counterpart are dropped and reported.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.glbanim)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap installs the function that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs the services directly, bypassing bootstrap.
func SetServices(s *Services) {
	if s == nil {
		modelService, settingsService, closeServices = nil, nil, nil
		return
	}
	modelService = s.Model
	settingsService = s.Settings
	closeServices = s.Close
}

// Execute runs the root command and releases services afterwards.
func Execute() error {
	defer func() {
		if closeServices != nil {
			if err := closeServices(); err != nil {
				logger.Warn("closing services: %v", err)
			}
		}
	}()
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	if verbose {
		logger.SetVerbose(true)
	}
	if cmd.Annotations[skipBootstrap] == "true" || bootstrap == nil || modelService != nil {
		return nil
	}

	services, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	return nil
}

func requireModel() (driving.ModelService, error) {
	if modelService == nil {
		return nil, errors.New("model service not configured")
	}
	return modelService, nil
}

func requireSettings() (driving.SettingsService, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	return settingsService, nil
}
