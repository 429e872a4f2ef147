package main

import (
	"fmt"
	"path/filepath"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/adapters/driven/config/file"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/adapters/driven/fetch/remote"
	assetfile "github.com/RishabhSaini619/brc-gear-animator-glb/internal/adapters/driven/storage/file"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/adapters/driven/storage/sqlite"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/adapters/driving/cli"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/services"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/logger"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/retarget"
)

// wire builds the services from the configuration in configDir.
func wire(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("locating config directory: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	logger.Debug("config: %s", configStore.Path())

	outputDir := settings.Output.Dir
	if outputDir == "" {
		outputDir = filepath.Join(configDir, "output")
	}
	assets, err := assetfile.NewAssetStore(outputDir)
	if err != nil {
		return nil, err
	}

	fetcher := remote.NewFetcher(settings.Fetch, remote.WithFileStore(assets))
	processor := retarget.NewProcessor(settings.JointNormalizer())

	var opts []services.ModelOption
	var closer func() error
	if settings.History.Enabled {
		store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
		if err != nil {
			return nil, fmt.Errorf("opening history: %w", err)
		}
		opts = append(opts, services.WithHistory(store.HistoryStore()))
		closer = store.Close
	}

	model := services.NewModelService(processor, fetcher, assets, settings.AnimationCatalog(), opts...)

	return &cli.Services{
		Model:    model,
		Settings: settingsService,
		Close:    closer,
	}, nil
}
