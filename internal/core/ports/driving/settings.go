package driving

import "github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, defaults filled in.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses value for a known key and persists it.
	// Returns domain.ErrInvalidInput for unknown keys or unparsable values.
	Set(key, value string) error

	// Value returns the effective value of a known key, formatted for display.
	Value(key string) (string, error)

	// Keys returns the known configuration keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath returns where settings are stored.
	ConfigPath() string
}
