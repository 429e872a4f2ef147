package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driven"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyCatalogSources  = "catalog.sources"
	keyCatalogStrategy = "catalog.strategy"
	keyCatalogIndex    = "catalog.index"
	keyCatalogSeed     = "catalog.seed"
	keyOutputDir       = "output.dir"
	keyFetchUserAgent  = "fetch.user_agent"
	keyFetchTimeout    = "fetch.timeout_seconds"
	keyFetchRate       = "fetch.requests_per_second"
	keyFetchBurst      = "fetch.burst"
	keyFetchToken      = "fetch.token"
	keyFetchTokenHosts = "fetch.token_hosts"
	keyJointPrefixes   = "retarget.joint_prefixes"
	keyHistoryEnabled  = "history.enabled"
)

// setting binds a config key to its AppSettings field.
type setting struct {
	key    string
	parse  func(string) (any, error)
	apply  func(*domain.AppSettings, any)
	format func(*domain.AppSettings) string
}

var settingsTable = []setting{
	{
		key:    keyCatalogSources,
		parse:  parseList,
		apply:  func(s *domain.AppSettings, v any) { s.Catalog.URIs = v.([]string) },
		format: func(s *domain.AppSettings) string { return strings.Join(s.Catalog.URIs, ",") },
	},
	{
		key: keyCatalogStrategy,
		parse: func(v string) (any, error) {
			strategy := domain.SelectionStrategy(v)
			if !strategy.IsValid() {
				return nil, fmt.Errorf("unknown strategy %q", v)
			}
			return strategy, nil
		},
		apply:  func(s *domain.AppSettings, v any) { s.Catalog.Strategy = v.(domain.SelectionStrategy) },
		format: func(s *domain.AppSettings) string { return string(s.Catalog.Strategy) },
	},
	{
		key:    keyCatalogIndex,
		parse:  parseInt,
		apply:  func(s *domain.AppSettings, v any) { s.Catalog.Index = int(v.(int64)) },
		format: func(s *domain.AppSettings) string { return strconv.Itoa(s.Catalog.Index) },
	},
	{
		key:    keyCatalogSeed,
		parse:  parseInt,
		apply:  func(s *domain.AppSettings, v any) { s.Catalog.Seed = v.(int64) },
		format: func(s *domain.AppSettings) string { return strconv.FormatInt(s.Catalog.Seed, 10) },
	},
	{
		key:    keyOutputDir,
		parse:  parseString,
		apply:  func(s *domain.AppSettings, v any) { s.Output.Dir = v.(string) },
		format: func(s *domain.AppSettings) string { return s.Output.Dir },
	},
	{
		key:    keyFetchUserAgent,
		parse:  parseString,
		apply:  func(s *domain.AppSettings, v any) { s.Fetch.UserAgent = v.(string) },
		format: func(s *domain.AppSettings) string { return s.Fetch.UserAgent },
	},
	{
		key:   keyFetchTimeout,
		parse: parseInt,
		apply: func(s *domain.AppSettings, v any) { s.Fetch.Timeout = time.Duration(v.(int64)) * time.Second },
		format: func(s *domain.AppSettings) string {
			return strconv.FormatInt(int64(s.Fetch.Timeout/time.Second), 10)
		},
	},
	{
		key:   keyFetchRate,
		parse: parseFloat,
		apply: func(s *domain.AppSettings, v any) { s.Fetch.RequestsPerSecond = v.(float64) },
		format: func(s *domain.AppSettings) string {
			return strconv.FormatFloat(s.Fetch.RequestsPerSecond, 'g', -1, 64)
		},
	},
	{
		key:    keyFetchBurst,
		parse:  parseInt,
		apply:  func(s *domain.AppSettings, v any) { s.Fetch.Burst = int(v.(int64)) },
		format: func(s *domain.AppSettings) string { return strconv.Itoa(s.Fetch.Burst) },
	},
	{
		key:   keyFetchToken,
		parse: parseString,
		apply: func(s *domain.AppSettings, v any) { s.Fetch.Token = v.(string) },
		format: func(s *domain.AppSettings) string {
			if s.Fetch.Token == "" {
				return ""
			}
			return "********"
		},
	},
	{
		key:    keyFetchTokenHosts,
		parse:  parseList,
		apply:  func(s *domain.AppSettings, v any) { s.Fetch.TokenHosts = v.([]string) },
		format: func(s *domain.AppSettings) string { return strings.Join(s.Fetch.TokenHosts, ",") },
	},
	{
		key:    keyJointPrefixes,
		parse:  parseList,
		apply:  func(s *domain.AppSettings, v any) { s.Retarget.JointPrefixes = v.([]string) },
		format: func(s *domain.AppSettings) string { return strings.Join(s.Retarget.JointPrefixes, ",") },
	},
	{
		key: keyHistoryEnabled,
		parse: func(v string) (any, error) {
			return strconv.ParseBool(v)
		},
		apply:  func(s *domain.AppSettings, v any) { s.History.Enabled = v.(bool) },
		format: func(s *domain.AppSettings) string { return strconv.FormatBool(s.History.Enabled) },
	},
}

func lookupSetting(key string) (setting, bool) {
	for _, s := range settingsTable {
		if s.key == key {
			return s, true
		}
	}
	return setting{}, false
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Catalog: domain.CatalogSettings{
			URIs:     s.getStrings(keyCatalogSources, defaults.Catalog.URIs),
			Strategy: s.getStrategy(defaults.Catalog.Strategy),
			Index:    s.getInt(keyCatalogIndex, defaults.Catalog.Index),
			Seed:     int64(s.getInt(keyCatalogSeed, int(defaults.Catalog.Seed))),
		},
		Fetch: domain.FetchSettings{
			UserAgent:         s.getString(keyFetchUserAgent, defaults.Fetch.UserAgent),
			Timeout:           time.Duration(s.getInt(keyFetchTimeout, int(defaults.Fetch.Timeout/time.Second))) * time.Second,
			RequestsPerSecond: s.getFloat(keyFetchRate, defaults.Fetch.RequestsPerSecond),
			Burst:             s.getInt(keyFetchBurst, defaults.Fetch.Burst),
			Token:             s.configStore.GetString(keyFetchToken),
			TokenHosts:        s.getStrings(keyFetchTokenHosts, nil),
		},
		Output: domain.OutputSettings{
			Dir: s.configStore.GetString(keyOutputDir),
		},
		Retarget: domain.RetargetSettings{
			JointPrefixes: s.getStrings(keyJointPrefixes, defaults.Retarget.JointPrefixes),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyCatalogSources, settings.Catalog.URIs},
		{keyCatalogStrategy, string(settings.Catalog.Strategy)},
		{keyCatalogIndex, settings.Catalog.Index},
		{keyCatalogSeed, settings.Catalog.Seed},
		{keyOutputDir, settings.Output.Dir},
		{keyFetchUserAgent, settings.Fetch.UserAgent},
		{keyFetchTimeout, int(settings.Fetch.Timeout / time.Second)},
		{keyFetchRate, settings.Fetch.RequestsPerSecond},
		{keyFetchBurst, settings.Fetch.Burst},
		{keyJointPrefixes, settings.Retarget.JointPrefixes},
		{keyHistoryEnabled, settings.History.Enabled},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// Only persist the token when one is provided.
	if settings.Fetch.Token != "" {
		if err := s.configStore.Set(keyFetchToken, settings.Fetch.Token); err != nil {
			return fmt.Errorf("save %s: %w", keyFetchToken, err)
		}
	}
	if len(settings.Fetch.TokenHosts) > 0 {
		if err := s.configStore.Set(keyFetchTokenHosts, settings.Fetch.TokenHosts); err != nil {
			return fmt.Errorf("save %s: %w", keyFetchTokenHosts, err)
		}
	}

	return nil
}

// Set parses value for key and persists it if the resulting settings are valid.
func (s *SettingsService) Set(key, value string) error {
	def, ok := lookupSetting(key)
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	parsed, err := def.parse(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	def.apply(settings, parsed)
	if err := settings.Validate(); err != nil {
		return err
	}

	if strategy, ok := parsed.(domain.SelectionStrategy); ok {
		parsed = string(strategy)
	}
	return s.configStore.Set(key, parsed)
}

// Value returns the effective value of key, formatted for display.
// Secrets are masked.
func (s *SettingsService) Value(key string) (string, error) {
	def, ok := lookupSetting(key)
	if !ok {
		return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	settings, err := s.Get()
	if err != nil {
		return "", err
	}
	return def.format(settings), nil
}

// Keys returns the known configuration keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingsTable))
	for i, def := range settingsTable {
		keys[i] = def.key
	}
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStrings(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStrategy(defaultVal domain.SelectionStrategy) domain.SelectionStrategy {
	strategy := domain.SelectionStrategy(s.configStore.GetString(keyCatalogStrategy))
	if !strategy.IsValid() {
		return defaultVal
	}
	return strategy
}

func parseString(v string) (any, error) {
	return strings.TrimSpace(v), nil
}

func parseInt(v string) (any, error) {
	return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
}

func parseFloat(v string) (any, error) {
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

// parseList splits a comma-separated value, dropping empty items.
func parseList(v string) (any, error) {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items, nil
}
