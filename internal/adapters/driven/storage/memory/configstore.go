package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore holds configuration in memory with the same key handling as
// the TOML store: nested tables flatten to dot keys. Save keeps a snapshot
// that Load restores, standing in for the file on disk.
type ConfigStore struct {
	mu       sync.RWMutex
	values   map[string]any
	snapshot map[string]any
}

// NewConfigStore creates a store seeded with the given tables, e.g.
// {"fetch": {"burst": 2}} or {"fetch.burst": 2}. The seed counts as saved.
func NewConfigStore(seed ...map[string]any) *ConfigStore {
	values := make(map[string]any)
	for _, m := range seed {
		flatten(values, m, "")
	}
	return &ConfigStore{
		values:   values,
		snapshot: maps.Clone(values),
	}
}

func flatten(dst, src map[string]any, prefix string) {
	for k, v := range src {
		if prefix != "" {
			k = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(dst, nested, k)
			continue
		}
		dst[k] = cloneValue(v)
	}
}

// cloneValue copies slices so callers cannot mutate stored values.
func cloneValue(v any) any {
	switch v := v.(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		return slices.Clone(v)
	default:
		return v
	}
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return cloneValue(val), ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt retrieves an integer configuration value. TOML integers decode
// as int64 and may be written back as float64.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// GetFloat retrieves a floating point configuration value.
func (s *ConfigStore) GetFloat(key string) float64 {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	b, _ := val.(bool)
	return b
}

// GetStringSlice retrieves a list of strings. Non-string items of a
// decoded TOML array are skipped.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = cloneValue(value)
	return nil
}

// Keys returns every stored key in sorted order.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

// Save records the current values as the persisted state.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = maps.Clone(s.values)
	return nil
}

// Load discards unsaved changes.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = maps.Clone(s.snapshot)
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
