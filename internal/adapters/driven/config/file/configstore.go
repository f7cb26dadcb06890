// Package file provides the TOML-backed configuration store for the
// traqcheck CLI. Configuration lives in ~/.traqcheck/config.toml.
package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the client configuration. Every field has a default so an
// absent file is valid.
type Config struct {
	// APIBaseURL is the recruiter API base, e.g. "http://localhost:5000".
	APIBaseURL string `toml:"api_base_url"`

	// DropDir, when set, is watched for new resume files to upload.
	DropDir string `toml:"drop_dir"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the defaults applied when the file is absent or
// a field is unset.
func DefaultConfig() Config {
	return Config{
		APIBaseURL: "http://localhost:5000",
	}
}

// ConfigStore loads and persists the TOML configuration file.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	config   Config
}

// NewConfigStore creates a store rooted at configDir. If configDir is
// empty, defaults to ~/.traqcheck.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".traqcheck")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		config:   DefaultConfig(),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the current configuration.
func (s *ConfigStore) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// SetAPIBaseURL overrides the API base and persists immediately.
func (s *ConfigStore) SetAPIBaseURL(baseURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config.APIBaseURL = baseURL
	return s.save()
}

// SetDropDir overrides the watched drop directory and persists.
func (s *ConfigStore) SetDropDir(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config.DropDir = dir
	return s.save()
}

// Load reads the TOML file, falling back to defaults when it is absent.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.config = DefaultConfig()
			return nil
		}
		return err
	}

	loaded := DefaultConfig()
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	if loaded.APIBaseURL == "" {
		loaded.APIBaseURL = DefaultConfig().APIBaseURL
	}
	s.config = loaded
	return nil
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.config)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the config file location, for messages.
func (s *ConfigStore) Path() string {
	return s.filePath
}
