package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jotcli/jot/internal/errors"
)

// DefaultIntegrationName is used when the config file leaves integration_name empty.
const DefaultIntegrationName = "Jot"

// Config holds application configuration. It is loaded once at startup and
// passed by reference; it is never mutated afterwards.
type Config struct {
	// NotionAPIToken is the integration's secret bearer token.
	// The NOTION_API_TOKEN environment variable takes precedence over the file.
	NotionAPIToken string `json:"notion_api_token"`

	// DefaultDatabaseID identifies the shared database all notes go into.
	DefaultDatabaseID string `json:"default_database_id"`

	// DefaultDatabaseName is a human-readable label for the database.
	DefaultDatabaseName string `json:"default_database_name,omitempty"`

	// DefaultTags are attached to every created page unless overridden.
	DefaultTags []string `json:"default_tags,omitempty"`

	// IntegrationName appears in the timestamp heading of published notes.
	IntegrationName string `json:"integration_name,omitempty"`
}

// DefaultDir returns the default configuration directory (~/.jot).
// Returns an empty string if the home directory cannot be determined.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jot")
}

// Load reads configuration from baseDir/config.json. A missing or
// unparseable file is a fatal configuration error; no defaults substitute
// for it because the token and database id cannot be guessed.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.jot.
func Load(baseDir string) (*Config, error) {
	path := filepath.Join(baseDir, "config.json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfig("config file not found: " + path + " (run 'jot init' to create one)")
		}
		return nil, errors.NewConfig("reading config file: " + err.Error())
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfig("parsing " + path + ": " + err.Error())
	}

	// Environment overrides the file so tokens can stay out of dotfiles.
	if tok := os.Getenv("NOTION_API_TOKEN"); tok != "" {
		cfg.NotionAPIToken = tok
	}
	if cfg.IntegrationName == "" {
		cfg.IntegrationName = DefaultIntegrationName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the fields required for any API call are present.
func (c *Config) Validate() error {
	if c.NotionAPIToken == "" {
		return errors.NewConfig("notion_api_token is required (config file or NOTION_API_TOKEN)")
	}
	if c.DefaultDatabaseID == "" {
		return errors.NewConfig("default_database_id is required")
	}
	return nil
}

// Scaffold writes a template config file to baseDir/config.json.
// It refuses to overwrite an existing file.
func Scaffold(baseDir string) (string, error) {
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return "", errors.NewConfig("creating config directory: " + err.Error())
	}

	path := filepath.Join(baseDir, "config.json")
	if _, err := os.Stat(path); err == nil {
		return "", errors.NewConfig("config file already exists: " + path)
	}

	template := Config{
		NotionAPIToken:      "secret_xxx",
		DefaultDatabaseID:   "your-database-id",
		DefaultDatabaseName: "Notes",
		DefaultTags:         []string{"notes"},
		IntegrationName:     DefaultIntegrationName,
	}

	data, err := json.MarshalIndent(&template, "", "  ")
	if err != nil {
		return "", errors.NewInternal(err)
	}
	// 0600: the file will hold a secret once the user fills it in
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return "", errors.NewConfig("writing config file: " + err.Error())
	}
	return path, nil
}
