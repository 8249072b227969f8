package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jotcli/jot/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o600); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
}

func TestLoad_HappyPath(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"notion_api_token": "secret_abc",
		"default_database_id": "db-123",
		"default_database_name": "Notes",
		"default_tags": ["DAILY", "PRODUCTIVITY"],
		"integration_name": "Notes Bot"
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.NotionAPIToken != "secret_abc" {
		t.Errorf("NotionAPIToken = %q, want 'secret_abc'", cfg.NotionAPIToken)
	}
	if cfg.DefaultDatabaseID != "db-123" {
		t.Errorf("DefaultDatabaseID = %q, want 'db-123'", cfg.DefaultDatabaseID)
	}
	if len(cfg.DefaultTags) != 2 || cfg.DefaultTags[0] != "DAILY" {
		t.Errorf("DefaultTags = %v, want [DAILY PRODUCTIVITY]", cfg.DefaultTags)
	}
	if cfg.IntegrationName != "Notes Bot" {
		t.Errorf("IntegrationName = %q, want 'Notes Bot'", cfg.IntegrationName)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if cfg != nil {
		t.Errorf("cfg = %+v, want nil", cfg)
	}
	if !errors.Is(err, errors.ErrConfig) {
		t.Errorf("error code = %v, want CONFIG", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"notion_api_token": `)

	_, err := Load(dir)
	if !errors.Is(err, errors.ErrConfig) {
		t.Fatalf("expected CONFIG error, got %v", err)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"default_database_id": "db-123"}`)

	_, err := Load(dir)
	if !errors.Is(err, errors.ErrConfig) {
		t.Fatalf("expected CONFIG error, got %v", err)
	}
}

func TestLoad_MissingDatabaseID(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"notion_api_token": "secret_abc"}`)

	_, err := Load(dir)
	if !errors.Is(err, errors.ErrConfig) {
		t.Fatalf("expected CONFIG error, got %v", err)
	}
}

func TestLoad_EnvOverridesToken(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"notion_api_token": "from-file",
		"default_database_id": "db-123"
	}`)
	t.Setenv("NOTION_API_TOKEN", "from-env")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NotionAPIToken != "from-env" {
		t.Errorf("NotionAPIToken = %q, want 'from-env'", cfg.NotionAPIToken)
	}
}

func TestLoad_EnvFillsMissingToken(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"default_database_id": "db-123"}`)
	t.Setenv("NOTION_API_TOKEN", "from-env")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NotionAPIToken != "from-env" {
		t.Errorf("NotionAPIToken = %q, want 'from-env'", cfg.NotionAPIToken)
	}
}

func TestLoad_DefaultIntegrationName(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"notion_api_token": "secret_abc",
		"default_database_id": "db-123"
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.IntegrationName != DefaultIntegrationName {
		t.Errorf("IntegrationName = %q, want %q", cfg.IntegrationName, DefaultIntegrationName)
	}
}

func TestScaffold(t *testing.T) {
	dir := t.TempDir()

	path, err := Scaffold(dir)
	if err != nil {
		t.Fatalf("Scaffold failed: %v", err)
	}
	if path != filepath.Join(dir, "config.json") {
		t.Errorf("path = %q, want config.json under base dir", path)
	}

	// Scaffold output must be valid JSON with all spec fields present.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading scaffold: %v", err)
	}
	for _, field := range []string{"notion_api_token", "default_database_id", "default_database_name", "default_tags", "integration_name"} {
		if !strings.Contains(string(data), field) {
			t.Errorf("scaffold missing field %q", field)
		}
	}

	// Second call refuses to overwrite.
	if _, err := Scaffold(dir); !errors.Is(err, errors.ErrConfig) {
		t.Errorf("expected CONFIG error on overwrite, got %v", err)
	}
}
