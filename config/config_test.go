package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetConfigDefaults(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("BOOKSCAN_DATA", dataDir)

	opts, err := GetConfig()
	if err != nil {
		t.Fatalf("get config: %v", err)
	}

	if opts.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", opts.Port)
	}
	if opts.Host != "0.0.0.0" {
		t.Errorf("unexpected default host %q", opts.Host)
	}
	if opts.CatalogBaseURL != "https://www.googleapis.com/books/v1" {
		t.Errorf("unexpected catalog base URL %q", opts.CatalogBaseURL)
	}
	if opts.NotionBaseURL != "https://api.notion.com" {
		t.Errorf("unexpected notion base URL %q", opts.NotionBaseURL)
	}
	if opts.DSN != filepath.Join(dataDir, "bookscan.db") {
		t.Errorf("unexpected DSN %q", opts.DSN)
	}
	if opts.NotionConfigured() {
		t.Error("notion must not be considered configured without credentials")
	}
}

func TestGetConfigEnvOverrides(t *testing.T) {
	t.Setenv("BOOKSCAN_DATA", t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("GOOGLE_BOOKS_API_KEY", "env-catalog-key")
	t.Setenv("NOTION_TOKEN", "env-notion-token")
	t.Setenv("NOTION_DATABASE_ID", "env-database-id")

	opts, err := GetConfig()
	if err != nil {
		t.Fatalf("get config: %v", err)
	}

	if opts.Port != 9090 {
		t.Errorf("expected port 9090, got %d", opts.Port)
	}
	if opts.CatalogAPIKey != "env-catalog-key" {
		t.Errorf("unexpected catalog key %q", opts.CatalogAPIKey)
	}
	if !opts.NotionConfigured() {
		t.Error("expected notion to be configured from env")
	}
	if !opts.HasCatalogKey() {
		t.Error("expected catalog key from env")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	content := `
port = 3000
host = "127.0.0.1"
notion_token = "file-notion-token"
notion_database_id = "file-database-id"
log_level = "debug"
`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	opts, err := ParseFile(file)
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}

	if opts.Port != 3000 {
		t.Errorf("expected port 3000, got %d", opts.Port)
	}
	if opts.Host != "127.0.0.1" {
		t.Errorf("unexpected host %q", opts.Host)
	}
	if opts.LogLevel != "debug" {
		t.Errorf("unexpected log level %q", opts.LogLevel)
	}
	if !opts.NotionConfigured() {
		t.Error("expected notion to be configured from file")
	}
}

func TestParseFileEnvWins(t *testing.T) {
	t.Setenv("PORT", "9191")

	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(file, []byte("port = 3000\n"), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	opts, err := ParseFile(file)
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if opts.Port != 9191 {
		t.Errorf("env must win over file, got port %d", opts.Port)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", true},
		{"your-api-key", true},
		{"your-notion-token", true},
		{"your-database-id", true},
		{"secret_abc123", false},
	}
	for _, tc := range tests {
		if got := IsPlaceholder(tc.value); got != tc.expected {
			t.Errorf("IsPlaceholder(%q) = %v, expected %v", tc.value, got, tc.expected)
		}
	}
}
