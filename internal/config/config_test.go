package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHistoryPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fruits.json", "fruits.history.db"},
		{"/data/catalogue.json", "/data/catalogue.history.db"},
		{"noext", "noext.history.db"},
	}
	for _, tt := range tests {
		if got := HistoryPath(tt.in); got != tt.want {
			t.Errorf("HistoryPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveCataloguePath_FlagWins(t *testing.T) {
	t.Setenv(EnvCatalogueFile, "/env/fruits.json")

	got := ResolveCataloguePath("/flag/fruits.json", true)
	if got != "/flag/fruits.json" {
		t.Errorf("ResolveCataloguePath() = %q, want flag value", got)
	}
}

func TestResolveCataloguePath_EnvOverGlobal(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()
	writeGlobalConfig(t, "catalogue_file: /cfg/fruits.json\n")
	t.Setenv(EnvCatalogueFile, "/env/fruits.json")

	got := ResolveCataloguePath("fruits.json", false)
	if got != "/env/fruits.json" {
		t.Errorf("ResolveCataloguePath() = %q, want env value", got)
	}
}

func TestResolveCataloguePath_GlobalConfig(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()
	writeGlobalConfig(t, "catalogue_file: /cfg/fruits.json\n")
	t.Setenv(EnvCatalogueFile, "")

	got := ResolveCataloguePath("fruits.json", false)
	if got != "/cfg/fruits.json" {
		t.Errorf("ResolveCataloguePath() = %q, want global config value", got)
	}
}

func TestResolveCataloguePath_Default(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file there
	t.Setenv(EnvCatalogueFile, "")

	got := ResolveCataloguePath("fruits.json", false)
	if got != DefaultCatalogueFile {
		t.Errorf("ResolveCataloguePath() = %q, want %q", got, DefaultCatalogueFile)
	}
}

// writeGlobalConfig points XDG_CONFIG_HOME at a temp dir containing the
// given config.yml content.
func writeGlobalConfig(t *testing.T, content string) {
	t.Helper()
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, GlobalConfigDir)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
}
