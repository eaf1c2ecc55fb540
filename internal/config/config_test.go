package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     bool
		wantOutput  string
		wantDoc     string
		wantHeading string
	}{
		{
			name: "valid config",
			content: `output: json
color: always
doc: docs/STATUS.md
doc_heading: "## Data"`,
			wantOutput:  "json",
			wantDoc:     "docs/STATUS.md",
			wantHeading: "## Data",
		},
		{
			name:        "empty config uses defaults",
			content:     "",
			wantDoc:     "README.md",
			wantHeading: "## Preview",
		},
		{
			name:    "invalid yaml",
			content: "invalid: [yaml",
			wantErr: true,
		},
		{
			name:        "partial config",
			content:     `default_csv: data/preview.csv`,
			wantDoc:     "README.md",
			wantHeading: "## Preview",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yaml")

			if tt.content != "" {
				if err := os.WriteFile(configPath, []byte(tt.content), 0o600); err != nil {
					t.Fatalf("failed to write test config: %v", err)
				}
			}

			cfg, err := LoadFromPath(configPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadFromPath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if cfg.GetOutput() != tt.wantOutput {
				t.Errorf("GetOutput() = %v, want %v", cfg.GetOutput(), tt.wantOutput)
			}
			if cfg.GetDoc() != tt.wantDoc {
				t.Errorf("GetDoc() = %v, want %v", cfg.GetDoc(), tt.wantDoc)
			}
			if cfg.GetDocHeading() != tt.wantHeading {
				t.Errorf("GetDocHeading() = %v, want %v", cfg.GetDocHeading(), tt.wantHeading)
			}
		})
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.GetDefaultCSV() != "preview.csv" {
		t.Errorf("GetDefaultCSV() = %v, want preview.csv", cfg.GetDefaultCSV())
	}
	if cfg.GetDefaultMD() != "preview.md" {
		t.Errorf("GetDefaultMD() = %v, want preview.md", cfg.GetDefaultMD())
	}
	if !cfg.GetUpdateDoc() {
		t.Error("GetUpdateDoc() = false, want true by default")
	}
}

func TestUpdateDocDisabled(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("update_doc: false\n"), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.GetUpdateDoc() {
		t.Error("GetUpdateDoc() = true, want false")
	}
}

func TestSaveToPathRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	enabled := false
	cfg := &Config{
		Output:    "json",
		Doc:       "NOTES.md",
		UpdateDoc: &enabled,
	}
	if err := cfg.SaveToPath(configPath); err != nil {
		t.Fatalf("SaveToPath() error = %v", err)
	}

	loaded, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.Output != "json" || loaded.Doc != "NOTES.md" {
		t.Errorf("round trip = %+v", loaded)
	}
	if loaded.GetUpdateDoc() {
		t.Error("GetUpdateDoc() = true after round trip, want false")
	}
}

func TestSetConfigPathFunc(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	restore := SetConfigPathFunc(func() (string, error) { return configPath, nil })
	defer SetConfigPathFunc(restore)

	got, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath() error = %v", err)
	}
	if got != configPath {
		t.Errorf("DefaultConfigPath() = %v, want %v", got, configPath)
	}
}
