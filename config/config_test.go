package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		profile     string
		files       map[string]string
		want        *Config
		wantHexdump bool
		wantOpen    bool
	}{
		{
			name:        "no config file",
			want:        &Config{},
			wantHexdump: true,
		},
		{
			name: "config with output and hexdump false",
			files: map[string]string{
				"config.yml": `
output: out/pixel.png
hexdump: false
`,
			},
			want:        &Config{Output: "out/pixel.png", Hexdump: boolPtr(false)},
			wantHexdump: false,
		},
		{
			name: "yaml extension",
			files: map[string]string{
				"config.yaml": `
open: true
`,
			},
			want:        &Config{Open: boolPtr(true)},
			wantHexdump: true,
			wantOpen:    true,
		},
		{
			name:    "profile takes precedence",
			profile: "work",
			files: map[string]string{
				"config.yml":      "output: default.png\n",
				"config-work.yml": "output: work.png\n",
			},
			want:        &Config{Output: "work.png"},
			wantHexdump: true,
		},
		{
			name:    "missing profile falls back to default",
			profile: "home",
			files: map[string]string{
				"config.yml": "output: default.png\n",
			},
			want:        &Config{Output: "default.png"},
			wantHexdump: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", tmpDir)

			// Reset configHomePath
			configHomePath = ""
			t.Cleanup(func() { configHomePath = "" })

			dir := filepath.Join(tmpDir, appName)
			if err := os.MkdirAll(dir, 0755); err != nil {
				t.Fatalf("Failed to create config directory: %v", err)
			}
			for name, content := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
					t.Fatalf("Failed to write config file: %v", err)
				}
			}

			cfg, err := Load(tt.profile)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
			if got := cfg.HexdumpEnabled(); got != tt.wantHexdump {
				t.Errorf("HexdumpEnabled() = %v, want %v", got, tt.wantHexdump)
			}
			if got := cfg.OpenEnabled(); got != tt.wantOpen {
				t.Errorf("OpenEnabled() = %v, want %v", got, tt.wantOpen)
			}
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	configHomePath = ""
	t.Cleanup(func() { configHomePath = "" })

	dir := filepath.Join(tmpDir, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("hexdump: [1, 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); err == nil {
		t.Error("Load() error = nil, want error")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
