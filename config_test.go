package wikihtml

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "out" || cfg.Progress != "counter" || cfg.KeepGoing {
		t.Fatalf("Unexpected defaults: %+v", cfg)
	}
	e := cfg.NewEngine()
	if e.Command != "pandoc" || !reflect.DeepEqual(e.Args, DefaultEngineArgs) || e.Timeout != 0 {
		t.Fatalf("Expected the default pandoc engine, got %+v", e)
	}

	// Changing a config's args mustn't change everyone's.
	cfg.Engine.Args[0] = "-x"
	if DefaultEngineArgs[0] != "-f" {
		t.Fatalf("Expected DefaultEngineArgs unchanged, got %v", DefaultEngineArgs)
	}
}

func writeTempConfig(t *testing.T, body string) string {
	fn := filepath.Join(t.TempDir(), "wikihtml.yaml")
	if err := os.WriteFile(fn, []byte(body), 0644); err != nil {
		t.Fatalf("Error writing config: %v", err)
	}
	return fn
}

func TestLoadConfig(t *testing.T) {
	fn := writeTempConfig(t, `
output_dir: /srv/wiki
keep_going: true
engine:
  command: /usr/local/bin/pandoc
  args: [-f, mediawiki, -t, html5]
  timeout: 30s
catalog:
  kind: sqlite
  url: pages.db
`)

	cfg, err := LoadConfig(fn)
	if err != nil {
		t.Fatalf("Error loading config: %v", err)
	}
	if cfg.OutputDir != "/srv/wiki" || !cfg.KeepGoing {
		t.Fatalf("Unexpected config: %+v", cfg)
	}
	if cfg.Engine.Timeout != 30*time.Second || cfg.Engine.Args[3] != "html5" {
		t.Fatalf("Unexpected engine config: %+v", cfg.Engine)
	}
	if cfg.Catalog.Kind != "sqlite" || cfg.Catalog.URL != "pages.db" {
		t.Fatalf("Unexpected catalog config: %+v", cfg.Catalog)
	}
	// Unset fields keep their defaults.
	if cfg.Progress != "counter" || cfg.ReportEvery != DefaultReportEvery {
		t.Fatalf("Expected defaults kept, got %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Expected an error loading a missing config")
	}
	fn := writeTempConfig(t, "engine: [not, a, map]\n")
	if _, err := LoadConfig(fn); err == nil {
		t.Fatalf("Expected an error loading a bad config")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		ok   bool
	}{
		{"defaults", func(*Config) {}, true},
		{"no output", func(c *Config) { c.OutputDir = "" }, false},
		{"no engine", func(c *Config) { c.Engine.Command = "" }, false},
		{"negative timeout", func(c *Config) { c.Engine.Timeout = -time.Second }, false},
		{"log progress", func(c *Config) { c.Progress = "log" }, true},
		{"bad progress", func(c *Config) { c.Progress = "spinner" }, false},
		{"negative report", func(c *Config) { c.ReportEvery = -1 }, false},
		{"sqlite", func(c *Config) { c.Catalog.Kind = "sqlite" }, true},
		{"couchdb without url", func(c *Config) { c.Catalog.Kind = "couchdb" }, false},
		{"couchdb", func(c *Config) {
			c.Catalog.Kind, c.Catalog.URL = "couchdb", "http://localhost:5984/wiki"
		}, true},
		{"bad catalog", func(c *Config) { c.Catalog.Kind = "punchcards" }, false},
	}

	for _, test := range tests {
		cfg := DefaultConfig()
		test.edit(&cfg)
		err := cfg.Validate()
		if (err == nil) != test.ok {
			t.Errorf("%v: expected ok=%v, got %v", test.name, test.ok, err)
		}
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	fn := writeTempConfig(t, "progress: spinner\n")
	if _, err := LoadConfig(fn); err == nil {
		t.Fatalf("Expected an invalid config to be rejected")
	}
}
