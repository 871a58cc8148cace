package wikihtml

import (
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EngineConfig says how to run the external converter.
type EngineConfig struct {
	Command string        `yaml:"command"`
	Args    []string      `yaml:"args"`
	Timeout time.Duration `yaml:"timeout"`
}

// CatalogConfig selects where page entries are recorded, if anywhere.
//
// Kind is one of sqlite, couchdb, couchbase, elasticsearch or mongodb;
// empty means no catalog.  URL is a file path for sqlite and a server
// URL for the rest.
type CatalogConfig struct {
	Kind       string `yaml:"kind"`
	URL        string `yaml:"url"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
	Bucket     string `yaml:"bucket"`
	Index      string `yaml:"index"`
}

// Config is everything a run can be told.
type Config struct {
	OutputDir string       `yaml:"output_dir"`
	Engine    EngineConfig `yaml:"engine"`
	// Progress is counter, log or none.
	Progress    string        `yaml:"progress"`
	ReportEvery int64         `yaml:"report_every"`
	KeepGoing   bool          `yaml:"keep_going"`
	Catalog     CatalogConfig `yaml:"catalog"`
}

// DefaultConfig gets the configuration used when nothing else is said.
func DefaultConfig() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Engine: EngineConfig{
			Command: DefaultEngineCommand,
			Args:    append([]string(nil), DefaultEngineArgs...),
		},
		Progress:    "counter",
		ReportEvery: DefaultReportEvery,
	}
}

// ProgressStyles are the accepted values of Config.Progress.
var ProgressStyles = []interface{}{"counter", "log", "none"}

// CatalogKinds are the accepted values of CatalogConfig.Kind.
var CatalogKinds = []interface{}{"sqlite", "couchdb", "couchbase", "elasticsearch", "mongodb"}

// Validate checks a config before a run starts.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Progress, validation.In(ProgressStyles...)),
		validation.Field(&c.ReportEvery, validation.Min(int64(1))),
		validation.Field(&c.Engine),
		validation.Field(&c.Catalog),
	)
}

func (e EngineConfig) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Command, validation.Required),
		validation.Field(&e.Timeout, validation.Min(time.Duration(0))),
	)
}

func (c CatalogConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Kind, validation.In(CatalogKinds...)),
		validation.Field(&c.URL, validation.When(c.Kind != "" && c.Kind != "sqlite", validation.Required)),
	)
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %v", filename)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %v", filename)
	}
	return cfg, nil
}

// NewEngine gets the engine described by the config.
func (c Config) NewEngine() *PandocEngine {
	return &PandocEngine{
		Command: c.Engine.Command,
		Args:    c.Engine.Args,
		Timeout: c.Engine.Timeout,
	}
}
