package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ahrav/go-draft/sdk/draftengine"
)

// Config carries the CLI-tunable settings. Engine internals not listed
// here keep their library defaults.
type Config struct {
	// LogLevel is the minimum slog level: debug, info, warn, or error.
	LogLevel string `koanf:"log_level"`

	// LogFile, when set, receives a JSON copy of every log record in
	// addition to the text stream on stderr.
	LogFile string `koanf:"log_file"`

	// Format selects the default output format: console, csv, json, or yaml.
	Format string `koanf:"format"`

	// Robust enables the log1p pre-transform for heavy-tailed attributes.
	Robust bool `koanf:"robust"`

	// Optimize toggles the swap-refinement stage.
	Optimize bool `koanf:"optimize"`

	// MaxIterations caps the optimizer's swap-search rounds.
	MaxIterations int `koanf:"max_iterations"`

	// BandWidth is the score-band width used when shuffling near-ties.
	BandWidth float64 `koanf:"band_width"`
}

// defaultConfig mirrors the engine defaults so a bare CLI run and a bare
// library call behave identically.
func defaultConfig() Config {
	engine := draftengine.DefaultConfig()
	return Config{
		LogLevel:      "info",
		Format:        "console",
		Optimize:      engine.Optimize,
		MaxIterations: engine.Optimizer.MaxIterations,
		BandWidth:     engine.Builder.BandWidth,
	}
}

// loadConfig layers configuration sources, lowest precedence first:
// built-in defaults, then a YAML file (the --config flag, falling back to
// TEAMDRAFT_CONFIG), then TEAMDRAFT_-prefixed environment variables.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("TEAMDRAFT_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// TEAMDRAFT_MAX_ITERATIONS -> max_iterations, matching the koanf tags.
	envProvider := env.Provider("TEAMDRAFT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "teamdraft_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return cfg, fmt.Errorf("load environment: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// engineOptions translates the CLI config into engine construction options.
func (c Config) engineOptions() []draftengine.Option {
	engineCfg := draftengine.DefaultConfig()
	engineCfg.RobustScoring = c.Robust
	engineCfg.Optimize = c.Optimize
	engineCfg.Optimizer.MaxIterations = c.MaxIterations
	engineCfg.Builder.BandWidth = c.BandWidth
	return []draftengine.Option{draftengine.WithConfig(engineCfg)}
}
