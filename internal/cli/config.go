package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cubetex/pkg/errors"
	"github.com/matzehuels/cubetex/pkg/pipeline"
)

// configFile is the name of the config file inside the config directory.
const configFile = "config.toml"

// Config is the user configuration read from config.toml. Flags given on the
// command line take precedence over it.
//
//	[render]
//	formats = ["tex", "json"]
//	grid_color = "gray!60"
//
//	[cache]
//	redis_addr = "localhost:6379"
//	ttl = "72h"
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
}

// RenderConfig holds default render options.
type RenderConfig struct {
	Formats   []string `toml:"formats"`
	GridColor string   `toml:"grid_color"`
	ShadeA    string   `toml:"shade_a"`
	ShadeB    string   `toml:"shade_b"`
	Fill      string   `toml:"fill"`
}

// CacheConfig selects and tunes the artifact cache.
type CacheConfig struct {
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       duration `toml:"ttl"`
}

// duration is a time.Duration written as a string ("72h") in TOML.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// loadConfig reads the config file at path, or at the default location when
// path is empty. A missing default file yields the zero Config; a missing
// explicit file is an error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	md, err := toml.NewDecoder(f).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput,
			"config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := pipeline.ValidateFormats(cfg.Render.Formats); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, nil
}

// applyTo sets the formats when no flag chose them. Style values become
// pipeline defaults, so a spec file still wins over the user config.
func (r RenderConfig) applyTo(opts *pipeline.Options) {
	if len(opts.Formats) == 0 {
		opts.Formats = append([]string(nil), r.Formats...)
	}
	opts.Defaults = pipeline.StyleDefaults{
		GridColor: r.GridColor,
		ShadeA:    r.ShadeA,
		ShadeB:    r.ShadeB,
		Fill:      r.Fill,
	}
}
