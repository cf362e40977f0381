package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/DDinenno/flappy-flap/game"
)

type Config struct {
	Title       string      `toml:"title"`
	Seed        uint64      `toml:"seed"` // 0 picks a seed from the clock
	AssetDir    string      `toml:"asset_dir"`
	Placeholder bool        `toml:"placeholder"`
	Debug       bool        `toml:"debug"`
	WindowScale float64     `toml:"window_scale"`
	Tuning      game.Tuning `toml:"tuning"`
}

func Default() Config {
	return Config{
		Title:       "Flappy Flap",
		WindowScale: 1,
		Tuning:      game.DefaultTuning(),
	}
}

// Parse decodes a TOML document over base. Keys absent from data keep the
// value they have in base.
func Parse(data string, base Config) (Config, error) {
	c := base
	if _, err := toml.Decode(data, &c); err != nil {
		return base, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

func LoadFile(path string, base Config) (Config, error) {
	c := base
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return base, fmt.Errorf("load config %s: %w", path, err)
	}
	log.Printf("Successfully loaded config from %s", path)
	return c, nil
}

// LoadEnv reads envFile into the process environment, if it exists, and then
// applies the FLAPPY_* variables to c. FLAPPY_ASSET_DIR turns placeholder
// images off unless FLAPPY_PLACEHOLDER turns them back on.
func LoadEnv(c Config, envFile string) (Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return c, fmt.Errorf("load %s: %w", envFile, err)
		default:
			log.Printf("Successfully loaded environment variables from %s", envFile)
		}
	}

	for _, o := range overrides {
		v, err := GetEnvVariable(o.key)
		if err != nil {
			continue
		}
		if err := o.apply(&c, v); err != nil {
			return c, fmt.Errorf("%s=%q: %w", o.key, v, err)
		}
	}
	return c, nil
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

var overrides = []struct {
	key   string
	apply func(c *Config, v string) error
}{
	{"FLAPPY_SEED", func(c *Config, v string) (err error) {
		c.Seed, err = strconv.ParseUint(v, 10, 64)
		return err
	}},
	{"FLAPPY_ASSET_DIR", func(c *Config, v string) error {
		c.AssetDir, c.Placeholder = v, false
		return nil
	}},
	{"FLAPPY_PLACEHOLDER", func(c *Config, v string) (err error) {
		c.Placeholder, err = strconv.ParseBool(v)
		return err
	}},
	{"FLAPPY_DEBUG", func(c *Config, v string) (err error) {
		c.Debug, err = strconv.ParseBool(v)
		return err
	}},
	{"FLAPPY_PIPE_PAIRS", func(c *Config, v string) (err error) {
		c.Tuning.PipePairs, err = strconv.Atoi(v)
		return err
	}},
	{"FLAPPY_WINDOW_SCALE", func(c *Config, v string) (err error) {
		c.WindowScale, err = strconv.ParseFloat(v, 64)
		return err
	}},
}

func (c Config) Validate() error {
	if c.WindowScale <= 0 {
		return fmt.Errorf("window_scale must be positive, got %v", c.WindowScale)
	}
	if !c.Placeholder && c.AssetDir == "" {
		return fmt.Errorf("asset_dir is required unless placeholder images are enabled")
	}
	if err := c.Tuning.Validate(); err != nil {
		return fmt.Errorf("tuning: %w", err)
	}
	return nil
}
