package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/DDinenno/flappy-flap/game"
)

func TestDefaultNeedsImages(t *testing.T) {
	c := Default()
	if err := c.Validate(); err == nil {
		t.Fatalf("expected an error without asset_dir or placeholder")
	}
	c.Placeholder = true
	if err := c.Validate(); err != nil {
		t.Fatalf("placeholder config should be valid: %v", err)
	}
}

func TestParseKeepsUnsetKeys(t *testing.T) {
	c, err := Parse(`
seed = 42
asset_dir = "art"

[tuning]
pipe_pairs = 3
gravity = 0.1
`, Default())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Seed != 42 || c.AssetDir != "art" || c.Tuning.PipePairs != 3 || c.Tuning.Gravity != 0.1 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Title != "Flappy Flap" || c.Tuning.PipeSpeed != game.PipeSpeed {
		t.Fatalf("unset keys lost their defaults: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestParseRejectsBadTOML(t *testing.T) {
	base := Default()
	c, err := Parse("seed = [", base)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if c.Title != base.Title {
		t.Fatalf("base not returned on error")
	}
}

func TestValidateWrapsTuningErrors(t *testing.T) {
	c := Default()
	c.Placeholder = true
	c.Tuning.PipePairs = 0
	err := c.Validate()
	if err == nil || !strings.HasPrefix(err.Error(), "tuning: ") {
		t.Fatalf("err = %v, want a tuning error", err)
	}

	c = Default()
	c.Placeholder = true
	c.WindowScale = 0
	if err := c.Validate(); err == nil {
		t.Fatalf("expected an error for window_scale 0")
	}
}

func TestShippedDefaultsMatchTuning(t *testing.T) {
	c, err := LoadFile(filepath.Join("..", "flappy.toml"), Config{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := game.DefaultTuning()
	// Sizes come from the loaded images.
	want.PlayerWidth, want.PlayerHeight = 0, 0
	want.PipeWidth, want.PipeHeight = 0, 0
	if !reflect.DeepEqual(c.Tuning, want) {
		t.Fatalf("flappy.toml tuning = %+v\nwant %+v", c.Tuning, want)
	}
}

func TestShippedDefaultsRunWithoutImages(t *testing.T) {
	c, err := LoadFile(filepath.Join("..", "flappy.toml"), Default())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !c.Placeholder || c.AssetDir != "" {
		t.Fatalf("placeholder=%v asset_dir=%q, want placeholders and no directory", c.Placeholder, c.AssetDir)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("shipped defaults do not validate: %v", err)
	}
}

func TestAssetDirTurnsPlaceholdersOff(t *testing.T) {
	base := Default()
	base.Placeholder = true

	t.Setenv("FLAPPY_ASSET_DIR", "art")
	c, err := LoadEnv(base, "")
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c.Placeholder || c.AssetDir != "art" {
		t.Fatalf("placeholder=%v asset_dir=%q", c.Placeholder, c.AssetDir)
	}

	t.Setenv("FLAPPY_PLACEHOLDER", "true")
	if c, err = LoadEnv(base, ""); err != nil || !c.Placeholder {
		t.Fatalf("explicit FLAPPY_PLACEHOLDER should win: placeholder=%v err=%v", c.Placeholder, err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.toml")
	if err := os.WriteFile(path, []byte("placeholder = true\nwindow_scale = 2.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path, Default())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !c.Placeholder || c.WindowScale != 2 {
		t.Fatalf("file not applied: %+v", c)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"), Default()); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FLAPPY_SEED", "7")
	t.Setenv("FLAPPY_PLACEHOLDER", "true")
	t.Setenv("FLAPPY_PIPE_PAIRS", "2")
	t.Setenv("FLAPPY_WINDOW_SCALE", "1.5")

	c, err := LoadEnv(Default(), "")
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c.Seed != 7 || !c.Placeholder || c.Tuning.PipePairs != 2 || c.WindowScale != 1.5 {
		t.Fatalf("env not applied: %+v", c)
	}
}

func TestLoadEnvRejectsBadValues(t *testing.T) {
	t.Setenv("FLAPPY_SEED", "seven")
	_, err := LoadEnv(Default(), "")
	if err == nil || !strings.Contains(err.Error(), "FLAPPY_SEED") {
		t.Fatalf("err = %v, want one naming FLAPPY_SEED", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("FLAPPY_ASSET_DIR=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides a variable that is already set.
	os.Unsetenv("FLAPPY_ASSET_DIR")
	t.Cleanup(func() { os.Unsetenv("FLAPPY_ASSET_DIR") })

	c, err := LoadEnv(Default(), envFile)
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c.AssetDir != "from-dotenv" {
		t.Fatalf("asset_dir = %q", c.AssetDir)
	}

	if _, err := LoadEnv(Default(), filepath.Join(dir, "absent.env")); err != nil {
		t.Fatalf("a missing env file must be ignored: %v", err)
	}
}

func TestGetEnvVariable(t *testing.T) {
	if _, err := GetEnvVariable(""); err == nil {
		t.Fatalf("expected an error for an empty name")
	}
	t.Setenv("FLAPPY_TEST_VALUE", "x")
	if v, err := GetEnvVariable("FLAPPY_TEST_VALUE"); err != nil || v != "x" {
		t.Fatalf("got %q, %v", v, err)
	}
}
