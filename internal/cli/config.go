package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/pipeline"
	"github.com/matzehuels/figstyle/pkg/preview"
)

// Config holds user settings read from config.toml. Command-line flags
// override every field.
type Config struct {
	// Style is the default sheet for figures that name none.
	Style string `toml:"style"`
	// DPI is the raster resolution; zero keeps the sheet's save DPI.
	DPI float64 `toml:"dpi"`
	// Formats rendered when --format is not given.
	Formats []string `toml:"formats"`
	// Cache enables the artifact cache.
	Cache bool `toml:"cache"`
	// PreviewDPI is the resolution of clipping checks.
	PreviewDPI float64 `toml:"preview_dpi"`
}

func defaultConfig() Config {
	return Config{
		Formats:    []string{pipeline.DefaultFormat},
		Cache:      true,
		PreviewDPI: preview.DefaultDPI,
	}
}

// loadConfig reads the settings file. A missing default file is not an
// error; a missing file named with --config is.
func (c *CLI) loadConfig() (Config, error) {
	path := c.configPath
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return defaultConfig(), nil
		}
		path = filepath.Join(dir, configFile)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return defaultConfig(), nil
	}
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "settings file %s", path)
	}
	if err != nil {
		return Config{}, err
	}
	return parseConfig(path, data)
}

func parseConfig(path string, data []byte) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "settings file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "settings file %s: unknown key %s", path, undecoded[0])
	}
	if err := pipeline.ValidateFormats(cfg.Formats); err != nil {
		return Config{}, err
	}
	if cfg.DPI < 0 || cfg.PreviewDPI < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "settings file %s: dpi must not be negative", path)
	}
	return cfg, nil
}
