package pipeline

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/podgraph/pkg/errors"
)

// Config is the optional configuration file. It is TOML by default:
//
//	format    = "svg"
//	color     = true
//	threshold = 3
//	palette   = ["#e41a1c", "#377eb8", "#4daf4a"]
//
// Files ending in .yaml or .yml are read as YAML with the same keys.
// Unset keys leave the corresponding option untouched.
type Config struct {
	Format    *string  `toml:"format" yaml:"format"`
	Color     *bool    `toml:"color" yaml:"color"`
	Threshold *int     `toml:"threshold" yaml:"threshold"`
	Palette   []string `toml:"palette" yaml:"palette"`
	Verify    *bool    `toml:"verify" yaml:"verify"`
}

// LoadConfig reads a configuration file. Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file not found")
		}
		return nil, errs.Wrap(errs.ErrCodeIO, err, "read %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(path, data)
	default:
		return decodeTOML(path, data)
	}
}

func decodeTOML(path string, data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}

func decodeYAML(path string, data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	return &cfg, nil
}

// Apply copies every key set in the file onto opts.
func (c *Config) Apply(opts *Options) {
	if c.Format != nil {
		opts.Format = *c.Format
	}
	if c.Color != nil {
		opts.Color = *c.Color
	}
	if c.Threshold != nil {
		opts.Threshold = *c.Threshold
	}
	if len(c.Palette) > 0 {
		opts.Palette = c.Palette
	}
	if c.Verify != nil {
		opts.SkipVerify = !*c.Verify
	}
}
