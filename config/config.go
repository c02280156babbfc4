// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/topology"
	"github.com/Panjichuan/gempy/voxel"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid")
	// ErrUnknownFormat is returned for config files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("config: unknown file format")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config is the full configuration of one run.
type Config struct {
	Model    ModelConfig    `yaml:"model" toml:"model"`
	Analysis AnalysisConfig `yaml:"analysis" toml:"analysis"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Logging  LogConfig      `yaml:"logging" toml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics" toml:"metrics"`
}

// ModelConfig locates the solution and its surface catalog.
type ModelConfig struct {
	Path    string `yaml:"path" toml:"path" validate:"required"`
	Catalog string `yaml:"catalog" toml:"catalog"`
	// Layers is the number of lithology layers of the model.
	Layers int `yaml:"layers" toml:"layers" validate:"required,min=1"`
	// Faults, when nonzero, is the number of fault blocks the model must carry.
	Faults int `yaml:"faults" toml:"faults" validate:"min=0"`
}

// AnalysisConfig mirrors topology.Options.
type AnalysisConfig struct {
	Shift          int    `yaml:"shift" toml:"shift" validate:"min=1"`
	NoCrop         bool   `yaml:"no_crop" toml:"no_crop"`
	Layout         string `yaml:"layout" toml:"layout" validate:"omitempty,oneof=disjoint overlapping"`
	LithologyBase  *int64 `yaml:"lithology_base" toml:"lithology_base"`
	SignatureCheck bool   `yaml:"signature_check" toml:"signature_check"`
	Connectivity   int    `yaml:"connectivity" toml:"connectivity" validate:"oneof=6 26"`
}

// OutputConfig controls where and how the result document is written.
// An empty Path means stdout.
type OutputConfig struct {
	Path   string `yaml:"path" toml:"path"`
	Format string `yaml:"format" toml:"format" validate:"oneof=json yaml"`
}

// MetricsConfig names the node exporter textfile to write after a run.
type MetricsConfig struct {
	Textfile string `yaml:"textfile" toml:"textfile"`
}

// Default returns a Config with every optional field set.
func Default() Config {
	return Config{
		Analysis: AnalysisConfig{
			Shift:        1,
			Layout:       label.Disjoint.String(),
			Connectivity: 6,
		},
		Output: OutputConfig{
			Format: "json",
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path. The format is chosen by extension:
// .yaml and .yml for YAML, .toml for TOML.
func Load(path string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	cfg.convertPathsToAbsolute(path)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// convertPathsToAbsolute resolves relative paths against the directory of
// the config file.
func (c *Config) convertPathsToAbsolute(configPath string) {
	dir := filepath.Dir(configPath)
	for _, p := range []*string{
		&c.Model.Path,
		&c.Model.Catalog,
		&c.Output.Path,
		&c.Logging.Logfile,
		&c.Metrics.Textfile,
	} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError reports the first failed constraint as
// "Section.Field: failed 'tag'".
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for _, e := range verrs {
		ns := strings.TrimPrefix(e.Namespace(), "Config.")
		if e.Param() != "" {
			return fmt.Errorf("%w: %s: failed '%s=%s' (got %v)", ErrInvalidConfig, ns, e.Tag(), e.Param(), e.Value())
		}
		return fmt.Errorf("%w: %s: failed '%s'", ErrInvalidConfig, ns, e.Tag())
	}
	return ErrInvalidConfig
}

// Options converts the analysis section to topology options.
func (a AnalysisConfig) Options() ([]topology.Option, error) {
	kind, err := label.ParseLayoutKind(a.Layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	opts := []topology.Option{
		topology.WithShift(a.Shift),
		topology.WithLayout(kind),
	}
	if a.NoCrop {
		opts = append(opts, topology.WithoutCrop())
	}
	if a.LithologyBase != nil {
		opts = append(opts, topology.WithLithologyBase(*a.LithologyBase))
	}
	if a.SignatureCheck {
		opts = append(opts, topology.WithSignatureCheck())
	}
	switch a.Connectivity {
	case 6:
		opts = append(opts, topology.WithConnectivity(voxel.Conn6))
	case 26:
		opts = append(opts, topology.WithConnectivity(voxel.Conn26))
	default:
		return nil, fmt.Errorf("%w: connectivity %d", ErrInvalidConfig, a.Connectivity)
	}
	return opts, nil
}
