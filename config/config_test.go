package config_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panjichuan/gempy/config"
	"github.com/Panjichuan/gempy/topology"
	"github.com/Panjichuan/gempy/voxel"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "run.yaml", `
model:
  path: model.gtv
  catalog: /data/catalog.yaml
  layers: 3
analysis:
  shift: 2
  layout: overlapping
  lithology_base: 1
  connectivity: 26
output:
  format: yaml
logging:
  level: debug
  logfile: logs/geotopo.log
  max_log_size: 10
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "model.gtv"), cfg.Model.Path)
	assert.Equal(t, "/data/catalog.yaml", cfg.Model.Catalog)
	assert.Equal(t, filepath.Join(dir, "logs/geotopo.log"), cfg.Logging.Logfile)
	assert.Equal(t, "", cfg.Output.Path, "empty paths stay empty")
	assert.Equal(t, 3, cfg.Model.Layers)
	assert.Equal(t, 2, cfg.Analysis.Shift)
	require.NotNil(t, cfg.Analysis.LithologyBase)
	assert.Equal(t, int64(1), *cfg.Analysis.LithologyBase)
}

func TestLoad_TOML(t *testing.T) {
	path := write(t, "run.toml", `
[model]
path = "model.gtv"
layers = 2

[analysis]
no_crop = true
signature_check = true

[metrics]
textfile = "geotopo.prom"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Analysis.Shift, "defaults survive a partial file")
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Analysis.NoCrop)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "geotopo.prom"), cfg.Metrics.Textfile)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(write(t, "run.ini", "x=1"))
	assert.ErrorIs(t, err, config.ErrUnknownFormat)

	_, err = config.Load(write(t, "run.yaml", "model: {path: m.gtv, layers: 2}\ncolour: red\n"))
	assert.Error(t, err, "unknown yaml keys are rejected")

	_, err = config.Load(write(t, "run.toml", "colour = \"red\"\n[model]\npath = \"m\"\nlayers = 2\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := config.Default()
	base.Model = config.ModelConfig{Path: "m.gtv", Layers: 2}
	require.NoError(t, base.Validate())

	cases := map[string]func(c *config.Config){
		"Model.Path":            func(c *config.Config) { c.Model.Path = "" },
		"Model.Layers":          func(c *config.Config) { c.Model.Layers = 0 },
		"Analysis.Shift":        func(c *config.Config) { c.Analysis.Shift = 0 },
		"Analysis.Layout":       func(c *config.Config) { c.Analysis.Layout = "diagonal" },
		"Analysis.Connectivity": func(c *config.Config) { c.Analysis.Connectivity = 18 },
		"Output.Format":         func(c *config.Config) { c.Output.Format = "xml" },
		"Logging.Level":         func(c *config.Config) { c.Logging.Level = "trace" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			c := base
			mutate(&c)
			err := c.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), field)
		})
	}
}

func TestAnalysisOptions(t *testing.T) {
	base := int64(4)
	a := config.AnalysisConfig{
		Shift:          3,
		NoCrop:         true,
		Layout:         "overlapping",
		LithologyBase:  &base,
		SignatureCheck: true,
		Connectivity:   26,
	}
	opts, err := a.Options()
	require.NoError(t, err)

	o := topology.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	assert.Equal(t, 3, o.Shift)
	assert.False(t, o.Crop)
	assert.Equal(t, "overlapping", o.Layout.String())
	assert.True(t, o.HasBase)
	assert.Equal(t, int64(4), o.LithologyBase)
	assert.True(t, o.SignatureCheck)
	assert.Equal(t, voxel.Conn26, o.Connectivity)

	_, err = config.AnalysisConfig{Shift: 1, Layout: "x", Connectivity: 6}.Options()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	_, err = config.AnalysisConfig{Shift: 1, Connectivity: 8}.Options()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := config.LogConfig{Level: "warn"}.NewLogger(&buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("dropped")
	logger.Warn("kept", "n", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, 2.0, rec["n"])

	_, _, err = config.LogConfig{Level: "loud"}.NewLogger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geotopo.log")
	logger, closer, err := config.LogConfig{Logfile: path, MaxSize: 1}.NewLogger(os.Stderr)
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
}
