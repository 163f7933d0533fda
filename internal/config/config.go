package config

import (
	"path/filepath"
	"strings"

	"github.com/mlanger/oviterbi/hmm"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Run holds everything a driver command needs to run a decode: the HMM
// parameters plus the window size the online decoder should use between
// terminal flushes.
type Run struct {
	Model        hmm.Params `mapstructure:"model"`
	Window       int        `mapstructure:"window"`
	Observations string     `mapstructure:"observations"`
}

// Load reads a Run configuration from path, inferring the file format
// from its extension (yaml, yml, json, toml). It returns the parsed
// configuration validated against hmm.Params' invariants.
func Load(path string) (*Run, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.AddConfigPath(filepath.Dir(path))

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext != "" {
		vp.SetConfigType(ext)
	}

	if err := vp.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	var run Run
	if err := vp.Unmarshal(&run); err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}

	if run.Window < 1 {
		run.Window = run.Model.T
	}

	if err := run.Model.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model parameters")
	}

	return &run, nil
}
