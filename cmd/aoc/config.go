package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "aoc"
	configFileType = "yaml"
	envPrefix      = "AOC"

	cfgKeyInputsDir = "inputs_dir"
	cfgKeyLogLevel  = "log_level"
	cfgKeyAlgorithm = "algorithm"
	cfgKeyColor     = "color"

	defaultInputsDir = "inputs"
	defaultLogLevel  = "info"
	defaultAlgorithm = "astar"
	defaultColor     = "auto"
)

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	cfgKeyInputsDir: "inputs",
	cfgKeyLogLevel:  "log-level",
	cfgKeyAlgorithm: "algorithm",
	cfgKeyColor:     "color",
}

// loadConfig reads path, or aoc.yaml from the usual places when path is
// empty. A missing default config file is not an error; a missing explicit
// one is.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyInputsDir, defaultInputsDir)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyAlgorithm, defaultAlgorithm)
	v.SetDefault(cfgKeyColor, defaultColor)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "aoc"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// newLogger returns a text logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}
