package config

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadKeyValue reads a plain KEY=value file such as
//
//	START_CASH=10000
//	FEE_RATE=0.01
//
// Keys are case-insensitive and lines without '=' are skipped. A missing
// file, a missing key or an unusable value falls back to the default and is
// logged as a warning; it never fails.
func LoadKeyValue(path string, logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("config file not found, using defaults", "path", path)
		} else {
			logger.Warn("config file unreadable, using defaults", "path", path, "err", err)
		}
		return cfg
	}
	defer f.Close()

	if err := parseKeyValue(f, cfg, logger); err != nil {
		logger.Warn("config file read failed, using values parsed so far", "path", path, "err", err)
	}
	return cfg
}

func parseKeyValue(r io.Reader, cfg *Config, logger *slog.Logger) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), "=")
		if !ok {
			continue
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "START_CASH":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil || !finite(v) || v < 0 {
				logger.Warn("invalid START_CASH, using default", "value", value, "default", DefaultStartCash)
				continue
			}
			cfg.Game.StartCash = v
		case "FEE_RATE":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil || !finite(v) || v < 0 || v >= 1 {
				logger.Warn("invalid FEE_RATE, using default", "value", value, "default", DefaultFeeRate)
				continue
			}
			cfg.Game.FeeRate = v
		default:
			logger.Debug("ignoring unknown config key", "key", key)
		}
	}
	return sc.Err()
}

// finite reports whether v is neither NaN nor an infinity. ParseFloat and
// YAML both accept those spellings.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Load picks the loader by extension: .yaml, .yml and .json files are
// structured configs, anything else is a KEY=value file. An empty path or a
// missing file yields the defaults.
func Load(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return Default(), nil
	}
	if !isStructured(path) {
		return LoadKeyValue(path, logger), nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Warn("config file not found, using defaults", "path", path)
		return Default(), nil
	}
	return LoadFromFile(path)
}
