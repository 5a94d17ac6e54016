// Package config provides the configuration loader for tldr.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvBaseURL overrides the configured page host.
	EnvBaseURL = "TLDR_BASE_URL"

	appDirName = "tldr"
	fileName   = "config.yaml"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// DefaultPath returns the location of the config file below the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigDirUnavailable.Error())
	}
	return filepath.Join(dir, appDirName, fileName), nil
}

// Load reads the configuration from path, or from DefaultPath when path is empty.
// A missing default file yields the defaults, while a missing explicit path is an error.
// TLDR_BASE_URL is applied on top of whatever was loaded.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	file, err := l.readFile(path)
	if err != nil {
		return nil, err
	}
	if file != nil {
		if err := apply(cfg, file); err != nil {
			return nil, zerr.With(err, "path", l.resolvedPath(path))
		}
	}

	if env := os.Getenv(EnvBaseURL); env != "" {
		baseURL, err := normalizeBaseURL(env)
		if err != nil {
			return nil, zerr.With(err, "env", EnvBaseURL)
		}
		l.Logger.Debug("base url overridden", "env", EnvBaseURL, "base_url", baseURL)
		cfg.BaseURL = baseURL
	}

	return cfg, nil
}

func (l *Loader) resolvedPath(path string) string {
	if path != "" {
		return path
	}
	p, _ := DefaultPath()
	return p
}

// readFile returns nil without error when the default config file does not exist.
func (l *Loader) readFile(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			l.Logger.Debug("no config directory, using defaults", "error", err.Error())
			return nil, nil
		}
		path = defaultPath
	}

	//nolint:gosec // Path is chosen by the user running the binary
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			l.Logger.Debug("no config file, using defaults", "path", path)
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	l.Logger.Debug("using config file", "path", path)

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return &file, nil
}

// apply validates file and copies its non-empty settings into cfg.
func apply(cfg *domain.Config, file *File) error {
	if file.BaseURL != "" {
		baseURL, err := normalizeBaseURL(file.BaseURL)
		if err != nil {
			return err
		}
		cfg.BaseURL = baseURL
	}

	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil || timeout < 0 {
			return zerr.With(domain.ErrInvalidTimeout, "timeout", file.Timeout)
		}
		cfg.Timeout = timeout
	}

	if file.Platform != "" {
		platform, err := domain.ParsePlatform(file.Platform)
		if err != nil {
			return err
		}
		cfg.Platform = platform
	}

	return nil
}

// normalizeBaseURL checks that raw is an absolute http(s) URL and trims trailing slashes.
func normalizeBaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", zerr.With(domain.ErrInvalidBaseURL, "base_url", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}
