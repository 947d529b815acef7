package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = ".nexttag.yaml"

// Config is the optional file configuration for nexttag.
// Command-line flags and environment variables take precedence over it.
type Config struct {
	// Output is a step output file to append "version=<value>" to.
	// Used only when GITHUB_OUTPUT is unset or empty.
	Output string `yaml:"output,omitempty"`

	// Dir is the repository directory to read tags from.
	Dir string `yaml:"dir,omitempty"`

	// Verbose enables diagnostic output on stderr.
	Verbose bool `yaml:"verbose,omitempty"`
}

// ErrPathTraversal is returned for config paths that escape via "..".
var ErrPathTraversal = errors.New("path traversal not allowed, use absolute path instead")

// LoadConfigFn loads the configuration. It can be overridden in tests.
var LoadConfigFn = loadConfig

// loadConfig reads the YAML file at path.
//
// An empty path means DefaultConfigFile inside dir (the repository directory,
// empty for the working directory). That file is optional: when it does not
// exist an empty Config is returned. A path given explicitly must exist.
func loadConfig(path, dir string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, DefaultConfigFile)
	}

	cleanPath := filepath.Clean(path)
	if explicit && strings.Contains(cleanPath, "..") {
		return nil, fmt.Errorf("invalid config path %q: %w", path, ErrPathTraversal)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %q: %w", cleanPath, err)
	}

	var cfg Config
	if len(bytes.TrimSpace(data)) == 0 {
		return &cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", cleanPath, err)
	}

	return &cfg, nil
}

// OutputPath returns the step output file to use.
// A non-empty fromEnv (GITHUB_OUTPUT or the --github-output flag) wins over the file setting.
// An empty result means no output file is written.
func (c *Config) OutputPath(fromEnv string) string {
	if fromEnv != "" {
		return fromEnv
	}
	if c == nil {
		return ""
	}
	return c.Output
}

// RepoDir returns the repository directory, preferring fromFlag when set.
func (c *Config) RepoDir(fromFlag string) string {
	if fromFlag != "" {
		return fromFlag
	}
	if c == nil {
		return ""
	}
	return c.Dir
}
