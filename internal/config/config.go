package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	ModeExec  = "exec"
	ModeShell = "shell"
)

// DefaultPaths are searched in order when no config file is given.
var DefaultPaths = []string{
	"dbengine.yaml",
	"dbengine.toml",
	"/etc/dbengine/dbengine.yaml",
	"/etc/dbengine/dbengine.toml",
}

var parserMap = map[string]koanf.Parser{
	".yaml": yaml.Parser(),
	".yml":  yaml.Parser(),
	".toml": toml.Parser(),
	".json": json.Parser(),
}

type Config struct {
	Tool     ToolConfig     `koanf:"tool" toml:"tool" yaml:"tool" json:"tool"`
	Domain   DomainConfig   `koanf:"domain" toml:"domain" yaml:"domain" json:"domain"`
	Password PasswordConfig `koanf:"password" toml:"password" yaml:"password" json:"password"`
	Executor ExecutorConfig `koanf:"executor" toml:"executor" yaml:"executor" json:"executor"`
	Delete   DeleteConfig   `koanf:"delete" toml:"delete" yaml:"delete" json:"delete"`
	Backup   BackupConfig   `koanf:"backup" toml:"backup" yaml:"backup" json:"backup"`
}

// ToolConfig describes how clpctl is invoked.
type ToolConfig struct {
	// Binary is the clpctl executable name or path.
	Binary string `koanf:"binary" toml:"binary" yaml:"binary" json:"binary"`

	// Sudo is the privilege escalation command prefixed to every call.
	Sudo string `koanf:"sudo" toml:"sudo" yaml:"sudo" json:"sudo"`

	// NoSudo runs clpctl without privilege escalation.
	NoSudo bool `koanf:"no_sudo" toml:"no_sudo" yaml:"no_sudo" json:"no_sudo"`
}

type DomainConfig struct {
	// Suffix is appended to a node name to form its public domain.
	Suffix string `koanf:"suffix" toml:"suffix" yaml:"suffix" json:"suffix"`
}

type PasswordConfig struct {
	Length int `koanf:"length" toml:"length" yaml:"length" json:"length"`
}

type ExecutorConfig struct {
	// Mode is either "exec" (no shell) or "shell".
	Mode string `koanf:"mode" toml:"mode" yaml:"mode" json:"mode"`

	// Shell is the shell used in shell mode.
	Shell string `koanf:"shell" toml:"shell" yaml:"shell" json:"shell"`

	// Timeout bounds every clpctl call, e.g. "5m". Empty means no limit.
	Timeout string `koanf:"timeout" toml:"timeout" yaml:"timeout" json:"timeout"`
}

type DeleteConfig struct {
	// Confirm is the answer fed to the db:delete prompt.
	Confirm string `koanf:"confirm" toml:"confirm" yaml:"confirm" json:"confirm"`
}

type BackupConfig struct {
	// Extension is appended to dump files written by the backup command.
	Extension string `koanf:"extension" toml:"extension" yaml:"extension" json:"extension"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tool: ToolConfig{
			Binary: "clpctl",
			Sudo:   "sudo",
		},
		Domain: DomainConfig{
			Suffix: "forever-host.xyz",
		},
		Password: PasswordConfig{
			Length: 10,
		},
		Executor: ExecutorConfig{
			Mode:  ModeExec,
			Shell: "/bin/sh",
		},
		Delete: DeleteConfig{
			Confirm: "yes",
		},
		Backup: BackupConfig{
			Extension: ".sql",
		},
	}
}

// Find returns the first of DefaultPaths that exists, or an empty string.
func Find() string {
	for _, path := range DefaultPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads configFile on top of the defaults. A missing file is not an
// error and yields the defaults.
func Load(configFile string) (*Config, error) {
	if configFile == "" {
		log.Debug("no config file given, using defaults")
		return Default(), nil
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Debug("config file does not exist", "path", configFile)
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(configFile))
	parser, ok := parserMap[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %s", configFile)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), parser); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
	}

	overrides := &Config{}
	if err := k.Unmarshal("", overrides); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", configFile, err)
	}

	cfg, err := Merge(Default(), overrides)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configFile, err)
	}

	log.Info("loaded config file", "path", configFile)
	return cfg, nil
}

// Merge returns base with every non-empty field of overrides applied.
func Merge(base, overrides *Config) (*Config, error) {
	cfg := &Config{}
	if err := mergo.Merge(cfg, base); err != nil {
		return nil, err
	}

	if overrides != nil {
		if err := mergo.Merge(cfg, overrides, mergo.WithOverride); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate reports settings clpctl calls cannot be built from.
func (c *Config) Validate() error {
	var errs []error

	if c.Tool.Binary == "" {
		errs = append(errs, errors.New("tool.binary must not be empty"))
	}
	if c.Password.Length < 1 {
		errs = append(errs, fmt.Errorf("password.length must be at least 1, got %d", c.Password.Length))
	}
	switch c.Executor.Mode {
	case ModeExec, ModeShell:
	default:
		errs = append(errs, fmt.Errorf("executor.mode must be %q or %q, got %q", ModeExec, ModeShell, c.Executor.Mode))
	}
	if _, err := c.Executor.TimeoutDuration(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// SudoCommand returns the privilege escalation prefix, empty when disabled.
func (t ToolConfig) SudoCommand() string {
	if t.NoSudo {
		return ""
	}
	return t.Sudo
}

// TimeoutDuration parses Timeout. Zero means no limit.
func (e ExecutorConfig) TimeoutDuration() (time.Duration, error) {
	if e.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(e.Timeout)
	if err != nil {
		return 0, fmt.Errorf("executor.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("executor.timeout must not be negative, got %s", e.Timeout)
	}

	return d, nil
}
