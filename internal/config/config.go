// Package config manages user-level settings stored at ~/.compgen/config.yaml.
// Every key can be overridden from the environment with the COMPGEN_ prefix,
// e.g. COMPGEN_EDITOR or COMPGEN_WORKSPACE.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "COMPGEN"
	homeDir   = ".compgen"
)

// Keys understood by compgen.
const (
	KeySavedFolders  = "saved_folders"
	KeyDedupeFolders = "dedupe_folders"
	KeyEditor        = "editor"
	KeyWorkspace     = "workspace"
	KeyLogFile       = "log_file"
	KeyLogLevel      = "log_level"
)

// DefaultFolders seeds the folder menu on first use.
var DefaultFolders = []string{"src/components"}

// Dir returns the config directory: $COMPGEN_HOME, else ~/.compgen.
func Dir() string {
	if d := os.Getenv(envPrefix + "_HOME"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDir)
	}
	return filepath.Join(home, homeDir)
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Config is the loaded configuration. Reads see environment overrides;
// writes go through file, which only ever holds what the file held.
type Config struct {
	v    *viper.Viper
	file *viper.Viper
	fs   afero.Fs
	path string
}

// Load reads the config file at path through fs. A missing file is not an
// error; environment variables apply either way.
func Load(fsys afero.Fs, path string) (*Config, error) {
	v, err := read(fsys, path)
	if err != nil {
		return nil, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file, err := read(fsys, path)
	if err != nil {
		return nil, err
	}
	return &Config{v: v, file: file, fs: fsys, path: path}, nil
}

func read(fsys afero.Fs, path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return v, nil
}

// Viper exposes the underlying viper instance.
func (c *Config) Viper() *viper.Viper { return c.v }

// Path returns the config file location.
func (c *Config) Path() string { return c.path }

// Editor returns the configured editor command, falling back to $VISUAL
// and $EDITOR.
func (c *Config) Editor() string {
	if e := c.v.GetString(KeyEditor); e != "" {
		return e
	}
	if e := os.Getenv("VISUAL"); e != "" {
		return e
	}
	return os.Getenv("EDITOR")
}

// Workspace returns an explicit workspace root, if any.
func (c *Config) Workspace() string { return c.v.GetString(KeyWorkspace) }

// DedupeFolders reports whether saved folders should be de-duplicated.
func (c *Config) DedupeFolders() bool { return c.v.GetBool(KeyDedupeFolders) }

// LogFile returns the log destination; empty disables logging.
func (c *Config) LogFile() string { return c.v.GetString(KeyLogFile) }

// LogLevel returns the configured log level, "info" when unset.
func (c *Config) LogLevel() string {
	if l := c.v.GetString(KeyLogLevel); l != "" {
		return l
	}
	return "info"
}

// Set writes a key and saves the config file, creating it if needed.
// Environment overrides are never written back.
func (c *Config) Set(key string, value any) error {
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(c.path), err)
	}
	c.file.Set(key, value)
	if err := c.file.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	c.v.Set(key, value)
	return nil
}
