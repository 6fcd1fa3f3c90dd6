package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pip-setup/pip-setup/internal/branding"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys. Each one can also be given as a flag and as a
// PIP_SETUP_<KEY> environment variable.
const (
	KeyRoot           = "root"
	KeyDry            = "dry"
	KeyVerbose        = "verbose"
	KeyPackageVersion = "package_version"
)

type setting struct {
	flag   string
	isBool bool
	def    any
}

var settings = map[string]setting{
	KeyRoot:           {flag: "root", def: "."},
	KeyDry:            {flag: "dry", isBool: true, def: false},
	KeyVerbose:        {flag: "verbose", isBool: true, def: false},
	KeyPackageVersion: {flag: "package-version", def: "0.1.0"},
}

// Keys returns the known setting keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dir returns the path to the config directory (~/.pip-setup/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the default config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Store holds the resolved settings: flags over environment over the
// config file over built-in defaults.
type Store struct {
	fs   afero.Fs
	v    *viper.Viper
	path string
}

// Load reads the config file at path (the default location when empty).
// A missing file is not an error.
func Load(fsys afero.Fs, path string) (*Store, error) {
	if path == "" {
		path = FilePath()
	}

	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	for key, s := range settings {
		v.SetDefault(key, s.def)
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return &Store{fs: fsys, v: v, path: path}, nil
}

// Path returns the config file backing the store.
func (s *Store) Path() string { return s.path }

// BindFlags lets flags that are present in fs override the stored values.
func (s *Store) BindFlags(flags *pflag.FlagSet) error {
	for key, st := range settings {
		f := flags.Lookup(st.flag)
		if f == nil {
			continue
		}
		if err := s.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", st.flag, err)
		}
	}
	return nil
}

// Get returns a setting as a string. Returns empty string if not set.
func (s *Store) Get(key string) string {
	return s.v.GetString(key)
}

// GetBool returns a boolean setting.
func (s *Store) GetBool(key string) bool {
	return s.v.GetBool(key)
}

// Set writes a single key to the config file. Only keys already present in
// the file and the one being set are written; defaults stay implicit.
func (s *Store) Set(key, value string) error {
	st, ok := settings[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}

	var typed any = value
	if st.isBool {
		b, err := cast.ToBoolE(value)
		if err != nil {
			return fmt.Errorf("config key %q expects a boolean: %w", key, err)
		}
		typed = b
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(s.path), err)
	}

	file := viper.New()
	file.SetFs(s.fs)
	file.SetConfigFile(s.path)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", s.path, err)
	}
	file.Set(key, typed)

	if err := file.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	s.v.Set(key, typed)
	return nil
}

// Check validates the backing config file against the schema. A missing
// file passes. Unquoted values such as `package_version: 1.10` parse as
// numbers and are reported here rather than silently coerced.
func (s *Store) Check() error {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("checking config file %s: %w", s.path, err)
	}
	if !exists {
		return nil
	}

	result, err := ValidateFile(s.fs, s.path)
	if err != nil {
		return err
	}
	if result.Valid {
		return nil
	}

	issues := make([]string, len(result.Issues))
	for i, issue := range result.Issues {
		issues[i] = issue.String()
	}
	return fmt.Errorf("invalid config file %s: %s", s.path, strings.Join(issues, "; "))
}
