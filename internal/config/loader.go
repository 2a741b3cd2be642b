package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults are the per-user default values loaded from the defaults
// file. Zero fields are left at their built-in defaults.
type Defaults struct {
	// License is the default license identifier.
	License string `mapstructure:"license"`
	// PythonVersion is the default python major version.
	PythonVersion string `mapstructure:"python_version"`
	// Author is the default package author name.
	Author string `mapstructure:"author"`
	// Email is the default package author email address.
	Email string `mapstructure:"email"`
	// Homepage is the default package home page URL.
	Homepage string `mapstructure:"homepage"`
}

// DefaultsFileName is the base name of the user defaults file.
const DefaultsFileName = "mkproj"

// LoadDefaults loads the user defaults file from
// $XDG_CONFIG_HOME/mkproj/mkproj.yaml (falling back to
// ~/.config/mkproj/mkproj.yaml) or ~/.mkproj.yaml. A missing file yields
// empty defaults.
func LoadDefaults() (*Defaults, error) {
	v := viper.New()
	v.SetConfigName(DefaultsFileName)
	v.SetConfigType("yaml")

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		v.AddConfigPath(filepath.Join(configHome, "mkproj"))
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "mkproj"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName("." + DefaultsFileName)
	}

	return readDefaults(v)
}

// LoadDefaultsFrom loads defaults from an explicit file path. A missing
// file yields empty defaults.
func LoadDefaultsFrom(path string) (*Defaults, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return readDefaults(v)
}

func readDefaults(v *viper.Viper) (*Defaults, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return &Defaults{}, nil
		}
		return nil, NewConfigErrorWithCause(ConfigLoadFailed, "", "failed to read defaults file", err)
	}

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return nil, NewConfigErrorWithCause(ConfigLoadFailed, "", "invalid defaults file", err)
	}
	return &d, nil
}

// Apply layers the user defaults under the options for every field whose
// flag was not set on the command line. flagChanged reports whether the
// named flag was given explicitly.
func Apply(opts *Options, d *Defaults, flagChanged func(name string) bool) {
	if d == nil {
		return
	}
	if d.License != "" && !flagChanged("license") {
		opts.License = d.License
	}
	if d.PythonVersion != "" && !flagChanged("python-version") {
		opts.PythonVersion = d.PythonVersion
	}
	if d.Author != "" && !flagChanged("pkg-author") {
		opts.Pkg.Author = d.Author
	}
	if d.Email != "" && !flagChanged("pkg-email") {
		opts.Pkg.Email = d.Email
	}
	if d.Homepage != "" && !flagChanged("pkg-homepage") {
		opts.Pkg.Homepage = d.Homepage
	}
}
