package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() *Options {
	opts := DefaultOptions()
	opts.Path = "./myproj"
	return opts
}

// TestValidate tests option validation.
func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Options)
		wantType ConfigErrorType
		wantErr  bool
	}{
		{"defaults are valid", func(o *Options) {}, 0, false},
		{
			"empty path",
			func(o *Options) { o.Path = "" },
			ConfigInvalidValue, true,
		},
		{
			"script and package conflict",
			func(o *Options) { o.Script = true; o.Package = true },
			ConfigConflict, true,
		},
		{
			"script alone is fine",
			func(o *Options) { o.Script = true },
			0, false,
		},
		{
			"package alone is fine",
			func(o *Options) { o.Package = true },
			0, false,
		},
		{
			"unknown license",
			func(o *Options) { o.License = "not-a-license" },
			ConfigUnknownLicense, true,
		},
		{
			"license without source",
			func(o *Options) { o.License = "other" },
			ConfigUnknownLicense, true,
		},
		{
			"license none skips the check",
			func(o *Options) { o.License = "none" },
			0, false,
		},
		{
			"bad python version with script",
			func(o *Options) { o.Script = true; o.PythonVersion = "4" },
			ConfigInvalidValue, true,
		},
		{
			"minor python version accepted",
			func(o *Options) { o.Venv = true; o.PythonVersion = "3.11" },
			0, false,
		},
		{
			"python version unchecked without script or venv",
			func(o *Options) { o.PythonVersion = "weird" },
			0, false,
		},
		{
			"invalid package version",
			func(o *Options) { o.Package = true; o.Pkg.Version = "not a version" },
			ConfigInvalidValue, true,
		},
		{
			"short package version accepted",
			func(o *Options) { o.Package = true; o.Pkg.Version = "0.1" },
			0, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(opts)
			err := Validate(opts)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.wantType, cerr.Type)
		})
	}
}
