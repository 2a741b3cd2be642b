package config

// Default option values.
const (
	// DefaultPythonVersion is the python major version used when none is
	// given.
	DefaultPythonVersion = "3"
	// DefaultLicense is the license identifier used when none is given.
	DefaultLicense = "agpl-3.0"
)

// DefaultOptions returns the options record with default values applied.
func DefaultOptions() *Options {
	return &Options{
		PythonVersion: DefaultPythonVersion,
		License:       DefaultLicense,
		Pkg: PackageMeta{
			Version:     "0.1",
			Description: "change me",
			Homepage:    "http://change.me",
			Author:      "Change Me",
			Email:       "change@me.org",
			Keywords:    `"change me", "please change me"`,
			DevStatus:   "1 - Planning",
			Audience:    "Developers",
			Topic:       "Change Me",
		},
	}
}
