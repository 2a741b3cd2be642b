package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/mkproj/mkproj/internal/license"
)

// Validate checks the options record before any filesystem mutation.
func Validate(opts *Options) error {
	if opts.Path == "" {
		return NewConfigError(ConfigInvalidValue, "path", "project path cannot be empty")
	}

	if opts.Script && opts.Package {
		return NewConfigError(ConfigConflict, "script/package",
			"cannot create both a script and a package")
	}

	if opts.LicenseEnabled() {
		entry, found := license.Lookup(opts.License)
		if !found {
			return NewConfigError(ConfigUnknownLicense, "license",
				fmt.Sprintf("unknown license identifier %q (see \"mkproj licenses\")", opts.License))
		}
		if !entry.HasSource() {
			return NewConfigError(ConfigUnknownLicense, "license",
				fmt.Sprintf("license %q has no fetchable text source", opts.License))
		}
	}

	if opts.Script || opts.Venv {
		if err := validatePythonVersion(opts.PythonVersion); err != nil {
			return err
		}
	}

	if opts.Package {
		if _, err := semver.NewVersion(opts.Pkg.Version); err != nil {
			return NewConfigErrorWithCause(ConfigInvalidValue, "pkg-version",
				fmt.Sprintf("invalid package version %q", opts.Pkg.Version), err)
		}
	}

	return nil
}

// validatePythonVersion accepts a bare major version, optionally with a
// minor part (e.g. "3" or "3.11").
func validatePythonVersion(version string) error {
	if version == "" {
		return NewConfigError(ConfigInvalidValue, "python-version",
			"python version cannot be empty")
	}
	major, _, _ := strings.Cut(version, ".")
	if major != "2" && major != "3" {
		return NewConfigError(ConfigInvalidValue, "python-version",
			fmt.Sprintf("unsupported python version %q", version))
	}
	return nil
}
