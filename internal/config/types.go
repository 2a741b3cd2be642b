// Package config defines the typed configuration record for a
// scaffolding run, the per-user defaults file, and validation.
package config

// PackageMeta holds the packaging manifest metadata fields.
type PackageMeta struct {
	// Version is the package version number.
	Version string
	// Description is the short package description.
	Description string
	// Homepage is the package home page URL.
	Homepage string
	// Author is the package author name.
	Author string
	// Email is the package author email address.
	Email string
	// Keywords is the packaging keywords list literal.
	Keywords string
	// DevStatus is the development status classifier fragment.
	DevStatus string
	// Audience is the intended audience classifier fragment.
	Audience string
	// Topic is the topic classifier fragment.
	Topic string
}

// Options is the explicit configuration record for one scaffolding run,
// populated from CLI flags layered over the user defaults file.
type Options struct {
	// Path is the target project directory.
	Path string

	// CreateDir creates the project directory.
	CreateDir bool
	// Venv creates a python virtual environment.
	Venv bool
	// Git initializes a git repository and commits each artifact.
	Git bool
	// Readme materializes the readme template.
	Readme bool
	// Script sets the project up with a python script stub.
	Script bool
	// Package sets the project up as a python package. Mutually
	// exclusive with Script.
	Package bool

	// PythonVersion is the python major version for the virtual
	// environment and script stub.
	PythonVersion string
	// License is the license registry identifier, or "none" to skip the
	// license stage.
	License string

	// Pkg holds the packaging metadata.
	Pkg PackageMeta
}

// LicenseNone is the license identifier that skips the license stage.
const LicenseNone = "none"

// LicenseEnabled reports whether the license stage runs.
func (o *Options) LicenseEnabled() bool {
	return o.License != "" && o.License != LicenseNone
}

// PlaceholderValues returns the configuration mapping used for template
// placeholder resolution: an explicit table keyed by option name. This
// replaces reflective lookup over an arguments object with a defined
// flag-to-identifier mapping.
func (o *Options) PlaceholderValues() map[string]string {
	return map[string]string{
		"pkgversion":     o.Pkg.Version,
		"pkgdescription": o.Pkg.Description,
		"pkghomepage":    o.Pkg.Homepage,
		"pkgauthor":      o.Pkg.Author,
		"pkgemail":       o.Pkg.Email,
		"pkgkeywords":    o.Pkg.Keywords,
		"classdevstatus": o.Pkg.DevStatus,
		"classaudience":  o.Pkg.Audience,
		"classtopic":     o.Pkg.Topic,
		"pyversion":      o.PythonVersion,
		"license":        o.License,
	}
}
