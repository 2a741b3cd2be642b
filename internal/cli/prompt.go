package cli

import (
	"fmt"
	"net/mail"
	"net/url"

	"github.com/AlecAivazis/survey/v2"
	"github.com/Masterminds/semver/v3"

	"github.com/mkproj/mkproj/internal/config"
	"github.com/mkproj/mkproj/internal/license"
)

// PromptForOptions interactively refines the given options. Current
// values (from flags and the defaults file) are offered as prompt
// defaults, so hitting enter keeps them.
func PromptForOptions(opts *config.Options) error {
	fmt.Println()
	fmt.Println("Please provide project settings:")
	fmt.Println()

	if err := promptLicense(opts); err != nil {
		return err
	}

	if opts.Package {
		if err := promptPackageMeta(&opts.Pkg); err != nil {
			return err
		}
	}

	return nil
}

// promptLicense asks a selection from the registry plus "none".
func promptLicense(opts *config.Options) error {
	choices := append([]string{config.LicenseNone}, license.IDs()...)

	prompt := &survey.Select{
		Message: "License",
		Options: choices,
		Default: opts.License,
		Help:    `License text is written to LICENSE.txt; "none" skips the license stage`,
	}

	return survey.AskOne(prompt, &opts.License)
}

// promptPackageMeta asks for the setup.py metadata fields.
func promptPackageMeta(pkg *config.PackageMeta) error {
	fields := []struct {
		message   string
		target    *string
		help      string
		validator survey.Validator
	}{
		{
			message:   "Package version",
			target:    &pkg.Version,
			help:      "Semantic version used in setup.py, e.g. 0.1.0",
			validator: validSemver,
		},
		{
			message: "Description",
			target:  &pkg.Description,
			help:    "Short description used in setup.py",
		},
		{
			message:   "Home page",
			target:    &pkg.Homepage,
			help:      "Project home page URL",
			validator: validURL,
		},
		{
			message: "Author",
			target:  &pkg.Author,
			help:    "Author name used in setup.py",
		},
		{
			message:   "Author email",
			target:    &pkg.Email,
			help:      "Author email address used in setup.py",
			validator: validEmail,
		},
		{
			message: "Keywords",
			target:  &pkg.Keywords,
			help:    `Comma-separated quoted keywords, e.g. "tools", "cli"`,
		},
	}

	for _, f := range fields {
		prompt := &survey.Input{
			Message: f.message,
			Default: *f.target,
			Help:    f.help,
		}

		opts := []survey.AskOpt{}
		if f.validator != nil {
			opts = append(opts, survey.WithValidator(f.validator))
		}

		if err := survey.AskOne(prompt, f.target, opts...); err != nil {
			return fmt.Errorf("failed to prompt for %s: %w", f.message, err)
		}
	}

	return nil
}

// validSemver is a survey validator for semantic version strings.
func validSemver(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	if _, err := semver.NewVersion(str); err != nil {
		return fmt.Errorf("must be a semantic version")
	}
	return nil
}

// validURL is a survey validator for absolute URLs.
func validURL(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	u, err := url.Parse(str)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute URL")
	}
	return nil
}

// validEmail is a survey validator for email addresses.
func validEmail(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	if _, err := mail.ParseAddress(str); err != nil {
		return fmt.Errorf("must be an email address")
	}
	return nil
}
