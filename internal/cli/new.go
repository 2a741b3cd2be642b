package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkproj/mkproj/internal/app"
	"github.com/mkproj/mkproj/internal/config"
	"github.com/mkproj/mkproj/internal/logging"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Scaffold a new project directory",
	Long: `Scaffold a new project directory at the given path.

Stages are selected with flags and run sequentially: directory
creation, virtual environment, git initialization, readme, script
stub, license, package setup.

Examples:
  mkproj new ./myproj -c -g -r
  mkproj new ./myproj -c -g -r -k -x mit --pkg-author "Someone"
  mkproj new ./myproj -c -s -n 3 -x none
  mkproj new ./myproj -c -g -r -k --interactive`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

// New command flags
var (
	newCreate      bool
	newVenv        bool
	newGit         bool
	newReadme      bool
	newScript      bool
	newPackage     bool
	newInteractive bool

	newPythonVersion string
	newLicense       string
	newDefaultsFile  string

	newPkgVersion     string
	newPkgDescription string
	newPkgHomepage    string
	newPkgAuthor      string
	newPkgEmail       string
	newPkgKeywords    string
	newClassDevStatus string
	newClassAudience  string
	newClassTopic     string
)

func init() {
	d := config.DefaultOptions()

	// Stage flags
	newCmd.Flags().BoolVarP(&newCreate, FlagCreate, "c", false, DescCreate)
	newCmd.Flags().BoolVarP(&newVenv, FlagVenv, "p", false, DescVenv)
	newCmd.Flags().BoolVarP(&newGit, FlagGit, "g", false, DescGit)
	newCmd.Flags().BoolVarP(&newReadme, FlagReadme, "r", false, DescReadme)
	newCmd.Flags().BoolVarP(&newScript, FlagScript, "s", false, DescScript)
	newCmd.Flags().BoolVarP(&newPackage, FlagPackage, "k", false, DescPackage)
	newCmd.Flags().BoolVarP(&newInteractive, FlagInteractive, "i", false, DescInteractive)

	// Value flags
	newCmd.Flags().StringVarP(&newPythonVersion, FlagPython, "n", d.PythonVersion, DescPython)
	newCmd.Flags().StringVarP(&newLicense, FlagLicense, "x", d.License, DescLicense)
	newCmd.Flags().StringVar(&newDefaultsFile, FlagDefaults, "", DescDefaults)

	// Package metadata flags
	newCmd.Flags().StringVar(&newPkgVersion, FlagPkgVersion, d.Pkg.Version, DescPkgVersion)
	newCmd.Flags().StringVar(&newPkgDescription, FlagPkgDescription, d.Pkg.Description, DescPkgDescription)
	newCmd.Flags().StringVar(&newPkgHomepage, FlagPkgHomepage, d.Pkg.Homepage, DescPkgHomepage)
	newCmd.Flags().StringVar(&newPkgAuthor, FlagPkgAuthor, d.Pkg.Author, DescPkgAuthor)
	newCmd.Flags().StringVar(&newPkgEmail, FlagPkgEmail, d.Pkg.Email, DescPkgEmail)
	newCmd.Flags().StringVar(&newPkgKeywords, FlagPkgKeywords, d.Pkg.Keywords, DescPkgKeywords)
	newCmd.Flags().StringVar(&newClassDevStatus, FlagClassDevStatus, d.Pkg.DevStatus, DescClassDevStatus)
	newCmd.Flags().StringVar(&newClassAudience, FlagClassAudience, d.Pkg.Audience, DescClassAudience)
	newCmd.Flags().StringVar(&newClassTopic, FlagClassTopic, d.Pkg.Topic, DescClassTopic)
}

// buildNewOptions assembles the options record from the new command's
// flag values, layering the user defaults under flags that were not
// given explicitly.
func buildNewOptions(path string, defaults *config.Defaults, flagChanged func(name string) bool) *config.Options {
	opts := &config.Options{
		Path:          path,
		CreateDir:     newCreate,
		Venv:          newVenv,
		Git:           newGit,
		Readme:        newReadme,
		Script:        newScript,
		Package:       newPackage,
		PythonVersion: newPythonVersion,
		License:       newLicense,
		Pkg: config.PackageMeta{
			Version:     newPkgVersion,
			Description: newPkgDescription,
			Homepage:    newPkgHomepage,
			Author:      newPkgAuthor,
			Email:       newPkgEmail,
			Keywords:    newPkgKeywords,
			DevStatus:   newClassDevStatus,
			Audience:    newClassAudience,
			Topic:       newClassTopic,
		},
	}
	config.Apply(opts, defaults, flagChanged)
	return opts
}

func runNew(cmd *cobra.Command, args []string) error {
	defaults, err := loadDefaults()
	if err != nil {
		return err
	}

	opts := buildNewOptions(args[0], defaults, cmd.Flags().Changed)

	if newInteractive {
		if err := PromptForOptions(opts); err != nil {
			return err
		}
	}

	logger := logging.New(logging.Options{
		Quiet:   globalQuiet,
		Verbose: globalVerbose || globalDebug,
		NoColor: globalNoColor,
	})

	result, err := app.NewScaffolder().Scaffold(cmd.Context(), logger, opts)
	if err != nil {
		printErrorMsg(fmt.Sprintf("Scaffolding failed: %v", err))
		return err
	}

	printSuccess(fmt.Sprintf("Project scaffolded at %s", result.ProjectDir))
	if result.EnvDir != "" {
		printInfo(fmt.Sprintf("  Virtual environment: %s", result.EnvDir))
	}
	if len(result.Files) > 0 {
		printHeader("Files")
		for _, file := range result.Files {
			printInfo(fmt.Sprintf("  %s", file))
		}
	}
	if result.Commits > 0 {
		printDim(fmt.Sprintf("%d commits made", result.Commits))
	}
	return nil
}

// loadDefaults loads the user defaults file, honoring --defaults.
func loadDefaults() (*config.Defaults, error) {
	if newDefaultsFile != "" {
		return config.LoadDefaultsFrom(newDefaultsFile)
	}
	return config.LoadDefaults()
}
