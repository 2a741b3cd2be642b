package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagCreate      = "create"
	FlagVenv        = "venv"
	FlagGit         = "git"
	FlagReadme      = "readme"
	FlagScript      = "script"
	FlagPackage     = "package"
	FlagInteractive = "interactive"
	FlagPython      = "python-version"
	FlagLicense     = "license"
	FlagDefaults    = "defaults"
	FlagVerbose     = "verbose"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Package metadata flag names
	FlagPkgVersion     = "pkg-version"
	FlagPkgDescription = "pkg-description"
	FlagPkgHomepage    = "pkg-homepage"
	FlagPkgAuthor      = "pkg-author"
	FlagPkgEmail       = "pkg-email"
	FlagPkgKeywords    = "pkg-keywords"
	FlagClassDevStatus = "class-dev-status"
	FlagClassAudience  = "class-audience"
	FlagClassTopic     = "class-topic"

	// Flag descriptions
	DescCreate      = "Create the project directory"
	DescVenv        = "Create a python virtual environment"
	DescGit         = "Create a new git repository"
	DescReadme      = "Add a readme file from the template"
	DescScript      = "Set up with a python script stub"
	DescPackage     = "Set up as a python package"
	DescInteractive = "Prompt for license and package metadata"
	DescPython      = "Python version to use"
	DescLicense     = `License to use ("none" skips the license stage)`
	DescDefaults    = "Path to the user defaults file"
	DescVerbose     = "Verbose output"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress non-error output"
	DescDebug       = "Enable debug logging"

	DescPkgVersion     = "Version number to use in setup.py"
	DescPkgDescription = "Description to use in setup.py"
	DescPkgHomepage    = "Home page to use in setup.py"
	DescPkgAuthor      = "Author name to use in setup.py"
	DescPkgEmail       = "Email address to use in setup.py"
	DescPkgKeywords    = "Keywords to use in setup.py"
	DescClassDevStatus = "Development status classifier to use in setup.py"
	DescClassAudience  = "Intended audience classifier to use in setup.py"
	DescClassTopic     = "Topic classifier to use in setup.py"
)
