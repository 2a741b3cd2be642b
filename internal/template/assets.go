package template

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed templates/*
var assetsFS embed.FS

// Built-in template asset names.
const (
	// AssetReadme is the readme template.
	AssetReadme = "README.md"
	// AssetScriptPy2 is the python 2 script stub template.
	AssetScriptPy2 = "script-template-2.py"
	// AssetScriptPy3 is the python 3 script stub template.
	AssetScriptPy3 = "script-template-3.py"
	// AssetRequirements is the development requirements template.
	AssetRequirements = "requirements_dev.txt"
	// AssetSetup is the packaging manifest template, renamed to setup.py
	// on materialization.
	AssetSetup = "setup-template.py"
)

// Assets returns the embedded template filesystem, rooted at the
// template directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assetsFS, "templates")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}

// ScriptAsset returns the script stub asset name for a python version.
// Only the major version is significant.
func ScriptAsset(pythonVersion string) (string, error) {
	major, _, _ := strings.Cut(pythonVersion, ".")
	switch major {
	case "2":
		return AssetScriptPy2, nil
	case "3":
		return AssetScriptPy3, nil
	}
	return "", fmt.Errorf("no script template for python version %q", pythonVersion)
}
