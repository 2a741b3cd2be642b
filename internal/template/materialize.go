// Package template materializes template files into a target project
// directory, substituting {identifier} placeholder tokens with values
// from the configuration mapping or a small fallback table.
package template

import (
	"io/fs"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to a materialized file's name to form its
// pre-substitution backup.
const BackupSuffix = ".bak"

// renames is the static table of template filenames renamed after
// substitution.
var renames = map[string]string{
	AssetSetup: "setup.py",
}

// Materializer turns one template file plus a configuration mapping into
// one finished file in the target project directory.
type Materializer struct {
	renames map[string]string
}

// NewMaterializer creates a Materializer with the default rename table.
func NewMaterializer() *Materializer {
	return &Materializer{renames: renames}
}

// Materialize copies the template at templatePath in fsys into targetDir,
// substitutes its placeholder tokens, and returns the path of the
// finished file.
//
// The pre-substitution content is always saved next to the output as
// <name>.bak before substitution is attempted, so the original template
// text is recoverable from the target directory whether or not
// substitution succeeds. When substitution fails the copied file is left
// with its unsubstituted content.
func (m *Materializer) Materialize(fsys fs.FS, templatePath, targetDir string, rc ResolveContext) (string, error) {
	content, err := fs.ReadFile(fsys, templatePath)
	if err != nil {
		return "", newSourceNotFoundError(templatePath, err)
	}

	name := filepath.Base(templatePath)
	outputPath := filepath.Join(targetDir, name)
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return "", newTargetWriteError(outputPath, err)
	}

	// Scoped backup: written before any possibly-failing step.
	backupPath := outputPath + BackupSuffix
	if err := os.WriteFile(backupPath, content, 0644); err != nil {
		return "", newTargetWriteError(backupPath, err)
	}

	text := string(content)
	tokens := Scan(text)
	resolved, missing := Resolve(Identifiers(tokens), rc)
	if len(missing) > 0 {
		return "", newMissingPlaceholderError(outputPath, missing)
	}

	if len(tokens) > 0 {
		text = substitute(text, tokens, resolved)
		if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
			return "", newTargetWriteError(outputPath, err)
		}
	}

	if newName, ok := m.renames[name]; ok {
		renamedPath := filepath.Join(targetDir, newName)
		if err := os.Rename(outputPath, renamedPath); err != nil {
			return "", newTargetWriteError(renamedPath, err)
		}
		return renamedPath, nil
	}
	return outputPath, nil
}
