package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, name, content string) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		name: &fstest.MapFile{Data: []byte(content)},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// TestMaterializeZeroTokens tests that token-free templates pass through
// byte-identical.
func TestMaterializeZeroTokens(t *testing.T) {
	targetDir := t.TempDir()
	content := "no placeholders here\njust text\n"
	fsys := writeTemplate(t, "plain.txt", content)

	out, err := NewMaterializer().Materialize(fsys, "plain.txt", targetDir, ResolveContext{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(targetDir, "plain.txt"), out)
	assert.Equal(t, content, readFile(t, out))
	assert.Equal(t, content, readFile(t, out+BackupSuffix))
}

// TestMaterializeSubstitution tests full substitution from mapping and
// fallbacks.
func TestMaterializeSubstitution(t *testing.T) {
	targetDir := t.TempDir()
	fsys := writeTemplate(t, "greeting.txt", "Hello {project_name}, license: {classlicense}")

	rc := ResolveContext{
		Fallbacks: Fallbacks{
			ProjectName:       "myproj",
			LicenseClassifier: "License :: OSI Approved :: MIT License",
			ReadmeName:        "README.md",
		},
	}
	out, err := NewMaterializer().Materialize(fsys, "greeting.txt", targetDir, rc)
	require.NoError(t, err)

	got := readFile(t, out)
	assert.Equal(t, "Hello myproj, license: License :: OSI Approved :: MIT License", got)
	assert.NotContains(t, got, "{")
	// Backup keeps the pre-substitution text.
	assert.Equal(t, "Hello {project_name}, license: {classlicense}", readFile(t, out+BackupSuffix))
}

// TestMaterializeMissingPlaceholder tests the missing-placeholder failure
// mode.
func TestMaterializeMissingPlaceholder(t *testing.T) {
	targetDir := t.TempDir()
	fsys := writeTemplate(t, "bad.txt", "{undefined_key}")

	_, err := NewMaterializer().Materialize(fsys, "bad.txt", targetDir, ResolveContext{})
	require.Error(t, err)

	var merr *MaterializeError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, MissingPlaceholder, merr.Type)
	assert.Equal(t, []string{"undefined_key"}, merr.Identifiers)

	// The copied file keeps its unsubstituted content, and the backup
	// exists regardless of the failure.
	outputPath := filepath.Join(targetDir, "bad.txt")
	assert.Equal(t, "{undefined_key}", readFile(t, outputPath))
	assert.Equal(t, "{undefined_key}", readFile(t, outputPath+BackupSuffix))
}

// TestMaterializeMissingPlaceholderOrder tests that all unresolved
// identifiers are reported in first-seen order.
func TestMaterializeMissingPlaceholderOrder(t *testing.T) {
	targetDir := t.TempDir()
	fsys := writeTemplate(t, "multi.txt", "{second} {pkgauthor} {first} {second}")

	rc := ResolveContext{Values: map[string]string{"pkgauthor": "a"}}
	_, err := NewMaterializer().Materialize(fsys, "multi.txt", targetDir, rc)
	require.Error(t, err)

	var merr *MaterializeError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, []string{"second", "first"}, merr.Identifiers)
}

// TestMaterializeRename tests the static rename table.
func TestMaterializeRename(t *testing.T) {
	targetDir := t.TempDir()
	fsys := writeTemplate(t, AssetSetup, "name='{project_name}'\n")

	rc := ResolveContext{Fallbacks: Fallbacks{ProjectName: "myproj", ReadmeName: "README.md"}}
	out, err := NewMaterializer().Materialize(fsys, AssetSetup, targetDir, rc)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(targetDir, "setup.py"), out)
	assert.Equal(t, "name='myproj'\n", readFile(t, out))

	// No file with the original name remains; the backup keeps it.
	_, statErr := os.Stat(filepath.Join(targetDir, AssetSetup))
	assert.True(t, os.IsNotExist(statErr))
	assert.FileExists(t, filepath.Join(targetDir, AssetSetup+BackupSuffix))
}

// TestMaterializeSourceNotFound tests the missing-source failure mode.
func TestMaterializeSourceNotFound(t *testing.T) {
	_, err := NewMaterializer().Materialize(fstest.MapFS{}, "nope.txt", t.TempDir(), ResolveContext{})
	require.Error(t, err)

	var merr *MaterializeError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, SourceNotFound, merr.Type)
}

// TestMaterializeTargetWriteFailure tests the unwritable-target failure
// mode.
func TestMaterializeTargetWriteFailure(t *testing.T) {
	fsys := writeTemplate(t, "a.txt", "text")
	missingDir := filepath.Join(t.TempDir(), "does", "not", "exist")

	_, err := NewMaterializer().Materialize(fsys, "a.txt", missingDir, ResolveContext{})
	require.Error(t, err)

	var merr *MaterializeError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, TargetWriteFailure, merr.Type)
}

// TestMaterializeIdempotent tests that a second run from the same source
// does not compound substitutions.
func TestMaterializeIdempotent(t *testing.T) {
	targetDir := t.TempDir()
	fsys := writeTemplate(t, "r.txt", "# {project_name}\n")
	rc := ResolveContext{Fallbacks: Fallbacks{ProjectName: "myproj", ReadmeName: "README.md"}}

	m := NewMaterializer()
	out1, err := m.Materialize(fsys, "r.txt", targetDir, rc)
	require.NoError(t, err)
	out2, err := m.Materialize(fsys, "r.txt", targetDir, rc)
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
	assert.Equal(t, "# myproj\n", readFile(t, out2))
}

// TestEmbeddedAssets tests that every built-in asset is present and
// materializes with the standard resolve context.
func TestEmbeddedAssets(t *testing.T) {
	rc := ResolveContext{
		Values: map[string]string{
			"pkgversion":     "0.1",
			"pkgdescription": "change me",
			"pkghomepage":    "http://change.me",
			"pkgauthor":      "Change Me",
			"pkgemail":       "change@me.org",
			"pkgkeywords":    `"change me", "please change me"`,
			"classdevstatus": "1 - Planning",
			"classaudience":  "Developers",
			"classtopic":     "Change Me",
		},
		Fallbacks: Fallbacks{
			ProjectName:       "myproj",
			LicenseClassifier: "License :: OSI Approved :: MIT License",
			ReadmeName:        "README.md",
		},
	}

	assets := []string{AssetReadme, AssetScriptPy2, AssetScriptPy3, AssetRequirements, AssetSetup}
	for _, asset := range assets {
		t.Run(asset, func(t *testing.T) {
			targetDir := t.TempDir()
			out, err := NewMaterializer().Materialize(Assets(), asset, targetDir, rc)
			require.NoError(t, err)
			assert.Empty(t, Scan(readFile(t, out)))
		})
	}
}

// TestScriptAsset tests python version to script asset mapping.
func TestScriptAsset(t *testing.T) {
	tests := []struct {
		version string
		want    string
		wantErr bool
	}{
		{"2", AssetScriptPy2, false},
		{"3", AssetScriptPy3, false},
		{"4", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run("python "+tt.version, func(t *testing.T) {
			got, err := ScriptAsset(tt.version)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
