// Package app orchestrates the scaffolding stages. Each stage is an
// independent, sequential, optional step selected by the options; every
// stage receives the logger handle explicitly.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mkproj/mkproj/internal/config"
	"github.com/mkproj/mkproj/internal/fetch"
	"github.com/mkproj/mkproj/internal/gitrepo"
	"github.com/mkproj/mkproj/internal/license"
	"github.com/mkproj/mkproj/internal/template"
	"github.com/mkproj/mkproj/internal/venv"
	"github.com/mkproj/mkproj/internal/workspace"
)

// GitignoreURLs are the remote sources aggregated into the project's
// .gitignore.
var GitignoreURLs = []string{
	"https://raw.githubusercontent.com/github/gitignore/master/Global/macOS.gitignore",
	"https://raw.githubusercontent.com/github/gitignore/master/Python.gitignore",
}

// PackageURLs are the packaging manifests fetched into a package
// project, each saved under its URL's base name.
var PackageURLs = []string{
	"https://raw.githubusercontent.com/pypa/sampleproject/master/setup.cfg",
	"https://raw.githubusercontent.com/pypa/sampleproject/master/MANIFEST.in",
}

// LicenseFileName is the file the license text is written to.
const LicenseFileName = "LICENSE.txt"

// GitignoreTail is appended after the aggregated .gitignore sources so
// materialization backups stay out of version control.
const GitignoreTail = "*.bak\n"

// Result reports what the scaffolding run produced.
type Result struct {
	// ProjectDir is the absolute project directory path.
	ProjectDir string
	// EnvDir is the virtual environment directory, when created.
	EnvDir string
	// Files are the project-relative paths of created files.
	Files []string
	// Commits counts the commits made to the project repository.
	Commits int
	// Errors contains non-fatal errors from stages that continue after
	// a per-file failure.
	Errors []error
}

// Scaffolder runs the scaffolding stages.
type Scaffolder struct {
	fetcher      fetch.Fetcher
	materializer *template.Materializer
}

// NewScaffolder creates a Scaffolder with the default fetcher and
// materializer.
func NewScaffolder() *Scaffolder {
	return &Scaffolder{
		fetcher:      fetch.NewFetcher(),
		materializer: template.NewMaterializer(),
	}
}

// NewScaffolderWithFetcher creates a Scaffolder with a custom fetcher.
func NewScaffolderWithFetcher(f fetch.Fetcher) *Scaffolder {
	return &Scaffolder{
		fetcher:      f,
		materializer: template.NewMaterializer(),
	}
}

// run state shared by the stages of one Scaffold call.
type run struct {
	logger *log.Logger
	opts   *config.Options
	where  string
	repo   *gitrepo.Repo
	rc     template.ResolveContext
	result *Result
}

// Scaffold validates the options and runs the selected stages in order:
// directory, virtual environment, git, readme, script, license, package.
// Errors terminate the run; completed stages are not rolled back.
func (s *Scaffolder) Scaffold(ctx context.Context, logger *log.Logger, opts *config.Options) (*Result, error) {
	if err := config.Validate(opts); err != nil {
		return nil, NewAppError(ValidationFailed, "invalid options", err)
	}

	where, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, NewAppError(ValidationFailed, "failed to resolve project path", err)
	}

	r := &run{
		logger: logger,
		opts:   opts,
		where:  where,
		rc:     resolveContext(where, opts),
		result: &Result{ProjectDir: where},
	}

	if opts.CreateDir {
		if err := s.createDirectory(r); err != nil {
			return r.result, err
		}
	}
	if opts.Venv {
		if err := s.createVenv(ctx, r); err != nil {
			return r.result, err
		}
	}
	if opts.Git {
		if err := s.createGit(ctx, r); err != nil {
			return r.result, err
		}
	}
	if opts.Readme {
		if err := s.createReadme(r); err != nil {
			return r.result, err
		}
	}
	if opts.Script {
		if err := s.initScript(r); err != nil {
			return r.result, err
		}
	}
	if opts.LicenseEnabled() {
		if err := s.createLicense(ctx, r); err != nil {
			return r.result, err
		}
	}
	if opts.Package {
		if err := s.initPackage(ctx, r); err != nil {
			return r.result, err
		}
	}

	return r.result, nil
}

// resolveContext builds the placeholder resolution context: the explicit
// configuration mapping plus the synthetic fallback values.
func resolveContext(where string, opts *config.Options) template.ResolveContext {
	fb := template.Fallbacks{
		ProjectName: filepath.Base(where),
		ReadmeName:  template.AssetReadme,
	}
	if opts.LicenseEnabled() {
		if entry, found := license.Lookup(opts.License); found {
			fb.LicenseClassifier = entry.Classifier
		}
	}
	return template.ResolveContext{
		Values:    opts.PlaceholderValues(),
		Fallbacks: fb,
	}
}

// renameFile moves a materialized file to its final name.
func renameFile(oldPath, newPath string) error {
	if oldPath == newPath {
		return nil
	}
	return os.Rename(oldPath, newPath)
}

// commit stages and commits one path when the git stage is active.
func (r *run) commit(relPath, message string) error {
	if r.repo == nil {
		return nil
	}
	if _, err := r.repo.Commit(relPath, message); err != nil {
		return err
	}
	r.result.Commits++
	return nil
}

// recordFile notes a created file, project-relative.
func (r *run) recordFile(path string) {
	if rel, err := filepath.Rel(r.where, path); err == nil {
		path = rel
	}
	r.result.Files = append(r.result.Files, path)
}

// createDirectory creates the project directory.
func (s *Scaffolder) createDirectory(r *run) error {
	if err := workspace.CreateProjectDir(r.where); err != nil {
		return NewAppError(DirectoryStageFailed, "directory stage failed", err)
	}
	r.logger.Info("created new project directory", "path", r.where)
	return nil
}

// createVenv creates the python virtual environment.
func (s *Scaffolder) createVenv(ctx context.Context, r *run) error {
	envDir, err := venv.Create(ctx, r.logger, venv.Options{
		ProjectDir:    r.where,
		PythonVersion: r.opts.PythonVersion,
	})
	if err != nil {
		return NewAppError(VenvStageFailed, "virtual environment stage failed", err)
	}
	r.result.EnvDir = envDir
	return nil
}

// createGit initializes the repository and aggregates the .gitignore
// sources into one file, with a *.bak exclusion appended.
func (s *Scaffolder) createGit(ctx context.Context, r *run) error {
	repo, err := gitrepo.Init(r.where, gitrepo.Author{
		Name:  r.opts.Pkg.Author,
		Email: r.opts.Pkg.Email,
	})
	if err != nil {
		return NewAppError(GitStageFailed, "git stage failed", err)
	}
	r.repo = repo
	r.logger.Info("initialized git repository", "path", r.where)

	gitignorePath := filepath.Join(r.where, ".gitignore")
	if err := s.fetcher.FetchToFile(ctx, GitignoreURLs, gitignorePath); err != nil {
		return NewAppError(GitStageFailed, "failed to fetch .gitignore sources", err)
	}
	if err := fetch.AppendString(gitignorePath, GitignoreTail); err != nil {
		return NewAppError(GitStageFailed, "failed to append to .gitignore", err)
	}
	r.recordFile(gitignorePath)

	msg := fmt.Sprintf("intial values for .gitignore from: %s", strings.Join(GitignoreURLs, ", "))
	if err := r.commit(".gitignore", msg); err != nil {
		return NewAppError(GitStageFailed, "failed to commit .gitignore", err)
	}
	r.logger.Info("instantiated .gitignore and committed it")
	return nil
}

// createReadme materializes the readme template.
func (s *Scaffolder) createReadme(r *run) error {
	out, err := s.materializer.Materialize(template.Assets(), template.AssetReadme, r.where, r.rc)
	if err != nil {
		return NewAppError(ReadmeStageFailed, "readme stage failed", err)
	}
	r.recordFile(out)

	name := filepath.Base(out)
	if err := r.commit(name, "include default readme template"); err != nil {
		return NewAppError(ReadmeStageFailed, "failed to commit readme", err)
	}
	r.logger.Info("instantiated readme", "file", name)
	return nil
}

// initScript materializes the script stub and renames it after the
// project.
func (s *Scaffolder) initScript(r *run) error {
	asset, err := template.ScriptAsset(r.opts.PythonVersion)
	if err != nil {
		return NewAppError(ScriptStageFailed, "script stage failed", err)
	}

	out, err := s.materializer.Materialize(template.Assets(), asset, r.where, r.rc)
	if err != nil {
		return NewAppError(ScriptStageFailed, "script stage failed", err)
	}

	scriptName := filepath.Base(r.where) + ".py"
	scriptPath := filepath.Join(r.where, scriptName)
	if err := renameFile(out, scriptPath); err != nil {
		return NewAppError(ScriptStageFailed, "failed to rename script stub", err)
	}
	r.recordFile(scriptPath)

	if err := r.commit(scriptName, "include default script template"); err != nil {
		return NewAppError(ScriptStageFailed, "failed to commit script stub", err)
	}
	r.logger.Info("added script template", "file", scriptName)
	return nil
}

// createLicense fetches the license text, strips its front matter, and
// writes LICENSE.txt.
func (s *Scaffolder) createLicense(ctx context.Context, r *run) error {
	entry, found := license.Lookup(r.opts.License)
	if !found {
		// Validate catches this before any stage runs.
		return NewAppError(LicenseStageFailed, "license stage failed",
			fmt.Errorf("unknown license %q", r.opts.License))
	}
	url, err := license.SourceURL(entry)
	if err != nil {
		return NewAppError(LicenseStageFailed, "license stage failed", err)
	}

	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return NewAppError(LicenseStageFailed, "failed to fetch license text", err)
	}

	licensePath := filepath.Join(r.where, LicenseFileName)
	if err := fetch.WriteWithStrippedFrontMatter(licensePath, body); err != nil {
		return NewAppError(LicenseStageFailed, "failed to write license", err)
	}
	r.recordFile(licensePath)

	msg := fmt.Sprintf("assigned the %s using text from: %s", entry.Title, url)
	if err := r.commit(LicenseFileName, msg); err != nil {
		return NewAppError(LicenseStageFailed, "failed to commit license", err)
	}
	r.logger.Info("instantiated license", "file", LicenseFileName, "title", entry.Title, "url", url)
	return nil
}

// initPackage fetches the packaging manifests, materializes the
// packaging templates, and creates the package subdirectory tree.
// Per-file materialization failures are recorded and the remaining files
// are still processed; the first failure is returned afterwards.
func (s *Scaffolder) initPackage(ctx context.Context, r *run) error {
	for _, url := range PackageURLs {
		name := url[strings.LastIndex(url, "/")+1:]
		dest := filepath.Join(r.where, name)
		if err := s.fetcher.FetchToFile(ctx, []string{url}, dest); err != nil {
			return NewAppError(PackageStageFailed, "failed to fetch packaging manifest", err)
		}
		r.recordFile(dest)
		if err := r.commit(name, fmt.Sprintf("intial content for %s from: %s", name, url)); err != nil {
			return NewAppError(PackageStageFailed, "failed to commit packaging manifest", err)
		}
		r.logger.Info("instantiated packaging manifest", "file", name)
	}

	var firstErr error
	for _, asset := range []string{template.AssetRequirements, template.AssetSetup} {
		out, err := s.materializer.Materialize(template.Assets(), asset, r.where, r.rc)
		if err != nil {
			// Materialization failures abort this file only.
			r.result.Errors = append(r.result.Errors, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		r.recordFile(out)

		name := filepath.Base(out)
		if err := r.commit(name, fmt.Sprintf("include default %s template", name)); err != nil {
			return NewAppError(PackageStageFailed, "failed to commit packaging template", err)
		}
		r.logger.Info("instantiated packaging template", "file", name)
	}

	created, err := workspace.CreateSubdirs(r.where, workspace.PackageSubdirs)
	if err != nil {
		return NewAppError(PackageStageFailed, "failed to create package subdirectories", err)
	}
	for _, c := range created {
		if c.IsDir {
			continue
		}
		r.result.Files = append(r.result.Files, c.Path)
		dir := filepath.Dir(c.Path)
		if err := r.commit(c.Path, fmt.Sprintf("make %s part of the package by adding %s", dir, workspace.InitFileName)); err != nil {
			return NewAppError(PackageStageFailed, "failed to commit package marker", err)
		}
		r.logger.Info("instantiated package marker", "file", c.Path)
	}

	if firstErr != nil {
		return NewAppError(PackageStageFailed, "package stage completed with errors", firstErr)
	}
	return nil
}
