package template

// Fallback identifier names. These are the only identifiers whose values
// are computed from context rather than taken from the configuration
// mapping.
const (
	// KeyProjectName resolves to the target directory's base name.
	KeyProjectName = "project_name"
	// KeyClassLicense resolves to the selected license's classifier text.
	KeyClassLicense = "classlicense"
	// KeyPkgReadme resolves to the conventional readme filename.
	KeyPkgReadme = "pkgreadme"
)

// Fallbacks holds the context-computed values for the synthetic
// placeholder identifiers.
type Fallbacks struct {
	// ProjectName is the target directory's base name.
	ProjectName string
	// LicenseClassifier is the classifier text of the selected license.
	// Empty when no license (or one without a classifier) is selected;
	// the classlicense identifier is then unresolvable.
	LicenseClassifier string
	// ReadmeName is the readme filename referenced by packaging
	// templates.
	ReadmeName string
}

// lookup resolves a fallback identifier.
func (f Fallbacks) lookup(name string) (string, bool) {
	switch name {
	case KeyProjectName:
		if f.ProjectName == "" {
			return "", false
		}
		return f.ProjectName, true
	case KeyClassLicense:
		if f.LicenseClassifier == "" {
			return "", false
		}
		return f.LicenseClassifier, true
	case KeyPkgReadme:
		if f.ReadmeName == "" {
			return "", false
		}
		return f.ReadmeName, true
	}
	return "", false
}

// ResolveContext supplies placeholder values for materialization.
type ResolveContext struct {
	// Values is the configuration mapping, keyed by option name.
	Values map[string]string
	// Fallbacks supplies the context-computed synthetic values.
	Fallbacks Fallbacks
}

// Resolve maps each identifier to its value using the ordered lookup
// chain: configuration mapping, then fallback table. It returns the
// resolved values and the identifiers that remain unresolved, in
// first-seen order.
func Resolve(identifiers []string, rc ResolveContext) (map[string]string, []string) {
	resolved := make(map[string]string, len(identifiers))
	var missing []string
	for _, id := range identifiers {
		if v, ok := rc.Values[id]; ok {
			resolved[id] = v
			continue
		}
		if v, ok := rc.Fallbacks.lookup(id); ok {
			resolved[id] = v
			continue
		}
		missing = append(missing, id)
	}
	return resolved, missing
}
