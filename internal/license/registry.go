// Package license holds the static registry of supported license
// identifiers and resolves each identifier to the URL its full text is
// fetched from.
package license

import (
	"fmt"
	"sort"
	"strings"
)

// Entry describes one license in the registry.
type Entry struct {
	// ID is the registry identifier (e.g. "mit").
	ID string
	// Title is the human-readable license name.
	Title string
	// Classifier is the packaging trove classifier text, if any.
	Classifier string
	// Source locates the license text: either a direct URL or an
	// "::alias" reference into the source prefix table.
	Source string
}

// HasSource reports whether the entry has a fetchable text source.
func (e Entry) HasSource() bool {
	return e.Source != ""
}

// sourceFix describes how an "::alias" source expands to a URL.
type sourceFix struct {
	prefix string
	suffix string
}

// sourceFixes maps source aliases to URL prefix/suffix pairs.
var sourceFixes = map[string]sourceFix{
	"cal": {
		prefix: "https://raw.githubusercontent.com/github/choosealicense.com/gh-pages/_licenses/",
		suffix: ".txt",
	},
}

// registry is the static license table.
var registry = map[string]Entry{
	"afl-3.0": {
		Title:      "Academic Free License v3.0",
		Classifier: "License :: OSI Approved :: Academic Free License (AFL)",
		Source:     "::cal",
	},
	"agpl-3.0": {
		Title:      "GNU Affero General Public License v3.0",
		Classifier: "License :: OSI Approved :: GNU Affero General Public License v3",
		Source:     "::cal",
	},
	"apache-2.0": {
		Title:      "Apache License 2.0",
		Classifier: "License :: OSI Approved :: Apache Software License",
		Source:     "::cal",
	},
	"artistic-2.0": {
		Title:      "Artistic License 2.0",
		Classifier: "License :: OSI Approved :: Artistic License",
		Source:     "::cal",
	},
	"bsd-2-clause": {
		Title:      "BSD 2-clause \"Simplified\" License",
		Classifier: "License :: OSI Approved :: BSD License",
		Source:     "::cal",
	},
	"bsd-3-clause": {
		Title:      "BSD 3-clause \"New\" or \"Revised\" License",
		Classifier: "License :: OSI Approved :: BSD License",
		Source:     "::cal",
	},
	"bsd-3-clause-clear": {
		Title:      "BSD 3-clause Clear License",
		Classifier: "License :: OSI Approved :: BSD License",
		Source:     "::cal",
	},
	"cc-by-4.0": {
		Title:  "Creative Commons Attribution 4.0",
		Source: "::cal",
	},
	"cc-by-sa-4.0": {
		Title:  "Creative Commons Attribution Share Alike 4.0",
		Source: "::cal",
	},
	"cc0-1.0": {
		Title:      "CC0 1.0 Universal Public Domain Dedication",
		Classifier: "License :: CC0 1.0 Universal (CC0 1.0) Public Domain Dedication",
		Source:     "::cal",
	},
	"epl-1.0": {
		Title:  "Eclipse Public License 1.0",
		Source: "::cal",
	},
	"eupl-1.1": {
		Title:      "European Union Public License 1.1",
		Classifier: "License :: OSI Approved :: European Union Public Licence 1.1 (EUPL 1.1)",
		Source:     "::cal",
	},
	"gfdl-1.3": {
		Title:      "GNU Free Documentation License 1.3",
		Classifier: "License :: OSI Approved :: GNU Free Documentation License (FDL)",
		Source:     "https://www.gnu.org/licenses/fdl.txt",
	},
	"gpl-2.0": {
		Title:      "GNU General Public License, version 2",
		Classifier: "License :: OSI Approved :: GNU General Public License v2 (GPLv2)",
		Source:     "https://www.gnu.org/licenses/gpl-2.0.txt",
	},
	"gpl-3.0": {
		Title:      "GNU General Public License, version 3",
		Classifier: "License :: OSI Approved :: GNU General Public License v3 (GPLv3)",
		Source:     "https://www.gnu.org/licenses/gpl-3.0.txt",
	},
	"isc": {
		Title:      "ISC License",
		Classifier: "License :: OSI Approved :: ISC License (ISCL)",
		Source:     "::cal",
	},
	"lgpl-2.1": {
		Title:      "GNU Lesser General Public License v2.1",
		Classifier: "License :: OSI Approved :: GNU Lesser General Public License v2 (LGPLv2)",
		Source:     "https://www.gnu.org/licenses/lgpl-2.1.txt",
	},
	"lgpl-3.0": {
		Title:      "GNU Lesser General Public License v3.0",
		Classifier: "License :: OSI Approved :: GNU Lesser General Public License v3 (LGPLv3)",
		Source:     "https://www.gnu.org/licenses/lgpl-3.0.txt",
	},
	"lppl-1.3c": {
		Title:  "LaTeX Project Public License v1.3c",
		Source: "::cal",
	},
	"mit": {
		Title:      "MIT License",
		Classifier: "License :: OSI Approved :: MIT License",
		Source:     "::cal",
	},
	"mpl-2.0": {
		Title:      "Mozilla Public License 2.0",
		Classifier: "License :: OSI Approved :: Mozilla Public License 2.0 (MPL 2.0)",
		Source:     "::cal",
	},
	"ms-pl": {
		Title:  "Microsoft Public License",
		Source: "::cal",
	},
	"ms-rl": {
		Title:  "Microsoft Reciprocal License",
		Source: "::cal",
	},
	"ofl-1.1": {
		Title:  "SIL Open Font License 1.1",
		Source: "::cal",
	},
	"osl-3.0": {
		Title:  "Open Software License 3.0",
		Source: "::cal",
	},
	"other": {
		Title:      "Other/Proprietary License",
		Classifier: "License :: Other/Proprietary License",
	},
	"unlicense": {
		Title:  "The Unlicense",
		Source: "::cal",
	},
	"wtfpl": {
		Title:  "\"Do What The F*ck You Want To Public License\"",
		Source: "::cal",
	},
}

// Lookup returns the registry entry for the given identifier.
// Identifiers are matched case-insensitively.
func Lookup(id string) (Entry, bool) {
	e, ok := registry[strings.ToLower(id)]
	if !ok {
		return Entry{}, false
	}
	e.ID = strings.ToLower(id)
	return e, true
}

// SourceURL resolves the entry's source locator to a concrete URL.
// Returns an error for entries without a fetchable source or with an
// unknown source alias.
func SourceURL(e Entry) (string, error) {
	if e.Source == "" {
		return "", fmt.Errorf("license %q has no text source", e.ID)
	}
	if !strings.HasPrefix(e.Source, "::") {
		return e.Source, nil
	}
	alias := strings.TrimPrefix(e.Source, "::")
	fix, ok := sourceFixes[alias]
	if !ok {
		return "", fmt.Errorf("license %q has unknown source alias %q", e.ID, alias)
	}
	return fix.prefix + e.ID + fix.suffix, nil
}

// IDs returns all registry identifiers in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all registry entries sorted by identifier.
func All() []Entry {
	entries := make([]Entry, 0, len(registry))
	for _, id := range IDs() {
		e := registry[id]
		e.ID = id
		entries = append(entries, e)
	}
	return entries
}
