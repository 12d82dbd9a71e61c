// Package manifest parses and validates the declarative templates manifest.
//
// A starters root may carry a templates/manifest.json describing the available
// templates and their flavors. The file is hand-edited, so it is decoded
// tolerantly (comments and trailing commas allowed) and then validated against
// an embedded JSON Schema before normalization.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/muhammadmuzzammil1998/jsonc"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	oerrors "github.com/agentstack/cli/internal/errors"
)

// FileName is the manifest file name under the templates directory.
const FileName = "manifest.json"

// Flavor is one variant of a template. In the manifest a flavor may be given
// as a bare identifier string or as {"id": ..., "path": ...}; Path, when set,
// is the flavor's on-disk subdirectory relative to the template directory.
type Flavor struct {
	ID   string `json:"id"`
	Path string `json:"path,omitempty"`
}

// UnmarshalJSON accepts both the shorthand string form and the object form.
func (f *Flavor) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		f.ID = id
		f.Path = ""
		return nil
	}

	type flavorAlias Flavor
	var alias flavorAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*f = Flavor(alias)
	return nil
}

// EffectivePath returns the flavor's on-disk subdirectory relative to the
// template directory: the explicit path when given, the id otherwise.
func (f Flavor) EffectivePath() string {
	if f.Path != "" {
		return f.Path
	}
	return f.ID
}

// Entry describes one template in the manifest.
type Entry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Flavors     []Flavor `json:"flavors"`
	Order       *float64 `json:"order,omitempty"`
	Category    string   `json:"category,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	Hidden      bool     `json:"hidden,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
}

// Manifest is the parsed templates manifest.
type Manifest struct {
	Version   *float64 `json:"version,omitempty"`
	Templates []Entry  `json:"templates"`
}

// FlavorByID returns the entry's flavor with the given id.
func (e Entry) FlavorByID(id string) (Flavor, bool) {
	for _, f := range e.Flavors {
		if f.ID == id {
			return f, true
		}
	}
	return Flavor{}, false
}

// EntryByID returns the manifest entry with the given id.
func (m *Manifest) EntryByID(id string) (Entry, bool) {
	for _, e := range m.Templates {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Error describes a malformed manifest. It carries the manifest path and a
// human-readable reason so callers can surface a useful warning.
type Error struct {
	// Path is the manifest file path.
	Path string

	// Reason is a human-readable description of what is wrong.
	Reason string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("invalid templates manifest at %s: %s", e.Path, e.Reason)
}

// Unwrap ties manifest errors to the ErrManifest sentinel.
func (e *Error) Unwrap() error {
	return oerrors.ErrManifest
}

// stripTrailingCommas removes commas that directly precede a closing brace or
// bracket. It expects comment-free input (jsonc.ToJSON output), so only string
// literals need tracking.
func stripTrailingCommas(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	escaped := false

	for _, b := range data {
		if inString {
			out = append(out, b)
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}

		switch b {
		case '"':
			inString = true
		case '}', ']':
			// Drop a comma left dangling before this close, ignoring any
			// whitespace between the two.
			i := len(out) - 1
			for i >= 0 && (out[i] == ' ' || out[i] == '\t' || out[i] == '\n' || out[i] == '\r') {
				i--
			}
			if i >= 0 && out[i] == ',' {
				out = append(out[:i], out[i+1:]...)
			}
		}
		out = append(out, b)
	}

	return out
}

// Normalize parses and validates raw manifest content, returning the
// normalized manifest. The content may contain comments and trailing commas.
// Any structural or semantic problem yields an *Error carrying path context.
func Normalize(raw []byte, path string) (*Manifest, error) {
	data := stripTrailingCommas(jsonc.ToJSON(raw))

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Path: path, Reason: fmt.Sprintf("not valid JSON: %v", err)}
	}

	s, err := compiledSchema()
	if err != nil {
		// Embedded schema failing to compile is a programming error, not a
		// property of the manifest under inspection.
		return nil, fmt.Errorf("manifest schema unavailable: %w", err)
	}

	if err := s.Validate(doc); err != nil {
		return nil, &Error{Path: path, Reason: err.Error()}
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &Error{Path: path, Reason: fmt.Sprintf("decoding: %v", err)}
	}

	// Schema cannot express path shape rules; check them here.
	for _, entry := range m.Templates {
		for _, f := range entry.Flavors {
			if f.Path != "" && filepath.IsAbs(f.Path) {
				return nil, &Error{
					Path: path,
					Reason: fmt.Sprintf(
						"template %q flavor %q: path %q must be relative",
						entry.ID, f.ID, f.Path),
				}
			}
		}
	}

	return &m, nil
}
