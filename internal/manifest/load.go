package manifest

import (
	"os"
)

// Outcome classifies the result of a manifest load attempt. Callers branch on
// it: an absent manifest falls back to directory scanning silently, an invalid
// one falls back with a warning, and an I/O failure is worth logging on its
// own before falling back.
type Outcome int

const (
	// Loaded means the manifest was read and validated successfully.
	Loaded Outcome = iota

	// Absent means no manifest file exists at the path.
	Absent

	// Invalid means the file exists but its content is malformed.
	Invalid

	// IOFailure means the file could not be read at all.
	IOFailure
)

// LoadResult is the outcome of a manifest load attempt. Manifest is non-nil
// only when Outcome is Loaded; Err is non-nil for Invalid and IOFailure.
type LoadResult struct {
	Manifest *Manifest
	Outcome  Outcome
	Err      error
}

// Load reads and normalizes the manifest at the given path.
func Load(path string) LoadResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{Outcome: Absent}
		}
		return LoadResult{Outcome: IOFailure, Err: err}
	}

	m, err := Normalize(raw, path)
	if err != nil {
		return LoadResult{Outcome: Invalid, Err: err}
	}

	return LoadResult{Manifest: m, Outcome: Loaded}
}
