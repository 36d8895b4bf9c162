package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SidecarFileName is the per-case descriptor co-located with fixtures that
// need metadata the path cannot encode, notably transition boundaries.
const SidecarFileName = "meta.yaml"

// Sidecar is the generic key-value view of a case's meta.yaml. Most fixtures
// have none; an empty Sidecar behaves like a descriptor with no keys set.
type Sidecar struct {
	fields map[string]any
}

// SidecarFunc fetches the sidecar for a fixture directory. The resolver takes
// one so sidecar reads stay injectable in tests.
type SidecarFunc func(dir string) (Sidecar, error)

// ReadSidecar loads the sidecar descriptor from dir if one exists. A missing
// file is the common case and yields an empty descriptor with no error. A
// present but unparsable file yields an empty descriptor plus the parse
// error; callers treat that as a warning, not a failure.
func ReadSidecar(dir string) (Sidecar, error) {
	raw, err := os.ReadFile(filepath.Join(dir, SidecarFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Sidecar{}, nil
		}
		return Sidecar{}, fmt.Errorf("fixture: read sidecar: %w", err)
	}

	fields := make(map[string]any)
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return Sidecar{}, fmt.Errorf("fixture: parse sidecar: %w", err)
	}
	return Sidecar{fields: fields}, nil
}

// PostFork returns the fork a transition case lands on after the boundary.
func (s Sidecar) PostFork() (string, bool) {
	v, ok := s.fields["post_fork"].(string)
	return v, ok && v != ""
}

// ForkBlock returns the index of the last block applied before the fork
// boundary in a transition case.
func (s Sidecar) ForkBlock() (uint64, bool) {
	switch v := s.fields["fork_block"].(type) {
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case uint64:
		return v, true
	default:
		return 0, false
	}
}
