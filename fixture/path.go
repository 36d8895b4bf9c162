package fixture

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathFormat reports a fixture path that does not follow the corpus layout.
var ErrPathFormat = errors.New("fixture: malformed fixture path")

// anchor marks where corpus metadata starts inside a fixture path. The
// consensus-spec-tests release tarballs nest a second tests directory under
// the first, and everything before the pair is release-local noise.
const anchorSegment = "tests"

// FixturePath is the decomposed form of a single fixture file path:
//
//	.../tests/tests/{preset}/{fork}/{category}/{suite}/.../{file}.ssz_snappy
//
// Rest holds every segment after the suite, including the leaf, so rules
// that encode the type name one level below the suite can reach it.
type FixturePath struct {
	Preset   string
	Fork     string
	Category string
	Suite    string
	Rest     []string

	// FileName is the leaf segment with its .ssz / .ssz_snappy extension
	// stripped, e.g. "pre", "blocks_3", "serialized".
	FileName string

	dir string
}

// Dir returns the on-disk directory holding the fixture, for sidecar lookup.
func (fp FixturePath) Dir() string {
	return fp.dir
}

// Decompose splits path at the tests/tests anchor and extracts the five
// ordered metadata segments. It is a pure function of the path string.
func Decompose(path string) (FixturePath, error) {
	parts := strings.Split(filepath.ToSlash(path), "/")

	anchor := -1
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == anchorSegment && parts[i+1] == anchorSegment {
			anchor = i + 1
			break
		}
	}
	if anchor == -1 {
		return FixturePath{}, fmt.Errorf("%w: missing %s/%s anchor in %q", ErrPathFormat, anchorSegment, anchorSegment, path)
	}

	tail := parts[anchor+1:]
	if len(tail) < 5 {
		return FixturePath{}, fmt.Errorf("%w: want preset/fork/category/suite/file after anchor, got %d segments in %q", ErrPathFormat, len(tail), path)
	}

	fp := FixturePath{
		Preset:   tail[0],
		Fork:     tail[1],
		Category: tail[2],
		Suite:    tail[3],
		Rest:     tail[4:],
		dir:      filepath.Dir(path),
	}
	fp.FileName = stripExtension(fp.Rest[len(fp.Rest)-1])
	return fp, nil
}

func stripExtension(leaf string) string {
	for _, ext := range []string{".ssz_snappy", ".ssz"} {
		if strings.HasSuffix(leaf, ext) {
			return strings.TrimSuffix(leaf, ext)
		}
	}
	return leaf
}
