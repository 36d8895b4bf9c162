package sszcodec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"gopkg.in/yaml.v3"
)

// Output formats for Export.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Export renders a decoded value as structured text.
func Export(v Value, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("sszcodec: export json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("sszcodec: export yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("sszcodec: unknown export format %q", format)
	}
}

// FormatForPath picks the export format from an output path extension.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// ReadFixture loads a fixture payload, transparently decompressing the
// block-format snappy framing corpus files carry.
func ReadFixture(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sszcodec: read fixture: %w", err)
	}
	if !strings.HasSuffix(path, ".ssz_snappy") {
		return raw, nil
	}
	buf, err := snappy.Decode(nil, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: snappy: %v", ErrDecode, err)
	}
	return buf, nil
}
