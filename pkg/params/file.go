package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/simplesurance/interpolate/internal/fs"
	"github.com/simplesurance/interpolate/internal/log"
	"github.com/simplesurance/interpolate/pkg/interpolate"
)

// ErrUnsupportedFormat is returned when the format of a parameter file can
// not be determined from its file extension.
var ErrUnsupportedFormat = errors.New("unsupported parameter file format")

// Decoder decodes a parameter file into a map.
type Decoder func(data []byte, v any) error

var decoders = map[string]Decoder{
	".toml": toml.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".json": decodeJSON,
}

// decodeJSON keeps numbers as json.Number to prevent that large integers are
// converted to float64.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// FromFile reads a parameter file.
// The format is determined by the file extension, supported are .toml, .yaml,
// .yml and .json. The top-level element must be a table/map and values must
// not be nested.
func FromFile(path string) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, exists := decoders[ext]
	if !exists {
		return nil, fmt.Errorf("%s: %w %q, supported are: .toml, .yaml, .yml, .json", path, ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file failed: %w", err)
	}

	res := map[string]any{}
	if err := decode(data, &res); err != nil {
		return nil, fmt.Errorf("%s: parsing parameter file failed: %w", path, err)
	}

	if err := validateFlat(res); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for k := range res {
		if !interpolate.IsIdentifier(k) {
			log.Debugf("%s: parameter %q can not be referenced by a token, only letters, digits and underscores are allowed", path, k)
		}
	}

	return res, nil
}

// FromFiles resolves the doublestar glob patterns and reads all matching
// parameter files. Files matching a pattern are read in lexical order.
// Parameters from later files override the ones from earlier files.
// A pattern that does not match any file is an error.
func FromFiles(patterns []string) (map[string]any, error) {
	res := map[string]any{}

	for _, pattern := range patterns {
		paths, err := fs.FileGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolving %q failed: %w", pattern, err)
		}

		if len(paths) == 0 {
			return nil, fmt.Errorf("%q does not match any files", pattern)
		}

		for _, path := range paths {
			log.Debugf("reading parameter file %s", path)

			m, err := FromFile(path)
			if err != nil {
				return nil, err
			}

			maps.Copy(res, m)
		}
	}

	return res, nil
}
