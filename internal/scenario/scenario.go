// Package scenario loads calculator input from files: YAML (or JSON) documents
// and workbooks in the importer layout.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"Airlift/internal/calc/airlift"
	"Airlift/internal/calc/premium/importer"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a scenario file. An empty path yields the defaults.
func Load(path string) (airlift.Input, error) {
	if path == "" {
		return airlift.DefaultInput(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return airlift.Input{}, fmt.Errorf("read scenario: %w", err)
	}

	var in airlift.Input
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		in, err = importer.ParseWorkbook(bytes.NewReader(data))
	default:
		in, err = Decode(bytes.NewReader(data))
	}
	if err != nil {
		return airlift.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := in.Validate(); err != nil {
		return airlift.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// Decode parses a YAML document. Unknown keys are rejected so a misspelt
// field does not silently become zero.
func Decode(r io.Reader) (airlift.Input, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in airlift.Input
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return airlift.Input{}, nil
		}
		return airlift.Input{}, fmt.Errorf("decode scenario: %w", err)
	}
	return in, nil
}

func Encode(w io.Writer, in airlift.Input) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return err
	}
	return enc.Close()
}
