package report

// file codec.go serialises a fabric.Model tree to YAML or JSON and back.
// The format follows the file extension: .yaml/.yml select YAML,
// .json selects JSON. Decoded trees are re-validated before being returned.

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/multistage/fabric"
)

// Format is a serialisation format.
type Format string

const (
	// YAML selects gopkg.in/yaml.v3.
	YAML Format = "yaml"
	// JSON selects encoding/json with tab indentation.
	JSON Format = "json"
)

// ErrUnknownFormat indicates a file extension or Format outside {yaml, json}.
var ErrUnknownFormat = errors.New("report: unknown serialisation format")

// FormatFromPath selects the format from the extension of filename.
func FormatFromPath(filename string) (Format, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("FormatFromPath(%s): %w", filename, ErrUnknownFormat)
	}
}

// Encode serialises the chain rooted at m.
func Encode(m *fabric.Model, format Format) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("Encode: %w", fabric.ErrInvalidModel)
	}

	switch format {
	case YAML:
		return yaml.Marshal(m)
	case JSON:
		return json.MarshalIndent(m, "", "\t")
	default:
		return nil, fmt.Errorf("Encode(%s): %w", format, ErrUnknownFormat)
	}
}

// Decode deserialises a chain and checks it with Model.Validate.
func Decode(data []byte, format Format) (*fabric.Model, error) {
	m := new(fabric.Model)

	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, m)
	case JSON:
		err = json.Unmarshal(data, m)
	default:
		return nil, fmt.Errorf("Decode(%s): %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("Decode(%s): %w", format, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("Decode(%s): %w", format, err)
	}

	return m, nil
}

// WriteToFile stores the chain rooted at m in filename, in the format
// selected by its extension.
func WriteToFile(m *fabric.Model, filename string) error {
	format, err := FormatFromPath(filename)
	if err != nil {
		return err
	}
	data, err := Encode(m, format)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0o644)
}

// ReadFile loads a chain written by WriteToFile.
func ReadFile(filename string) (*fabric.Model, error) {
	format, err := FormatFromPath(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decode(data, format)
}
