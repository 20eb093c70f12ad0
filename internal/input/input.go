// Package input reads change records from local files.
package input

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	domainErrors "github.com/thomas-vilte/prproof/internal/errors"
	"github.com/thomas-vilte/prproof/internal/models"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the decoder from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", domainErrors.ErrUnsupportedInput.WithContext("path", path)
	}
}

// LoadChangeRecord reads a change record from a .json, .yaml or .yml file.
// "-" reads JSON from stdin.
func LoadChangeRecord(path string) (models.ChangeRecord, error) {
	if path == "-" {
		return Decode(os.Stdin, FormatJSON)
	}

	format, err := FormatFor(path)
	if err != nil {
		return models.ChangeRecord{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return models.ChangeRecord{}, domainErrors.ErrReadInput.WithError(err).WithContext("path", path)
	}
	defer func() { _ = f.Close() }()

	record, err := Decode(f, format)
	if err != nil {
		return models.ChangeRecord{}, err
	}
	return record, nil
}

// Decode parses one change record. Unknown fields are ignored, negative
// counts and missing lists are normalized.
func Decode(r io.Reader, format Format) (models.ChangeRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.ChangeRecord{}, domainErrors.ErrReadInput.WithError(err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return models.ChangeRecord{}, domainErrors.ErrReadInput.WithContext("reason", "empty input")
	}

	var record models.ChangeRecord
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &record)
	case FormatYAML:
		err = yaml.Unmarshal(data, &record)
	default:
		return models.ChangeRecord{}, domainErrors.ErrUnsupportedInput.WithContext("format", format)
	}
	if err != nil {
		return models.ChangeRecord{}, domainErrors.ErrReadInput.WithError(err).WithContext("format", format)
	}

	return record.Normalize(), nil
}
