package calibration

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFileFormat = errors.New("unsupported calibration file format")

// LoadFile reads standards from a .json, .yaml or .yml file and validates
// them.
func LoadFile(path string) (Standards, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Standards{}, fmt.Errorf("failed to read calibration file: %w", err)
	}

	var s Standards
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		return Standards{}, fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, ext)
	}
	if err != nil {
		return Standards{}, fmt.Errorf("%w: %v", ErrInvalidStandards, err)
	}

	if err := s.Validate(); err != nil {
		return Standards{}, err
	}
	return s.Clone(), nil
}

// SaveFile writes standards in the format implied by the file extension.
func SaveFile(path string, s Standards) error {
	if err := s.Validate(); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(s, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode calibration: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create calibration directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write calibration file: %w", err)
	}
	return nil
}
