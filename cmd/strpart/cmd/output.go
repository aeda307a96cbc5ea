package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeJSONLines encodes each item as one compact JSON value per line.
func writeJSONLines[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	}

	return nil
}

// writeYAML encodes items as a single YAML sequence document.
func writeYAML[T any](w io.Writer, items []T) error {
	payload, err := yaml.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	_, err = w.Write(payload)

	return err
}

// writeItems dispatches on the --output flag value.
func writeItems[T any](w io.Writer, format string, items []T) error {
	switch format {
	case formatJSON:
		return writeJSONLines(w, items)
	case formatYAML:
		return writeYAML(w, items)
	default:
		return fmt.Errorf("unknown output format %q (want %s|%s)", format, formatJSON, formatYAML)
	}
}
