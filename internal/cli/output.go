package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// parseFormat validates the --format flag
func parseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(s)
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return format, nil
}

// OutputResult contains data to be output
type OutputResult struct {
	Provider string   `json:"provider,omitempty"`
	Artifact string   `json:"artifact,omitempty"`
	Zones    []string `json:"zones,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeText outputs the artifact (or zone list) as plain text
func writeText(w io.Writer, result *OutputResult) error {
	if result.Artifact != "" {
		_, err := fmt.Fprintln(w, result.Artifact)
		return err
	}
	for _, zone := range result.Zones {
		if _, err := fmt.Fprintln(w, zone); err != nil {
			return err
		}
	}
	return nil
}
