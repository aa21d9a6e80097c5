package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output format names accepted by --output and config.
const (
	outputFormatTable = "table"
	outputFormatJSON  = "json"
)

// writeJSON renders v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	return nil
}
