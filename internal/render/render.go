// Package render writes demo results in one of several output formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-hof/internal/demo"
)

// Format names an output format.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTable}

// ParseFormat returns the Format named s, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Results writes results to w in format f.
func Results(w io.Writer, f Format, results []demo.Result) error {
	switch f {
	case FormatText:
		return writeText(w, results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		writeTable(w, results)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func writeText(w io.Writer, results []demo.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s/%s: %v\n", r.Section, r.Name, r.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, results []demo.Result) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader([]string{"Section", "Example", "Value"})
	for _, r := range results {
		table.Append([]string{r.Section, r.Name, fmt.Sprintf("%v", r.Value)})
	}
	table.Render()
}
