package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter helps format tabular output
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw}
}

// Row writes a table row
func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output
func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults writes data as JSON or YAML. Text output is left to the
// caller.
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(yamlData)
		return err

	case FormatText:
		_, err := fmt.Fprintf(w, "%v\n", data)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
