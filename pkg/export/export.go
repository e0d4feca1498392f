package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/pizzafactory/core/pizzeria"
)

// Format represents the menu output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// Formats lists the supported output formats.
func Formats() []Format { return []Format{FormatTable, FormatJSON, FormatYAML, FormatCSV} }

// ParseFormat returns the format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// WriteMenu writes the menu items to w in the given format.
func WriteMenu(w io.Writer, format Format, items []pizzeria.MenuItem) error {
	switch format {
	case FormatTable:
		return WriteTable(w, items)
	case FormatJSON:
		return WriteJSON(w, items)
	case FormatYAML:
		return WriteYAML(w, items)
	case FormatCSV:
		return WriteCSV(w, items)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// WriteJSON writes the menu to w as an indented JSON array.
func WriteJSON(w io.Writer, items []pizzeria.MenuItem) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// WriteYAML writes the menu to w as a YAML sequence.
func WriteYAML(w io.Writer, items []pizzeria.MenuItem) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		return err
	}
	return enc.Close()
}

// WriteCSV writes the menu to w with a header row.
func WriteCSV(w io.Writer, items []pizzeria.MenuItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"region", "kind", "prepare", "bake", "serve"}); err != nil {
		return err
	}
	for _, it := range items {
		if err := cw.Write([]string{it.Region, it.Kind, it.Prepare, it.Bake, it.Serve}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable writes the menu to w as aligned columns.
func WriteTable(w io.Writer, items []pizzeria.MenuItem) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "REGION\tKIND\tPREPARE\tBAKE\tSERVE"); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.Region, it.Kind, it.Prepare, it.Bake, it.Serve); err != nil {
			return err
		}
	}
	return tw.Flush()
}
