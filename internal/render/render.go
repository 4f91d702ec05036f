// Package render turns the ordered task listing into the formats the CLI and
// the HTTP server emit.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"taskboard/internal/domain"
)

// Format names an output format for task listings
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// Formats lists every supported format, the default first
var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatCSV}

// FormatList joins the supported format names for help and error text
func FormatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseFormat maps a user supplied name onto a Format
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (supported: %s)", name, FormatList())
	}
}

// Tasks writes the listing to w in the given format
func Tasks(w io.Writer, format Format, tasks []*domain.Task) error {
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	switch format {
	case FormatTable:
		_, err := io.WriteString(w, Table(tasks)+"\n")
		return err
	case FormatJSON:
		return JSON(w, tasks)
	case FormatYAML:
		return YAML(w, tasks)
	case FormatCSV:
		return CSV(w, tasks)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// JSON writes tasks as an indented JSON array
func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// YAML writes tasks as a YAML sequence
func YAML(w io.Writer, tasks []*domain.Task) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(tasks); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}

// CSV writes a header row followed by one row per task
func CSV(w io.Writer, tasks []*domain.Task) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"ID", "Priority", "Description"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		row := []string{
			strconv.FormatInt(task.ID, 10),
			strconv.FormatInt(task.Priority, 10),
			task.Description,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
