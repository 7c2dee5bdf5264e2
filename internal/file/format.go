// Package file implements the whole-file persistence backends (CSV, JSON,
// XML) and the Format selection rules that map a path to one of them.
package file

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Format identifies a supported file layout.
type Format string

// Supported file formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ParseFormat maps a file extension to a Format. Unsupported extensions
// fall back to CSV with a warning; format selection never fails.
func ParseFormat(ext string) Format {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "csv":
		return FormatCSV
	case "json":
		return FormatJSON
	case "xml":
		return FormatXML
	case "txt":
		log.Warn("text files use the CSV layout")
		return FormatCSV
	default:
		log.Warn("unsupported file format; defaulting to CSV", "extension", ext)
		return FormatCSV
	}
}

// NormalizeName repairs a path's file name so a format can always be
// chosen: an empty stem becomes "tasks" and a missing extension becomes
// ".csv".
func NormalizeName(path string) string {
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		name = "tasks"
	}

	parts := strings.Split(name, ".")
	if parts[0] == "" {
		parts[0] = "tasks"
	}

	kept := parts[:1]
	for _, part := range parts[1:] {
		if part != "" {
			kept = append(kept, part)
		}
	}

	if len(kept) == 1 {
		kept = append(kept, "csv")
	}

	return filepath.Join(dir, strings.Join(kept, "."))
}
