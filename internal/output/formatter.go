// Package output renders finished projection runs: fixed-width text, CSV,
// HTML, JSON and a console summary, behind one pluggable Formatter
// interface.
package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/avoleti/incomehelper/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.ProjectionReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ProjectionReport) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ProjectionReport) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                      { return ff.ID }

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	TextReportFormatter{},
	CSVDetailedExporter{},
	HTMLFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, nil if unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"txt":          "text",
	"report":       "text",
	"csv":          "detailed-csv",
	"csv-detailed": "detailed-csv",
	"excel":        "detailed-csv",
	"html-report":  "html",
	"json-pretty":  "json",
	"summary":      "console",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fileExtensions maps canonical formatter names to output file extensions.
var fileExtensions = map[string]string{
	"console":      "txt",
	"text":         "txt",
	"detailed-csv": "csv",
	"html":         "html",
	"json":         "json",
}

// WriteFormatted runs a formatter and writes its output to path. An empty
// path yields a timestamped filename; the chosen filename is returned.
func WriteFormatted(f Formatter, report *domain.ProjectionReport, path string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if path == "" {
		ext := fileExtensions[f.Name()]
		if ext == "" {
			ext = "txt"
		}
		path = fmt.Sprintf("income_projection_%s.%s", time.Now().Format("20060102_150405"), ext)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
