package common

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// --------------------------------------------------------------------------
// Generator configuration
// --------------------------------------------------------------------------

// DefaultOutDir is where fixtures are written, relative to the directory the
// tool is invoked from (tools/bsamples in the source tree)
const DefaultOutDir = "../../test/compat/fixtures"

// OutputFormat is the structured text format fixture files are rendered in
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Extension returns the file extension (without dot) for the format
func (f OutputFormat) Extension() string {
	return string(f)
}

// ParseOutputFormat validates a format name
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", errors.Errorf("invalid format %s (expected one of: json, yaml)", s)
	}
}

// GeneratorConfig holds all configuration parameters of a generate or check run
type GeneratorConfig struct {
	// OutDir is the directory fixture files are written to or compared with
	OutDir string
	// Format is the structured text format of the fixture files
	Format OutputFormat
	// Strict turns a value that fails to encode into an error instead of dropping it
	Strict bool
	// Only restricts the run to the named categories, empty means all
	Only []string

	// MetricsFile is where sample counters are written in Prometheus text format, empty disables
	MetricsFile string

	// Logging configuration
	LogLevel string
}

// DefaultGeneratorConfig returns the configuration used when no flags are given
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutDir:   DefaultOutDir,
		Format:   FormatJSON,
		LogLevel: "info",
	}
}

// Selected reports whether the category with the given name should be processed
func (c *GeneratorConfig) Selected(name string) bool {
	if len(c.Only) == 0 {
		return true
	}
	for _, n := range c.Only {
		if n == name {
			return true
		}
	}
	return false
}

// String returns a formatted string representation of the configuration
func (c *GeneratorConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// Output
	addSection("Output")
	addField("Directory", c.OutDir)
	addField("Format", string(c.Format))

	// Sampling
	addSection("Sampling")
	addField("Strict", fmt.Sprintf("%t", c.Strict))
	if len(c.Only) == 0 {
		addField("Categories", "all")
	} else {
		addField("Categories", strings.Join(c.Only, ", "))
	}

	// Logging and metrics
	addSection("Logging")
	addField("Log Level", c.LogLevel)
	if c.MetricsFile != "" {
		addField("Metrics File", c.MetricsFile)
	}

	return sb.String()
}
