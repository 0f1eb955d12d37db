package util

import (
	"strings"

	"github.com/ValentinKolb/bsamples/lib/common"
	"github.com/joho/godotenv"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Logger = logger.GetLogger("cmd")

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupGeneratorFlags adds the flags shared by all commands that produce fixtures
func SetupGeneratorFlags(cmd *cobra.Command) {
	defaults := common.DefaultGeneratorConfig()

	key := "out-dir"
	cmd.PersistentFlags().String(key, defaults.OutDir, WrapString("Directory the fixture files are written to or compared with, relative to the working directory"))

	key = "format"
	cmd.PersistentFlags().String(key, string(defaults.Format), WrapString("Format of the fixture files (json, yaml)"))

	key = "strict"
	cmd.PersistentFlags().Bool(key, defaults.Strict, WrapString("Fail when a catalog value cannot be encoded instead of leaving it out"))

	key = "metrics-file"
	cmd.PersistentFlags().String(key, defaults.MetricsFile, WrapString("Write sample counters in Prometheus text format to this file (disabled if empty)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, defaults.LogLevel, WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// SetupOnlyFlag adds the flag restricting a command to a subset of categories
func SetupOnlyFlag(cmd *cobra.Command) {
	key := "only"
	cmd.Flags().String(key, "", WrapString("Comma-separated list of categories to process (e.g. simple,maps), all if empty"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("bsamples")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// ProcessConfig binds the flags of cmd, reads the generator configuration and
// initializes the loggers with the configured level
func ProcessConfig(cmd *cobra.Command) (*common.GeneratorConfig, error) {
	if err := BindCommandFlags(cmd); err != nil {
		return nil, err
	}

	config, err := GetGeneratorConfig()
	if err != nil {
		return nil, err
	}

	if err := common.InitLoggers(*config); err != nil {
		return nil, err
	}
	Logger.Debugf("configuration:%s", config.String())
	return config, nil
}

// GetGeneratorConfig reads the generator configuration from viper
func GetGeneratorConfig() (*common.GeneratorConfig, error) {
	format, err := common.ParseOutputFormat(viper.GetString("format"))
	if err != nil {
		return nil, err
	}

	config := &common.GeneratorConfig{
		OutDir:      viper.GetString("out-dir"),
		Format:      format,
		Strict:      viper.GetBool("strict"),
		Only:        SplitList(viper.GetString("only")),
		MetricsFile: viper.GetString("metrics-file"),
		LogLevel:    viper.GetString("log-level"),
	}
	if config.OutDir == "" {
		config.OutDir = common.DefaultOutDir
	}
	return config, nil
}

// SplitList splits a comma-separated list and drops empty entries
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
