// Package common provides the configuration and logging shared by the bsamples
// command line and its libraries.
//
// Key Components:
//
//   - GeneratorConfig: Output directory, format, strict mode and category selection
//     of a run, with a sectioned String() used for the startup log
//   - OutputFormat: The structured text formats fixture files can be rendered in
//   - InitLoggers: Installs a dragonboat logger.Factory that formats all package
//     loggers as "LEVEL | package | message" and applies the configured level
package common
