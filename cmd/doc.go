// Package cmd implements the command-line interface of bsamples, the Borsh
// golden fixture generator.
//
// The package is organized into several subpackages:
//
//   - generate: Writes the fixture file of every category
//   - check: Compares the fixture files on disk with the catalog
//   - list: Prints the categories, their fields and sample counts
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See bsamples -help for a list of all commands.
package cmd
