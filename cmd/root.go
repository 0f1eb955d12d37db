package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/bsamples/cmd/check"
	"github.com/ValentinKolb/bsamples/cmd/generate"
	"github.com/ValentinKolb/bsamples/cmd/list"
	"github.com/ValentinKolb/bsamples/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "bsamples",
		Short: "borsh golden fixture generator",
		Long: fmt.Sprintf(`bsamples (v%s)

Generates golden test fixtures for the Borsh binary format. For a fixed
catalog of value shapes every fixture file pairs the value with its
canonical Borsh encoding. Other Borsh implementations decode the data
and compare the result with the value.

All flags can also be set via environment variables of the form
BSAMPLES_<FLAG> (e.g. BSAMPLES_OUT_DIR=fixtures).`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of bsamples",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bsamples v%s\n", Version)
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(generate.GenerateCmd)
	RootCmd.AddCommand(check.CheckCmd)
	RootCmd.AddCommand(list.ListCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupGeneratorFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
