package check

import (
	"fmt"

	"github.com/ValentinKolb/bsamples/cmd/util"
	"github.com/ValentinKolb/bsamples/lib/common"
	"github.com/ValentinKolb/bsamples/lib/fixtures"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	checkCmdConfig *common.GeneratorConfig
	CheckCmd       = &cobra.Command{
		Use:     "check",
		Short:   "Verify that the fixture files are up to date",
		Long:    `Produce every category in memory and compare the result byte by byte with the fixture files in <out-dir>. Missing and outdated files are listed and the command fails.`,
		Args:    cobra.NoArgs,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	util.SetupOnlyFlag(CheckCmd)
}

func processConfig(cmd *cobra.Command, _ []string) (err error) {
	checkCmdConfig, err = util.ProcessConfig(cmd)
	return err
}

// run compares the generated fixtures with the files on disk
func run(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	g, err := fixtures.NewGenerator(afero.NewOsFs(), *checkCmdConfig)
	if err != nil {
		return err
	}

	diffs, err := g.Check()
	if err != nil {
		return err
	}
	if len(diffs) == 0 {
		util.Logger.Infof("all fixture files in %s are up to date", checkCmdConfig.OutDir)
		return nil
	}

	for _, d := range diffs {
		fmt.Fprintln(cmd.OutOrStdout(), d.String())
	}
	return fmt.Errorf("%d fixture files are missing or outdated, run bsamples generate to update them", len(diffs))
}
