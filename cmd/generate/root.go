package generate

import (
	"github.com/ValentinKolb/bsamples/cmd/util"
	"github.com/ValentinKolb/bsamples/lib/common"
	"github.com/ValentinKolb/bsamples/lib/fixtures"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	generateCmdConfig *common.GeneratorConfig
	GenerateCmd       = &cobra.Command{
		Use:     "generate",
		Short:   "Write the fixture files",
		Long:    `Produce every category of the catalog, render it and write it to <out-dir>/<category>.<format>. The first error aborts the run, files written before it are kept.`,
		Args:    cobra.NoArgs,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	util.SetupOnlyFlag(GenerateCmd)
}

func processConfig(cmd *cobra.Command, _ []string) (err error) {
	generateCmdConfig, err = util.ProcessConfig(cmd)
	return err
}

// run writes all selected fixture files
func run(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	g, err := fixtures.NewGenerator(afero.NewOsFs(), *generateCmdConfig)
	if err != nil {
		return err
	}

	written, err := g.Generate()
	if err != nil {
		return err
	}

	total := 0
	for _, f := range written {
		total += f.Category.Count()
	}
	util.Logger.Infof("generated %d fixture files with %d samples in %s", len(written), total, generateCmdConfig.OutDir)
	return nil
}
